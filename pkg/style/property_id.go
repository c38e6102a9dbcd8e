package style

import "strconv"

// PropertyID identifies one style property. The set of identifiers is closed.
type PropertyID uint16

const (
	OverflowX PropertyID = iota
	OverflowY
	ClipBehavior
	ClipBounds
	PointerEvents
	BackgroundColor
	BackgroundImage
	Painter
	BackgroundImageOffsetX
	BackgroundImageOffsetY
	BackgroundImageScaleX
	BackgroundImageScaleY
	BackgroundImageRotation
	BackgroundImageTileX
	BackgroundImageTileY
	Opacity
	Cursor
	Visibility
	BorderColorTop
	BorderColorRight
	BorderColorBottom
	BorderColorLeft
	BackgroundTint
	BackgroundFit
	Material
	GridItemY
	GridItemHeight
	GridItemX
	GridItemWidth
	GridLayoutDirection
	GridLayoutDensity
	GridLayoutColTemplate
	GridLayoutRowTemplate
	GridLayoutColAutoSize
	GridLayoutRowAutoSize
	GridLayoutColGap
	GridLayoutRowGap
	FlexLayoutWrap
	FlexLayoutDirection
	FlexItemGrow
	FlexItemShrink
	RadialLayoutStartAngle
	RadialLayoutEndAngle
	RadialLayoutRadius
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	BorderTop
	BorderRight
	BorderBottom
	BorderLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	BorderRadiusTopLeft
	BorderRadiusTopRight
	BorderRadiusBottomLeft
	BorderRadiusBottomRight
	TransformPositionX
	TransformPositionY
	TransformScaleX
	TransformScaleY
	TransformPivotX
	TransformPivotY
	TransformRotation
	TextColor
	TextFontAsset
	TextFontSize
	TextFontStyle
	TextAlignment
	TextOutlineWidth
	TextOutlineColor
	TextGlowColor
	TextGlowOffset
	TextGlowInner
	TextGlowOuter
	TextGlowPower
	TextUnderlayColor
	TextUnderlayX
	TextUnderlayY
	TextUnderlayDilate
	TextUnderlaySoftness
	TextUnderlayType
	TextTransform
	TextWhitespaceMode
	TextFaceDilate
	TextOutlineSoftness
	TextLineHeight
	CaretColor
	SelectionBackgroundColor
	SelectionTextColor
	MinWidth
	MaxWidth
	PreferredWidth
	MinHeight
	MaxHeight
	PreferredHeight
	LayoutType
	LayoutBehavior
	ZIndex
	Layer
	ShadowOffsetX
	ShadowOffsetY
	ShadowSizeX
	ShadowSizeY
	ShadowIntensity
	ShadowColor
	ShadowTint
	ShadowOpacity
	AlignmentDirectionX
	AlignmentDirectionY
	AlignmentOriginX
	AlignmentOriginY
	AlignmentOffsetX
	AlignmentOffsetY
	AlignmentTargetX
	AlignmentTargetY
	AlignmentBoundaryX
	AlignmentBoundaryY
	LayoutFitHorizontal
	LayoutFitVertical
	CornerBevelTopLeft
	CornerBevelTopRight
	CornerBevelBottomLeft
	CornerBevelBottomRight
	AlignItemsHorizontal
	AlignItemsVertical
	FitItemsHorizontal
	FitItemsVertical
	DistributeExtraSpaceVertical
	DistributeExtraSpaceHorizontal
	MeshType
	MeshFillAmount
	MeshFillDirection
	MeshFillOrigin
	OutlineColor
	OutlineWidth
	Gradient
	GradientMode
	GradientOffsetX
	GradientOffsetY
	MeshFillRotation
	MeshFillOffsetX
	MeshFillOffsetY
	MeshFillRadius
	propertyCount int = iota
)

type propertyFlags uint8

const (
	propInherited propertyFlags = 1 << iota
)

type propertyInfo struct {
	name  string
	kind  Kind
	enums []string
	flags propertyFlags
	def   Value
}

// Enumeration names, indexed by value. Handle properties have no names and
// accept integers only.
var (
	enumHandle            []string
	enumOverflow          = []string{"visible", "hidden", "scroll"}
	enumClipBehavior      = []string{"normal", "never", "view", "screen"}
	enumClipBounds        = []string{"border-box", "content-box"}
	enumPointerEvents     = []string{"normal", "none"}
	enumVisibility        = []string{"visible", "hidden"}
	enumCursor            = []string{"default", "pointer", "text", "move", "resize"}
	enumBackgroundFit     = []string{"fill", "contain", "cover", "scale-down", "none"}
	enumDirection         = []string{"horizontal", "vertical"}
	enumGridDensity       = []string{"sparse", "dense"}
	enumWrap              = []string{"none", "wrap"}
	enumTextAlignment     = []string{"left", "right", "center", "justified"}
	enumFontStyle         = []string{"normal", "bold", "italic", "underline", "strikethrough"}
	enumTextTransform     = []string{"none", "uppercase", "lowercase", "smallcaps", "titlecase"}
	enumWhitespace        = []string{"collapse", "preserve", "preserve-newlines", "collapse-trim"}
	enumUnderlayType      = []string{"outer", "inner"}
	enumLayoutType        = []string{"flex", "grid", "radial", "stack", "text", "image"}
	enumLayoutBehavior    = []string{"normal", "ignored", "translation-only"}
	enumAlignDirection    = []string{"start", "end"}
	enumAlignTarget       = []string{"unset", "layout-box", "parent", "parent-content-area", "template", "view", "screen", "mouse"}
	enumAlignBoundary     = []string{"unset", "screen", "parent", "parent-content-area", "clipper", "view"}
	enumLayoutFit         = []string{"unset", "none", "grow", "shrink", "fill"}
	enumSpaceDistribution = []string{"default", "after-content", "center-content", "around-content", "between-content", "before-content"}
	enumMeshType          = []string{"none", "simple-fill", "radial-90", "radial-180", "radial-360"}
	enumMeshFillDirection = []string{"clockwise", "counter-clockwise"}
	enumMeshFillOrigin    = []string{"bottom", "right", "top", "left"}
	enumGradientMode      = []string{"linear", "radial", "cylindrical"}
)

var properties = buildProperties()

func buildProperties() (t [propertyCount]propertyInfo) {
	t[OverflowX] = propertyInfo{name: "OverflowX", kind: KindEnum, enums: enumOverflow, def: Enum(0)}
	t[OverflowY] = propertyInfo{name: "OverflowY", kind: KindEnum, enums: enumOverflow, def: Enum(0)}
	t[ClipBehavior] = propertyInfo{name: "ClipBehavior", kind: KindEnum, enums: enumClipBehavior, def: Enum(0)}
	t[ClipBounds] = propertyInfo{name: "ClipBounds", kind: KindEnum, enums: enumClipBounds, def: Enum(0)}
	t[PointerEvents] = propertyInfo{name: "PointerEvents", kind: KindEnum, enums: enumPointerEvents, def: Enum(0)}
	t[BackgroundColor] = propertyInfo{name: "BackgroundColor", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[BackgroundImage] = propertyInfo{name: "BackgroundImage", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[Painter] = propertyInfo{name: "Painter", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[BackgroundImageOffsetX] = propertyInfo{name: "BackgroundImageOffsetX", kind: KindLength, def: Length(0, UnitPixel)}
	t[BackgroundImageOffsetY] = propertyInfo{name: "BackgroundImageOffsetY", kind: KindLength, def: Length(0, UnitPixel)}
	t[BackgroundImageScaleX] = propertyInfo{name: "BackgroundImageScaleX", kind: KindNumber, def: Number(1)}
	t[BackgroundImageScaleY] = propertyInfo{name: "BackgroundImageScaleY", kind: KindNumber, def: Number(1)}
	t[BackgroundImageRotation] = propertyInfo{name: "BackgroundImageRotation", kind: KindNumber, def: Number(0)}
	t[BackgroundImageTileX] = propertyInfo{name: "BackgroundImageTileX", kind: KindNumber, def: Number(1)}
	t[BackgroundImageTileY] = propertyInfo{name: "BackgroundImageTileY", kind: KindNumber, def: Number(1)}
	t[Opacity] = propertyInfo{name: "Opacity", kind: KindNumber, def: Number(1)}
	t[Cursor] = propertyInfo{name: "Cursor", kind: KindEnum, enums: enumCursor, flags: propInherited, def: Enum(0)}
	t[Visibility] = propertyInfo{name: "Visibility", kind: KindEnum, enums: enumVisibility, flags: propInherited, def: Enum(0)}
	t[BorderColorTop] = propertyInfo{name: "BorderColorTop", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[BorderColorRight] = propertyInfo{name: "BorderColorRight", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[BorderColorBottom] = propertyInfo{name: "BorderColorBottom", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[BorderColorLeft] = propertyInfo{name: "BorderColorLeft", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[BackgroundTint] = propertyInfo{name: "BackgroundTint", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[BackgroundFit] = propertyInfo{name: "BackgroundFit", kind: KindEnum, enums: enumBackgroundFit, def: Enum(0)}
	t[Material] = propertyInfo{name: "Material", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[GridItemY] = propertyInfo{name: "GridItemY", kind: KindNumber, def: Number(0)}
	t[GridItemHeight] = propertyInfo{name: "GridItemHeight", kind: KindNumber, def: Number(1)}
	t[GridItemX] = propertyInfo{name: "GridItemX", kind: KindNumber, def: Number(0)}
	t[GridItemWidth] = propertyInfo{name: "GridItemWidth", kind: KindNumber, def: Number(1)}
	t[GridLayoutDirection] = propertyInfo{name: "GridLayoutDirection", kind: KindEnum, enums: enumDirection, def: Enum(0)}
	t[GridLayoutDensity] = propertyInfo{name: "GridLayoutDensity", kind: KindEnum, enums: enumGridDensity, def: Enum(0)}
	t[GridLayoutColTemplate] = propertyInfo{name: "GridLayoutColTemplate", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[GridLayoutRowTemplate] = propertyInfo{name: "GridLayoutRowTemplate", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[GridLayoutColAutoSize] = propertyInfo{name: "GridLayoutColAutoSize", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[GridLayoutRowAutoSize] = propertyInfo{name: "GridLayoutRowAutoSize", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[GridLayoutColGap] = propertyInfo{name: "GridLayoutColGap", kind: KindLength, def: Length(0, UnitPixel)}
	t[GridLayoutRowGap] = propertyInfo{name: "GridLayoutRowGap", kind: KindLength, def: Length(0, UnitPixel)}
	t[FlexLayoutWrap] = propertyInfo{name: "FlexLayoutWrap", kind: KindEnum, enums: enumWrap, def: Enum(0)}
	t[FlexLayoutDirection] = propertyInfo{name: "FlexLayoutDirection", kind: KindEnum, enums: enumDirection, def: Enum(0)}
	t[FlexItemGrow] = propertyInfo{name: "FlexItemGrow", kind: KindNumber, def: Number(0)}
	t[FlexItemShrink] = propertyInfo{name: "FlexItemShrink", kind: KindNumber, def: Number(1)}
	t[RadialLayoutStartAngle] = propertyInfo{name: "RadialLayoutStartAngle", kind: KindNumber, def: Number(0)}
	t[RadialLayoutEndAngle] = propertyInfo{name: "RadialLayoutEndAngle", kind: KindNumber, def: Number(360)}
	t[RadialLayoutRadius] = propertyInfo{name: "RadialLayoutRadius", kind: KindLength, def: Length(0, UnitPixel)}
	t[MarginTop] = propertyInfo{name: "MarginTop", kind: KindLength, def: Length(0, UnitPixel)}
	t[MarginRight] = propertyInfo{name: "MarginRight", kind: KindLength, def: Length(0, UnitPixel)}
	t[MarginBottom] = propertyInfo{name: "MarginBottom", kind: KindLength, def: Length(0, UnitPixel)}
	t[MarginLeft] = propertyInfo{name: "MarginLeft", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderTop] = propertyInfo{name: "BorderTop", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderRight] = propertyInfo{name: "BorderRight", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderBottom] = propertyInfo{name: "BorderBottom", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderLeft] = propertyInfo{name: "BorderLeft", kind: KindLength, def: Length(0, UnitPixel)}
	t[PaddingTop] = propertyInfo{name: "PaddingTop", kind: KindLength, def: Length(0, UnitPixel)}
	t[PaddingRight] = propertyInfo{name: "PaddingRight", kind: KindLength, def: Length(0, UnitPixel)}
	t[PaddingBottom] = propertyInfo{name: "PaddingBottom", kind: KindLength, def: Length(0, UnitPixel)}
	t[PaddingLeft] = propertyInfo{name: "PaddingLeft", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderRadiusTopLeft] = propertyInfo{name: "BorderRadiusTopLeft", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderRadiusTopRight] = propertyInfo{name: "BorderRadiusTopRight", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderRadiusBottomLeft] = propertyInfo{name: "BorderRadiusBottomLeft", kind: KindLength, def: Length(0, UnitPixel)}
	t[BorderRadiusBottomRight] = propertyInfo{name: "BorderRadiusBottomRight", kind: KindLength, def: Length(0, UnitPixel)}
	t[TransformPositionX] = propertyInfo{name: "TransformPositionX", kind: KindLength, def: Length(0, UnitPixel)}
	t[TransformPositionY] = propertyInfo{name: "TransformPositionY", kind: KindLength, def: Length(0, UnitPixel)}
	t[TransformScaleX] = propertyInfo{name: "TransformScaleX", kind: KindNumber, def: Number(1)}
	t[TransformScaleY] = propertyInfo{name: "TransformScaleY", kind: KindNumber, def: Number(1)}
	t[TransformPivotX] = propertyInfo{name: "TransformPivotX", kind: KindLength, def: Length(0, UnitPixel)}
	t[TransformPivotY] = propertyInfo{name: "TransformPivotY", kind: KindLength, def: Length(0, UnitPixel)}
	t[TransformRotation] = propertyInfo{name: "TransformRotation", kind: KindNumber, def: Number(0)}
	t[TextColor] = propertyInfo{name: "TextColor", kind: KindColor, flags: propInherited, def: ColorValue(ColorBlack)}
	t[TextFontAsset] = propertyInfo{name: "TextFontAsset", kind: KindEnum, enums: enumHandle, flags: propInherited, def: Enum(0)}
	t[TextFontSize] = propertyInfo{name: "TextFontSize", kind: KindLength, flags: propInherited, def: Length(18, UnitPixel)}
	t[TextFontStyle] = propertyInfo{name: "TextFontStyle", kind: KindEnum, enums: enumFontStyle, flags: propInherited, def: Enum(0)}
	t[TextAlignment] = propertyInfo{name: "TextAlignment", kind: KindEnum, enums: enumTextAlignment, flags: propInherited, def: Enum(0)}
	t[TextOutlineWidth] = propertyInfo{name: "TextOutlineWidth", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextOutlineColor] = propertyInfo{name: "TextOutlineColor", kind: KindColor, flags: propInherited, def: ColorValue(ColorTransparent)}
	t[TextGlowColor] = propertyInfo{name: "TextGlowColor", kind: KindColor, flags: propInherited, def: ColorValue(ColorTransparent)}
	t[TextGlowOffset] = propertyInfo{name: "TextGlowOffset", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextGlowInner] = propertyInfo{name: "TextGlowInner", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextGlowOuter] = propertyInfo{name: "TextGlowOuter", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextGlowPower] = propertyInfo{name: "TextGlowPower", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextUnderlayColor] = propertyInfo{name: "TextUnderlayColor", kind: KindColor, flags: propInherited, def: ColorValue(ColorTransparent)}
	t[TextUnderlayX] = propertyInfo{name: "TextUnderlayX", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextUnderlayY] = propertyInfo{name: "TextUnderlayY", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextUnderlayDilate] = propertyInfo{name: "TextUnderlayDilate", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextUnderlaySoftness] = propertyInfo{name: "TextUnderlaySoftness", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextUnderlayType] = propertyInfo{name: "TextUnderlayType", kind: KindEnum, enums: enumUnderlayType, flags: propInherited, def: Enum(0)}
	t[TextTransform] = propertyInfo{name: "TextTransform", kind: KindEnum, enums: enumTextTransform, flags: propInherited, def: Enum(0)}
	t[TextWhitespaceMode] = propertyInfo{name: "TextWhitespaceMode", kind: KindEnum, enums: enumWhitespace, flags: propInherited, def: Enum(0)}
	t[TextFaceDilate] = propertyInfo{name: "TextFaceDilate", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextOutlineSoftness] = propertyInfo{name: "TextOutlineSoftness", kind: KindNumber, flags: propInherited, def: Number(0)}
	t[TextLineHeight] = propertyInfo{name: "TextLineHeight", kind: KindNumber, flags: propInherited, def: Number(1)}
	t[CaretColor] = propertyInfo{name: "CaretColor", kind: KindColor, flags: propInherited, def: ColorValue(ColorTransparent)}
	t[SelectionBackgroundColor] = propertyInfo{name: "SelectionBackgroundColor", kind: KindColor, flags: propInherited, def: ColorValue(ColorTransparent)}
	t[SelectionTextColor] = propertyInfo{name: "SelectionTextColor", kind: KindColor, flags: propInherited, def: ColorValue(ColorTransparent)}
	t[MinWidth] = propertyInfo{name: "MinWidth", kind: KindLength, def: Length(0, UnitPixel)}
	t[MaxWidth] = propertyInfo{name: "MaxWidth", kind: KindLength, def: Length(1e9, UnitPixel)}
	t[PreferredWidth] = propertyInfo{name: "PreferredWidth", kind: KindLength, def: Length(1, UnitContent)}
	t[MinHeight] = propertyInfo{name: "MinHeight", kind: KindLength, def: Length(0, UnitPixel)}
	t[MaxHeight] = propertyInfo{name: "MaxHeight", kind: KindLength, def: Length(1e9, UnitPixel)}
	t[PreferredHeight] = propertyInfo{name: "PreferredHeight", kind: KindLength, def: Length(1, UnitContent)}
	t[LayoutType] = propertyInfo{name: "LayoutType", kind: KindEnum, enums: enumLayoutType, def: Enum(0)}
	t[LayoutBehavior] = propertyInfo{name: "LayoutBehavior", kind: KindEnum, enums: enumLayoutBehavior, def: Enum(0)}
	t[ZIndex] = propertyInfo{name: "ZIndex", kind: KindNumber, def: Number(0)}
	t[Layer] = propertyInfo{name: "Layer", kind: KindNumber, def: Number(0)}
	t[ShadowOffsetX] = propertyInfo{name: "ShadowOffsetX", kind: KindNumber, def: Number(0)}
	t[ShadowOffsetY] = propertyInfo{name: "ShadowOffsetY", kind: KindNumber, def: Number(0)}
	t[ShadowSizeX] = propertyInfo{name: "ShadowSizeX", kind: KindNumber, def: Number(0)}
	t[ShadowSizeY] = propertyInfo{name: "ShadowSizeY", kind: KindNumber, def: Number(0)}
	t[ShadowIntensity] = propertyInfo{name: "ShadowIntensity", kind: KindNumber, def: Number(0)}
	t[ShadowColor] = propertyInfo{name: "ShadowColor", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[ShadowTint] = propertyInfo{name: "ShadowTint", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[ShadowOpacity] = propertyInfo{name: "ShadowOpacity", kind: KindNumber, def: Number(1)}
	t[AlignmentDirectionX] = propertyInfo{name: "AlignmentDirectionX", kind: KindEnum, enums: enumAlignDirection, def: Enum(0)}
	t[AlignmentDirectionY] = propertyInfo{name: "AlignmentDirectionY", kind: KindEnum, enums: enumAlignDirection, def: Enum(0)}
	t[AlignmentOriginX] = propertyInfo{name: "AlignmentOriginX", kind: KindLength, def: Length(0, UnitPixel)}
	t[AlignmentOriginY] = propertyInfo{name: "AlignmentOriginY", kind: KindLength, def: Length(0, UnitPixel)}
	t[AlignmentOffsetX] = propertyInfo{name: "AlignmentOffsetX", kind: KindLength, def: Length(0, UnitPixel)}
	t[AlignmentOffsetY] = propertyInfo{name: "AlignmentOffsetY", kind: KindLength, def: Length(0, UnitPixel)}
	t[AlignmentTargetX] = propertyInfo{name: "AlignmentTargetX", kind: KindEnum, enums: enumAlignTarget, def: Enum(0)}
	t[AlignmentTargetY] = propertyInfo{name: "AlignmentTargetY", kind: KindEnum, enums: enumAlignTarget, def: Enum(0)}
	t[AlignmentBoundaryX] = propertyInfo{name: "AlignmentBoundaryX", kind: KindEnum, enums: enumAlignBoundary, def: Enum(0)}
	t[AlignmentBoundaryY] = propertyInfo{name: "AlignmentBoundaryY", kind: KindEnum, enums: enumAlignBoundary, def: Enum(0)}
	t[LayoutFitHorizontal] = propertyInfo{name: "LayoutFitHorizontal", kind: KindEnum, enums: enumLayoutFit, def: Enum(0)}
	t[LayoutFitVertical] = propertyInfo{name: "LayoutFitVertical", kind: KindEnum, enums: enumLayoutFit, def: Enum(0)}
	t[CornerBevelTopLeft] = propertyInfo{name: "CornerBevelTopLeft", kind: KindLength, def: Length(0, UnitPixel)}
	t[CornerBevelTopRight] = propertyInfo{name: "CornerBevelTopRight", kind: KindLength, def: Length(0, UnitPixel)}
	t[CornerBevelBottomLeft] = propertyInfo{name: "CornerBevelBottomLeft", kind: KindLength, def: Length(0, UnitPixel)}
	t[CornerBevelBottomRight] = propertyInfo{name: "CornerBevelBottomRight", kind: KindLength, def: Length(0, UnitPixel)}
	t[AlignItemsHorizontal] = propertyInfo{name: "AlignItemsHorizontal", kind: KindNumber, def: Number(0)}
	t[AlignItemsVertical] = propertyInfo{name: "AlignItemsVertical", kind: KindNumber, def: Number(0)}
	t[FitItemsHorizontal] = propertyInfo{name: "FitItemsHorizontal", kind: KindEnum, enums: enumLayoutFit, def: Enum(0)}
	t[FitItemsVertical] = propertyInfo{name: "FitItemsVertical", kind: KindEnum, enums: enumLayoutFit, def: Enum(0)}
	t[DistributeExtraSpaceVertical] = propertyInfo{name: "DistributeExtraSpaceVertical", kind: KindEnum, enums: enumSpaceDistribution, def: Enum(0)}
	t[DistributeExtraSpaceHorizontal] = propertyInfo{name: "DistributeExtraSpaceHorizontal", kind: KindEnum, enums: enumSpaceDistribution, def: Enum(0)}
	t[MeshType] = propertyInfo{name: "MeshType", kind: KindEnum, enums: enumMeshType, def: Enum(0)}
	t[MeshFillAmount] = propertyInfo{name: "MeshFillAmount", kind: KindNumber, def: Number(1)}
	t[MeshFillDirection] = propertyInfo{name: "MeshFillDirection", kind: KindEnum, enums: enumMeshFillDirection, def: Enum(0)}
	t[MeshFillOrigin] = propertyInfo{name: "MeshFillOrigin", kind: KindEnum, enums: enumMeshFillOrigin, def: Enum(0)}
	t[OutlineColor] = propertyInfo{name: "OutlineColor", kind: KindColor, def: ColorValue(ColorTransparent)}
	t[OutlineWidth] = propertyInfo{name: "OutlineWidth", kind: KindLength, def: Length(0, UnitPixel)}
	t[Gradient] = propertyInfo{name: "Gradient", kind: KindEnum, enums: enumHandle, def: Enum(0)}
	t[GradientMode] = propertyInfo{name: "GradientMode", kind: KindEnum, enums: enumGradientMode, def: Enum(0)}
	t[GradientOffsetX] = propertyInfo{name: "GradientOffsetX", kind: KindNumber, def: Number(0)}
	t[GradientOffsetY] = propertyInfo{name: "GradientOffsetY", kind: KindNumber, def: Number(0)}
	t[MeshFillRotation] = propertyInfo{name: "MeshFillRotation", kind: KindNumber, def: Number(0)}
	t[MeshFillOffsetX] = propertyInfo{name: "MeshFillOffsetX", kind: KindLength, def: Length(0, UnitPixel)}
	t[MeshFillOffsetY] = propertyInfo{name: "MeshFillOffsetY", kind: KindLength, def: Length(0, UnitPixel)}
	t[MeshFillRadius] = propertyInfo{name: "MeshFillRadius", kind: KindLength, def: Length(0, UnitPixel)}
	return t
}

var propertyByName = func() map[string]PropertyID {
	m := make(map[string]PropertyID, propertyCount)
	for i := range properties {
		m[properties[i].name] = PropertyID(i)
	}
	return m
}()

var inheritedProperties = func() []PropertyID {
	var ids []PropertyID
	for i := range properties {
		if properties[i].flags&propInherited != 0 {
			ids = append(ids, PropertyID(i))
		}
	}
	return ids
}()

func (id PropertyID) info() *propertyInfo {
	return &properties[id]
}

// Valid reports whether id is inside the identifier space.
func (id PropertyID) Valid() bool {
	return int(id) < propertyCount
}

func (id PropertyID) String() string {
	if !id.Valid() {
		return "PropertyID(" + strconv.Itoa(int(id)) + ")"
	}
	return properties[id].name
}

// Kind returns the value shape of the property.
func (id PropertyID) Kind() Kind {
	return properties[id].kind
}

// EnumNames returns the value names of an enumeration property, or nil.
func (id PropertyID) EnumNames() []string {
	return properties[id].enums
}

// PropertyIDFromName looks up a property by its identifier name, e.g. "TextColor".
func PropertyIDFromName(name string) (PropertyID, bool) {
	id, ok := propertyByName[name]
	return id, ok
}

// PropertyCount returns the number of property identifiers.
func PropertyCount() int {
	return propertyCount
}

// IsInherited reports whether resolved values of id flow to descendants
// that do not define it.
func IsInherited(id PropertyID) bool {
	return properties[id].flags&propInherited != 0
}

// InheritedProperties returns every inheritable property id in ascending order.
// The returned slice must not be modified.
func InheritedProperties() []PropertyID {
	return inheritedProperties
}

// Default returns the documented default value of id.
func Default(id PropertyID) Property {
	return Property{ID: id, Value: properties[id].def}
}
