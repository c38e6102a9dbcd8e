package style

import (
	"fmt"
	"strconv"
)

// Kind identifies the value shape a property resolves to.
type Kind uint8

const (
	// KindUnset marks the zero Value. Setting an unset value on an instance
	// style removes the property.
	KindUnset Kind = iota
	KindNumber
	KindColor
	KindEnum
	KindLength
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindColor:
		return "color"
	case KindEnum:
		return "enum"
	case KindLength:
		return "length"
	default:
		return "unset"
	}
}

// Unit is the unit of a length value.
type Unit uint8

const (
	UnitUnset Unit = iota
	UnitPixel
	UnitPercent
	UnitEm
	UnitViewportWidth
	UnitViewportHeight
	UnitContent
)

var unitSuffixes = [...]string{
	UnitUnset:          "",
	UnitPixel:          "px",
	UnitPercent:        "%",
	UnitEm:             "em",
	UnitViewportWidth:  "vw",
	UnitViewportHeight: "vh",
	UnitContent:        "cnt",
}

func (u Unit) String() string {
	if int(u) < len(unitSuffixes) {
		return unitSuffixes[u]
	}
	return "unit(" + strconv.Itoa(int(u)) + ")"
}

// Value is a small tagged union holding a resolved property value.
// Values are comparable with ==.
type Value struct {
	kind Kind
	unit Unit
	num  float64
	bits uint32
}

// Number returns a numeric value.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// ColorValue returns a color value.
func ColorValue(c Color) Value {
	return Value{kind: KindColor, bits: uint32(c)}
}

// Enum returns an enumeration value. Handle-typed properties (assets,
// painters, templates) also store their handle here.
func Enum(v uint32) Value {
	return Value{kind: KindEnum, bits: v}
}

// Length returns a length with the given unit.
func Length(v float64, unit Unit) Value {
	return Value{kind: KindLength, unit: unit, num: v}
}

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Unit returns the unit of a length, or UnitUnset.
func (v Value) Unit() Unit { return v.unit }

// IsUnset reports whether v is the zero value.
func (v Value) IsUnset() bool { return v.kind == KindUnset }

// Float returns the numeric part of a number or length.
func (v Value) Float() float64 { return v.num }

// Color returns the color of a color value.
func (v Value) Color() Color { return Color(v.bits) }

// EnumValue returns the raw enumeration value.
func (v Value) EnumValue() uint32 { return v.bits }

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindColor:
		return Color(v.bits).String()
	case KindEnum:
		return strconv.FormatUint(uint64(v.bits), 10)
	case KindLength:
		return strconv.FormatFloat(v.num, 'g', -1, 64) + v.unit.String()
	default:
		return "unset"
	}
}

// Property pairs a property identifier with its value.
type Property struct {
	ID    PropertyID
	Value Value
}

// Unset returns a property carrying no value.
func Unset(id PropertyID) Property {
	return Property{ID: id}
}

// Format renders the value using the property's enumeration names when it has them.
func (p Property) Format() string {
	if p.Value.kind == KindEnum {
		if names := p.ID.info().enums; int(p.Value.bits) < len(names) {
			return names[p.Value.bits]
		}
	}
	return p.Value.String()
}

func (p Property) String() string {
	return fmt.Sprintf("%s=%s", p.ID, p.Format())
}
