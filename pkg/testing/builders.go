package testing

import (
	"github.com/go-drift/uitree/pkg/style"
)

// Container returns a shared container with the given groups.
func Container(name string, groups ...*style.Group) *style.Container {
	return &style.Container{Name: name, Type: style.SourceShared, Groups: groups}
}

// Group returns an unconditional group whose Normal state holds props.
func Group(name string, props ...style.Property) *style.Group {
	return &style.Group{Name: name, Normal: Styled(props...)}
}

// Styled returns a state style holding props.
func Styled(props ...style.Property) *style.StateStyle {
	return &style.StateStyle{Style: style.NewStyle(props...)}
}

// Color returns a color property.
func Color(id style.PropertyID, c style.Color) style.Property {
	return style.Property{ID: id, Value: style.ColorValue(c)}
}

// Pixels returns a pixel length property.
func Pixels(id style.PropertyID, v float64) style.Property {
	return style.Property{ID: id, Value: style.Length(v, style.UnitPixel)}
}

// Number returns a number property.
func Number(id style.PropertyID, v float64) style.Property {
	return style.Property{ID: id, Value: style.Number(v)}
}
