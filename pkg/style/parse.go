package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseValue parses authored text into the value shape of id.
//
// Numbers accept any float. Lengths accept a number followed by px, %, em,
// vw, vh or cnt; a bare number is pixels. Colors accept everything
// ParseColor does. Enumerations accept a value name or its integer index.
func ParseValue(id PropertyID, text string) (Value, error) {
	if !id.Valid() {
		return Value{}, fmt.Errorf("unknown property id %d", id)
	}
	text = strings.TrimSpace(text)
	info := id.info()
	switch info.kind {
	case KindNumber:
		f, err := parseFloat(text)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", info.name, err)
		}
		return Number(f), nil
	case KindColor:
		c, err := ParseColor(text)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", info.name, err)
		}
		return ColorValue(c), nil
	case KindLength:
		v, err := parseLength(text)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", info.name, err)
		}
		return v, nil
	case KindEnum:
		for i, name := range info.enums {
			if strings.EqualFold(name, text) {
				return Enum(uint32(i)), nil
			}
		}
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			if len(info.enums) > 0 {
				return Value{}, fmt.Errorf("%s: %q is not one of %s", info.name, text, strings.Join(info.enums, ", "))
			}
			return Value{}, fmt.Errorf("%s: expected an integer handle, got %q", info.name, text)
		}
		if len(info.enums) > 0 && n >= uint64(len(info.enums)) {
			return Value{}, fmt.Errorf("%s: enum value %d out of range", info.name, n)
		}
		return Enum(uint32(n)), nil
	}
	return Value{}, fmt.Errorf("%s: unsupported kind %s", info.name, info.kind)
}

// ParseProperty looks up name and parses text for it.
func ParseProperty(name, text string) (Property, error) {
	id, ok := PropertyIDFromName(name)
	if !ok {
		return Property{}, fmt.Errorf("unknown property %q", name)
	}
	v, err := ParseValue(id, text)
	if err != nil {
		return Property{}, err
	}
	return Property{ID: id, Value: v}, nil
}

func parseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", text)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("number %q is not finite", text)
	}
	return f, nil
}

var lengthSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"px", UnitPixel},
	{"%", UnitPercent},
	{"em", UnitEm},
	{"vw", UnitViewportWidth},
	{"vh", UnitViewportHeight},
	{"cnt", UnitContent},
}

func parseLength(text string) (Value, error) {
	unit := UnitPixel
	num := text
	for _, s := range lengthSuffixes {
		if strings.HasSuffix(text, s.suffix) {
			unit = s.unit
			num = strings.TrimSpace(strings.TrimSuffix(text, s.suffix))
			break
		}
	}
	f, err := parseFloat(num)
	if err != nil {
		return Value{}, err
	}
	return Length(f, unit), nil
}
