package element

import "strings"

// Flags holds per-slot state bits.
type Flags uint32

const (
	// FlagEnabled marks an element that participates in layout and styling.
	FlagEnabled Flags = 1 << iota
	// FlagEnabledRoot marks the root of a subtree enabled this frame.
	FlagEnabledRoot
	// FlagDisableRoot marks the root of a subtree disabled this frame.
	FlagDisableRoot
	// FlagEnableStateChanged marks an element whose enabled state flipped this frame.
	FlagEnableStateChanged
	// FlagPrimitive marks a leaf element with no template of its own (text, image).
	FlagPrimitive
)

// EnabledFlagSet is the set of bits that must all be present for IsEnabled.
const EnabledFlagSet = FlagEnabled

var flagNames = []string{"Enabled", "EnabledRoot", "DisableRoot", "EnableStateChanged", "Primitive"}

func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
