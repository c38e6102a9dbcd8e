package style

import (
	"fmt"
	"strings"
)

// State is a set of interaction states. Normal is always implied in an
// element's current state.
type State uint8

const (
	StateNormal State = 1 << iota
	StateHover
	StateFocused
	StateActive

	allStates = StateNormal | StateHover | StateFocused | StateActive
)

// States lists the single interaction states in declaration order.
var States = [...]State{StateNormal, StateHover, StateFocused, StateActive}

var stateNames = map[State]string{
	StateNormal:  "Normal",
	StateHover:   "Hover",
	StateFocused: "Focused",
	StateActive:  "Active",
}

// IsSingle reports whether s names exactly one known state.
func (s State) IsSingle() bool {
	return s != 0 && s&(s-1) == 0 && s&^allStates == 0
}

// rank orders single states for priority packing. Later pseudo-states outrank
// earlier ones.
func (s State) rank() uint64 {
	switch s {
	case StateHover:
		return 1
	case StateFocused:
		return 2
	case StateActive:
		return 3
	default:
		return 0
	}
}

func (s State) String() string {
	if s == 0 {
		return "None"
	}
	var parts []string
	for _, st := range States {
		if s&st != 0 {
			parts = append(parts, stateNames[st])
		}
	}
	if rest := s &^ allStates; rest != 0 {
		parts = append(parts, fmt.Sprintf("State(%#x)", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseState parses a single state name, case-insensitively.
func ParseState(name string) (State, error) {
	for _, st := range States {
		if strings.EqualFold(name, stateNames[st]) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}
