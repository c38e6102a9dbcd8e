package style

import "github.com/go-drift/uitree/pkg/element"

// SourceType distinguishes per-element instance styles from shared ones.
// Instance sources outrank shared sources.
type SourceType uint8

const (
	SourceShared SourceType = iota
	SourceInstance
)

func (t SourceType) String() string {
	if t == SourceInstance {
		return "Instance"
	}
	return "Shared"
}

// Phase selects when a run command fires.
type Phase uint8

const (
	PhaseEnter Phase = 1 << iota
	PhaseExit
)

func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "Enter"
	case PhaseExit:
		return "Exit"
	case PhaseEnter | PhaseExit:
		return "Enter|Exit"
	}
	return "None"
}

// RunCommand is a side effect attached to a state style. Action runs with the
// firing phase when the style becomes active (Enter) or inactive (Exit) and
// Phase includes that phase.
type RunCommand struct {
	Phase  Phase
	Action func(id element.ID, phase Phase)
}

// StateStyle is the style and commands a group contributes for one state.
type StateStyle struct {
	Style    *Style
	Commands []RunCommand
}

// Group is a named set of per-state styles, optionally gated by a rule.
type Group struct {
	Name    string
	Normal  *StateStyle
	Hover   *StateStyle
	Focused *StateStyle
	Active  *StateStyle
	// Rule gates the group. A nil rule always applies.
	Rule Rule
}

// InState returns the group's style for a single state.
func (g *Group) InState(s State) *StateStyle {
	switch s {
	case StateNormal:
		return g.Normal
	case StateHover:
		return g.Hover
	case StateFocused:
		return g.Focused
	case StateActive:
		return g.Active
	}
	return nil
}

func (g *Group) setInState(s State, ss *StateStyle) {
	switch s {
	case StateNormal:
		g.Normal = ss
	case StateHover:
		g.Hover = ss
	case StateFocused:
		g.Focused = ss
	case StateActive:
		g.Active = ss
	}
}

func (g *Group) ruleCount() int {
	if g.Rule == nil {
		return 0
	}
	return g.Rule.Count()
}

// HasAttributeRule reports whether the group's applicability depends on attributes.
func (g *Group) HasAttributeRule() bool {
	return g.Rule != nil && g.Rule.DependsOnAttributes()
}

// Container is an ordered, named list of groups shared between elements.
// Containers are compared by identity.
type Container struct {
	Name   string
	Type   SourceType
	Groups []*Group
}

// HasAttributeRules reports whether any group depends on attributes.
func (c *Container) HasAttributeRules() bool {
	for _, g := range c.Groups {
		if g.HasAttributeRule() {
			return true
		}
	}
	return false
}
