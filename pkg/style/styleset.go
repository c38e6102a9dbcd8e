package style

import (
	"iter"
	"slices"
	"strings"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/errors"
)

// StyleSet resolves the style properties of one element.
//
// Entries from the instance group and every attached container are kept
// sorted by descending priority. A property resolves to the first entry that
// is active in the current state and defines it; otherwise to the inherited
// value for inheritable properties, otherwise to its default.
type StyleSet struct {
	sys *System
	id  element.ID

	currentState       State
	containedStates    State
	hasAttributeStyles bool
	initialized        bool

	instance   *Group
	entries    []entry
	containers []*Container
	props      *PropertyMap
}

func newStyleSet(sys *System, id element.ID) *StyleSet {
	return &StyleSet{
		sys:             sys,
		id:              id,
		currentState:    StateNormal,
		containedStates: StateNormal,
		props:           NewPropertyMap(),
	}
}

// Element returns the element this set belongs to.
func (s *StyleSet) Element() element.ID {
	return s.id
}

func (s *StyleSet) alive() bool {
	return s.sys.arena.IsAlive(s.id) && s.sys.lookup(s.id) == s
}

// Initialize rebuilds the entry list from the instance group and the attached
// containers, pulls inherited values from the parent and resolves every
// touched property.
func (s *StyleSet) Initialize() {
	if !s.alive() {
		return
	}
	s.sys.arena.AssertWritable("style.Initialize")

	var touched propertySet
	touched.addAll(s.props.LocalIDs())
	parent := s.sys.parentSet(s.id)
	if parent != nil {
		touched.addAll(inheritedProperties)
	}

	s.rebuildEntries(&touched)
	s.initialized = true
	s.recompute(&touched, parent)
}

func (s *StyleSet) rebuildEntries(touched *propertySet) {
	s.entries = s.entries[:0]
	s.containedStates = StateNormal
	s.hasAttributeStyles = false

	if s.instance != nil {
		for _, st := range States {
			s.createEntry(touched, s.instance, nil, SourceInstance, st, 0, 0)
		}
	}
	for i, c := range s.containers {
		s.createContainerEntries(i, c, touched)
	}
	s.sortEntries()
}

func (s *StyleSet) createContainerEntries(index int, c *Container, touched *propertySet) {
	for gi, g := range c.Groups {
		if g.HasAttributeRule() {
			s.hasAttributeStyles = true
		}
		if g.Rule == nil || g.Rule.IsApplicableTo(s.id, s.sys.attrs) {
			s.createGroupEntries(index, c, gi, g, touched)
		}
	}
}

func (s *StyleSet) createGroupEntries(containerIndex int, c *Container, groupIndex int, g *Group, touched *propertySet) {
	for _, st := range States {
		s.createEntry(touched, g, c, c.Type, st, containerIndex+1, groupIndex)
	}
}

func (s *StyleSet) createEntry(touched *propertySet, g *Group, c *Container, t SourceType, state State, containerPos, groupIndex int) {
	ss := g.InState(state)
	if ss == nil || (ss.Style == nil && len(ss.Commands) == 0) {
		return
	}
	s.containedStates |= state
	if s.currentState&state != 0 {
		touched.addStyle(ss.Style)
		s.runCommands(ss.Commands, PhaseEnter)
	}
	rules := g.ruleCount()
	s.entries = append(s.entries, entry{
		group:      g,
		container:  c,
		source:     ss,
		sourceType: t,
		state:      state,
		ruleCount:  rules,
		groupIndex: groupIndex,
		priority:   packPriority(t, rules, state, containerPos, groupIndex),
	})
}

func (s *StyleSet) sortEntries() {
	slices.SortStableFunc(s.entries, byPriority)
}

// reprioritize recomputes container positions after a container was removed.
func (s *StyleSet) reprioritize() {
	for i := range s.entries {
		e := &s.entries[i]
		if e.container == nil {
			continue
		}
		pos := slices.Index(s.containers, e.container) + 1
		e.priority = packPriority(e.sourceType, e.ruleCount, e.state, pos, e.groupIndex)
	}
	s.sortEntries()
}

func (s *StyleSet) refreshContainedStates() {
	s.containedStates = StateNormal
	for i := range s.entries {
		s.containedStates |= s.entries[i].state
	}
	s.hasAttributeStyles = false
	for _, c := range s.containers {
		if c.HasAttributeRules() {
			s.hasAttributeStyles = true
			break
		}
	}
}

func (s *StyleSet) hasGroupEntries(c *Container, g *Group) bool {
	for i := range s.entries {
		if s.entries[i].group == g && s.entries[i].container == c {
			return true
		}
	}
	return false
}

// resolve returns the value of the highest priority entry active in state
// that defines id.
func (s *StyleSet) resolve(id PropertyID, state State) (Property, bool) {
	for i := range s.entries {
		e := &s.entries[i]
		if e.state&state == 0 {
			continue
		}
		if p, ok := e.style().Get(id); ok {
			return p, true
		}
	}
	return Property{}, false
}

// recompute resolves every id in touched, updates the map and notifies the
// consumer of effective-value changes. When parent is non-nil the inherited
// slots of inheritable ids are refreshed from it in the same pass.
func (s *StyleSet) recompute(touched *propertySet, parent *StyleSet) {
	for id := range touched.all() {
		before := s.props.Computed(id)
		hadLocal := s.props.Contains(id)

		if parent != nil && IsInherited(id) {
			s.props.SetInherited(parent.props.Computed(id))
		}
		p, local := s.resolve(id, s.currentState)
		if local {
			s.props.Set(p)
		} else {
			s.props.Remove(id)
		}

		after := s.props.Computed(id)
		if after.Value == before.Value {
			continue
		}
		if local || !hadLocal {
			s.sys.consumer.SetStyleProperty(s.id, after)
		} else {
			s.sys.consumer.UnsetStyleProperty(s.id, after)
		}
		if IsInherited(id) {
			s.sys.propagate(s.id, after)
		}
	}
}

// pushInherited receives a value propagated from the parent.
func (s *StyleSet) pushInherited(p Property) {
	if cur, ok := s.props.Inherited(p.ID); ok && cur.Value == p.Value {
		return
	}
	if s.props.Contains(p.ID) {
		// the local value still wins; keep the slot current for a later removal
		s.props.SetInherited(p)
		return
	}
	before := s.props.Computed(p.ID)
	s.props.SetInherited(p)
	if before.Value == p.Value {
		return
	}
	s.sys.consumer.SetStyleProperty(s.id, p)
	s.sys.propagate(s.id, p)
}

// UpdateSharedStyles replaces the attached containers with updated.
//
// When updated extends the current list the new containers are appended
// incrementally. Any other difference rebuilds every entry.
func (s *StyleSet) UpdateSharedStyles(updated []*Container) {
	if !s.alive() {
		return
	}
	s.sys.arena.AssertWritable("style.UpdateSharedStyles")
	if !s.initialized {
		s.containers = append(s.containers[:0], updated...)
		return
	}

	n := len(s.containers)
	switch {
	case len(updated) > n:
		if !slices.Equal(s.containers, updated[:n]) {
			s.resetSharedStyles(updated)
			return
		}
		s.appendSharedStyles(updated[n:])
	case len(updated) < n:
		s.resetSharedStyles(updated)
	default:
		if !slices.Equal(s.containers, updated) {
			s.resetSharedStyles(updated)
		}
	}
}

func (s *StyleSet) appendSharedStyles(added []*Container) {
	var touched propertySet
	for _, c := range added {
		s.containers = append(s.containers, c)
		s.createContainerEntries(len(s.containers)-1, c, &touched)
	}
	s.sortEntries()
	s.recompute(&touched, nil)
}

func (s *StyleSet) resetSharedStyles(updated []*Container) {
	for i := range s.entries {
		e := &s.entries[i]
		if e.container == nil || e.state&s.currentState == 0 || slices.Contains(updated, e.container) {
			continue
		}
		s.runCommands(e.source.Commands, PhaseExit)
	}

	// Every previously resolved property is revisited, which leaves the map
	// in the same state as clearing its local values and rebuilding while
	// still notifying only real changes.
	var touched propertySet
	touched.addAll(s.props.LocalIDs())
	s.containers = append(s.containers[:0], updated...)
	s.rebuildEntries(&touched)
	s.recompute(&touched, nil)
}

// SetBaseStyles drops nil containers and applies the rest with UpdateSharedStyles.
func (s *StyleSet) SetBaseStyles(containers []*Container) {
	filtered := make([]*Container, 0, len(containers))
	for _, c := range containers {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	s.UpdateSharedStyles(filtered)
}

// AddContainer appends c unless it is already attached.
func (s *StyleSet) AddContainer(c *Container) {
	if c == nil || !s.alive() || slices.Contains(s.containers, c) {
		return
	}
	s.sys.arena.AssertWritable("style.AddContainer")
	if !s.initialized {
		s.containers = append(s.containers, c)
		return
	}
	s.appendSharedStyles([]*Container{c})
}

// RemoveContainer detaches c, running exit commands of its active entries.
func (s *StyleSet) RemoveContainer(c *Container) {
	if !s.alive() {
		return
	}
	idx := slices.Index(s.containers, c)
	if idx < 0 {
		return
	}
	s.sys.arena.AssertWritable("style.RemoveContainer")
	s.containers = slices.Delete(s.containers, idx, idx+1)
	if !s.initialized {
		return
	}

	var touched propertySet
	s.entries = slices.DeleteFunc(s.entries, func(e entry) bool {
		if e.container != c {
			return false
		}
		if e.state&s.currentState != 0 {
			touched.addStyle(e.style())
			s.runCommands(e.source.Commands, PhaseExit)
		}
		return true
	})
	s.reprioritize()
	s.refreshContainedStates()
	s.recompute(&touched, nil)
}

// EnterState adds state to the current state and resolves the properties of
// entries that become active.
func (s *StyleSet) EnterState(state State) {
	state &= allStates
	if state == 0 || state == StateNormal || !s.alive() || s.currentState&state == state {
		return
	}
	s.sys.arena.AssertWritable("style.EnterState")

	old := s.currentState
	s.currentState |= state
	entering := state &^ old
	if !s.initialized || s.containedStates&entering == 0 {
		return
	}

	var touched propertySet
	for i := range s.entries {
		e := &s.entries[i]
		if e.state&old == 0 && e.state&entering != 0 {
			touched.addStyle(e.style())
			s.runCommands(e.source.Commands, PhaseEnter)
		}
	}
	s.recompute(&touched, nil)
}

// ExitState removes state from the current state and resolves the properties
// of entries that become inactive. Normal cannot be exited.
func (s *StyleSet) ExitState(state State) {
	state &= allStates &^ StateNormal
	if state == 0 || !s.alive() || s.currentState&state == 0 {
		return
	}
	s.sys.arena.AssertWritable("style.ExitState")

	old := s.currentState
	leaving := state & old
	s.currentState = (old &^ leaving) | StateNormal
	if !s.initialized || s.containedStates&leaving == 0 {
		return
	}

	var touched propertySet
	for i := range s.entries {
		e := &s.entries[i]
		if e.state&old != 0 && e.state&leaving != 0 {
			touched.addStyle(e.style())
			s.runCommands(e.source.Commands, PhaseExit)
		}
	}
	s.recompute(&touched, nil)
}

// UpdateApplicableAttributeRules re-evaluates attribute-gated groups after an
// attribute change. Groups that stopped applying lose their entries; groups
// that started applying gain entries for every state.
func (s *StyleSet) UpdateApplicableAttributeRules() {
	if !s.initialized || !s.hasAttributeStyles || !s.alive() {
		return
	}
	s.sys.arena.AssertWritable("style.UpdateApplicableAttributeRules")

	var touched propertySet
	for ci, c := range s.containers {
		for gi, g := range c.Groups {
			if !g.HasAttributeRule() {
				continue
			}
			if g.Rule.IsApplicableTo(s.id, s.sys.attrs) {
				if !s.hasGroupEntries(c, g) {
					s.createGroupEntries(ci, c, gi, g, &touched)
				}
				continue
			}
			s.entries = slices.DeleteFunc(s.entries, func(e entry) bool {
				if e.group != g || e.container != c {
					return false
				}
				if e.state&s.currentState != 0 {
					touched.addStyle(e.style())
					s.runCommands(e.source.Commands, PhaseExit)
				}
				return true
			})
		}
	}
	s.sortEntries()
	s.refreshContainedStates()
	s.recompute(&touched, nil)
}

func (s *StyleSet) instanceStyle(state State) *Style {
	if s.instance == nil {
		s.instance = &Group{Name: "Instance"}
	}
	ss := s.instance.InState(state)
	if ss != nil && ss.Style != nil {
		return ss.Style
	}
	if ss == nil {
		ss = &StateStyle{}
		s.instance.setInState(state, ss)
	}
	ss.Style = NewStyle()
	s.entries = append(s.entries, entry{
		group:      s.instance,
		source:     ss,
		sourceType: SourceInstance,
		state:      state,
		priority:   packPriority(SourceInstance, 0, state, 0, 0),
	})
	s.containedStates |= state
	s.sortEntries()
	return ss.Style
}

// SetProperty writes p to the instance style of a single state. An unset
// value removes the property from that state.
//
// Writes to an inactive state are stored without resolution.
func (s *StyleSet) SetProperty(p Property, state State) error {
	const op = "style.SetProperty"
	if !state.IsSingle() {
		return s.argumentError(op, "state", state, "must be exactly one of Normal, Hover, Focused, Active")
	}
	if !p.ID.Valid() {
		return s.argumentError(op, "property", p.ID, "unknown property id")
	}
	if !p.Value.IsUnset() && p.Value.Kind() != p.ID.Kind() {
		return s.argumentError(op, "value", p.Value.Kind(), "want "+p.ID.Kind().String()+" for "+p.ID.String())
	}
	if !s.alive() {
		return nil
	}
	s.sys.arena.AssertWritable(op)

	st := s.instanceStyle(state)
	st.Set(p)
	if !s.initialized || s.currentState&state == 0 {
		return nil
	}

	var touched propertySet
	touched.add(p.ID)
	s.recompute(&touched, nil)
	return nil
}

func (s *StyleSet) argumentError(op, param string, value any, reason string) error {
	err := &errors.ArgumentError{Op: op, Param: param, Value: value, Reason: reason}
	errors.Report(&errors.UITreeError{
		Op:      op,
		Kind:    errors.KindArgument,
		Err:     err,
		Element: s.id.String(),
	})
	return err
}

// RunCommands runs the enter commands of every entry active in the current state.
func (s *StyleSet) RunCommands() {
	if !s.alive() {
		return
	}
	for i := range s.entries {
		if s.entries[i].state&s.currentState != 0 {
			s.runCommands(s.entries[i].source.Commands, PhaseEnter)
		}
	}
}

func (s *StyleSet) runCommands(cmds []RunCommand, phase Phase) {
	for _, c := range cmds {
		if c.Phase&phase != 0 && c.Action != nil {
			c.Action(s.id, phase)
		}
	}
}

// PropertyValue resolves id against the entries active in the current state.
// It returns the default and false when no entry defines id.
func (s *StyleSet) PropertyValue(id PropertyID) (Property, bool) {
	return s.PropertyValueInState(id, s.currentState)
}

// PropertyValueInState resolves id as if state were current.
func (s *StyleSet) PropertyValueInState(id PropertyID, state State) (Property, bool) {
	if p, ok := s.resolve(id, state); ok {
		return p, true
	}
	return Default(id), false
}

// Computed returns the effective value of id: local, else inherited, else default.
func (s *StyleSet) Computed(id PropertyID) Property {
	return s.props.Computed(id)
}

// IsDefined reports whether a local source resolves id.
func (s *StyleSet) IsDefined(id PropertyID) bool {
	return s.props.Contains(id)
}

// Properties iterates the locally resolved values in id order.
func (s *StyleSet) Properties() iter.Seq[Property] {
	return s.props.Each()
}

// PropertyMap exposes the resolved values for read-only consumers.
func (s *StyleSet) PropertyMap() *PropertyMap {
	return s.props
}

// Initialized reports whether Initialize has run.
func (s *StyleSet) Initialized() bool { return s.initialized }

// CurrentState returns the active states, always including Normal.
func (s *StyleSet) CurrentState() State { return s.currentState }

// IsInState reports whether any bit of state is active.
func (s *StyleSet) IsInState(state State) bool { return s.currentState&state != 0 }

func (s *StyleSet) IsHovered() bool { return s.IsInState(StateHover) }
func (s *StyleSet) IsFocused() bool { return s.IsInState(StateFocused) }
func (s *StyleSet) IsActive() bool  { return s.IsInState(StateActive) }

// HasBaseStyles reports whether any container is attached.
func (s *StyleSet) HasBaseStyles() bool { return len(s.containers) > 0 }

// Containers returns a copy of the attached containers in order.
func (s *StyleSet) Containers() []*Container {
	return slices.Clone(s.containers)
}

// StyleNames returns the names of the attached shared containers separated by spaces.
func (s *StyleSet) StyleNames() string {
	var b strings.Builder
	for _, c := range s.containers {
		if c.Type != SourceShared {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Name)
	}
	return b.String()
}

// InstanceStyle returns the instance style of a single state, or nil.
func (s *StyleSet) InstanceStyle(state State) *Style {
	if s.instance == nil {
		return nil
	}
	if ss := s.instance.InState(state); ss != nil {
		return ss.Style
	}
	return nil
}
