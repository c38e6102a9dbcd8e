package style

// PropertySource describes where the current value of id comes from:
// "Instance [Hover]", "<container> [Normal]", "Inherited" or "Default".
// It walks the entry list and is meant for tooling only.
func (s *StyleSet) PropertySource(id PropertyID) string {
	for i := range s.entries {
		e := &s.entries[i]
		if e.state&s.currentState == 0 || !e.style().Defines(id) {
			continue
		}
		if e.sourceType == SourceInstance && e.container == nil {
			return "Instance [" + e.state.String() + "]"
		}
		name := "Unknown"
		if e.container != nil {
			name = e.container.Name
		}
		return name + " [" + e.state.String() + "]"
	}
	if IsInherited(id) {
		if p, ok := s.props.Inherited(id); ok && p.Value != Default(id).Value {
			return "Inherited"
		}
	}
	return "Default"
}

// Snapshot is a read-only view of a style set for tooling.
type Snapshot struct {
	State      State
	Containers []string
	Entries    []EntrySnapshot
	Properties []Property
}

// EntrySnapshot describes one entry in priority order.
type EntrySnapshot struct {
	Source   string
	Group    string
	State    State
	Priority uint64
	Active   bool
	// Defines lists the properties the entry's style sets, in id order.
	Defines []PropertyID
}

// Snapshot captures the entry list and resolved properties.
func (s *StyleSet) Snapshot() Snapshot {
	snap := Snapshot{State: s.currentState}
	for _, c := range s.containers {
		snap.Containers = append(snap.Containers, c.Name)
	}
	for i := range s.entries {
		e := &s.entries[i]
		src := SourceInstance.String()
		if e.container != nil {
			src = e.container.Name
		}
		snap.Entries = append(snap.Entries, EntrySnapshot{
			Source:   src,
			Group:    e.group.Name,
			State:    e.state,
			Priority: e.priority,
			Active:   e.state&s.currentState != 0,
			Defines:  definedIDs(e.style()),
		})
	}
	for p := range s.props.Each() {
		snap.Properties = append(snap.Properties, p)
	}
	return snap
}

func definedIDs(st *Style) []PropertyID {
	props := st.Properties()
	ids := make([]PropertyID, len(props))
	for i, p := range props {
		ids[i] = p.ID
	}
	return ids
}
