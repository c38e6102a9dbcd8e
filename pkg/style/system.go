package style

import (
	"github.com/go-drift/uitree/pkg/element"
)

// System owns the style sets of every element of one arena.
type System struct {
	arena    *element.Arena
	consumer Consumer
	attrs    AttributeReader
	sets     []*StyleSet
}

// NewSystem returns a style system for arena. A nil consumer discards
// notifications; a nil attrs makes every attribute lookup fail.
func NewSystem(arena *element.Arena, consumer Consumer, attrs AttributeReader) *System {
	if consumer == nil {
		consumer = NopConsumer{}
	}
	return &System{arena: arena, consumer: consumer, attrs: attrs}
}

// Arena returns the arena the system resolves styles for.
func (sys *System) Arena() *element.Arena {
	return sys.arena
}

// Attach creates a fresh style set for a live element, replacing whatever a
// previous occupant of the slot left behind. It returns nil for dead handles.
func (sys *System) Attach(id element.ID) *StyleSet {
	if !sys.arena.IsAlive(id) {
		return nil
	}
	sys.arena.AssertWritable("style.Attach")
	for int(id.Index) >= len(sys.sets) {
		sys.sets = append(sys.sets, make([]*StyleSet, max(len(sys.sets), 16))...)
	}
	s := newStyleSet(sys, id)
	sys.sets[id.Index] = s
	return s
}

func (sys *System) lookup(id element.ID) *StyleSet {
	if int(id.Index) >= len(sys.sets) {
		return nil
	}
	return sys.sets[id.Index]
}

// StyleSet returns the style set of a live element.
func (sys *System) StyleSet(id element.ID) (*StyleSet, bool) {
	s := sys.lookup(id)
	if s == nil || s.id != id || !sys.arena.IsAlive(id) {
		return nil, false
	}
	return s, true
}

// Discard drops the style set of id. It may be called before or after the
// element is destroyed.
func (sys *System) Discard(id element.ID) {
	if s := sys.lookup(id); s != nil && s.id == id {
		sys.sets[id.Index] = nil
	}
}

// Reset drops every style set.
func (sys *System) Reset() {
	clear(sys.sets)
}

// RefreshInherited pulls inherited values from the parent into id and each of
// its descendants. Call it after a subtree is enabled or reparented, since
// propagation skips disabled elements.
func (sys *System) RefreshInherited(id element.ID) {
	s, ok := sys.StyleSet(id)
	if !ok {
		return
	}
	sys.arena.AssertWritable("style.RefreshInherited")
	if s.initialized && sys.arena.IsEnabled(id) {
		if parent := sys.parentSet(id); parent != nil {
			var touched propertySet
			touched.addAll(inheritedProperties)
			s.recompute(&touched, parent)
		}
	}
	for child := range sys.arena.Children(id) {
		sys.RefreshInherited(child)
	}
}

func (sys *System) parentSet(id element.ID) *StyleSet {
	parent := sys.arena.Parent(id)
	if parent.IsNull() {
		return nil
	}
	s, ok := sys.StyleSet(parent)
	if !ok || !s.initialized {
		return nil
	}
	return s
}

// propagate pushes an inheritable value from id to its enabled, initialized children.
func (sys *System) propagate(id element.ID, p Property) {
	for child := range sys.arena.Children(id) {
		if !sys.arena.IsEnabled(child) {
			continue
		}
		s, ok := sys.StyleSet(child)
		if !ok || !s.initialized {
			continue
		}
		s.pushInherited(p)
	}
}
