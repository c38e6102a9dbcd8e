package style

import (
	"iter"
	"slices"
)

// inheritedSlot marks a key holding a value pushed down from an ancestor.
const inheritedSlot = 1 << 16

func localKey(id PropertyID) uint32     { return uint32(id) }
func inheritedKey(id PropertyID) uint32 { return uint32(id) | inheritedSlot }

// PropertyMap holds the resolved values of one element. Each property has a
// local slot, written by cascade resolution, and an inherited slot, written
// by propagation from the parent.
type PropertyMap struct {
	values map[uint32]Value
}

// NewPropertyMap returns an empty map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{values: make(map[uint32]Value)}
}

// Get returns the locally resolved value of id.
func (m *PropertyMap) Get(id PropertyID) (Property, bool) {
	v, ok := m.values[localKey(id)]
	return Property{ID: id, Value: v}, ok
}

// Contains reports whether id has a locally resolved value.
func (m *PropertyMap) Contains(id PropertyID) bool {
	_, ok := m.values[localKey(id)]
	return ok
}

// Set stores a locally resolved value.
func (m *PropertyMap) Set(p Property) {
	m.values[localKey(p.ID)] = p.Value
}

// Remove deletes the local value of id and reports whether one existed.
func (m *PropertyMap) Remove(id PropertyID) bool {
	k := localKey(id)
	_, ok := m.values[k]
	delete(m.values, k)
	return ok
}

// Inherited returns the value pushed to this element for id.
func (m *PropertyMap) Inherited(id PropertyID) (Property, bool) {
	v, ok := m.values[inheritedKey(id)]
	return Property{ID: id, Value: v}, ok
}

// SetInherited stores an inherited value.
func (m *PropertyMap) SetInherited(p Property) {
	m.values[inheritedKey(p.ID)] = p.Value
}

// RemoveInherited deletes the inherited value of id.
func (m *PropertyMap) RemoveInherited(id PropertyID) {
	delete(m.values, inheritedKey(id))
}

// ClearKeepInherited drops every local value and keeps inherited slots.
func (m *PropertyMap) ClearKeepInherited() {
	for k := range m.values {
		if k&inheritedSlot == 0 {
			delete(m.values, k)
		}
	}
}

// Clear drops every value.
func (m *PropertyMap) Clear() {
	clear(m.values)
}

// Fallback returns the inherited value of an inheritable id, else its default.
func (m *PropertyMap) Fallback(id PropertyID) Property {
	if IsInherited(id) {
		if p, ok := m.Inherited(id); ok {
			return p
		}
	}
	return Default(id)
}

// Computed returns the local value of id, else its fallback.
func (m *PropertyMap) Computed(id PropertyID) Property {
	if p, ok := m.Get(id); ok {
		return p
	}
	return m.Fallback(id)
}

// Len returns the number of local values.
func (m *PropertyMap) Len() int {
	n := 0
	for k := range m.values {
		if k&inheritedSlot == 0 {
			n++
		}
	}
	return n
}

// LocalIDs returns the ids with a local value in ascending order.
func (m *PropertyMap) LocalIDs() []PropertyID {
	ids := make([]PropertyID, 0, len(m.values))
	for k := range m.values {
		if k&inheritedSlot == 0 {
			ids = append(ids, PropertyID(k))
		}
	}
	slices.Sort(ids)
	return ids
}

// Each iterates local values in ascending id order.
func (m *PropertyMap) Each() iter.Seq[Property] {
	return func(yield func(Property) bool) {
		for _, id := range m.LocalIDs() {
			if !yield(Property{ID: id, Value: m.values[localKey(id)]}) {
				return
			}
		}
	}
}
