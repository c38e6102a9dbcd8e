package style

import (
	"cmp"
	"slices"
)

// Style is a group of property values ordered by property id.
type Style struct {
	props []Property
}

// NewStyle returns a style holding props. Later duplicates replace earlier ones.
func NewStyle(props ...Property) *Style {
	s := &Style{props: make([]Property, 0, len(props))}
	for _, p := range props {
		s.Set(p)
	}
	return s
}

func (s *Style) search(id PropertyID) (int, bool) {
	return slices.BinarySearchFunc(s.props, id, func(p Property, id PropertyID) int {
		return cmp.Compare(p.ID, id)
	})
}

// Get returns the value s defines for id.
func (s *Style) Get(id PropertyID) (Property, bool) {
	if s == nil {
		return Property{}, false
	}
	i, ok := s.search(id)
	if !ok {
		return Property{}, false
	}
	return s.props[i], true
}

// Defines reports whether s has a value for id.
func (s *Style) Defines(id PropertyID) bool {
	if s == nil {
		return false
	}
	_, ok := s.search(id)
	return ok
}

// Set stores p. An unset value removes the property instead.
func (s *Style) Set(p Property) {
	if p.Value.IsUnset() {
		s.Remove(p.ID)
		return
	}
	i, ok := s.search(p.ID)
	if ok {
		s.props[i] = p
		return
	}
	s.props = slices.Insert(s.props, i, p)
}

// Remove deletes id and reports whether it was present.
func (s *Style) Remove(id PropertyID) bool {
	i, ok := s.search(id)
	if ok {
		s.props = slices.Delete(s.props, i, i+1)
	}
	return ok
}

// Properties returns the values in id order. The slice must not be modified.
func (s *Style) Properties() []Property {
	if s == nil {
		return nil
	}
	return s.props
}

// Len returns the number of properties.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}
