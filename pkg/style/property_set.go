package style

import (
	"iter"
	"math/bits"
)

const propertySetWords = (propertyCount + 63) / 64

// propertySet collects the ids touched by one structural change.
type propertySet struct {
	words [propertySetWords]uint64
}

func (s *propertySet) add(id PropertyID) {
	s.words[id/64] |= 1 << (id % 64)
}

func (s *propertySet) addStyle(st *Style) {
	if st == nil {
		return
	}
	for _, p := range st.props {
		s.add(p.ID)
	}
}

func (s *propertySet) addAll(ids []PropertyID) {
	for _, id := range ids {
		s.add(id)
	}
}

func (s *propertySet) empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// all iterates members in ascending order.
func (s *propertySet) all() iter.Seq[PropertyID] {
	return func(yield func(PropertyID) bool) {
		for i, w := range s.words {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				w &= w - 1
				if !yield(PropertyID(i*64 + b)) {
					return
				}
			}
		}
	}
}
