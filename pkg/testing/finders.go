package testing

import (
	"fmt"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/style"
)

// Finder locates elements in a tree.
type Finder interface {
	// Matches reports whether id satisfies the finder.
	Matches(t *Tester, id element.ID) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []element.ID
	finder   Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() element.ID {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.describe()))
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) element.ID {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.describe()))
	}
	return r.elements[index]
}

// All returns all matches in pre-order.
func (r FinderResult) All() []element.ID { return r.elements }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.elements) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.elements) > 0 }

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// Find evaluates f over root's subtree in depth-first pre-order.
func (t *Tester) Find(root element.ID, f Finder) FinderResult {
	var out []element.ID
	var walk func(id element.ID)
	walk = func(id element.ID) {
		if f.Matches(t, id) {
			out = append(out, id)
		}
		for child := range t.Arena().Children(id) {
			walk(child)
		}
	}
	if t.Arena().IsAlive(root) {
		walk(root)
	}
	return FinderResult{elements: out, finder: f}
}

type attributeFinder struct {
	name, value string
	anyValue    bool
}

func (f *attributeFinder) Matches(t *Tester, id element.ID) bool {
	v, ok := t.app.Attribute(id, f.name)
	return ok && (f.anyValue || v == f.value)
}

func (f *attributeFinder) Description() string {
	if f.anyValue {
		return fmt.Sprintf("ByAttribute(%q)", f.name)
	}
	return fmt.Sprintf("ByAttribute(%q=%q)", f.name, f.value)
}

// ByAttribute matches elements carrying the attribute name, with any value.
func ByAttribute(name string) Finder {
	return &attributeFinder{name: name, anyValue: true}
}

// ByAttributeValue matches elements whose attribute name equals value.
func ByAttributeValue(name, value string) Finder {
	return &attributeFinder{name: name, value: value}
}

type ownerFinder struct{ owner any }

func (f *ownerFinder) Matches(t *Tester, id element.ID) bool {
	return t.Arena().Owner(id) == f.owner
}

func (f *ownerFinder) Description() string { return fmt.Sprintf("ByOwner(%v)", f.owner) }

// ByOwner matches elements whose owner equals owner.
func ByOwner(owner any) Finder { return &ownerFinder{owner: owner} }

type stateFinder struct{ state style.State }

func (f *stateFinder) Matches(t *Tester, id element.ID) bool {
	s := t.StyleSet(id)
	return s != nil && s.IsInState(f.state)
}

func (f *stateFinder) Description() string { return fmt.Sprintf("ByState(%s)", f.state) }

// ByState matches elements currently in state.
func ByState(state style.State) Finder { return &stateFinder{state: state} }

type predicateFinder struct {
	fn   func(*Tester, element.ID) bool
	desc string
}

func (f *predicateFinder) Matches(t *Tester, id element.ID) bool { return f.fn(t, id) }
func (f *predicateFinder) Description() string                   { return f.desc }

// ByPredicate matches elements satisfying fn.
func ByPredicate(desc string, fn func(*Tester, element.ID) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}
