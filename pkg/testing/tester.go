package testing

import (
	"testing"

	"github.com/go-drift/uitree/pkg/app"
	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/errors"
	"github.com/go-drift/uitree/pkg/style"
)

// DefaultCapacity is the initial arena capacity used by NewTester.
const DefaultCapacity = 16

// TestingT is the subset of *testing.T used by the tester and snapshots,
// allowing test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Tester owns an application wired to a RecordingConsumer. Index reuse is
// immediate so tests can exercise stale handles deterministically.
type Tester struct {
	app       *app.Application
	consumer  *RecordingConsumer
	prevDebug bool
	t         TestingT
}

// NewTester creates a tester with debug assertions enabled. Call Cleanup
// when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	consumer := &RecordingConsumer{}
	tester := &Tester{
		app: app.New(app.Config{
			Arena: element.Config{InitialCapacity: DefaultCapacity, ReuseThreshold: -1},
		}, consumer),
		consumer:  consumer,
		prevDebug: errors.DebugMode,
	}
	errors.SetDebugMode(true)
	return tester
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup and reports
// expectation failures to t.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	tester.t = t
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the global debug mode.
func (t *Tester) Cleanup() {
	errors.SetDebugMode(t.prevDebug)
}

// App returns the application under test.
func (t *Tester) App() *app.Application { return t.app }

// Arena returns the element arena.
func (t *Tester) Arena() *element.Arena { return t.app.Arena() }

// Consumer returns the recording consumer.
func (t *Tester) Consumer() *RecordingConsumer { return t.consumer }

// StyleSet returns the style set of id, or nil.
func (t *Tester) StyleSet(id element.ID) *style.StyleSet { return t.app.StyleSet(id) }

// Element creates an element under parent with the given containers and
// initializes its style set.
func (t *Tester) Element(parent element.ID, containers ...*style.Container) element.ID {
	id := t.Deferred(parent, containers...)
	t.app.StyleSet(id).Initialize()
	return id
}

// Deferred creates an element under parent with the given containers but
// leaves its style set uninitialized.
func (t *Tester) Deferred(parent element.ID, containers ...*style.Container) element.ID {
	id := t.app.CreateElement(parent, nil)
	t.app.StyleSet(id).SetBaseStyles(containers)
	return id
}

// Hover moves hover to id.
func (t *Tester) Hover(id element.ID) { t.app.Hover(id) }

// Focus moves focus to id.
func (t *Tester) Focus(id element.ID) { t.app.Focus(id) }

// Computed returns the effective value of prop on id.
func (t *Tester) Computed(id element.ID, prop style.PropertyID) style.Value {
	s := t.app.StyleSet(id)
	if s == nil {
		return style.Default(prop).Value
	}
	return s.Computed(prop).Value
}

// ExpectProperty reports an error when the effective value of prop on id
// differs from want.
func (t *Tester) ExpectProperty(id element.ID, prop style.PropertyID, want style.Value) bool {
	if got := t.Computed(id, prop); got != want {
		if t.t != nil {
			t.t.Helper()
			t.t.Errorf("%s on %s = %s, want %s", prop, id, got, want)
		}
		return false
	}
	return true
}

// ExpectValidTree reports an error when the hierarchy under root is corrupt.
func (t *Tester) ExpectValidTree(root element.ID) bool {
	if err := t.app.Arena().ValidateTree(root); err != nil {
		if t.t != nil {
			t.t.Helper()
			t.t.Errorf("hierarchy under %s: %v", root, err)
		}
		return false
	}
	return true
}
