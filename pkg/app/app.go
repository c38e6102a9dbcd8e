// Package app ties an element arena and a style system into one
// application context. Everything that would otherwise be process-wide
// state, such as the focused element, lives on an Application.
package app

import (
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/style"
)

// Config controls application construction.
type Config struct {
	Arena element.Config
	// Logger receives structured debug output. Nil discards it.
	Logger *slog.Logger
	// ReadWorkers is the default parallelism of ReadParallel.
	// Zero means GOMAXPROCS.
	ReadWorkers int
}

// Application is one UI tree with its own arena, styles and interaction state.
type Application struct {
	id     uuid.UUID
	arena  *element.Arena
	styles *style.System
	attrs  *Attributes
	log    *slog.Logger

	workers int
	writeMu sync.Mutex

	focused element.ID
	hovered element.ID
	active  map[element.ID]struct{}
}

// New creates an application. consumer receives style change notifications
// and may be nil.
func New(cfg Config, consumer style.Consumer) *Application {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	workers := cfg.ReadWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	a := &Application{
		id:      uuid.New(),
		arena:   element.NewArena(cfg.Arena),
		attrs:   newAttributes(),
		workers: workers,
		active:  make(map[element.ID]struct{}),
	}
	a.log = logger.With("app", a.id.String())
	a.styles = style.NewSystem(a.arena, consumer, a.attrs)
	a.log.Debug("application created",
		"capacity", a.arena.Capacity(),
		"reuse_threshold", a.arena.ReuseThreshold(),
		"read_workers", workers,
	)
	return a
}

// ID returns the application's unique identifier.
func (a *Application) ID() uuid.UUID { return a.id }

// Arena returns the element arena.
func (a *Application) Arena() *element.Arena { return a.arena }

// Styles returns the style system.
func (a *Application) Styles() *style.System { return a.styles }

// Attributes returns the attribute store.
func (a *Application) Attributes() *Attributes { return a.attrs }

// Logger returns the application logger.
func (a *Application) Logger() *slog.Logger { return a.log }

// CreateElement creates an enabled element under parent (Null for a root)
// and attaches an empty style set to it. Call StyleSet(id).Initialize once
// its containers and instance styles are in place.
func (a *Application) CreateElement(parent element.ID, owner any) element.ID {
	depth := 0
	if !parent.IsNull() {
		depth = a.arena.Traversal(parent).Depth + 1
	}
	flags := element.FlagEnabled
	if !parent.IsNull() && !a.arena.IsEnabled(parent) {
		flags = 0
	}
	id := a.arena.CreateElement(owner, depth, flags)
	if !parent.IsNull() {
		a.arena.AddChild(parent, id)
	}
	a.styles.Attach(id)
	a.log.Debug("element created", "id", id.String(), "parent", parent.String(), "depth", depth)
	return id
}

// StyleSet returns the style set of a live element, or nil.
func (a *Application) StyleSet(id element.ID) *style.StyleSet {
	s, _ := a.styles.StyleSet(id)
	return s
}

// DestroyElement destroys id and its whole subtree. Style state and
// attributes are discarded and interaction state pointing into the subtree is
// cleared. Dead handles are ignored.
func (a *Application) DestroyElement(id element.ID) {
	if !a.arena.IsAlive(id) {
		return
	}
	children := make([]element.ID, 0, a.arena.ChildCount(id))
	for child := range a.arena.Children(id) {
		children = append(children, child)
	}
	for _, child := range children {
		a.DestroyElement(child)
	}

	if a.focused == id {
		a.focused = element.Null
	}
	if a.hovered == id {
		a.hovered = element.Null
	}
	delete(a.active, id)
	a.styles.Discard(id)
	a.attrs.drop(id)
	a.arena.DestroyElement(id, true)
	a.log.Debug("element destroyed", "id", id.String())
}

// SetAttribute sets an attribute and re-evaluates the element's attribute rules.
func (a *Application) SetAttribute(id element.ID, name, value string) {
	if !a.arena.IsAlive(id) || !a.attrs.set(id, name, value) {
		return
	}
	a.refreshRules(id)
}

// RemoveAttribute removes an attribute and re-evaluates the element's attribute rules.
func (a *Application) RemoveAttribute(id element.ID, name string) {
	if !a.arena.IsAlive(id) || !a.attrs.remove(id, name) {
		return
	}
	a.refreshRules(id)
}

// Attribute returns an attribute value.
func (a *Application) Attribute(id element.ID, name string) (string, bool) {
	return a.attrs.Attribute(id, name)
}

func (a *Application) refreshRules(id element.ID) {
	if s := a.StyleSet(id); s != nil {
		s.UpdateApplicableAttributeRules()
	}
}

// Enable enables id's subtree and refreshes the inherited values that
// propagation skipped while it was disabled.
func (a *Application) Enable(id element.ID) {
	if !a.arena.IsAlive(id) {
		return
	}
	a.arena.Enable(id)
	a.styles.RefreshInherited(id)
}

// Disable disables id's subtree.
func (a *Application) Disable(id element.ID) {
	if !a.arena.IsAlive(id) {
		return
	}
	a.arena.Disable(id)
}
