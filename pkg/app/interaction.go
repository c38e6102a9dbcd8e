package app

import (
	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/style"
)

// Focused returns the focused element, or Null.
func (a *Application) Focused() element.ID { return a.focused }

// Hovered returns the hovered element, or Null.
func (a *Application) Hovered() element.ID { return a.hovered }

// Focus moves focus to id. The previously focused element leaves the
// Focused state first.
func (a *Application) Focus(id element.ID) {
	if id == a.focused || !a.arena.IsAlive(id) {
		return
	}
	a.Blur()
	a.focused = id
	if s := a.StyleSet(id); s != nil {
		s.EnterState(style.StateFocused)
	}
}

// Blur clears focus.
func (a *Application) Blur() {
	if a.focused.IsNull() {
		return
	}
	if s := a.StyleSet(a.focused); s != nil {
		s.ExitState(style.StateFocused)
	}
	a.focused = element.Null
}

// Hover moves the pointer-over element to id. Pass Null to clear it.
func (a *Application) Hover(id element.ID) {
	if id == a.hovered {
		return
	}
	if s := a.StyleSet(a.hovered); s != nil {
		s.ExitState(style.StateHover)
	}
	a.hovered = element.Null
	if !a.arena.IsAlive(id) {
		return
	}
	a.hovered = id
	if s := a.StyleSet(id); s != nil {
		s.EnterState(style.StateHover)
	}
}

// SetActive enters or exits the Active state of id.
func (a *Application) SetActive(id element.ID, active bool) {
	s := a.StyleSet(id)
	if s == nil {
		return
	}
	if active {
		a.active[id] = struct{}{}
		s.EnterState(style.StateActive)
		return
	}
	delete(a.active, id)
	s.ExitState(style.StateActive)
}

// IsActive reports whether id was marked active.
func (a *Application) IsActive(id element.ID) bool {
	_, ok := a.active[id]
	return ok
}
