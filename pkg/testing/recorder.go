package testing

import (
	"fmt"
	"sync"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/style"
)

// Notification is one call received by a RecordingConsumer.
type Notification struct {
	Element  element.ID
	Property style.Property
	Unset    bool
}

func (n Notification) String() string {
	verb := "set"
	if n.Unset {
		verb = "unset"
	}
	return fmt.Sprintf("%s %s %s", n.Element, verb, n.Property)
}

// RecordingConsumer is a style.Consumer that records every notification.
// It is safe for concurrent use.
type RecordingConsumer struct {
	mu     sync.Mutex
	events []Notification
}

// SetStyleProperty implements style.Consumer.
func (r *RecordingConsumer) SetStyleProperty(id element.ID, p style.Property) {
	r.record(Notification{Element: id, Property: p})
}

// UnsetStyleProperty implements style.Consumer.
func (r *RecordingConsumer) UnsetStyleProperty(id element.ID, fallback style.Property) {
	r.record(Notification{Element: id, Property: fallback, Unset: true})
}

func (r *RecordingConsumer) record(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, n)
}

// Events returns a copy of every notification in arrival order.
func (r *RecordingConsumer) Events() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.events...)
}

// ForElement returns the notifications delivered for id.
func (r *RecordingConsumer) ForElement(id element.ID) []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Notification
	for _, n := range r.events {
		if n.Element == id {
			out = append(out, n)
		}
	}
	return out
}

// ForProperty returns the notifications delivered for property prop on id.
func (r *RecordingConsumer) ForProperty(id element.ID, prop style.PropertyID) []Notification {
	var out []Notification
	for _, n := range r.ForElement(id) {
		if n.Property.ID == prop {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of recorded notifications.
func (r *RecordingConsumer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset discards recorded notifications.
func (r *RecordingConsumer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
