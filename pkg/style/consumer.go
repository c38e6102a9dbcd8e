package style

import "github.com/go-drift/uitree/pkg/element"

// Consumer receives resolved value changes. Each method is called once per
// change of an element's effective value and never when the value is unchanged.
type Consumer interface {
	// SetStyleProperty reports a new value defined locally or inherited.
	SetStyleProperty(id element.ID, p Property)
	// UnsetStyleProperty reports that a local definition went away; fallback
	// is the inherited or default value now in effect.
	UnsetStyleProperty(id element.ID, fallback Property)
}

// NopConsumer ignores every notification.
type NopConsumer struct{}

func (NopConsumer) SetStyleProperty(element.ID, Property)   {}
func (NopConsumer) UnsetStyleProperty(element.ID, Property) {}
