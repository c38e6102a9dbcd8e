package app

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/go-drift/uitree/pkg/element"
)

// Attributes stores per-element string attributes consulted by style rules.
// Names and values are NFC-normalized so that rule comparisons do not depend
// on how the text was composed.
type Attributes struct {
	values map[element.ID]map[string]string
}

func newAttributes() *Attributes {
	return &Attributes{values: make(map[element.ID]map[string]string)}
}

func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Attribute implements style.AttributeReader.
func (a *Attributes) Attribute(id element.ID, name string) (string, bool) {
	v, ok := a.values[id][normalizeName(name)]
	return v, ok
}

// set stores the attribute and reports whether anything changed.
func (a *Attributes) set(id element.ID, name, value string) bool {
	name = normalizeName(name)
	value = norm.NFC.String(value)
	m := a.values[id]
	if m == nil {
		m = make(map[string]string)
		a.values[id] = m
	}
	if old, ok := m[name]; ok && old == value {
		return false
	}
	m[name] = value
	return true
}

func (a *Attributes) remove(id element.ID, name string) bool {
	name = normalizeName(name)
	m := a.values[id]
	if _, ok := m[name]; !ok {
		return false
	}
	delete(m, name)
	return true
}

func (a *Attributes) drop(id element.ID) {
	delete(a.values, id)
}

// Names returns the attribute names of id in unspecified order.
func (a *Attributes) Names(id element.ID) []string {
	names := make([]string, 0, len(a.values[id]))
	for k := range a.values[id] {
		names = append(names, k)
	}
	return names
}
