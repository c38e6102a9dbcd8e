package style

import (
	"fmt"
	"strings"

	"github.com/go-drift/uitree/pkg/element"
)

// AttributeReader gives rules access to element attributes.
type AttributeReader interface {
	Attribute(id element.ID, name string) (string, bool)
}

// Rule decides whether a group applies to an element.
type Rule interface {
	IsApplicableTo(id element.ID, attrs AttributeReader) bool
	// Count is the number of conditions, used for priority. More specific
	// rules outrank less specific ones.
	Count() int
	DependsOnAttributes() bool
}

// AttributeRule matches on the presence or value of one attribute.
type AttributeRule struct {
	Name string
	// Value is compared when HasValue is set; otherwise presence is enough.
	Value    string
	HasValue bool
	Negate   bool
}

// AttributeExists returns a rule matching elements that carry name.
func AttributeExists(name string) *AttributeRule {
	return &AttributeRule{Name: name}
}

// AttributeEquals returns a rule matching elements whose name attribute equals value.
func AttributeEquals(name, value string) *AttributeRule {
	return &AttributeRule{Name: name, Value: value, HasValue: true}
}

// Not returns the negation of r.
func (r *AttributeRule) Not() *AttributeRule {
	n := *r
	n.Negate = !n.Negate
	return &n
}

func (r *AttributeRule) IsApplicableTo(id element.ID, attrs AttributeReader) bool {
	var match bool
	if attrs != nil {
		v, ok := attrs.Attribute(id, r.Name)
		match = ok && (!r.HasValue || v == r.Value)
	}
	return match != r.Negate
}

func (r *AttributeRule) Count() int                { return 1 }
func (r *AttributeRule) DependsOnAttributes() bool { return true }

func (r *AttributeRule) String() string {
	s := "[" + r.Name
	if r.HasValue {
		s += fmt.Sprintf("=%q", r.Value)
	}
	s += "]"
	if r.Negate {
		s = "not " + s
	}
	return s
}

// AllRules applies when every member applies.
type AllRules []Rule

func (rs AllRules) IsApplicableTo(id element.ID, attrs AttributeReader) bool {
	for _, r := range rs {
		if !r.IsApplicableTo(id, attrs) {
			return false
		}
	}
	return true
}

func (rs AllRules) Count() int {
	n := 0
	for _, r := range rs {
		n += r.Count()
	}
	return n
}

func (rs AllRules) DependsOnAttributes() bool {
	for _, r := range rs {
		if r.DependsOnAttributes() {
			return true
		}
	}
	return false
}

func (rs AllRules) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = fmt.Sprint(r)
	}
	return strings.Join(parts, " and ")
}
