package stylesheet

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/uitree/pkg/style"
)

type document struct {
	Version    string         `yaml:"version"`
	Containers []containerDoc `yaml:"containers"`
}

type containerDoc struct {
	Name   string     `yaml:"name"`
	Groups []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	Name    string            `yaml:"name"`
	When    ruleList          `yaml:"when,omitempty"`
	Normal  map[string]string `yaml:"normal,omitempty"`
	Hover   map[string]string `yaml:"hover,omitempty"`
	Focused map[string]string `yaml:"focused,omitempty"`
	Active  map[string]string `yaml:"active,omitempty"`
}

type ruleDoc struct {
	Attribute string  `yaml:"attribute"`
	Equals    *string `yaml:"equals,omitempty"`
	Not       bool    `yaml:"not,omitempty"`
}

// ruleList accepts either a single rule mapping or a sequence of rules.
type ruleList []ruleDoc

func (r *ruleList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var one ruleDoc
		if err := node.Decode(&one); err != nil {
			return err
		}
		*r = ruleList{one}
		return nil
	case yaml.SequenceNode:
		var many []ruleDoc
		if err := node.Decode(&many); err != nil {
			return err
		}
		*r = many
		return nil
	default:
		return fmt.Errorf("line %d: when must be a mapping or a list of mappings", node.Line)
	}
}

func (cd containerDoc) build() (*style.Container, error) {
	c := &style.Container{Name: cd.Name, Type: style.SourceShared}
	for i, gd := range cd.Groups {
		if gd.Name == "" {
			gd.Name = fmt.Sprintf("group%d", i)
		}
		g, err := gd.build()
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", gd.Name, err)
		}
		c.Groups = append(c.Groups, g)
	}
	return c, nil
}

func (gd groupDoc) build() (*style.Group, error) {
	g := &style.Group{Name: gd.Name}

	rule, err := gd.When.build()
	if err != nil {
		return nil, err
	}
	g.Rule = rule

	for _, st := range []struct {
		state  string
		values map[string]string
		dst    **style.StateStyle
	}{
		{"normal", gd.Normal, &g.Normal},
		{"hover", gd.Hover, &g.Hover},
		{"focused", gd.Focused, &g.Focused},
		{"active", gd.Active, &g.Active},
	} {
		if len(st.values) == 0 {
			continue
		}
		s, err := buildStyle(st.values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.state, err)
		}
		*st.dst = &style.StateStyle{Style: s}
	}
	return g, nil
}

// buildStyle parses values in name order so errors are reported deterministically.
func buildStyle(values map[string]string) (*style.Style, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	s := style.NewStyle()
	for _, name := range names {
		p, err := style.ParseProperty(name, values[name])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		s.Set(p)
	}
	return s, nil
}

func (rl ruleList) build() (style.Rule, error) {
	if len(rl) == 0 {
		return nil, nil
	}
	rules := make(style.AllRules, 0, len(rl))
	for _, rd := range rl {
		name := strings.TrimSpace(rd.Attribute)
		if name == "" {
			return nil, fmt.Errorf("when: missing attribute")
		}
		r := style.AttributeExists(name)
		if rd.Equals != nil {
			r = style.AttributeEquals(name, *rd.Equals)
		}
		if rd.Not {
			r = r.Not()
		}
		rules = append(rules, r)
	}
	if len(rules) == 1 {
		return rules[0], nil
	}
	return rules, nil
}
