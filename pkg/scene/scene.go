// Package scene describes element trees in YAML and builds them into an
// application.
//
//	elements:
//	  - name: dialog
//	    styles: [panel]
//	    instance:
//	      normal: {TextColor: navy}
//	    children:
//	      - name: ok
//	        styles: [button]
//	        attributes: {role: button}
//	        states: [hover]
package scene

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/uitree/pkg/app"
	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/errors"
	"github.com/go-drift/uitree/pkg/style"
	"github.com/go-drift/uitree/pkg/stylesheet"
	"github.com/go-drift/uitree/pkg/traversal"
)

// Scene is a forest of element descriptions.
type Scene struct {
	Elements []*Node `yaml:"elements"`
}

// Node describes one element and its subtree.
type Node struct {
	Name       string            `yaml:"name"`
	Styles     []string          `yaml:"styles,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
	States     []string          `yaml:"states,omitempty"`
	// Instance maps a state name to per-element property overrides.
	Instance map[string]map[string]string `yaml:"instance,omitempty"`
	Disabled bool                         `yaml:"disabled,omitempty"`
	Children []*Node                      `yaml:"children,omitempty"`
}

// Parse parses a YAML scene.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if stderrors.Is(err, io.EOF) {
			err = fmt.Errorf("empty scene")
		} else {
			err = fmt.Errorf("invalid YAML: %w", err)
		}
		return nil, &errors.UITreeError{Op: "scene.Parse", Kind: errors.KindParsing, Err: err}
	}
	return &sc, nil
}

// Load reads and parses the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UITreeError{
			Op:   "scene.Load",
			Kind: errors.KindParsing,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Index maps element names to the handles Build created for them.
type Index struct {
	names []string
	ids   map[string]element.ID
	roots []element.ID
}

// Lookup returns the handle of the element called name.
func (x *Index) Lookup(name string) (element.ID, bool) {
	id, ok := x.ids[name]
	return id, ok
}

// Names returns element names in creation (pre-order) order.
func (x *Index) Names() []string { return slices.Clone(x.names) }

// Roots returns the handles of the top-level elements.
func (x *Index) Roots() []element.ID { return slices.Clone(x.roots) }

// Build creates the scene's elements in a. Each element gets its containers
// from sheet, its attributes, instance overrides and states, and is then
// initialized before its children are built so they inherit from it.
// Disabled subtrees are disabled once fully built.
func Build(a *app.Application, sheet *stylesheet.Sheet, sc *Scene) (*Index, error) {
	b := &builder{app: a, sheet: sheet, index: &Index{ids: make(map[string]element.ID)}}
	var err error
	a.Mutate(func() {
		for _, n := range sc.Elements {
			var id element.ID
			if id, err = b.build(element.Null, n); err != nil {
				return
			}
			b.index.roots = append(b.index.roots, id)
		}
		traversal.ComputeAll(a.Arena(), b.index.roots, traversal.Options{})
	})
	if err != nil {
		return nil, &errors.UITreeError{Op: "scene.Build", Kind: errors.KindParsing, Err: err}
	}
	a.Logger().Debug("scene built", "elements", len(b.index.names), "roots", len(b.index.roots))
	return b.index, nil
}

type builder struct {
	app   *app.Application
	sheet *stylesheet.Sheet
	index *Index
}

func (b *builder) build(parent element.ID, n *Node) (element.ID, error) {
	if n.Name == "" {
		return element.Null, fmt.Errorf("element under %s: missing name", parent)
	}
	if _, dup := b.index.ids[n.Name]; dup {
		return element.Null, fmt.Errorf("element %q: defined twice", n.Name)
	}

	containers, err := b.containers(n.Styles)
	if err != nil {
		return element.Null, fmt.Errorf("element %q: %w", n.Name, err)
	}
	states, err := parseStates(n.States)
	if err != nil {
		return element.Null, fmt.Errorf("element %q: %w", n.Name, err)
	}

	id := b.app.CreateElement(parent, n.Name)
	b.index.ids[n.Name] = id
	b.index.names = append(b.index.names, n.Name)

	s := b.app.StyleSet(id)
	s.SetBaseStyles(containers)
	if err := applyInstance(s, n.Instance); err != nil {
		return element.Null, fmt.Errorf("element %q: %w", n.Name, err)
	}
	for _, name := range sortedKeys(n.Attributes) {
		b.app.SetAttribute(id, name, n.Attributes[name])
	}
	for _, st := range states {
		switch st {
		case style.StateHover:
			b.app.Hover(id)
		case style.StateFocused:
			b.app.Focus(id)
		case style.StateActive:
			b.app.SetActive(id, true)
		}
	}
	s.Initialize()

	for _, child := range n.Children {
		if _, err := b.build(id, child); err != nil {
			return element.Null, err
		}
	}
	if n.Disabled {
		b.app.Disable(id)
	}
	return id, nil
}

func (b *builder) containers(names []string) ([]*style.Container, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if b.sheet == nil {
		return nil, fmt.Errorf("styles %v given without a stylesheet", names)
	}
	return b.sheet.Resolve(names)
}

func parseStates(names []string) ([]style.State, error) {
	out := make([]style.State, 0, len(names))
	for _, name := range names {
		st, err := style.ParseState(name)
		if err != nil {
			return nil, err
		}
		if st == style.StateNormal {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func applyInstance(s *style.StyleSet, instance map[string]map[string]string) error {
	for _, stateName := range sortedKeys(instance) {
		st, err := style.ParseState(stateName)
		if err != nil {
			return fmt.Errorf("instance: %w", err)
		}
		props := instance[stateName]
		for _, name := range sortedKeys(props) {
			p, err := style.ParseProperty(name, props[name])
			if err != nil {
				return fmt.Errorf("instance %s: property %q: %w", stateName, name, err)
			}
			if err := s.SetProperty(p, st); err != nil {
				return fmt.Errorf("instance %s: %w", stateName, err)
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
