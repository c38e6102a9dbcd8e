// Package stylesheet loads shared style containers from YAML.
//
// A stylesheet lists containers, each holding ordered groups. A group maps
// interaction states to property values and may be gated by attribute rules:
//
//	version: v1.0.0
//	containers:
//	  - name: button
//	    groups:
//	      - name: base
//	        normal: {BackgroundColor: "#336699", TextColor: white}
//	        hover:  {BackgroundColor: "#4477aa"}
//	      - name: disabled
//	        when: {attribute: disabled, equals: "true"}
//	        normal: {Opacity: 0.5}
package stylesheet

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/uitree/pkg/errors"
	"github.com/go-drift/uitree/pkg/style"
)

// SupportedMajor is the stylesheet format major version this package reads.
const SupportedMajor = "v1"

// Sheet is a parsed stylesheet.
type Sheet struct {
	Version    string
	containers []*style.Container
	byName     map[string]*style.Container
}

// Containers returns the containers in declaration order.
func (s *Sheet) Containers() []*style.Container {
	return slices.Clone(s.containers)
}

// Container returns the container called name.
func (s *Sheet) Container(name string) (*style.Container, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Resolve returns the containers named by names in order.
func (s *Sheet) Resolve(names []string) ([]*style.Container, error) {
	out := make([]*style.Container, 0, len(names))
	for _, name := range names {
		c, ok := s.byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown style container %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

// Load reads and parses the stylesheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UITreeError{
			Op:   "stylesheet.Load",
			Kind: errors.KindParsing,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// Parse parses a YAML stylesheet. Errors are *errors.UITreeError values of
// kind KindParsing naming the container, group and property involved.
func Parse(data []byte) (*Sheet, error) {
	sheet, err := parse(data)
	if err != nil {
		return nil, &errors.UITreeError{Op: "stylesheet.Parse", Kind: errors.KindParsing, Err: err}
	}
	return sheet, nil
}

func parse(data []byte) (*Sheet, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty stylesheet")
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	sheet := &Sheet{
		Version: doc.Version,
		byName:  make(map[string]*style.Container, len(doc.Containers)),
	}
	for i, cd := range doc.Containers {
		if cd.Name == "" {
			return nil, fmt.Errorf("container %d: missing name", i)
		}
		if _, dup := sheet.byName[cd.Name]; dup {
			return nil, fmt.Errorf("container %q: defined twice", cd.Name)
		}
		c, err := cd.build()
		if err != nil {
			return nil, fmt.Errorf("container %q: %w", cd.Name, err)
		}
		sheet.containers = append(sheet.containers, c)
		sheet.byName[c.Name] = c
	}
	return sheet, nil
}

func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("missing version")
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("version %s: unsupported major version %s (want %s)", v, major, SupportedMajor)
	}
	return nil
}
