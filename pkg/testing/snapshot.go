package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/style"
)

// Snapshot captures the resolved style tree under a root element.
type Snapshot struct {
	Root *Node `json:"root"`
}

// Node is one element in a snapshot. Properties holds every effective value
// that differs from its default, keyed by property name.
type Node struct {
	ID         string            `json:"id"`
	Styles     string            `json:"styles,omitempty"`
	State      string            `json:"state"`
	Disabled   bool              `json:"disabled,omitempty"`
	Properties map[string]string `json:"props,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
}

// CaptureSnapshot captures the style tree under root. Element ids are
// replaced by their pre-order position so snapshots survive index reuse.
func (t *Tester) CaptureSnapshot(root element.ID) *Snapshot {
	if !t.Arena().IsAlive(root) {
		return &Snapshot{}
	}
	counter := 0
	return &Snapshot{Root: t.captureNode(root, &counter)}
}

func (t *Tester) captureNode(id element.ID, counter *int) *Node {
	node := &Node{
		ID:       fmt.Sprintf("#%d", *counter),
		State:    "None",
		Disabled: !t.Arena().IsEnabled(id),
	}
	*counter++
	if s := t.StyleSet(id); s != nil {
		node.Styles = s.StyleNames()
		node.State = s.CurrentState().String()
		node.Properties = resolvedProperties(s)
	}
	for child := range t.Arena().Children(id) {
		node.Children = append(node.Children, t.captureNode(child, counter))
	}
	return node
}

func resolvedProperties(s *style.StyleSet) map[string]string {
	props := make(map[string]string)
	for i := range style.PropertyCount() {
		id := style.PropertyID(i)
		p := s.Computed(id)
		if p.Value == style.Default(id).Value {
			continue
		}
		props[id.String()] = p.Format()
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When UITREE_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("UITREE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: UITREE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: UITREE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, or the empty
// string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// marshalSnapshot encodes with sorted map keys so output is stable.
func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
