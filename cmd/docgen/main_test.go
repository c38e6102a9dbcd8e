package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/uitree/pkg/style"
)

func TestWritePropertyReference(t *testing.T) {
	var buf bytes.Buffer
	writePropertyReference(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if got, want := len(lines), style.PropertyCount()+2; got != want {
		t.Fatalf("got %d lines, want %d", got, want)
	}
	if want := "| TextColor | color | #000000ff | yes |  |"; !strings.Contains(buf.String(), want+"\n") {
		t.Errorf("missing row %q", want)
	}
	first := lines[2]
	if !strings.HasPrefix(first, "| OverflowX | enum | ") {
		t.Errorf("first row = %q, want OverflowX first", first)
	}
}

func TestWritePropertyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "properties.md")
	if err := writePropertyFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "---\nid: properties\ntitle: Style Properties\n") {
		t.Errorf("missing frontmatter:\n%s", data)
	}
}

func TestProcessMarkdown(t *testing.T) {
	in := strings.Join([]string{
		"# element",
		"```go",
		`import "github.com/go-drift/uitree/pkg/element"`,
		"```",
		"Package element stores elements.",
		"## Index",
		"- [type ID](<#ID>)",
		"## type ID",
		"<details><summary>Example</summary>",
		"<p>",
		"code",
		"</p>",
		"</details>",
	}, "\n")

	want := strings.Join([]string{
		"Package element stores elements.",
		"## type ID",
		"",
		"**Example:**",
		"",
		"code",
	}, "\n")

	if got := processMarkdown(in); got != want {
		t.Errorf("processMarkdown =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatTitle(t *testing.T) {
	tests := map[string]string{
		"element":    "Element",
		"stylesheet": "Stylesheet",
		"app":        "App",
	}
	for in, want := range tests {
		if got := formatTitle(in); got != want {
			t.Errorf("formatTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
