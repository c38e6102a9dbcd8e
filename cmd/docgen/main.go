// Package main generates the uitree reference documentation: API pages
// rendered from Go source with gomarkdoc, and a style property table built
// from the property metadata in pkg/style.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-drift/uitree/pkg/style"
)

// Package represents a Go package to document.
type Package struct {
	Name     string
	Path     string
	Position int
}

// Packages to document (public-facing), in order.
var packages = []Package{
	{Name: "element", Path: "pkg/element", Position: 1},
	{Name: "style", Path: "pkg/style", Position: 2},
	{Name: "app", Path: "pkg/app", Position: 3},
	{Name: "traversal", Path: "pkg/traversal", Position: 4},
	{Name: "stylesheet", Path: "pkg/stylesheet", Position: 5},
	{Name: "scene", Path: "pkg/scene", Position: 6},
	{Name: "store", Path: "pkg/store", Position: 7},
	{Name: "errors", Path: "pkg/errors", Position: 8},
	{Name: "testing", Path: "pkg/testing", Position: 9},
}

func main() {
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Repository root: %s\n", root)

	docsDir := filepath.Join(root, "docs")
	apiDir := filepath.Join(docsDir, "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating api directory: %v\n", err)
		os.Exit(1)
	}

	if err := writePropertyFile(filepath.Join(docsDir, "properties.md")); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing property reference: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d properties to docs/properties.md\n", style.PropertyCount())

	if err := ensureGomarkdoc(); err != nil {
		fmt.Fprintf(os.Stderr, "Error ensuring gomarkdoc: %v\n", err)
		os.Exit(1)
	}

	for _, pkg := range packages {
		pkgPath := filepath.Join(root, pkg.Path)
		if _, err := os.Stat(pkgPath); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}

		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		if err := generatePackageDocs(root, pkg, apiDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating docs for %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
	}

	fmt.Println("\nDocumentation generated successfully!")
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func ensureGomarkdoc() error {
	if _, err := exec.LookPath("gomarkdoc"); err == nil {
		return nil
	}

	fmt.Println("Installing gomarkdoc...")
	cmd := exec.Command("go", "install", "github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func writePropertyFile(path string) error {
	var buf bytes.Buffer
	writeFrontmatter(&buf, "properties", "Style Properties", 1)
	writePropertyReference(&buf)
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// writePropertyReference renders one table row per property identifier in
// identifier order.
func writePropertyReference(w io.Writer) {
	fmt.Fprintln(w, "| Property | Kind | Default | Inherited | Values |")
	fmt.Fprintln(w, "|---|---|---|---|---|")
	for i := range style.PropertyCount() {
		id := style.PropertyID(i)
		inherited := ""
		if style.IsInherited(id) {
			inherited = "yes"
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			id, id.Kind(), style.Default(id).Format(), inherited, strings.Join(id.EnumNames(), ", "))
	}
}

func writeFrontmatter(w io.Writer, id, title string, position int) {
	fmt.Fprintf(w, `---
id: %s
title: %s
sidebar_position: %d
---

`, id, title, position)
}

func generatePackageDocs(root string, pkg Package, apiDir string) error {
	cmd := exec.Command("gomarkdoc", "./"+pkg.Path)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("  Warning: skipping %s (gomarkdoc error: %s)\n", pkg.Name, strings.TrimSpace(stderr.String()))
		return nil
	}

	content := stdout.String()
	if content == "" {
		fmt.Printf("  Warning: no documentation generated for %s\n", pkg.Name)
		return nil
	}

	var buf bytes.Buffer
	writeFrontmatter(&buf, pkg.Name, formatTitle(pkg.Name), pkg.Position)
	buf.WriteString(processMarkdown(content))

	return os.WriteFile(filepath.Join(apiDir, pkg.Name+".md"), buf.Bytes(), 0644)
}

func formatTitle(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// processMarkdown strips the parts of gomarkdoc output that the site
// renders itself: the title, the index and import blocks.
func processMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	skipNext := false
	inIndex := false

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if strings.HasPrefix(line, "## ") {
				inIndex = false
			} else {
				continue
			}
		}

		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.Contains(lines[i+1], "import") {
			skipNext = true
		}
		if skipNext && line == "```" {
			skipNext = false
			continue
		}
		if skipNext {
			continue
		}

		if strings.HasPrefix(line, "<details><summary>") && strings.HasSuffix(line, "</summary>") {
			summary := line[len("<details><summary>") : len(line)-len("</summary>")]
			result = append(result, "", fmt.Sprintf("**%s:**", summary), "")
			continue
		}

		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
