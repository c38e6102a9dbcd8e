package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ContainerSummary describes one validated container.
type ContainerSummary struct {
	Name   string `json:"name"`
	Groups int    `json:"groups"`
	Rules  int    `json:"rules"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool               `json:"valid"`
	Version    string             `json:"version,omitempty"`
	Containers []ContainerSummary `json:"containers,omitempty"`
	Elements   int                `json:"elements,omitempty"`
}

func (r ValidationResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ Stylesheet valid (%s): %d container(s)\n", r.Version, len(r.Containers))
	for _, c := range r.Containers {
		fmt.Fprintf(&b, "  %s: %d group(s), %d attribute rule(s)\n", c.Name, c.Groups, c.Rules)
	}
	if r.Elements > 0 {
		fmt.Fprintf(&b, "✓ Scene valid: %d element(s)\n", r.Elements)
	}
	return b.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [scene.yaml]",
		Short: "Validate a stylesheet and optionally a scene",
		Long: `Parse the stylesheet given with --sheet and report its containers.
When a scene is given it is also built against the stylesheet, which checks
element names, style references, states and instance properties.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenePath := ""
			if len(args) == 1 {
				scenePath = args[0]
			}
			return runValidate(rootOpts, scenePath, cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, scenePath string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	if opts.Sheet == "" {
		return f.Fail(ExitCommandError, ErrCodeGeneric, fmt.Errorf("--sheet is required"))
	}
	sheet, err := opts.loadSheet()
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeParse, err)
	}

	result := ValidationResult{Valid: true, Version: sheet.Version}
	for _, c := range sheet.Containers() {
		summary := ContainerSummary{Name: c.Name, Groups: len(c.Groups)}
		for _, g := range c.Groups {
			if g.HasAttributeRule() {
				summary.Rules++
			}
		}
		f.VerboseLog("Validated container: %s", c.Name)
		result.Containers = append(result.Containers, summary)
	}

	if scenePath != "" {
		sess, err := opts.openSession(scenePath)
		if err != nil {
			return f.Fail(ExitFailure, ErrCodeParse, err)
		}
		result.Elements = len(sess.index.Names())
	}
	return f.Success(result)
}
