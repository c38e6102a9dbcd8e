package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/uitree/pkg/style"
)

// EntryResult is one cascade entry of an element, highest priority first.
type EntryResult struct {
	Source   string `json:"source"`
	Group    string `json:"group"`
	State    string `json:"state"`
	Priority string `json:"priority"`
	Active   bool   `json:"active"`
	Defines  bool   `json:"defines"`
}

// SourceResult explains where a property's value comes from.
type SourceResult struct {
	Element  string        `json:"element"`
	Property string        `json:"property"`
	Value    string        `json:"value"`
	Source   string        `json:"source"`
	State    string        `json:"state"`
	Entries  []EntryResult `json:"entries,omitempty"`
}

func (r SourceResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s = %s\n", r.Element, r.Property, r.Value)
	fmt.Fprintf(&b, "source: %s\n", r.Source)
	fmt.Fprintf(&b, "state: %s\n", r.State)
	if len(r.Entries) > 0 {
		b.WriteString("entries:\n")
	}
	for _, e := range r.Entries {
		mark := " "
		if e.Active && e.Defines {
			mark = "*"
		}
		fmt.Fprintf(&b, " %s %s/%s [%s] %s", mark, e.Source, e.Group, e.State, e.Priority)
		if !e.Active {
			b.WriteString(" inactive")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// NewSourceCommand creates the source command.
func NewSourceCommand(rootOpts *RootOptions) *cobra.Command {
	var elementName, propertyName string
	cmd := &cobra.Command{
		Use:   "source <scene.yaml>",
		Short: "Explain where an element's property value comes from",
		Long: `Build a scene and report the effective value of one property on one
element, the source it resolves from and the element's cascade entries in
priority order. Entries marked * define the property and are active.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSource(rootOpts, args[0], elementName, propertyName, cmd)
		},
	}
	cmd.Flags().StringVarP(&elementName, "element", "e", "", "element name (required)")
	cmd.Flags().StringVarP(&propertyName, "property", "p", "", "property name (required)")
	_ = cmd.MarkFlagRequired("element")
	_ = cmd.MarkFlagRequired("property")
	return cmd
}

func runSource(opts *RootOptions, scenePath, elementName, propertyName string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	pid, ok := style.PropertyIDFromName(propertyName)
	if !ok {
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Errorf("unknown property %q", propertyName))
	}
	sess, err := opts.openSession(scenePath)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeParse, err)
	}
	id, ok := sess.index.Lookup(elementName)
	if !ok {
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Errorf("element %q not found in %s", elementName, scenePath))
	}

	s := sess.app.StyleSet(id)
	snap := s.Snapshot()
	result := SourceResult{
		Element:  elementName,
		Property: pid.String(),
		Value:    s.Computed(pid).Format(),
		Source:   s.PropertySource(pid),
		State:    snap.State.String(),
	}
	for _, e := range snap.Entries {
		result.Entries = append(result.Entries, EntryResult{
			Source:   e.Source,
			Group:    e.Group,
			State:    e.State.String(),
			Priority: fmt.Sprintf("0x%016x", e.Priority),
			Active:   e.Active,
			Defines:  slices.Contains(e.Defines, pid),
		})
	}
	return f.Success(result)
}
