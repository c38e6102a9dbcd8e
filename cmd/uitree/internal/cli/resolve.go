package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/style"
)

// PropertyResult is one resolved property of an element.
type PropertyResult struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// ElementResult is the resolved style of one element.
type ElementResult struct {
	Name       string           `json:"name"`
	Depth      int              `json:"depth"`
	State      string           `json:"state"`
	Styles     string           `json:"styles,omitempty"`
	Disabled   bool             `json:"disabled,omitempty"`
	Properties []PropertyResult `json:"properties"`
}

// ResolveResult lists every element of a scene in pre-order.
type ResolveResult struct {
	Elements []ElementResult `json:"elements"`
}

func (r ResolveResult) String() string {
	var b strings.Builder
	for _, e := range r.Elements {
		indent := strings.Repeat("  ", e.Depth)
		fmt.Fprintf(&b, "%s%s [%s]", indent, e.Name, e.State)
		if e.Styles != "" {
			fmt.Fprintf(&b, " styles=%s", e.Styles)
		}
		if e.Disabled {
			b.WriteString(" disabled")
		}
		b.WriteByte('\n')
		for _, p := range e.Properties {
			fmt.Fprintf(&b, "%s  %s = %s (%s)\n", indent, p.Name, p.Value, p.Source)
		}
	}
	return b.String()
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "resolve <scene.yaml>",
		Short: "Print every element's resolved non-default properties",
		Long: `Build a scene, apply the stylesheet and print the effective value and
source of every property that differs from its default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, args[0], workers, cmd)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel readers (default GOMAXPROCS)")
	return cmd
}

func runResolve(opts *RootOptions, scenePath string, workers int, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	sess, err := opts.openSession(scenePath)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeParse, err)
	}
	f.VerboseLog("Built %d element(s) from %s", len(sess.index.Names()), scenePath)

	results, err := resolveAll(sess, workers)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, err)
	}
	return f.Success(ResolveResult{Elements: results})
}

// resolveAll describes every element of the session in pre-order, reading
// style sets from parallel workers.
func resolveAll(sess *session, workers int) ([]ElementResult, error) {
	names := sess.index.Names()
	ids := make([]element.ID, len(names))
	slot := make(map[element.ID]int, len(names))
	for i, name := range names {
		ids[i], _ = sess.index.Lookup(name)
		slot[ids[i]] = i
	}

	results := make([]ElementResult, len(ids))
	err := sess.app.ReadParallel(ids, workers, func(id element.ID) {
		i := slot[id]
		results[i] = describeElement(sess, names[i], id)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func describeElement(sess *session, name string, id element.ID) ElementResult {
	arena := sess.app.Arena()
	r := ElementResult{
		Name:       name,
		Depth:      arena.Traversal(id).Depth,
		Disabled:   !arena.IsEnabled(id),
		State:      "None",
		Properties: []PropertyResult{},
	}
	s := sess.app.StyleSet(id)
	if s == nil {
		return r
	}
	r.State = s.CurrentState().String()
	r.Styles = s.StyleNames()
	for i := range style.PropertyCount() {
		pid := style.PropertyID(i)
		p := s.Computed(pid)
		if p.Value == style.Default(pid).Value {
			continue
		}
		r.Properties = append(r.Properties, PropertyResult{
			Name:   pid.String(),
			Value:  p.Format(),
			Source: s.PropertySource(pid),
		})
	}
	return r
}
