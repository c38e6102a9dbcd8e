package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/uitree/pkg/store"
)

// ExportResult reports a run written to the database.
type ExportResult struct {
	RunID      string `json:"run_id"`
	Database   string `json:"database"`
	Elements   int    `json:"elements"`
	Properties int    `json:"properties"`
}

func (r ExportResult) String() string {
	return fmt.Sprintf("✓ Exported run %s to %s: %d element(s), %d property value(s)\n",
		r.RunID, r.Database, r.Elements, r.Properties)
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "export <scene.yaml>",
		Short: "Store every element's resolved properties in a SQLite database",
		Long: `Build a scene, apply the stylesheet and record the resolved non-default
properties of every element as a new run in a SQLite database. The run id is
the id of the application that built the scene.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, args[0], dbPath, workers, cmd)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (required)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel readers (default GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func runExport(opts *RootOptions, scenePath, dbPath string, workers int, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	sess, err := opts.openSession(scenePath)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeParse, err)
	}
	results, err := resolveAll(sess, workers)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, err)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, err)
	}
	defer db.Close()

	run := store.Run{
		ID:        sess.app.ID().String(),
		Scene:     scenePath,
		Sheet:     opts.Sheet,
		CreatedAt: time.Now().UTC(),
		Elements:  make([]store.Element, len(results)),
	}
	props := 0
	for i, e := range results {
		run.Elements[i] = store.Element{
			Name:     e.Name,
			Depth:    e.Depth,
			State:    e.State,
			Styles:   e.Styles,
			Disabled: e.Disabled,
		}
		for _, p := range e.Properties {
			run.Elements[i].Properties = append(run.Elements[i].Properties, store.Property(p))
		}
		props += len(e.Properties)
	}
	if err := db.WriteRun(cmd.Context(), run); err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, err)
	}
	f.VerboseLog("Wrote run %s to %s", run.ID, dbPath)
	sess.app.Logger().Debug("run exported", "run", run.ID, "db", dbPath, "properties", props)

	return f.Success(ExportResult{
		RunID:      run.ID,
		Database:   dbPath,
		Elements:   len(run.Elements),
		Properties: props,
	})
}
