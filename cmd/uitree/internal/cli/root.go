// Package cli implements the uitree commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/go-drift/uitree/cmd/uitree/internal/config"
	"github.com/go-drift/uitree/pkg/errors"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string
	Sheet   string

	// Dir is where uitree.yaml is looked up when Config is empty.
	Dir string

	resolved *config.Resolved
	logger   *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the uitree CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Dir: "."}

	cmd := &cobra.Command{
		Use:   "uitree",
		Short: "uitree - element trees and style cascades",
		Long: `uitree builds element trees from YAML scenes, applies stylesheets and
reports the resolved style properties of every element.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default ./uitree.yaml if present)")
	cmd.PersistentFlags().StringVarP(&opts.Sheet, "sheet", "s", "", "stylesheet YAML file")

	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewSourceCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// prepare resolves configuration, applies its defaults to flags the user
// did not set and configures logging.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	resolved, err := config.Resolve(o.Dir, o.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration error", err)
	}
	o.resolved = resolved
	if !cmd.Flags().Changed("format") {
		o.Format = resolved.Format
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if resolved.Debug {
		errors.SetDebugMode(true)
	}

	o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if o.Verbose {
		o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		errors.SetHandler(errors.SlogHandler{Logger: o.logger})
	}
	o.logger.Debug("configuration resolved", "path", resolved.Path, "format", o.Format, "capacity", resolved.Arena.InitialCapacity)
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
