// Package cmd wires the ftu CLI: grading submissions against the exercise
// catalog, browsing exercises, validating catalog content, and tracking
// progress across sessions.
package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	catalogDir string
	dbPath     string
	logLevel   string
	noColor    bool
	timeout    time.Duration
}

// NewRootCommand creates and returns the root cobra command for ftu
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "ftu",
		Short: "Interactive exercise grading for the for-the-union catalog",
		Long: `ftu grades submitted source files against a catalog of exercises.

Each exercise declares a list of checks (required content, forbidden
placeholder markers, pattern matches) evaluated with heuristic string
scanning over the submission. Results are shown per check and recorded
so completion can be tracked across sessions.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.catalogDir, "catalog", "", "exercise catalog directory (default from config)")
	pf.StringVar(&flags.dbPath, "db", "", "progress database path (default from config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log verbosity: trace, debug, info, warn, error")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	pf.DurationVar(&flags.timeout, "timeout", 0, "per-run grading timeout (default from config)")

	// Add subcommands
	cmd.AddCommand(NewGradeCommand(flags))
	cmd.AddCommand(NewListCommand(flags))
	cmd.AddCommand(NewShowCommand(flags))
	cmd.AddCommand(NewValidateCommand(flags))
	cmd.AddCommand(NewProgressCommand(flags))

	return cmd
}
