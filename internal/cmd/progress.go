package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/progress"
)

// NewProgressCommand creates the progress subcommand and its children
func NewProgressCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "progress",
		Short:        "Show recorded grading progress",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgressShow(flags, cmd)
		},
	}

	cmd.AddCommand(newProgressResetCommand(flags))
	cmd.AddCommand(newProgressExportCommand(flags))
	return cmd
}

func runProgressShow(flags *rootFlags, cmd *cobra.Command) error {
	output := cmd.OutOrStdout()

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	store, err := progress.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open progress database: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Attempts recorded:   %d\n", stats.TotalAttempts)
	fmt.Fprintf(output, "Exercises attempted: %d\n", stats.ExercisesAttempted)
	fmt.Fprintf(output, "Exercises passed:    %d\n", stats.ExercisesPassed)
	return nil
}

func newProgressResetCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:          "reset",
		Short:        "Delete all recorded attempts",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}

			store, err := progress.NewStore(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open progress database: %w", err)
			}
			defer store.Close()

			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Progress history cleared")
			return nil
		},
	}
}

func newProgressExportCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:          "export <file>",
		Short:        "Export a JSON snapshot of completion state",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}

			store, err := progress.NewStore(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open progress database: %w", err)
			}
			defer store.Close()

			if err := store.Export(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Progress exported to %s\n", args[0])
			return nil
		},
	}
}
