package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/display"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/progress"
)

// NewListCommand creates and returns the list subcommand
func NewListCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog exercises with completion markers",
		Long: `List shows every category and exercise in the catalog. Exercises with
a fully passing recorded attempt are marked ✓, attempted-but-failing ones ✗,
and untouched ones -.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(flags, cmd)
		},
	}
	return cmd
}

func runList(flags *rootFlags, cmd *cobra.Command) error {
	output := cmd.OutOrStdout()

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg, output, false)
	if err != nil {
		return err
	}

	completion := display.CompletionByExercise{}
	store, err := progress.NewStore(cfg.DBPath)
	if err == nil {
		defer store.Close()
		if recorded, err := store.Completion(cmd.Context()); err == nil {
			completion = recorded
		}
	}

	display.RenderCatalog(output, cat.Categories, completion)
	fmt.Fprintf(output, "%d exercises in %d categories\n", cat.Len(), len(cat.Categories))
	return nil
}
