package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/catalog"
)

// NewShowCommand creates and returns the show subcommand
func NewShowCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "show <exercise-id>",
		Short:        "Show an exercise's instructions and check list",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(flags, args[0], cmd)
		},
	}
	return cmd
}

func runShow(flags *rootFlags, exerciseID string, cmd *cobra.Command) error {
	output := cmd.OutOrStdout()

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg, output, false)
	if err != nil {
		return err
	}

	exercise, ok := cat.Exercise(exerciseID)
	if !ok {
		return fmt.Errorf("exercise %q not found in catalog (try 'ftu list')", exerciseID)
	}

	fmt.Fprintf(output, "%s (%s)\n", exercise.Title, exercise.ID)
	fmt.Fprintf(output, "Category: %s  Difficulty: %d/5\n\n", exercise.Category, exercise.Difficulty)

	if exercise.InstructionsFile != "" {
		instructions, err := catalog.LoadInstructions(exercise.InstructionsFile)
		if err != nil {
			return err
		}
		if len(instructions.Sections) > 0 {
			fmt.Fprintf(output, "Sections:\n")
			for _, section := range instructions.Sections {
				fmt.Fprintf(output, "  - %s\n", section)
			}
			fmt.Fprintln(output)
		}
		fmt.Fprintln(output, instructions.Raw)
	}

	fmt.Fprintf(output, "Checks (%d):\n", len(exercise.Checks))
	for _, check := range exercise.Checks {
		scope := "submission"
		if check.TargetDeclaration != "" {
			scope = check.TargetDeclaration
		}
		fmt.Fprintf(output, "  - %s [%s]\n", check.Name, scope)
	}

	if exercise.ScaffoldFile != "" {
		fmt.Fprintf(output, "\nScaffold: %s\n", filepath.Base(exercise.ScaffoldFile))
	}
	return nil
}
