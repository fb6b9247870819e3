package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [catalog-dir]",
		Short: "Validate exercise catalog content",
		Long: `Parse and validate the exercise catalog, checking for:
  - Well-formed exercise descriptors (id, title, difficulty range)
  - Checks with names and at least one condition
  - Referenced instruction/scaffold/solution files exist
  - No duplicate exercise ids across categories

This is the authoring-side guard: malformed content fails here so it can
never surface as a crash at grading time.

Exit code: 0 if valid, 1 if errors found`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runValidate(flags, dir, cmd)
		},
	}
	return cmd
}

func runValidate(flags *rootFlags, dir string, cmd *cobra.Command) error {
	output := cmd.OutOrStdout()

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	if dir != "" {
		cfg.CatalogDir = dir
	}

	cat, err := loadCatalog(cfg, output, true)
	if err != nil {
		fmt.Fprintf(output, "\n✗ Catalog validation failed\n  ✗ %v\n", err)
		return fmt.Errorf("catalog validation failed")
	}

	totalChecks := 0
	for _, category := range cat.Categories {
		for _, exercise := range category.Exercises {
			totalChecks += len(exercise.Checks)
		}
	}

	fmt.Fprintf(output, "✓ %d exercises across %d categories\n", cat.Len(), len(cat.Categories))
	fmt.Fprintf(output, "✓ %d checks compiled\n", totalChecks)
	fmt.Fprintf(output, "\n✓ Catalog is valid!\n")
	return nil
}
