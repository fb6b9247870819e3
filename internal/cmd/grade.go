package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/display"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/fileutil"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/grader"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/models"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/progress"
)

// NewGradeCommand creates and returns the grade subcommand
func NewGradeCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade <exercise-id> [submission-file]",
		Short: "Grade a submission against an exercise's checks",
		Long: `Grade reads the submission file and evaluates the exercise's check
list against it: placeholder markers must be gone, required content must be
present, and any custom validations must hold. Each check is reported
individually; the attempt is recorded in the progress database.

When the submission file is omitted, the working directory is searched for
a source file named after the exercise id (e.g. counter-basics.tsx).

Exit code: 0 when all checks pass, 1 otherwise`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			submissionPath := ""
			if len(args) == 2 {
				submissionPath = args[1]
			}
			return runGrade(flags, args[0], submissionPath, cmd)
		},
	}
	return cmd
}

func runGrade(flags *rootFlags, exerciseID, submissionPath string, cmd *cobra.Command) error {
	output := cmd.OutOrStdout()

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	cat, err := loadCatalog(cfg, output, false)
	if err != nil {
		return err
	}
	log.LogDebug(fmt.Sprintf("loaded %d exercises from %s", cat.Len(), cfg.CatalogDir))

	exercise, ok := cat.Exercise(exerciseID)
	if !ok {
		return fmt.Errorf("exercise %q not found in catalog (try 'ftu list')", exerciseID)
	}

	if submissionPath == "" {
		submissionPath, err = fileutil.FindSubmission(".", exerciseID)
		if err != nil {
			return err
		}
		log.LogDebug(fmt.Sprintf("found submission at %s", submissionPath))
	}

	submission, err := os.ReadFile(submissionPath)
	if err != nil {
		return fmt.Errorf("failed to read submission: %w", err)
	}

	// The timeout is the only cancellation mechanism the grading path
	// needs; there is no I/O inside it, just string scanning.
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GradeTimeout)
	defer cancel()

	fmt.Fprintf(output, "Grading %s against %s:\n\n", submissionPath, exercise.Title)
	report := grader.New().Grade(ctx, exercise.ID, string(submission), exercise.Checks)

	display.NewReportRenderer(output, cfg.NoColor).Render(report)

	if err := recordAttempt(cmd.Context(), cfg.DBPath, report); err != nil {
		// Recording is best-effort; the learner still gets the report.
		log.LogWarn(fmt.Sprintf("failed to record attempt: %v", err))
	}

	if !report.Passed() {
		return fmt.Errorf("%d of %d checks failed", report.FailedChecks(), report.TotalChecks)
	}
	return nil
}

// recordAttempt persists the report aggregates to the progress database.
func recordAttempt(ctx context.Context, dbPath string, report models.GradeReport) error {
	store, err := progress.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.RecordAttempt(ctx, report)
	return err
}
