package models

import "time"

// GradeReport is the assembled output of grading one submission: the ordered
// CheckResult sequence plus aggregate figures derived from it. The aggregates
// always equal the length/partition of Results.
type GradeReport struct {
	ExerciseID   string
	Results      []CheckResult
	TotalChecks  int
	PassedChecks int
	Duration     time.Duration
}

// NewGradeReport derives the aggregate counts from an ordered result list.
func NewGradeReport(exerciseID string, results []CheckResult, duration time.Duration) GradeReport {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return GradeReport{
		ExerciseID:   exerciseID,
		Results:      results,
		TotalChecks:  len(results),
		PassedChecks: passed,
		Duration:     duration,
	}
}

// Passed reports whether every check passed. An empty report counts as not
// passed; grading produced nothing to certify.
func (g GradeReport) Passed() bool {
	return g.TotalChecks > 0 && g.PassedChecks == g.TotalChecks
}

// FailedChecks returns the number of failing checks.
func (g GradeReport) FailedChecks() int {
	return g.TotalChecks - g.PassedChecks
}
