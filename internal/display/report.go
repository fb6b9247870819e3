// Package display renders grading reports, catalog listings, and loading
// progress for the terminal. Color output is enabled only when writing to a
// TTY and never carries meaning on its own; the same information is present
// in the plain text.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/models"
)

// ReportRenderer writes a GradeReport as an ordered check list with ✓/✗
// markers, per-check timing, and failure hints.
type ReportRenderer struct {
	writer   io.Writer
	useColor bool
}

// NewReportRenderer creates a renderer for the writer. noColor forces plain
// output; otherwise color is used when the writer is a terminal.
func NewReportRenderer(w io.Writer, noColor bool) *ReportRenderer {
	return &ReportRenderer{
		writer:   w,
		useColor: !noColor && IsTerminal(w),
	}
}

// IsTerminal reports whether the writer is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the full report: one line per check in declaration order,
// failure hints indented beneath failing checks, then the summary line.
// The Error field is displayed verbatim as a hint string, never interpreted.
func (r *ReportRenderer) Render(report models.GradeReport) {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	for _, result := range report.Results {
		if result.Passed {
			r.printf(pass, "✓ %s (%s)\n", result.Name, result.ExecutionTime)
			continue
		}
		r.printf(fail, "✗ %s (%s)\n", result.Name, result.ExecutionTime)
		if result.Error != "" {
			fmt.Fprintf(r.writer, "    %s\n", result.Error)
		}
	}

	fmt.Fprintln(r.writer)
	if report.Passed() {
		r.printf(pass, "✓ %d/%d checks passed\n", report.PassedChecks, report.TotalChecks)
	} else {
		r.printf(fail, "✗ %d/%d checks passed (%d failing)\n", report.PassedChecks, report.TotalChecks, report.FailedChecks())
	}
}

// printf writes a line with or without color depending on the renderer mode.
func (r *ReportRenderer) printf(c *color.Color, format string, args ...interface{}) {
	if r.useColor {
		c.Fprintf(r.writer, format, args...)
		return
	}
	fmt.Fprintf(r.writer, format, args...)
}
