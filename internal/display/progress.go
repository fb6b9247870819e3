package display

import (
	"fmt"
	"io"
)

// ProgressIndicator manages multi-step catalog loading display with ANSI colors
type ProgressIndicator struct {
	writer     io.Writer
	totalItems int
	current    int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalItems: total,
		current:    0,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Loading exercise catalog:\n")
}

// Step displays progress for current category: [N/Total] name (cyan)
func (p *ProgressIndicator) Step(name string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalItems, name)
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete(exercises int) {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Loaded %d exercises from %d categories\n", exercises, p.totalItems)
}
