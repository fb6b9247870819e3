package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/models"
)

// CompletionByExercise maps exercise id to whether its best recorded attempt
// passed every check.
type CompletionByExercise map[string]bool

// RenderCatalog writes the category/exercise listing with completion markers.
// Exercises with a passing attempt get a checkmark, attempted-but-failing
// exercises a cross, untouched ones a dash.
func RenderCatalog(w io.Writer, categories []models.Category, completion CompletionByExercise) {
	for _, category := range categories {
		fmt.Fprintf(w, "%s\n", category.Name)
		for _, ex := range category.Exercises {
			marker := "-"
			if passed, attempted := completion[ex.ID]; attempted {
				if passed {
					marker = "✓"
				} else {
					marker = "✗"
				}
			}
			fmt.Fprintf(w, "  %s %-28s %s %s\n", marker, ex.ID, difficultyStars(ex.Difficulty), ex.Title)
		}
		fmt.Fprintln(w)
	}
}

// difficultyStars renders difficulty 0..5 as a fixed-width star gauge.
func difficultyStars(difficulty int) string {
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > 5 {
		difficulty = 5
	}
	return "[" + strings.Repeat("*", difficulty) + strings.Repeat(".", 5-difficulty) + "]"
}
