package models

import "fmt"

// Exercise describes one unit of learning content: scaffolded source with
// TODOs, a reference solution, markdown instructions, and the declarative
// check list the grader evaluates against submissions.
type Exercise struct {
	// ID uniquely identifies the exercise across the catalog.
	ID string

	// Title is the human-readable name shown in listings.
	Title string

	// Category is the category the exercise belongs to, taken from its
	// directory in the catalog tree.
	Category string

	// Difficulty ranges 1 (introductory) to 5 (expert).
	Difficulty int

	// Order controls listing position within the category.
	Order int

	// InstructionsFile is the path to the markdown instructions, relative
	// to the exercise file.
	InstructionsFile string

	// ScaffoldFile is the optional TODO-scaffolded starting point.
	ScaffoldFile string

	// SolutionFile is the optional reference solution.
	SolutionFile string

	// Checks is the ordered check list evaluated against submissions.
	Checks []CheckSpec
}

// Validate verifies the exercise descriptor is well formed. Malformed
// content is a programming error on the author's side, so loading fails
// fast here rather than surfacing at grading time.
func (e *Exercise) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("exercise is missing an id")
	}
	if e.Title == "" {
		return fmt.Errorf("exercise %s is missing a title", e.ID)
	}
	if e.Difficulty < 0 || e.Difficulty > 5 {
		return fmt.Errorf("exercise %s: difficulty must be between 0 and 5, got %d", e.ID, e.Difficulty)
	}
	if len(e.Checks) == 0 {
		return fmt.Errorf("exercise %s has no checks", e.ID)
	}
	for i, check := range e.Checks {
		if check.Name == "" {
			return fmt.Errorf("exercise %s: check %d is missing a name", e.ID, i+1)
		}
		if len(check.RequiredContent) == 0 && len(check.RequiredPatterns) == 0 &&
			len(check.ForbiddenContent) == 0 && check.CustomValidation == nil {
			return fmt.Errorf("exercise %s: check %q has no conditions", e.ID, check.Name)
		}
		if check.CustomValidation != nil && check.CustomError == "" {
			return fmt.Errorf("exercise %s: check %q has a custom validation but no error message", e.ID, check.Name)
		}
	}
	return nil
}

// Category groups the exercises loaded from one catalog directory.
type Category struct {
	// Name is the directory name, e.g. "advanced-typescript".
	Name string

	// Exercises are ordered by Order, then ID.
	Exercises []Exercise
}
