// Package models defines the core data types shared across the grading
// pipeline: declarative check specifications, per-check results, extracted
// source regions, and the assembled grade report.
package models

import "time"

// CheckSpec is a declarative predicate describing one gradable expectation
// about a submission. Exercise authors configure these as data; the grader
// interprets them. A CheckSpec is pure: it reads text and yields a boolean,
// it never mutates, executes, or compiles the submission.
type CheckSpec struct {
	// Name is the short human label shown next to the pass/fail marker.
	Name string

	// TargetDeclaration scopes the check to the body of one named
	// function/component. Empty means the whole submission.
	TargetDeclaration string

	// RequiredContent lists substrings that must ALL be present.
	RequiredContent []string

	// RequiredPatterns lists regular expressions that must ALL match.
	RequiredPatterns []string

	// ForbiddenContent lists substrings that must ALL be absent. These are
	// typically placeholder markers ("TODO", "not yet implemented") whose
	// presence means the declaration was left unfinished.
	ForbiddenContent []string

	// CustomValidation covers checks not expressible as include/exclude,
	// e.g. minimum length or a keyword combination. Optional.
	CustomValidation func(text string) bool

	// CustomError is the failure message reported when CustomValidation
	// returns false.
	CustomError string
}

// CheckResult is the outcome of evaluating one CheckSpec. Results are
// constructed once, never mutated, and returned in the declaration order of
// their specs so progressive-disclosure UIs can rely on a stable sequence.
type CheckResult struct {
	// Name echoes the CheckSpec name.
	Name string

	// Passed is the boolean outcome.
	Passed bool

	// Error explains the failure. It is always empty when Passed is true
	// and is a hint string only; callers must never parse it.
	Error string

	// ExecutionTime is how long the check took. Purely observational, no
	// correctness depends on it.
	ExecutionTime time.Duration
}

// ExtractedRegion is the substring of source attributed to one named
// declaration. A miss (declaration not found, or braces never balance) is
// represented as an empty Body, not an error.
type ExtractedRegion struct {
	// DeclarationName is the identifier that was searched for.
	DeclarationName string

	// Body is the text strictly between the opening brace following the
	// declaration header and its balanced closing brace.
	Body string
}

// Found reports whether the declaration was located in the source.
func (r ExtractedRegion) Found() bool {
	return r.Body != ""
}
