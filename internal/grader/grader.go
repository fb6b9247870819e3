// Package grader evaluates declarative check lists against submitted source
// text and assembles the pass/fail report shown to the learner.
//
// Grading is a pure batch pipeline: submission in, report out. It performs
// no execution, compilation, or I/O, and it never panics or returns an error
// across its public boundary. Every failure mode, including malformed check
// configuration hit at runtime, resolves to a failing CheckResult so the
// learner always sees which named checks passed or failed and why.
package grader

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/extract"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/models"
)

// Grader runs check lists against submissions. It is stateless between runs;
// the same Grader may grade many submissions in any order, concurrently.
type Grader struct {
	extractor extract.Extractor
}

// New creates a Grader backed by the default brace-balance extractor.
func New() *Grader {
	return NewWithExtractor(extract.New())
}

// NewWithExtractor creates a Grader with a custom region extractor. Used by
// tests and left open so a real tokenizer can slot in later.
func NewWithExtractor(e extract.Extractor) *Grader {
	return &Grader{extractor: e}
}

// Grade evaluates checks against submission in declaration order and returns
// one CheckResult per check. The context bounds total grading time; once it
// is cancelled the remaining checks are marked failed rather than evaluated,
// which keeps the report well formed even for pathological input sizes.
func (g *Grader) Grade(ctx context.Context, exerciseID, submission string, checks []models.CheckSpec) models.GradeReport {
	started := time.Now()
	results := make([]models.CheckResult, 0, len(checks))

	// Regions are cached per declaration so several checks scoped to the
	// same component only pay for one scan.
	regions := make(map[string]models.ExtractedRegion)

	for _, check := range checks {
		checkStart := time.Now()

		if err := ctx.Err(); err != nil {
			results = append(results, models.CheckResult{
				Name:          check.Name,
				Passed:        false,
				Error:         fmt.Sprintf("grading was cancelled before this check ran: %v", err),
				ExecutionTime: time.Since(checkStart),
			})
			continue
		}

		passed, errMsg := g.runCheck(check, submission, regions)
		if passed {
			errMsg = ""
		}
		results = append(results, models.CheckResult{
			Name:          check.Name,
			Passed:        passed,
			Error:         errMsg,
			ExecutionTime: time.Since(checkStart),
		})
	}

	return models.NewGradeReport(exerciseID, results, time.Since(started))
}

// runCheck resolves the working text for one check and evaluates it. A panic
// anywhere inside evaluation is converted to a failing result; a single bad
// check must never abort the rest of the batch.
func (g *Grader) runCheck(check models.CheckSpec, submission string, regions map[string]models.ExtractedRegion) (passed bool, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			passed = false
			errMsg = fmt.Sprintf("check %q could not be evaluated: %v", check.Name, r)
		}
	}()

	text := submission
	subject := "submission"

	if check.TargetDeclaration != "" {
		region, ok := regions[check.TargetDeclaration]
		if !ok {
			region = g.extractor.Extract(submission, check.TargetDeclaration)
			regions[check.TargetDeclaration] = region
		}
		// An extraction miss fails every check scoped to the declaration.
		// Evaluating include/exclude rules against an empty body would let
		// forbidden-only checks pass vacuously.
		if !region.Found() {
			return false, fmt.Sprintf("declaration %q was not found in the submission", check.TargetDeclaration)
		}
		text = region.Body
		subject = check.TargetDeclaration
	}

	return evaluate(check, text, subject)
}

// evaluate applies the check's conditions in fixed precedence order,
// short-circuiting at the first failure so the reported error names the most
// specific cause: placeholder markers first, then missing required content,
// then the custom validation.
func evaluate(check models.CheckSpec, text, subject string) (bool, string) {
	for _, marker := range check.ForbiddenContent {
		if strings.Contains(text, marker) {
			return false, fmt.Sprintf("%s still contains placeholder/incomplete markers (found %q)", subject, marker)
		}
	}

	for _, token := range check.RequiredContent {
		if !strings.Contains(text, token) {
			return false, fmt.Sprintf("%s is missing required content %q", subject, token)
		}
	}

	for _, pattern := range check.RequiredPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Sprintf("check %q has an invalid pattern %q: %v", check.Name, pattern, err)
		}
		if !re.MatchString(text) {
			return false, fmt.Sprintf("%s does not match required pattern %q", subject, pattern)
		}
	}

	if check.CustomValidation != nil && !check.CustomValidation(text) {
		msg := check.CustomError
		if msg == "" {
			msg = fmt.Sprintf("%s failed the %q validation", subject, check.Name)
		}
		return false, msg
	}

	return true, ""
}
