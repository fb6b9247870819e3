package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewGradeReport_Aggregates(t *testing.T) {
	tests := []struct {
		name       string
		results    []CheckResult
		wantTotal  int
		wantPassed int
		wantPass   bool
	}{
		{
			name:      "empty report is not passed",
			results:   nil,
			wantTotal: 0, wantPassed: 0, wantPass: false,
		},
		{
			name: "all passing",
			results: []CheckResult{
				{Name: "a", Passed: true},
				{Name: "b", Passed: true},
			},
			wantTotal: 2, wantPassed: 2, wantPass: true,
		},
		{
			name: "mixed results",
			results: []CheckResult{
				{Name: "a", Passed: true},
				{Name: "b", Passed: false, Error: "missing token"},
				{Name: "c", Passed: false, Error: "missing token"},
			},
			wantTotal: 3, wantPassed: 1, wantPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewGradeReport("ex-1", tt.results, time.Millisecond)

			if report.TotalChecks != tt.wantTotal {
				t.Errorf("TotalChecks = %d, want %d", report.TotalChecks, tt.wantTotal)
			}
			if report.PassedChecks != tt.wantPassed {
				t.Errorf("PassedChecks = %d, want %d", report.PassedChecks, tt.wantPassed)
			}
			if report.Passed() != tt.wantPass {
				t.Errorf("Passed() = %v, want %v", report.Passed(), tt.wantPass)
			}
			if got := report.PassedChecks + report.FailedChecks(); got != report.TotalChecks {
				t.Errorf("passed+failed = %d, want %d", got, report.TotalChecks)
			}
		})
	}
}

func TestExerciseValidate(t *testing.T) {
	valid := Exercise{
		ID:         "counter-basics",
		Title:      "Counter Basics",
		Category:   "react-hooks",
		Difficulty: 2,
		Checks: []CheckSpec{
			{Name: "Counter uses useState", RequiredContent: []string{"useState"}},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid exercise, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(e *Exercise)
		wantErr string
	}{
		{
			name:    "missing id",
			mutate:  func(e *Exercise) { e.ID = "" },
			wantErr: "missing an id",
		},
		{
			name:    "missing title",
			mutate:  func(e *Exercise) { e.Title = "" },
			wantErr: "missing a title",
		},
		{
			name:    "difficulty out of range",
			mutate:  func(e *Exercise) { e.Difficulty = 9 },
			wantErr: "difficulty",
		},
		{
			name:    "no checks",
			mutate:  func(e *Exercise) { e.Checks = nil },
			wantErr: "no checks",
		},
		{
			name: "check without name",
			mutate: func(e *Exercise) {
				e.Checks = []CheckSpec{{RequiredContent: []string{"useState"}}}
			},
			wantErr: "missing a name",
		},
		{
			name: "check without conditions",
			mutate: func(e *Exercise) {
				e.Checks = []CheckSpec{{Name: "empty check"}}
			},
			wantErr: "no conditions",
		},
		{
			name: "custom validation without error text",
			mutate: func(e *Exercise) {
				e.Checks = []CheckSpec{{
					Name:             "custom",
					CustomValidation: func(string) bool { return true },
				}}
			},
			wantErr: "no error message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := valid
			ex.Checks = append([]CheckSpec(nil), valid.Checks...)
			tt.mutate(&ex)

			err := ex.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExtractedRegionFound(t *testing.T) {
	if (ExtractedRegion{DeclarationName: "Foo"}).Found() {
		t.Error("empty body should not count as found")
	}
	if !(ExtractedRegion{DeclarationName: "Foo", Body: "return 1;"}).Found() {
		t.Error("non-empty body should count as found")
	}
}
