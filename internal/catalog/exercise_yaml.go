package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/models"
)

// exerciseYAML is the on-disk exercise descriptor schema.
type exerciseYAML struct {
	ID           string      `yaml:"id"`
	Title        string      `yaml:"title"`
	Difficulty   int         `yaml:"difficulty"`
	Order        int         `yaml:"order"`
	Instructions string      `yaml:"instructions"`
	Scaffold     string      `yaml:"scaffold"`
	Solution     string      `yaml:"solution"`
	Checks       []checkYAML `yaml:"checks"`
}

// checkYAML is one declarative check entry. The simple include/exclude
// fields map straight onto CheckSpec; min_length and any_of are builtin
// validators compiled into a CustomValidation closure.
type checkYAML struct {
	Name             string   `yaml:"name"`
	Target           string   `yaml:"target"`
	Required         []string `yaml:"required"`
	RequiredPatterns []string `yaml:"required_patterns"`
	Forbidden        []string `yaml:"forbidden"`
	MinLength        int      `yaml:"min_length"`
	AnyOf            []string `yaml:"any_of"`
	Error            string   `yaml:"error"`
}

// ParseExerciseFile reads and validates one exercise descriptor. Referenced
// instructions/scaffold/solution files must exist next to the descriptor.
func ParseExerciseFile(path string) (*models.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercise file: %w", err)
	}

	var raw exerciseYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse exercise YAML: %w", err)
	}

	exercise := &models.Exercise{
		ID:               raw.ID,
		Title:            raw.Title,
		Difficulty:       raw.Difficulty,
		Order:            raw.Order,
		InstructionsFile: resolveRelative(path, raw.Instructions),
		ScaffoldFile:     resolveRelative(path, raw.Scaffold),
		SolutionFile:     resolveRelative(path, raw.Solution),
	}

	for i, entry := range raw.Checks {
		spec, err := compileCheck(entry)
		if err != nil {
			return nil, fmt.Errorf("check %d (%s): %w", i+1, entry.Name, err)
		}
		exercise.Checks = append(exercise.Checks, spec)
	}

	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	for _, ref := range []string{exercise.InstructionsFile, exercise.ScaffoldFile, exercise.SolutionFile} {
		if ref == "" {
			continue
		}
		if _, err := os.Stat(ref); err != nil {
			return nil, fmt.Errorf("exercise %s references missing file %s", exercise.ID, filepath.Base(ref))
		}
	}

	return exercise, nil
}

// resolveRelative resolves a referenced file relative to the descriptor.
func resolveRelative(descriptorPath, ref string) string {
	if ref == "" {
		return ""
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(descriptorPath), ref)
}

// compileCheck converts one YAML check entry into a CheckSpec, building the
// builtin validators into a single CustomValidation.
func compileCheck(entry checkYAML) (models.CheckSpec, error) {
	spec := models.CheckSpec{
		Name:              entry.Name,
		TargetDeclaration: entry.Target,
		RequiredContent:   entry.Required,
		RequiredPatterns:  entry.RequiredPatterns,
		ForbiddenContent:  entry.Forbidden,
	}

	if entry.MinLength < 0 {
		return spec, fmt.Errorf("min_length must be >= 0, got %d", entry.MinLength)
	}

	var validators []func(string) bool
	var messages []string

	if entry.MinLength > 0 {
		minLength := entry.MinLength
		validators = append(validators, func(text string) bool {
			return len(strings.TrimSpace(text)) >= minLength
		})
		messages = append(messages, fmt.Sprintf("implementation must be at least %d characters", minLength))
	}

	if len(entry.AnyOf) > 0 {
		alternatives := entry.AnyOf
		validators = append(validators, func(text string) bool {
			for _, token := range alternatives {
				if strings.Contains(text, token) {
					return true
				}
			}
			return false
		})
		messages = append(messages, fmt.Sprintf("expected at least one of: %s", strings.Join(alternatives, ", ")))
	}

	if len(validators) > 0 {
		spec.CustomValidation = func(text string) bool {
			for _, validate := range validators {
				if !validate(text) {
					return false
				}
			}
			return true
		}
		spec.CustomError = entry.Error
		if spec.CustomError == "" {
			spec.CustomError = strings.Join(messages, "; ")
		}
	} else if entry.Error != "" {
		return spec, fmt.Errorf("error message is set but no custom condition (min_length/any_of) is configured")
	}

	return spec, nil
}
