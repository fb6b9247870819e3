// Package catalog loads the exercise catalog from disk into an in-memory
// registry. The catalog is loaded once at startup and read-only thereafter.
//
// Layout on disk: the catalog root contains one directory per category, and
// each category directory contains one YAML descriptor per exercise plus its
// markdown instructions and optional scaffold/solution files.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/models"
)

// Catalog is the loaded exercise registry, ordered by category name and,
// within a category, by exercise order then id.
type Catalog struct {
	Categories []models.Category

	byID map[string]*models.Exercise
}

// Load walks the catalog root and parses every exercise descriptor.
// Malformed content fails the whole load: authoring mistakes surface here,
// at load time, never at grading time.
func Load(root string) (*Catalog, error) {
	return LoadWithObserver(root, nil)
}

// LoadWithObserver is Load with a callback invoked before each category is
// parsed, used by the CLI to drive its loading progress display.
func LoadWithObserver(root string, observe func(category string)) (*Catalog, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access catalog directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog path is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	catalog := &Catalog{byID: make(map[string]*models.Exercise)}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if observe != nil {
			observe(entry.Name())
		}
		category, err := loadCategory(filepath.Join(root, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		if len(category.Exercises) == 0 {
			continue
		}
		catalog.Categories = append(catalog.Categories, category)
	}

	sort.Slice(catalog.Categories, func(i, j int) bool {
		return catalog.Categories[i].Name < catalog.Categories[j].Name
	})

	for ci := range catalog.Categories {
		exercises := catalog.Categories[ci].Exercises
		for ei := range exercises {
			ex := &exercises[ei]
			if _, dup := catalog.byID[ex.ID]; dup {
				return nil, fmt.Errorf("duplicate exercise id %q in catalog", ex.ID)
			}
			catalog.byID[ex.ID] = ex
		}
	}

	return catalog, nil
}

// loadCategory parses all exercise descriptors in one category directory.
func loadCategory(dir, name string) (models.Category, error) {
	category := models.Category{Name: name}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return category, fmt.Errorf("failed to read category %s: %w", name, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isExerciseFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		exercise, err := ParseExerciseFile(path)
		if err != nil {
			return category, fmt.Errorf("failed to parse %s: %w", filepath.Join(name, entry.Name()), err)
		}
		exercise.Category = name
		category.Exercises = append(category.Exercises, *exercise)
	}

	sort.Slice(category.Exercises, func(i, j int) bool {
		a, b := category.Exercises[i], category.Exercises[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})

	return category, nil
}

// isExerciseFile reports whether a filename is an exercise descriptor.
func isExerciseFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// Exercise looks up an exercise by id.
func (c *Catalog) Exercise(id string) (*models.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// Len returns the total number of exercises across all categories.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// ExerciseIDs returns every exercise id in catalog order.
func (c *Catalog) ExerciseIDs() []string {
	ids := make([]string, 0, len(c.byID))
	for _, category := range c.Categories {
		for _, ex := range category.Exercises {
			ids = append(ids, ex.ID)
		}
	}
	return ids
}
