// Package fileutil locates submission files in a working tree so the grade
// command can be run with just an exercise id.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// submissionExtensions are the source extensions a submission may use.
var submissionExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

// skippedDirs are never descended into while searching for submissions.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

// FindSubmission searches root recursively for a source file whose base name
// (extension stripped) equals exerciseID. Exactly one match is required: no
// match and multiple matches are both errors, with the candidates listed so
// the learner can pass an explicit path instead.
func FindSubmission(root, exerciseID string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}

	var matches []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && (skippedDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !submissionExtensions[ext] {
			return nil
		}
		if strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())) == exerciseID {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no submission file named %s.{ts,tsx,js,jsx} found under %s", exerciseID, root)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple submission files match %s: %s (pass an explicit path)",
			exerciseID, strings.Join(matches, ", "))
	}
}
