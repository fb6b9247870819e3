package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/justinelliottcobb/for-the-union-sub010/internal/catalog"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/config"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/display"
	"github.com/justinelliottcobb/for-the-union-sub010/internal/logger"
)

// resolveConfig loads .ftu/config.yaml from the working directory and layers
// any set CLI flags over it.
func resolveConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.LoadConfigFromDir(".")
	if err != nil {
		return nil, err
	}

	var catalogDir, dbPath *string
	var noColor *bool
	var timeout *time.Duration
	if flags.catalogDir != "" {
		catalogDir = &flags.catalogDir
	}
	if flags.dbPath != "" {
		dbPath = &flags.dbPath
	}
	if flags.noColor {
		noColor = &flags.noColor
	}
	if flags.timeout > 0 {
		timeout = &flags.timeout
	}
	cfg.MergeWithFlags(catalogDir, dbPath, noColor, timeout)
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger for a command run.
func newLogger(cfg *config.Config) *logger.ConsoleLogger {
	return logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
}

// loadCatalog loads the configured catalog, optionally showing per-category
// progress on output.
func loadCatalog(cfg *config.Config, output io.Writer, showProgress bool) (*catalog.Catalog, error) {
	if !showProgress {
		return catalog.Load(cfg.CatalogDir)
	}

	categories, err := countCategories(cfg.CatalogDir)
	if err != nil {
		return nil, err
	}

	progress := display.NewProgressIndicator(output, categories)
	progress.Start()
	cat, err := catalog.LoadWithObserver(cfg.CatalogDir, func(category string) {
		progress.Step(category)
	})
	if err != nil {
		return nil, err
	}
	progress.Complete(cat.Len())
	return cat, nil
}

// countCategories counts the category directories under the catalog root.
func countCategories(root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog directory: %w", err)
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() && entry.Name()[0] != '.' {
			count++
		}
	}
	return count, nil
}
