// Package config loads the ftu configuration file and merges it with
// defaults and CLI flag overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents ftu configuration options.
type Config struct {
	// CatalogDir is the exercise catalog root directory.
	CatalogDir string `yaml:"catalog_dir"`

	// DBPath is the path to the progress database.
	DBPath string `yaml:"db_path"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// NoColor disables colored terminal output even on a TTY.
	NoColor bool `yaml:"no_color"`

	// GradeTimeout bounds a single grading run. Guards against
	// pathological submission sizes causing slow scans.
	GradeTimeout time.Duration `yaml:"grade_timeout"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		CatalogDir:   "exercises",
		DBPath:       filepath.Join(".ftu", "progress.db"),
		LogLevel:     "info",
		NoColor:      false,
		GradeTimeout: 10 * time.Second,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are authored as strings ("10s"), so unmarshal into a
	// shadow struct first and merge non-zero values over the defaults.
	type yamlConfig struct {
		CatalogDir   string `yaml:"catalog_dir"`
		DBPath       string `yaml:"db_path"`
		LogLevel     string `yaml:"log_level"`
		NoColor      bool   `yaml:"no_color"`
		GradeTimeout string `yaml:"grade_timeout"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.CatalogDir != "" {
		cfg.CatalogDir = yamlCfg.CatalogDir
	}
	if yamlCfg.DBPath != "" {
		cfg.DBPath = yamlCfg.DBPath
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.NoColor {
		cfg.NoColor = yamlCfg.NoColor
	}
	if yamlCfg.GradeTimeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.GradeTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid grade_timeout format %q: %w", yamlCfg.GradeTimeout, err)
		}
		cfg.GradeTimeout = timeout
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .ftu/config.yaml in the
// specified directory, falling back to defaults when absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".ftu", "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration. Non-nil flag
// values override configuration values.
func (c *Config) MergeWithFlags(catalogDir *string, dbPath *string, noColor *bool, gradeTimeout *time.Duration) {
	if catalogDir != nil {
		c.CatalogDir = *catalogDir
	}
	if dbPath != nil {
		c.DBPath = *dbPath
	}
	if noColor != nil {
		c.NoColor = *noColor
	}
	if gradeTimeout != nil {
		c.GradeTimeout = *gradeTimeout
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.CatalogDir == "" {
		return fmt.Errorf("catalog_dir cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.GradeTimeout <= 0 {
		return fmt.Errorf("grade_timeout must be > 0, got %v", c.GradeTimeout)
	}

	return nil
}
