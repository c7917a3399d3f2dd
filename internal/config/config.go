// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to the gift log CSV
	Output string `json:"output,omitempty"` // Path for the enriched CSV (base path in both-mode)

	// Run behavior
	Mode    string `json:"mode,omitempty"`  // Scoring regime: discrete, continuous, or both
	AsOf    string `json:"as_of,omitempty"` // As-of date (YYYY-MM-DD); recency is measured against it
	Verbose bool   `json:"verbose,omitempty"`

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required-field checks happen after merging with CLI flags, not here.
func (c *Config) Validate() error {
	switch c.Mode {
	case "", "discrete", "continuous", "both":
	default:
		return fmt.Errorf("config error: 'mode' must be discrete, continuous, or both, got %q", c.Mode)
	}

	if c.AsOf != "" {
		if _, err := time.Parse("2006-01-02", c.AsOf); err != nil {
			return fmt.Errorf("config error: 'as_of' must be YYYY-MM-DD: %w", err)
		}
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.AsOf == "" {
		result.AsOf = defaults.AsOf
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
