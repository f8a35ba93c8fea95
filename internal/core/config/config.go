// Package config provides configuration management for showwhen tooling.
package config

import (
	"fmt"
	"net/url"
)

// Config holds configuration for the showwhen command-line tooling.
type Config struct {
	DatabaseURL string // sqlite://path or postgres://...
	DataDir     string // scratch directory for exported payloads
	LintLimit   int    // max stored rules scanned per lint run
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		DatabaseURL: "",
		DataDir:     "./data",
		LintLimit:   10000,
	}
}

// Validate checks value ranges and the database URL scheme.
// An empty database URL is allowed; commands that need one check themselves.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.LintLimit <= 0 {
		return fmt.Errorf("lint_limit must be positive, got %d", c.LintLimit)
	}
	if c.DatabaseURL != "" {
		u, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("invalid database URL: %w", err)
		}
		switch u.Scheme {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("unsupported database scheme: %s (expected sqlite or postgres)", u.Scheme)
		}
	}
	return nil
}
