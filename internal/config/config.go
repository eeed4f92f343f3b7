// Package config provides configuration loading and validation for the
// RankRite server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// History backends supported by the service.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Storage
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	HistoryBackend string `json:"history_backend,omitempty"` // "postgres" or "memory"

	// Analysis
	StopwordsFile    string `json:"stopwords_file,omitempty"`     // Path to a custom stopword list
	DisableStemming  bool   `json:"disable_stemming,omitempty"`   // Turn off suffix stripping
	MatchedTermCount int    `json:"matched_term_count,omitempty"` // Top terms reported per resume

	// Logging
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn or error
	LogJSON  bool   `json:"log_json,omitempty"`  // JSON encoder instead of console
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv fills unset fields from environment variables. It is applied
// after the config file so the environment wins only where the file is
// silent, matching how flags layer on top of both.
func (c *Config) FromEnv() error {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.HistoryBackend == "" {
		c.HistoryBackend = os.Getenv("HISTORY_BACKEND")
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if c.Port == 0 {
		if raw := os.Getenv("PORT"); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid PORT value %q: %w", raw, err)
			}
			c.Port = port
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.MatchedTermCount < 0 {
		return fmt.Errorf("config error: 'matched_term_count' must be non-negative")
	}

	switch c.HistoryBackend {
	case "", BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config error: unknown history backend %q", c.HistoryBackend)
	}

	// Validate file paths exist (if specified)
	if c.StopwordsFile != "" {
		if _, err := os.Stat(c.StopwordsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: stopwords file not found: %s", c.StopwordsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.HistoryBackend == "" {
		result.HistoryBackend = defaults.HistoryBackend
	}
	if result.StopwordsFile == "" {
		result.StopwordsFile = defaults.StopwordsFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MatchedTermCount == 0 {
		result.MatchedTermCount = defaults.MatchedTermCount
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Port:             8080,
		HistoryBackend:   BackendMemory,
		MatchedTermCount: 5,
		LogLevel:         "info",
	}
}
