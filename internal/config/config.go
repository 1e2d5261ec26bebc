// Package config provides configuration loading and validation for the
// analyzer CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds settings shared by the CLI and the HTTP server. All fields
// are optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Analysis defaults
	Role            string `json:"role,omitempty"`             // Target role name from the knowledge base
	Industry        string `json:"industry,omitempty"`         // Salary table to use (default Tech)
	Location        string `json:"location,omitempty"`         // Location for salary adjustment
	TimeframeMonths int    `json:"timeframe_months,omitempty"` // Roadmap horizon in months

	// Knowledge base
	DataDir string `json:"data_dir,omitempty"` // Directory overriding the embedded datasets

	// Batch
	Workers int `json:"workers,omitempty"` // Concurrent analyses in batch mode

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Debug-level logging
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Industry:        "Tech",
		TimeframeMonths: 6,
		Workers:         4,
		ListenAddr:      ":8080",
	}
}

// LoadConfig loads configuration from a JSON file.
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

// FromEnv overlays environment variables onto the config. Environment
// values win over file values so deployments can override without editing
// files. Call after godotenv has populated the process environment.
func (c *Config) FromEnv() error {
	if v := os.Getenv("ANALYZER_ROLE"); v != "" {
		c.Role = v
	}
	if v := os.Getenv("ANALYZER_INDUSTRY"); v != "" {
		c.Industry = v
	}
	if v := os.Getenv("ANALYZER_LOCATION"); v != "" {
		c.Location = v
	}
	if v := os.Getenv("ANALYZER_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("ANALYZER_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("ANALYZER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ANALYZER_WORKERS %q: %w", v, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.TimeframeMonths < 0 {
		return fmt.Errorf("config error: 'timeframe_months' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.DataDir != "" {
		if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: data directory not found: %s", c.DataDir)
		}
	}
	return nil
}

// MergeWithDefaults fills empty fields from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.TimeframeMonths == 0 {
		result.TimeframeMonths = defaults.TimeframeMonths
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	return result
}
