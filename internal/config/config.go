// Package config provides configuration management for railbook.
//
// Config file locations (priority order):
//  1. $RAILBOOK_CONFIG
//  2. ./railbook.yaml
//  3. $XDG_CONFIG_HOME/railbook/config.yaml
//  4. ~/.config/railbook/config.yaml
//  5. /etc/railbook/config.yaml
//
// Environment variables override file values, see ApplyEnv.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvLogLevel     = "RAILBOOK_LOG_LEVEL"
	EnvLogFormat    = "RAILBOOK_LOG_FORMAT"
	EnvExportFormat = "RAILBOOK_EXPORT_FORMAT"
	EnvSQLitePath   = "RAILBOOK_SQLITE_PATH"
)

// Load finds and loads the config file, or returns defaults if none found.
// Environment overrides are applied in both cases.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		cfg := DefaultConfig()
		cfg.ApplyEnv()
		return cfg, "", cfg.Validate()
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Log:     LogConfig{Level: "info", Format: "text"},
		Export: ExportConfig{
			Format:  "yaml",
			Timeout: Duration(30 * time.Second),
		},
		Metrics:  MetricsConfig{Enabled: false},
		Security: SecurityConfig{PasswordCost: bcrypt.DefaultCost},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Export.Format == "" {
		c.Export.Format = defaults.Export.Format
	}
	if c.Export.Timeout == 0 {
		c.Export.Timeout = defaults.Export.Timeout
	}
	if c.Security.PasswordCost == 0 {
		c.Security.PasswordCost = defaults.Security.PasswordCost
	}
}

// ApplyEnv overrides config values with the RAILBOOK_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvExportFormat); v != "" {
		c.Export.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvSQLitePath); v != "" {
		c.Export.SQLitePath = v
	}
}

// Validate rejects values the rest of the program cannot act on
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q, must be debug, info, warn or error", c.Log.Level)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q, must be json or text", c.Log.Format)
	}

	switch c.Export.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid export format %q, must be json or yaml", c.Export.Format)
	}

	if c.Security.PasswordCost < bcrypt.MinCost || c.Security.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("invalid password cost %d, must be between %d and %d",
			c.Security.PasswordCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Log: %s/%s, Export: %s", c.Log.Level, c.Log.Format, c.Export.Format)
	if c.Export.SQLitePath != "" {
		summary += fmt.Sprintf(" + sqlite %s", c.Export.SQLitePath)
	}
	summary += fmt.Sprintf(", Metrics: %t", c.Metrics.Enabled)
	return summary
}
