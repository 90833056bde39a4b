package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version  int            `yaml:"version"`
	Log      LogConfig      `yaml:"log"`
	Export   ExportConfig   `yaml:"export"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Security SecurityConfig `yaml:"security"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level     string `yaml:"level"`  // debug, info, warn, error
	Format    string `yaml:"format"` // json, text
	AddSource bool   `yaml:"add_source,omitempty"`
}

// ExportConfig holds snapshot export settings
type ExportConfig struct {
	Format     string   `yaml:"format"`                // json, yaml
	SQLitePath string   `yaml:"sqlite_path,omitempty"` // archive written next to the export
	Timeout    Duration `yaml:"timeout"`
}

// MetricsConfig holds metrics settings
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"` // print repository metrics after each command
}

// SecurityConfig holds password hashing settings
type SecurityConfig struct {
	PasswordCost int `yaml:"password_cost"` // bcrypt cost
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
