// Package config loads the optional varspect configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds inspector and CLI defaults.
type Config struct {
	Inspector InspectorConfig `yaml:"inspector"`
	Logging   LoggingConfig   `yaml:"logging"`
	Color     bool            `yaml:"color"`
}

// InspectorConfig mirrors the inspector's construction parameters.
type InspectorConfig struct {
	Exclude        []string `yaml:"exclude"`
	Descending     bool     `yaml:"descending"`
	MaxValueLength int      `yaml:"maxValueLength"`
	MaxRows        int      `yaml:"maxRows"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	SeqURL string `yaml:"seqUrl"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Inspector: InspectorConfig{
			MaxValueLength: 300,
			MaxRows:        300,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and validates a YAML configuration file. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Inspector.MaxValueLength < 0 {
		return fmt.Errorf("inspector.maxValueLength must not be negative, got %d", c.Inspector.MaxValueLength)
	}
	if c.Inspector.MaxRows < 0 {
		return fmt.Errorf("inspector.maxRows must not be negative, got %d", c.Inspector.MaxRows)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
