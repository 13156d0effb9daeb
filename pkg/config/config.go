package config

import (
	"path/filepath"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Organize OrganizeConfig `yaml:"organize"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OrganizeConfig holds organize-related settings
type OrganizeConfig struct {
	OnCollision models.CollisionPolicy `yaml:"on_collision"`
	Exclude     []string               `yaml:"exclude"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Progress bar for verbose runs on a terminal
	Color    bool   `yaml:"color"`    // Colored output on a terminal
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // Log file path (empty = no logging)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Organize: OrganizeConfig{
			OnCollision: models.CollisionOverwrite,
			Exclude:     []string{},
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: false,
			Color:    true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !c.Organize.OnCollision.Valid() {
		return &models.ValidationError{
			Field:   "organize.on_collision",
			Message: "must be 'overwrite' or 'fail'",
		}
	}

	for _, pattern := range c.Organize.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return &models.ValidationError{
				Field:   "organize.exclude",
				Message: "malformed pattern " + pattern,
			}
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
