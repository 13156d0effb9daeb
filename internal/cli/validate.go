package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/sortnorris/pkg/config"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/organize"
)

// validateOrganizeFlags validates the merged configuration and the flags
// that have no config counterpart
func validateOrganizeFlags(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := organize.ValidatePatterns(cfg.Organize.Exclude); err != nil {
		return err
	}

	validReportFormats := map[string]bool{
		"human": true,
		"json":  true,
		"yaml":  true,
	}
	if !validReportFormats[organizeFlags.ReportFormat] {
		return fmt.Errorf("invalid report format: %s (valid: human, json, yaml)", organizeFlags.ReportFormat)
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	return config.Load(globalFlags.ConfigFile)
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	// Collision policy
	if organizeFlags.OnCollision != "" {
		cfg.Organize.OnCollision = models.CollisionPolicy(organizeFlags.OnCollision)
	}

	// Exclude patterns
	if len(organizeFlags.Exclude) > 0 {
		cfg.Organize.Exclude = organizeFlags.Exclude
	}

	// Output format
	if organizeFlags.Output != "" {
		cfg.Output.Format = organizeFlags.Output
	}

	if organizeFlags.Progress {
		cfg.Output.Progress = true
	}

	if organizeFlags.NoColor {
		cfg.Output.Color = false
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Logging
	if organizeFlags.LogFile != "" {
		cfg.Logging.File = organizeFlags.LogFile
	}
	if organizeFlags.LogFormat != "" {
		cfg.Logging.Format = organizeFlags.LogFormat
	}
	if organizeFlags.LogLevel != "" {
		cfg.Logging.Level = organizeFlags.LogLevel
	}
}

// createOperation creates an organize operation from configuration
func createOperation(cfg *config.Config, directory string) (*models.OrganizeOperation, error) {
	operation := &models.OrganizeOperation{
		ID:              uuid.New().String(),
		Directory:       directory,
		Verbose:         globalFlags.Verbose,
		OnCollision:     cfg.Organize.OnCollision,
		ExcludePatterns: cfg.Organize.Exclude,
		CreatedAt:       time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
