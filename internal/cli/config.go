package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdejongh/sortnorris/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or create the sortnorris configuration file.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return usageError(err)
			}

			out := cmd.OutOrStdout()
			exclude := "(none)"
			if len(cfg.Organize.Exclude) > 0 {
				exclude = strings.Join(cfg.Organize.Exclude, ", ")
			}
			logFile := cfg.Logging.File
			if logFile == "" {
				logFile = "(disabled)"
			}

			fmt.Fprintf(out, "On Collision: %s\n", cfg.Organize.OnCollision)
			fmt.Fprintf(out, "Exclude: %s\n", exclude)
			fmt.Fprintf(out, "Output Format: %s\n", cfg.Output.Format)
			fmt.Fprintf(out, "Progress: %t\n", cfg.Output.Progress)
			fmt.Fprintf(out, "Color: %t\n", cfg.Output.Color)
			fmt.Fprintf(out, "Log Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "Log Level: %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "Log File: %s\n", logFile)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := globalFlags.ConfigFile
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return usageError(err)
				}
			}

			if exists(path) && !force {
				return usageError(fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path))
			}

			if err := config.SaveToFile(config.Default(), path); err != nil {
				return usageError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")

	return cmd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
