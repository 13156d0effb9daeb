package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sdejongh/sortnorris/internal/platform"
	"github.com/sdejongh/sortnorris/pkg/classify"
	"github.com/sdejongh/sortnorris/pkg/config"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/organize"
	"github.com/sdejongh/sortnorris/pkg/output"
	"github.com/sdejongh/sortnorris/pkg/storage"
)

// OrganizeFlags holds organize flags
type OrganizeFlags struct {
	List         bool
	Output       string
	OnCollision  string
	Exclude      []string
	Report       string
	ReportFormat string
	Progress     bool
	NoColor      bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var organizeFlags OrganizeFlags

// NewRootCommand creates the sortnorris command. Run without a subcommand
// it organizes the given directory, or the working directory.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortnorris [directory]",
		Short: "Sort files into category folders by extension",
		Long: `sortnorris moves the files of a directory into Archives, Code, Documents,
Music, Pictures and Videos subdirectories based on their extension.
Only the top level of the directory is organized. Files with an unknown
extension are left in place. The working directory is used when no
directory is given.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runOrganize,
	}

	AddGlobalFlags(cmd)
	addOrganizeFlags(cmd)

	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func addOrganizeFlags(cmd *cobra.Command) {
	organizeFlags = OrganizeFlags{}

	cmd.Flags().BoolVarP(&organizeFlags.List, "list", "l", false, "list categories and their extensions, then exit")
	cmd.Flags().StringVarP(&organizeFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().StringVar(&organizeFlags.OnCollision, "on-collision", "", "existing destination file: overwrite, fail (default overwrite)")
	cmd.Flags().StringSliceVar(&organizeFlags.Exclude, "exclude", []string{}, "glob patterns of file names to leave in place")
	cmd.Flags().StringVar(&organizeFlags.Report, "report", "", "write the move report to file")
	cmd.Flags().StringVar(&organizeFlags.ReportFormat, "report-format", "human", "move report format: human, json, yaml")
	cmd.Flags().BoolVar(&organizeFlags.Progress, "progress", false, "show a progress bar instead of one line per move (verbose mode)")
	cmd.Flags().BoolVar(&organizeFlags.NoColor, "no-color", false, "disable colored output")

	// Logging flags
	cmd.Flags().StringVar(&organizeFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&organizeFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&organizeFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return usageError(fmt.Errorf("failed to load config: %w", err))
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg)

	if err := validateOrganizeFlags(cfg); err != nil {
		return usageError(err)
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Quiet {
		out = io.Discard
	}

	table := classify.DefaultTable()
	if err := table.Validate(); err != nil {
		return usageError(fmt.Errorf("invalid category table: %w", err))
	}
	if organizeFlags.List {
		return output.WriteCategories(cmd.OutOrStdout(), table, cfg.Output.Format)
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	dir, err := platform.ResolveDirectory(arg)
	if err != nil {
		return usageError(err)
	}

	backend, err := storage.NewLocal(dir)
	if err != nil {
		return &ExitError{Code: 2, Err: &models.DirectoryReadError{Path: dir, Err: err}}
	}
	defer backend.Close()

	operation, err := createOperation(cfg, backend.Root())
	if err != nil {
		return usageError(fmt.Errorf("failed to create organize operation: %w", err))
	}

	logger, err := createLogger(cfg.Logging)
	if err != nil {
		return usageError(fmt.Errorf("failed to create logger: %w", err))
	}
	defer logger.Close()

	formatter := createFormatter(cfg, cmd.OutOrStdout())

	organizer := organize.NewOrganizer(
		backend,
		classify.New(table),
		formatter,
		logger,
		operation,
		organize.Config{Output: out},
	)

	report, runErr := organizer.Run(ctx)

	if organizeFlags.Report != "" && report != nil {
		if err := output.WriteReport(report, organizeFlags.Report, organizeFlags.ReportFormat); err != nil {
			return &ExitError{Code: 2, Err: fmt.Errorf("failed to write report: %w", err)}
		}
	}

	if runErr != nil {
		return &ExitError{Code: report.Status.ExitCode(), Err: fmt.Errorf("organize failed: %w", runErr)}
	}
	return nil
}

// createFormatter picks the output formatter for the run
func createFormatter(cfg *config.Config, w io.Writer) output.Formatter {
	if cfg.Output.Format == "json" {
		return output.NewJSONFormatter()
	}

	tty := isTerminal(w)
	if globalFlags.Verbose && cfg.Output.Progress && tty {
		return output.NewProgressFormatter()
	}
	return output.NewHumanFormatter(cfg.Output.Color && tty)
}

// createLogger creates a logger based on configuration
func createLogger(cfg config.LoggingConfig) (logging.Logger, error) {
	// If no log file specified, return null logger
	if cfg.File == "" {
		return logging.NewNullLogger(), nil
	}

	format := logging.FormatText
	if cfg.Format == "json" {
		format = logging.FormatJSON
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.File,
		Format:     format,
		Level:      logging.ParseLevel(cfg.Level),
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
