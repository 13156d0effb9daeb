package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer io.Writer

	dim    *color.Color
	ok     *color.Color
	bad    *color.Color
	accent *color.Color
}

// NewHumanFormatter creates a new human-readable formatter.
// Colors are only emitted when useColor is true.
func NewHumanFormatter(useColor bool) *HumanFormatter {
	f := &HumanFormatter{
		dim:    color.New(color.Faint),
		ok:     color.New(color.FgGreen),
		bad:    color.New(color.FgRed, color.Bold),
		accent: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{f.dim, f.ok, f.bad, f.accent} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, directory string) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer

	fmt.Fprintf(f.writer, "Organizing %s\n", directory)
	return nil
}

// Progress reports each event on its own line
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	if f.writer == nil {
		return nil
	}

	switch update.Type {
	case EventDirListed:
		if update.IsDir {
			f.dim.Fprintf(f.writer, "  %s/\n", update.Name)
		} else {
			f.dim.Fprintf(f.writer, "  %s\n", update.Name)
		}

	case EventDirCreated:
		fmt.Fprintf(f.writer, "%s created %s\n", f.accent.Sprintf("[%s]", update.Category), update.Destination)

	case EventFileMoved:
		fmt.Fprintf(f.writer, "[%d/%d] %s %s -> %s\n",
			update.CurrentFile, update.TotalFiles,
			f.ok.Sprint("✓"), update.Source, update.Destination)

	case EventFileError:
		fmt.Fprintf(f.writer, "[%d/%d] %s %s: %v\n",
			update.CurrentFile, update.TotalFiles,
			f.bad.Sprint("✗"), update.Source, update.Error)
	}

	return nil
}

// Complete finalizes output and displays summary
func (f *HumanFormatter) Complete(report *models.MoveReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}
	writeSummary(f.writer, report, f.ok, f.bad)
	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		f.bad.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

func writeSummary(w io.Writer, report *models.MoveReport, ok, bad *color.Color) {
	s := report.Stats

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Organized %s in %s\n", report.Directory, report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Scanned:\n")
	fmt.Fprintf(w, "    Regular files:   %d\n", s.FilesScanned)
	fmt.Fprintf(w, "    Matched:         %d\n", s.FilesMatched)
	fmt.Fprintf(w, "    Unmatched:       %d\n", s.FilesUnmatched)
	fmt.Fprintf(w, "    Excluded:        %d\n", s.FilesExcluded)
	fmt.Fprintf(w, "    Other entries:   %d\n", s.EntriesSkipped)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Operations:\n")
	fmt.Fprintf(w, "    Files moved:     %d (%s)\n", s.FilesMoved, formatBytes(s.BytesMoved))
	fmt.Fprintf(w, "    Files failed:    %d\n", s.FilesFailed)
	fmt.Fprintf(w, "    Not attempted:   %d\n", s.FilesNotAttempted)
	fmt.Fprintf(w, "    Dirs created:    %d\n", s.DirsCreated)
	fmt.Fprintf(w, "\n")

	status := ok
	if report.Status != models.StatusSuccess {
		status = bad
	}
	fmt.Fprintf(w, "Status: %s\n", status.Sprint(report.Status))

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors:\n")
		for _, err := range report.Errors {
			fmt.Fprintf(w, "  %s: %s\n", err.FilePath, err.Error)
		}
	}
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
