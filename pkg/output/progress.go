package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sdejongh/sortnorris/pkg/models"
)

const progressTemplate = `{{counters . }} {{bar . "[" "=" ">" " " "]"}} {{percent . }} {{string . "file"}}`

// ProgressFormatter renders moves as a progress bar. Errors and the
// final summary are printed below the bar once it is finished.
type ProgressFormatter struct {
	writer    io.Writer
	bar       *pb.ProgressBar
	done      bool
	termWidth int // Terminal width (for preventing line wrapping)
	ok        *color.Color
	bad       *color.Color
}

// NewProgressFormatter creates a new progress bar formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{
		ok:  color.New(color.FgGreen),
		bad: color.New(color.FgRed, color.Bold),
	}
}

// Start initializes the formatter. The bar itself is created on the
// first event that carries a total.
func (f *ProgressFormatter) Start(writer io.Writer, directory string) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer

	if file, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			f.termWidth = width
		}
	}
	if f.termWidth == 0 {
		f.termWidth = 120
	}

	fmt.Fprintf(writer, "Organizing %s\n", directory)
	return nil
}

// Progress advances the bar on each move
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	switch update.Type {
	case EventDirCreated:
		f.ensureBar(update.TotalFiles)
		if f.bar != nil {
			f.bar.Set("file", "mkdir "+update.Category.Dir())
		}

	case EventFileMoved:
		f.ensureBar(update.TotalFiles)
		if f.bar != nil {
			f.bar.Set("file", filepath.Join(update.Category.Dir(), update.Name))
			f.bar.Increment()
		}

	case EventFileError:
		f.finishBar()
		if f.writer != nil {
			fmt.Fprintf(f.writer, "%s %s: %v\n", f.bad.Sprint("✗"), update.Source, update.Error)
		}
	}
	return nil
}

// Complete stops the bar and prints the summary
func (f *ProgressFormatter) Complete(report *models.MoveReport) error {
	f.finishBar()
	if f.writer == nil {
		f.writer = io.Discard
	}
	writeSummary(f.writer, report, f.ok, f.bad)
	return nil
}

// Error stops the bar and prints the error
func (f *ProgressFormatter) Error(err error) error {
	f.finishBar()
	if f.writer != nil {
		f.bad.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}

func (f *ProgressFormatter) ensureBar(total int) {
	if f.bar != nil || f.done || total <= 0 || f.writer == nil {
		return
	}
	f.bar = pb.ProgressBarTemplate(progressTemplate).New(total)
	f.bar.SetWriter(f.writer)
	f.bar.SetWidth(f.termWidth)
	f.bar.Set("file", "")
	f.bar.Start()
}

func (f *ProgressFormatter) finishBar() {
	if f.bar == nil {
		return
	}
	f.bar.Set("file", "")
	f.bar.Finish()
	f.bar = nil
	f.done = true
}
