package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// reportDocument is the serialized form of a MoveReport shared by the
// JSON formatter and report files
type reportDocument struct {
	OperationID string          `json:"operation_id" yaml:"operation_id"`
	Directory   string          `json:"directory" yaml:"directory"`
	Status      string          `json:"status" yaml:"status"`
	StartTime   string          `json:"start_time" yaml:"start_time"`
	Duration    string          `json:"duration" yaml:"duration"`
	DurationMs  int64           `json:"duration_ms" yaml:"duration_ms"`
	Stats       statsDocument   `json:"stats" yaml:"stats"`
	DirsCreated []string        `json:"dirs_created,omitempty" yaml:"dirs_created,omitempty"`
	Moves       []moveDocument  `json:"moves" yaml:"moves"`
	Errors      []errorDocument `json:"errors,omitempty" yaml:"errors,omitempty"`
	Events      []JSONEvent     `json:"events,omitempty" yaml:"events,omitempty"`
}

type statsDocument struct {
	FilesScanned      int   `json:"files_scanned" yaml:"files_scanned"`
	FilesMatched      int   `json:"files_matched" yaml:"files_matched"`
	FilesUnmatched    int   `json:"files_unmatched" yaml:"files_unmatched"`
	FilesExcluded     int   `json:"files_excluded" yaml:"files_excluded"`
	EntriesSkipped    int   `json:"entries_skipped" yaml:"entries_skipped"`
	FilesMoved        int   `json:"files_moved" yaml:"files_moved"`
	FilesFailed       int   `json:"files_failed" yaml:"files_failed"`
	FilesNotAttempted int   `json:"files_not_attempted" yaml:"files_not_attempted"`
	DirsCreated       int   `json:"dirs_created" yaml:"dirs_created"`
	BytesMoved        int64 `json:"bytes_moved" yaml:"bytes_moved"`
}

type moveDocument struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Category    string `json:"category" yaml:"category"`
	Status      string `json:"status" yaml:"status"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

type errorDocument struct {
	Path      string `json:"path" yaml:"path"`
	Operation string `json:"operation" yaml:"operation"`
	Error     string `json:"error" yaml:"error"`
}

func newReportDocument(report *models.MoveReport) reportDocument {
	s := report.Stats
	doc := reportDocument{
		OperationID: report.OperationID,
		Directory:   report.Directory,
		Status:      string(report.Status),
		StartTime:   report.StartTime.Format(time.RFC3339),
		Duration:    report.Duration.Round(time.Millisecond).String(),
		DurationMs:  report.Duration.Milliseconds(),
		Stats: statsDocument{
			FilesScanned:      s.FilesScanned,
			FilesMatched:      s.FilesMatched,
			FilesUnmatched:    s.FilesUnmatched,
			FilesExcluded:     s.FilesExcluded,
			EntriesSkipped:    s.EntriesSkipped,
			FilesMoved:        s.FilesMoved,
			FilesFailed:       s.FilesFailed,
			FilesNotAttempted: s.FilesNotAttempted,
			DirsCreated:       s.DirsCreated,
			BytesMoved:        s.BytesMoved,
		},
		DirsCreated: report.DirsCreated,
		Moves:       make([]moveDocument, 0, len(report.Moves)),
	}

	for _, m := range report.Moves {
		doc.Moves = append(doc.Moves, moveDocument{
			Source:      m.Source,
			Destination: m.Destination,
			Category:    string(m.Category),
			Status:      string(m.Status),
			Error:       m.Error,
		})
	}
	for _, e := range report.Errors {
		doc.Errors = append(doc.Errors, errorDocument{
			Path:      e.FilePath,
			Operation: e.Operation,
			Error:     e.Error,
		})
	}
	return doc
}

// WriteReport writes the move report to path.
// Format can be "human", "json" or "yaml".
func WriteReport(report *models.MoveReport, path string, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := EncodeReport(file, report, format); err != nil {
		return err
	}
	return file.Close()
}

// EncodeReport writes the move report to w in the given format
func EncodeReport(w io.Writer, report *models.MoveReport, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(newReportDocument(report))
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(newReportDocument(report)); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return encoder.Close()
	default: // "human"
		return writeReportHuman(report, w)
	}
}

// writeReportHuman writes the move report in plain text, grouped by status
func writeReportHuman(report *models.MoveReport, w io.Writer) error {
	fmt.Fprintf(w, "Organize Report\n")
	fmt.Fprintf(w, "===============\n\n")
	fmt.Fprintf(w, "Operation: %s\n", report.OperationID)
	fmt.Fprintf(w, "Directory: %s\n", report.Directory)
	fmt.Fprintf(w, "Started:   %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Fprintf(w, "Status:    %s\n\n", report.Status)

	if len(report.DirsCreated) > 0 {
		fmt.Fprintf(w, "Directories created (%d):\n", len(report.DirsCreated))
		for _, d := range report.DirsCreated {
			fmt.Fprintf(w, "  %s\n", d)
		}
		fmt.Fprintf(w, "\n")
	}

	sections := []struct {
		title   string
		records []models.MoveRecord
	}{
		{"Moved", report.Moved()},
		{"Failed", report.Failed()},
		{"Not attempted", report.NotAttempted()},
	}
	for _, section := range sections {
		if len(section.records) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d):\n", section.title, len(section.records))
		for _, m := range section.records {
			fmt.Fprintf(w, "  [%s] %s -> %s\n", m.Category, m.Source, m.Destination)
			if m.Error != "" {
				fmt.Fprintf(w, "      %s\n", m.Error)
			}
		}
		fmt.Fprintf(w, "\n")
	}

	if len(report.Moves) == 0 {
		fmt.Fprintf(w, "No files matched a category.\n")
	}

	return nil
}
