package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct {
	writer io.Writer
	events []JSONEvent
}

// JSONEvent represents a single event recorded during the run
type JSONEvent struct {
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Type        string    `json:"type" yaml:"type"`
	Category    string    `json:"category,omitempty" yaml:"category,omitempty"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string    `json:"destination,omitempty" yaml:"destination,omitempty"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		events: make([]JSONEvent, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, directory string) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Progress records the event; nothing is written until Complete so the
// output stays a single parseable document
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	if update.Type == EventDirListed {
		return nil
	}
	event := JSONEvent{
		Timestamp:   time.Now(),
		Type:        update.Type,
		Category:    string(update.Category),
		Source:      update.Source,
		Destination: update.Destination,
	}
	if update.Error != nil {
		event.Error = update.Error.Error()
	}
	f.events = append(f.events, event)
	return nil
}

// Complete writes the report as one JSON document
func (f *JSONFormatter) Complete(report *models.MoveReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	doc := newReportDocument(report)
	doc.Events = f.events

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Error records a fatal error event
func (f *JSONFormatter) Error(err error) error {
	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "error",
		Error:     err.Error(),
	})
	return nil
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
