package output

import (
	"io"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Event types sent through ProgressUpdate.Type
const (
	// EventDirListed is emitted once per entry of the directory at startup
	EventDirListed = "dir_listed"
	// EventDirCreated is emitted when a category subdirectory is created
	EventDirCreated = "dir_created"
	// EventFileMoved is emitted after a file has been moved
	EventFileMoved = "file_moved"
	// EventFileError is emitted when a move fails
	EventFileError = "file_error"
)

// ProgressUpdate represents a progress notification during a run
type ProgressUpdate struct {
	Type        string
	Category    models.Category
	Name        string
	Source      string
	Destination string
	IsDir       bool
	CurrentFile int
	TotalFiles  int
	Error       error
}

// Formatter defines the interface for output formatting.
// Implementations include human-readable, progress bar and JSON formatters.
type Formatter interface {
	// Start initializes the formatter for a new run
	Start(writer io.Writer, directory string) error

	// Progress reports an event as it happens
	Progress(update ProgressUpdate) error

	// Complete finalizes output and displays summary
	Complete(report *models.MoveReport) error

	// Error reports a fatal error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
