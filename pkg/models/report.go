package models

import (
	"time"
)

// MoveReport represents the results of an organize run
type MoveReport struct {
	// Operation details
	OperationID string
	Directory   string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats Statistics

	// Subdirectories created during this run (existing ones are not listed)
	DirsCreated []string

	// One record per scan entry, in scan order
	Moves []MoveRecord

	// Errors encountered
	Errors []OrganizeError

	// Overall status
	Status RunStatus
}

// Statistics holds organize run metrics
type Statistics struct {
	FilesScanned   int // Regular files seen in the directory
	FilesMatched   int
	FilesUnmatched int // Left in place: no extension or no category
	FilesExcluded  int // Left in place by an exclude pattern
	EntriesSkipped int // Directories, special files, dangling links

	FilesMoved        int
	FilesFailed       int
	FilesNotAttempted int

	DirsCreated  int
	DirsExisting int

	BytesMoved int64
}

// RunStatus represents the overall result
type RunStatus string

const (
	// StatusSuccess indicates every matched file was moved
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates some files were moved before a failure
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates the run failed before moving anything
	StatusFailed RunStatus = "failed"
)

// OrganizeError represents an error during the run
type OrganizeError struct {
	FilePath  string
	Operation string
	Error     string
	Timestamp time.Time
}

// ExitCode returns the appropriate exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}

// Moved returns the records that completed
func (r *MoveReport) Moved() []MoveRecord {
	return r.filter(MoveMoved)
}

// Failed returns the record that aborted the run, if any
func (r *MoveReport) Failed() []MoveRecord {
	return r.filter(MoveFailed)
}

// NotAttempted returns the records the run never reached
func (r *MoveReport) NotAttempted() []MoveRecord {
	return r.filter(MoveNotAttempted)
}

func (r *MoveReport) filter(status MoveStatus) []MoveRecord {
	var out []MoveRecord
	for _, m := range r.Moves {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out
}
