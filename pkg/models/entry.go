package models

import (
	"path/filepath"
	"time"
)

// ScanEntry pairs a regular file found during scan with its category.
// Path is stored as a value so nothing from the scan phase is held open
// until apply.
type ScanEntry struct {
	// Name is the file name within the organized directory
	Name string

	// Path is the absolute path of the file at scan time
	Path string

	// Category is the bucket the file was classified into
	Category Category

	// Size in bytes at scan time
	Size int64
}

// Destination returns the path the entry is moved to under root
func (e ScanEntry) Destination(root string) string {
	return filepath.Join(root, e.Category.Dir(), e.Name)
}

// MoveStatus tells what happened to a scan entry during apply
type MoveStatus string

const (
	// MoveMoved indicates the file now lives in its category directory
	MoveMoved MoveStatus = "moved"
	// MoveFailed indicates the rename failed and aborted the run
	MoveFailed MoveStatus = "failed"
	// MoveNotAttempted indicates the run stopped before reaching the file
	MoveNotAttempted MoveStatus = "not_attempted"
)

// MoveRecord is the outcome of one planned move
type MoveRecord struct {
	Source      string
	Destination string
	Category    Category
	Status      MoveStatus
	Error       string
	Timestamp   time.Time
}
