package models

import (
	"errors"
	"fmt"
)

// ErrDestinationExists is returned by a move under CollisionFail when the
// destination is already taken
var ErrDestinationExists = errors.New("destination already exists")

// DirectoryReadError means the target directory is missing, not a
// directory, or could not be listed. Nothing was created or moved.
type DirectoryReadError struct {
	Path string
	Err  error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("failed to read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryReadError) Unwrap() error {
	return e.Err
}

// SubdirectoryCreateError means a category subdirectory could not be
// created. Subdirectories created earlier in the run are left in place.
type SubdirectoryCreateError struct {
	Category Category
	Path     string
	Err      error
}

func (e *SubdirectoryCreateError) Error() string {
	return fmt.Sprintf("failed to create %s directory %s: %v", e.Category, e.Path, e.Err)
}

func (e *SubdirectoryCreateError) Unwrap() error {
	return e.Err
}

// MoveError means a file could not be moved. Index is the position of the
// failing entry in the scan order; entries before it were moved.
type MoveError struct {
	Source      string
	Destination string
	Index       int
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to move %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
