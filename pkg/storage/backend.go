package storage

import (
	"context"
	"io/fs"
	"time"
)

// EntryKind classifies a directory entry after following symlinks
type EntryKind string

const (
	// KindRegular is a regular file, or a symlink resolving to one
	KindRegular EntryKind = "regular"
	// KindDir is a directory, or a symlink resolving to one
	KindDir EntryKind = "dir"
	// KindOther covers devices, sockets, pipes and dangling symlinks
	KindOther EntryKind = "other"
)

// FileInfo represents metadata about a directory entry
type FileInfo struct {
	Name      string
	Path      string
	Size      int64
	ModTime   time.Time
	Mode      fs.FileMode
	Kind      EntryKind
	IsSymlink bool
}

// Backend defines the filesystem operations the organizer needs.
// Paths are relative to the backend root.
type Backend interface {
	// Root returns the absolute path of the directory the backend serves
	Root() string

	// ReadDir lists the immediate entries of path (not recursive)
	ReadDir(ctx context.Context, path string) ([]FileInfo, error)

	// Stat returns metadata, following symlinks
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Lstat returns metadata without following symlinks
	Lstat(ctx context.Context, path string) (*FileInfo, error)

	// Exists checks if a file or directory exists
	Exists(ctx context.Context, path string) (bool, error)

	// MkdirAll creates a directory and all necessary parents.
	// It succeeds if the directory already exists.
	MkdirAll(ctx context.Context, path string) error

	// Rename moves a single entry, replacing an existing destination file
	Rename(ctx context.Context, from, to string) error

	// Close releases any resources held by the backend
	Close() error
}
