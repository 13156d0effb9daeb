package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Local is a filesystem-based storage backend
type Local struct {
	rootPath string
}

// NewLocal creates a new local filesystem backend
func NewLocal(rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	return &Local{rootPath: absPath}, nil
}

// Root returns the absolute root path
func (l *Local) Root() string {
	return l.rootPath
}

// ReadDir lists the immediate entries of path. Entries whose target
// cannot be resolved are reported as KindOther rather than failing the
// listing; a failure to read the directory itself is returned.
func (l *Local) ReadDir(ctx context.Context, path string) ([]FileInfo, error) {
	fullPath := l.resolve(path)

	dirEntries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	files := make([]FileInfo, 0, len(dirEntries))
	for _, d := range dirEntries {
		p := filepath.Join(fullPath, d.Name())
		info := FileInfo{
			Name:      d.Name(),
			Path:      p,
			IsSymlink: d.Type()&fs.ModeSymlink != 0,
			Kind:      KindOther,
		}

		target, err := os.Stat(p)
		if err == nil {
			info.Size = target.Size()
			info.ModTime = target.ModTime()
			info.Mode = target.Mode()
			info.Kind = kindOf(target.Mode())
		}

		files = append(files, info)
	}

	return files, nil
}

// Stat returns file metadata, following symlinks
func (l *Local) Stat(ctx context.Context, path string) (*FileInfo, error) {
	fullPath := l.resolve(path)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return fileInfo(fullPath, info, false), nil
}

// Lstat returns file metadata without following symlinks
func (l *Local) Lstat(ctx context.Context, path string) (*FileInfo, error) {
	fullPath := l.resolve(path)

	info, err := os.Lstat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return fileInfo(fullPath, info, info.Mode()&fs.ModeSymlink != 0), nil
}

// Exists checks if a file or directory exists
func (l *Local) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Lstat(l.resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence: %w", err)
}

// MkdirAll creates a directory and all necessary parents
func (l *Local) MkdirAll(ctx context.Context, path string) error {
	err := os.MkdirAll(l.resolve(path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

// Rename moves from to to with os.Rename. An existing regular file at the
// destination is replaced on POSIX systems.
func (l *Local) Rename(ctx context.Context, from, to string) error {
	if err := os.Rename(l.resolve(from), l.resolve(to)); err != nil {
		return fmt.Errorf("failed to rename: %w", err)
	}
	return nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}

// resolve joins relative paths onto the root and leaves absolute ones alone
func (l *Local) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.rootPath, path)
}

func fileInfo(fullPath string, info fs.FileInfo, symlink bool) *FileInfo {
	return &FileInfo{
		Name:      info.Name(),
		Path:      fullPath,
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		Mode:      info.Mode(),
		Kind:      kindOf(info.Mode()),
		IsSymlink: symlink,
	}
}

func kindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDir
	default:
		return KindOther
	}
}
