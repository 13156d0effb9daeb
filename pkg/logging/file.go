package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Format represents the log output format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of backup files to keep
	MaxBackups int
}

// FileLogger writes slog records to a size-rotated file
type FileLogger struct {
	out    *rotatingFile
	logger *slog.Logger
}

// NewFileLogger creates a new file logger
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	out, err := openRotatingFile(config.Path, config.MaxSize, config.MaxBackups)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: config.Level.slogLevel()}
	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &FileLogger{out: out, logger: slog.New(handler)}, nil
}

func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.logger.DebugContext(ctx, msg, attrs(fields)...)
}

func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.logger.InfoContext(ctx, msg, attrs(fields)...)
}

func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.logger.WarnContext(ctx, msg, attrs(fields)...)
}

func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.logger.ErrorContext(ctx, msg, args...)
}

// WithFields returns a logger sharing the same file with extra fields
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &FileLogger{out: l.out, logger: l.logger.With(attrs(fields)...)}
}

// Close closes the underlying file
func (l *FileLogger) Close() error {
	return l.out.Close()
}

// attrs converts fields to slog arguments in key order
func attrs(fields Fields) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys))
	for _, k := range keys {
		args = append(args, slog.Any(k, fields[k]))
	}
	return args
}

// rotatingFile is an append-only file that rolls over to path.1, path.2,
// ... once it reaches maxSize
type rotatingFile struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

func openRotatingFile(path string, maxSize int64, maxBackups int) (*rotatingFile, error) {
	r := &rotatingFile{path: path, maxSize: maxSize, maxBackups: maxBackups}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *rotatingFile) open() error {
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = file
	r.size = info.Size()
	return nil
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}
	if r.maxSize > 0 && r.size >= r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *rotatingFile) rotate() error {
	r.file.Close()
	r.file = nil

	if r.maxBackups > 0 {
		os.Remove(fmt.Sprintf("%s.%d", r.path, r.maxBackups))
		for i := r.maxBackups - 1; i >= 1; i-- {
			os.Rename(fmt.Sprintf("%s.%d", r.path, i), fmt.Sprintf("%s.%d", r.path, i+1))
		}
		os.Rename(r.path, r.path+".1")
	} else {
		os.Remove(r.path)
	}

	return r.open()
}

func (r *rotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
