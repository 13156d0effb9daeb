// Package logging provides the structured logger used by organize runs.
package logging

import (
	"context"
	"log/slog"
)

// Level represents log severity
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Fields represents structured log fields
type Fields map[string]any

// Logger defines the interface for logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields Fields)
	Info(ctx context.Context, msg string, fields Fields)
	Warn(ctx context.Context, msg string, fields Fields)
	Error(ctx context.Context, msg string, err error, fields Fields)

	// WithFields returns a logger that adds fields to every record
	WithFields(fields Fields) Logger

	// Close flushes and closes the logger
	Close() error
}

// NullLogger discards everything. Used when no log file is configured.
type NullLogger struct{}

// NewNullLogger creates a new null logger
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Debug(ctx context.Context, msg string, fields Fields)            {}
func (l *NullLogger) Info(ctx context.Context, msg string, fields Fields)             {}
func (l *NullLogger) Warn(ctx context.Context, msg string, fields Fields)             {}
func (l *NullLogger) Error(ctx context.Context, msg string, err error, fields Fields) {}
func (l *NullLogger) WithFields(fields Fields) Logger                                 { return l }
func (l *NullLogger) Close() error                                                    { return nil }

// ParseLevel parses a log level string, defaulting to info
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return DebugLevel
	case "info", "INFO":
		return InfoLevel
	case "warn", "WARN", "warning", "WARNING":
		return WarnLevel
	case "error", "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// String returns the upper-case level name
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
