package diskmap

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with diskmap-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))}
}

// LogSave logs a save operation.
func (l *Logger) LogSave(path string, entries int, bytes int64, checksum uint32, took time.Duration, err error) {
	if err != nil {
		l.Error("save failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Info("store saved",
			"path", path,
			"entries", entries,
			"bytes", bytes,
			"checksum", checksum,
			"took", took,
		)
	}
}

// LogOpen logs an open operation.
func (l *Logger) LogOpen(path string, entries int, checksum uint32, took time.Duration, err error) {
	if err != nil {
		l.Error("open failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Info("store opened",
			"path", path,
			"entries", entries,
			"checksum", checksum,
			"took", took,
		)
	}
}
