package diffindex

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/diffindex/grid"
)

// Logger wraps slog.Logger with diffindex-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithShape adds a navigation shape field to the logger.
func (l *Logger) WithShape(shape grid.Shape) *Logger {
	return &Logger{
		Logger: l.Logger.With("shape", shape.String()),
	}
}

// LogRun logs the completion of an indexation run.
func (l *Logger) LogRun(ctx context.Context, shape grid.Shape, skipped int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "indexation failed",
			"shape", shape.String(),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "indexation completed",
			"shape", shape.String(),
			"positions", shape.Size(),
			"skipped", skipped,
			"duration", duration,
		)
	}
}

// LogLibraryLoad logs a library load from a store.
func (l *Logger) LogLibraryLoad(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "library load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "library loaded",
			"name", name,
		)
	}
}
