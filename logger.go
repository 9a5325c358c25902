package concepts

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with concepts-specific context.
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

// WithObjects adds an object count field to the logger.
func (l *Logger) WithObjects(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("objects", count),
	}
}

// WithProperties adds a property count field to the logger.
func (l *Logger) WithProperties(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("properties", count),
	}
}

// WithConcepts adds a concept count field to the logger.
func (l *Logger) WithConcepts(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("concepts", count),
	}
}

// LogBuild logs a lattice construction.
func (l *Logger) LogBuild(ctx context.Context, concepts int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "lattice build failed",
			"concepts", concepts,
			"duration", duration,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "lattice build completed",
			"concepts", concepts,
			"duration", duration,
		)
	}
}
