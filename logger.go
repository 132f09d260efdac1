package vecsdk

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with SDK-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithOperation tags the logger with the name of the operation being waited on.
func (l *Logger) WithOperation(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("operation", name),
	}
}

// WithInterval adds the poll interval to the logger.
func (l *Logger) WithInterval(d time.Duration) *Logger {
	return &Logger{
		Logger: l.Logger.With("interval", d),
	}
}

// WithTimeout adds the wait budget to the logger.
func (l *Logger) WithTimeout(d time.Duration) *Logger {
	return &Logger{
		Logger: l.Logger.With("timeout", d),
	}
}

// LogPoll logs a single status check.
func (l *Logger) LogPoll(ctx context.Context, finished, total uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "status check failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "status checked",
			"finished", finished,
			"total", total,
		)
	}
}

// LogWait logs the end of a wait that did not time out.
func (l *Logger) LogWait(ctx context.Context, elapsed time.Duration, polls int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "wait failed",
			"elapsed", elapsed,
			"polls", polls,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "wait completed",
			"elapsed", elapsed,
			"polls", polls,
		)
	}
}

// LogTimeout logs a wait that ran out of budget before the operation finished.
func (l *Logger) LogTimeout(ctx context.Context, elapsed time.Duration, polls int, finished, total uint32) {
	l.WarnContext(ctx, "wait timed out",
		"elapsed", elapsed,
		"polls", polls,
		"finished", finished,
		"total", total,
	)
}
