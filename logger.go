package knn

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with classifier-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithLabel adds a label field to the logger.
func (l *Logger) WithLabel(label string) *Logger {
	return &Logger{
		Logger: l.Logger.With("label", label),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogLearn logs a learn operation.
func (l *Logger) LogLearn(label string, positions int, stored, evicted bool, err error) {
	if err != nil {
		l.Error("learn failed",
			"label", label,
			"error", err,
		)
		return
	}
	l.Debug("learn completed",
		"label", label,
		"positions", positions,
		"stored", stored,
		"evicted", evicted,
	)
}

// LogClassify logs a classify operation.
func (l *Logger) LogClassify(positions, maxResults, resultsFound int, err error) {
	if err != nil {
		l.Error("classify failed",
			"positions", positions,
			"max_results", maxResults,
			"error", err,
		)
		return
	}
	l.Debug("classify completed",
		"positions", positions,
		"max_results", maxResults,
		"results", resultsFound,
	)
}

// LogClear logs a state reset.
func (l *Logger) LogClear(exemplars int) {
	l.Info("classifier state cleared",
		"exemplars", exemplars,
	)
}
