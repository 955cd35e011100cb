package divmax

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger is the structured logger used by DiversityMaximization.
// Every record carries the configured k; Fit records also carry the
// input dimension.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler writes text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger writes JSON records at or above level to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger writes key=value records at or above level to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithK tags records with the target set size.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.With("k", k)}
}

// WithDimension tags records with the number of features per point.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{Logger: l.With("dimension", dim)}
}

// LogFit logs a fit operation. path names the dispatch branch taken.
func (l *Logger) LogFit(ctx context.Context, path string, points int, objective float32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"path", path,
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"path", path,
			"points", points,
			"objective", objective,
		)
	}
}

// LogCost logs a cost evaluation.
func (l *Logger) LogCost(ctx context.Context, points int, cost float32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cost failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "cost computed",
			"points", points,
			"cost", cost,
		)
	}
}
