package editor

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with editor-specific helpers.
// Field names are consistent across the package: kind, atom, bond, merged.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
// level may be a *slog.LevelVar so the level can change at runtime.
func NewTextLogger(level slog.Leveler) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Leveler) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// logEdit logs a recorded command, or a rejected edit when err is set.
func (l *Logger) logEdit(kind Kind, merged bool, err error) {
	if err != nil {
		l.Warn("edit rejected",
			"kind", kind.String(),
			"error", err,
		)
		return
	}
	l.Debug("edit recorded",
		"kind", kind.String(),
		"merged", merged,
	)
}

// logHistory logs an undo or redo step.
func (l *Logger) logHistory(op string, kind Kind, index int, err error) {
	if err != nil {
		l.Error(op+" failed",
			"kind", kind.String(),
			"index", index,
			"error", err,
		)
		return
	}
	l.Debug(op+" applied",
		"kind", kind.String(),
		"index", index,
	)
}
