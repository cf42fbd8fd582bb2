package geogo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with helpers for the index's operations, giving
// structured logs consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger backed by the given handler. A nil handler
// falls back to info-level text output on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output. It is the default
// when no logger is configured.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// LogInsert logs a completed insertion at debug level.
func (l *Logger) LogInsert(x, y float64, height int, grew bool) {
	if grew {
		l.Debug("insert split to root, height increased",
			"x", x,
			"y", y,
			"height", height,
		)
		return
	}
	l.Debug("insert",
		"x", x,
		"y", y,
		"height", height,
	)
}

// LogKNN logs a k-nearest-neighbor query at debug level.
func (l *Logger) LogKNN(x, y float64, k, found int) {
	l.Debug("knn",
		"x", x,
		"y", y,
		"k", k,
		"found", found,
	)
}
