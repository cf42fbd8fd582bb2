package geogo

import (
	"log/slog"
	"os"
)

type options struct {
	logger *Logger
}

// Option configures constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := geogo.NewLogger(slog.NewJSONHandler(os.Stderr, nil))
//	tree, _ := geogo.New[string](4, geogo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel sets a text logger on stderr with the given minimum level.
// Insertions and queries log at debug level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
