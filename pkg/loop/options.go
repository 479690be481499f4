package loop

import "log/slog"

const (
	// DefaultQueueSize is the default capacity of the task queue.
	DefaultQueueSize = 256

	// DefaultMicrotaskBudget is the default number of microtasks one
	// checkpoint may run.
	DefaultMicrotaskBudget = 1000
)

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the task queue capacity.
func WithQueueSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// WithMicrotaskBudget sets the number of microtasks one checkpoint may run.
func WithMicrotaskBudget(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.budget = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithPanicHandler sets a function called with every panic value the loop
// recovers and logs. It is not called for panics Do hands back to its caller.
func WithPanicHandler(fn func(recovered any)) Option {
	return func(l *Loop) {
		l.onPanic = fn
	}
}
