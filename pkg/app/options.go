package app

import (
	"log/slog"
	"time"

	"github.com/vango-dev/teamfight/pkg/dom"
	"github.com/vango-dev/teamfight/pkg/loop"
)

// Observer receives scheduling and render events. Metrics collectors
// implement it.
type Observer interface {
	// Notified is called for every state notification. scheduled reports
	// whether it queued a render or was absorbed by a pending one.
	Notified(scheduled bool)
	// Rendered is called after each completed render pass.
	Rendered(d time.Duration)
}

// Option configures an App.
type Option func(*App)

// WithDocument sets the document that Mount resolves selectors against and
// that owns rendered nodes. Defaults to a new empty document.
func WithDocument(doc *dom.Document) Option {
	return func(a *App) {
		if doc != nil {
			a.doc = doc
		}
	}
}

// WithLoop sets the loop render passes are queued on. Defaults to a new
// loop, which the caller drives through App.Loop.
func WithLoop(l *loop.Loop) Option {
	return func(a *App) {
		if l != nil {
			a.loop = l
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithObserver adds an observer. Observers are called in the order added.
func WithObserver(o Observer) Option {
	return func(a *App) {
		if o != nil {
			a.observers = append(a.observers, o)
		}
	}
}

// WithRenderHook adds a function called after every render pass, once the
// new content is attached.
func WithRenderHook(fn func(*App)) Option {
	return func(a *App) {
		if fn != nil {
			a.hooks = append(a.hooks, fn)
		}
	}
}
