package live

import (
	"log/slog"
	"net/http"

	"github.com/vango-dev/teamfight/internal/metrics"
	"github.com/vango-dev/teamfight/pkg/loop"
)

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics records bridge, loop and render metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Bridge) {
		b.metrics = m
	}
}

// WithMetricsHandler serves h on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(b *Bridge) {
		b.metricsHandler = h
	}
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(b *Bridge) {
		b.title = title
	}
}

// WithLoopOptions passes options to the bridge's loop.
func WithLoopOptions(opts ...loop.Option) Option {
	return func(b *Bridge) {
		b.loopOpts = append(b.loopOpts, opts...)
	}
}

// WithCheckOrigin sets the websocket origin check. The default accepts
// same-host origins only.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(b *Bridge) {
		if fn != nil {
			b.upgrader.CheckOrigin = fn
		}
	}
}
