// Package metrics holds the Prometheus collectors of the teamfight app.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "teamfight").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the render duration buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics records app activity. It implements the app observer interface.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	notifications  *prometheus.CounterVec
	renders        prometheus.Counter
	renderDuration prometheus.Histogram
	events         *prometheus.CounterVec
	staleEvents    prometheus.Counter
	panics         prometheus.Counter
	clients        prometheus.Gauge
	framesSent     prometheus.Counter
	storageWrites  *prometheus.CounterVec
}

// New registers the collectors and returns them.
func New(opts ...Option) *Metrics {
	cfg := Config{
		Namespace: "teamfight",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "state_notifications_total",
			Help:      "State change notifications, by whether they scheduled a render or were absorbed",
		}, []string{"outcome"}),

		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "render_passes_total",
			Help:      "Completed render passes",
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Render pass duration in seconds",
			Buckets:   cfg.Buckets,
		}),

		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "events_total",
			Help:      "DOM events dispatched from the browser, by type",
		}, []string{"type"}),

		staleEvents: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "stale_events_total",
			Help:      "Browser events dropped because they targeted an older render",
		}),

		panics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "loop_panics_total",
			Help:      "Panics recovered by the event loop",
		}),

		clients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "connected_clients",
			Help:      "Connected browser clients (0 or 1)",
		}),

		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "frames_sent_total",
			Help:      "Render frames pushed to the browser",
		}),

		storageWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "storage_writes_total",
			Help:      "Match store writes, by result",
		}, []string{"result"}),
	}
}

// Notified counts a state notification.
func (m *Metrics) Notified(scheduled bool) {
	if m == nil {
		return
	}
	outcome := "absorbed"
	if scheduled {
		outcome = "scheduled"
	}
	m.notifications.WithLabelValues(outcome).Inc()
}

// Rendered records a completed render pass.
func (m *Metrics) Rendered(d time.Duration) {
	if m == nil {
		return
	}
	m.renders.Inc()
	m.renderDuration.Observe(d.Seconds())
}

// Event counts a dispatched browser event.
func (m *Metrics) Event(typ string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(typ).Inc()
}

// StaleEvent counts a dropped browser event.
func (m *Metrics) StaleEvent() {
	if m == nil {
		return
	}
	m.staleEvents.Inc()
}

// Panic counts a recovered panic. Its signature matches the loop's panic
// handler.
func (m *Metrics) Panic(any) {
	if m == nil {
		return
	}
	m.panics.Inc()
}

// ClientConnected records an open browser connection.
func (m *Metrics) ClientConnected() {
	if m == nil {
		return
	}
	m.clients.Inc()
}

// ClientDisconnected records a closed browser connection.
func (m *Metrics) ClientDisconnected() {
	if m == nil {
		return
	}
	m.clients.Dec()
}

// FrameSent counts a pushed render frame.
func (m *Metrics) FrameSent() {
	if m == nil {
		return
	}
	m.framesSent.Inc()
}

// StorageWrite counts a store write; err decides the result label.
func (m *Metrics) StorageWrite(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storageWrites.WithLabelValues(result).Inc()
}
