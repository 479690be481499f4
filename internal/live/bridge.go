package live

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/teamfight/internal/metrics"
	"github.com/vango-dev/teamfight/pkg/app"
	"github.com/vango-dev/teamfight/pkg/dom"
	"github.com/vango-dev/teamfight/pkg/loop"
)

const tracerName = "github.com/vango-dev/teamfight/internal/live"

// closeReplaced is sent to a connection superseded by a newer one.
const closeReplaced = 4000

// Bridge hosts one app and mirrors it to the connected browser.
type Bridge struct {
	app            *app.App
	loop           *loop.Loop
	logger         *slog.Logger
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	tracer         trace.Tracer
	upgrader       websocket.Upgrader
	title          string
	loopOpts       []loop.Option

	// Owned by the loop.
	hids dom.HIDTable
	seq  uint64

	mu     sync.Mutex
	frame  Frame
	client *client
}

// New creates the document, the loop and the app for component, mounts it
// and returns the bridge. Nothing is served until the handler is used and
// nothing runs until Run.
func New(component app.Component, opts ...Option) (*Bridge, error) {
	b := &Bridge{
		logger: slog.Default().With("component", "live"),
		tracer: otel.Tracer(tracerName),
		title:  "LoL Teamfight Manager",
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 16384,
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	loopOpts := []loop.Option{loop.WithLogger(b.logger)}
	if b.metrics != nil {
		loopOpts = append(loopOpts, loop.WithPanicHandler(b.metrics.Panic))
	}
	b.loop = loop.New(append(loopOpts, b.loopOpts...)...)

	doc := dom.NewDocument()
	mount := doc.Body().AppendChild(doc.CreateElement("div"))
	mount.SetAttribute("id", "app")

	appOpts := []app.Option{
		app.WithDocument(doc),
		app.WithLoop(b.loop),
		app.WithLogger(b.logger),
		app.WithRenderHook(b.rendered),
	}
	if b.metrics != nil {
		appOpts = append(appOpts, app.WithObserver(b.metrics))
	}
	b.app = app.CreateApp(component, appOpts...)

	var err error
	b.loop.Do(func() { err = b.app.Mount(mount) })
	if err != nil {
		return nil, fmt.Errorf("live: mount: %w", err)
	}
	return b, nil
}

// App returns the hosted app.
func (b *Bridge) App() *app.App {
	return b.app
}

// Loop returns the loop the app runs on.
func (b *Bridge) Loop() *loop.Loop {
	return b.loop
}

// Run drives the loop until ctx is done, then disconnects the browser.
func (b *Bridge) Run(ctx context.Context) error {
	err := b.loop.Run(ctx)
	b.mu.Lock()
	c := b.client
	b.client = nil
	b.mu.Unlock()
	if c != nil {
		c.close(websocket.CloseGoingAway, "server shutting down")
	}
	return err
}

// Current returns the latest frame.
func (b *Bridge) Current() Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// rendered is the app's render hook. It runs on the loop after every pass.
func (b *Bridge) rendered(a *app.App) {
	var buf bytes.Buffer
	hids, err := dom.RenderInnerHydrated(&buf, a.Root())
	if err != nil {
		b.logger.Error("serialize failed", "error", err)
		return
	}
	b.hids = hids
	b.seq++
	frame := Frame{Seq: b.seq, HTML: buf.String()}

	b.mu.Lock()
	b.frame = frame
	c := b.client
	b.mu.Unlock()

	if c != nil {
		c.push(frame)
	}
}

// dispatch delivers a browser event to its element. It runs on the loop.
func (b *Bridge) dispatch(ev EventFrame) {
	if ev.Seq != b.seq {
		b.logger.Debug("dropping stale event", "seq", ev.Seq, "current", b.seq, "hid", ev.HID, "type", ev.Type)
		b.metrics.StaleEvent()
		return
	}
	target := b.hids[ev.HID]
	if target == nil {
		b.logger.Debug("dropping event for unknown element", "hid", ev.HID, "type", ev.Type)
		return
	}

	_, span := b.tracer.Start(context.Background(), "live.event",
		trace.WithAttributes(
			attribute.String("event.type", ev.Type),
			attribute.String("event.hid", ev.HID),
			attribute.Int64("render.seq", int64(ev.Seq)),
		))
	defer span.End()

	e := &dom.Event{Type: ev.Type, Confirm: ev.Confirm}
	if ev.Value != nil {
		target.SetProperty("value", *ev.Value)
		e.Value = *ev.Value
	}
	if ev.Checked != nil {
		target.SetProperty("checked", *ev.Checked)
		e.Checked = *ev.Checked
	}

	b.metrics.Event(ev.Type)
	b.logger.Debug("event", "type", ev.Type, "hid", ev.HID, "tag", target.Tag)
	target.DispatchEvent(e)
}
