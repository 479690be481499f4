package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/teamfight/pkg/dom"
	"github.com/vango-dev/teamfight/pkg/loop"
	"github.com/vango-dev/teamfight/pkg/reactive"
	"github.com/vango-dev/teamfight/pkg/render"
	"github.com/vango-dev/teamfight/pkg/vdom"
)

const tracerName = "github.com/vango-dev/teamfight/pkg/app"

// Component is what an App hosts. Setup is optional and produces the
// initial state; Render builds the tree for the current state.
type Component struct {
	Setup  func() map[string]any
	Render func(state *reactive.Object) *vdom.VNode
}

// App owns one reactive state and one root element.
//
// State, the root and render passes belong to the app's loop: mutate state
// and call Mount from inside loop tasks (Loop().Do or Loop().Post).
type App struct {
	component Component
	doc       *dom.Document
	loop      *loop.Loop
	logger    *slog.Logger
	observers []Observer
	hooks     []func(*App)
	renderer  *render.Renderer
	tracer    trace.Tracer

	state     *reactive.Object
	root      *dom.Node
	scheduled bool
	renders   int
}

// CreateApp calls component.Setup once, wraps its result and returns the
// app. Nothing is rendered until Mount.
func CreateApp(component Component, opts ...Option) *App {
	a := &App{
		component: component,
		logger:    slog.Default().With("component", "app"),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.doc == nil {
		a.doc = dom.NewDocument()
	}
	if a.loop == nil {
		a.loop = loop.New(loop.WithLogger(a.logger))
	}
	a.renderer = render.NewRenderer(a.doc, render.WithLogger(a.logger))

	var initial map[string]any
	if component.Setup != nil {
		initial = component.Setup()
	}
	a.state = reactive.NewObject(initial, a.scheduleRender)
	return a
}

// Mount resolves target, stores it as the root and renders immediately.
// target is a selector string resolved against the document, or a
// *dom.Node. It fails with ErrMountTarget when nothing is found.
func (a *App) Mount(target any) error {
	var root *dom.Node
	switch t := target.(type) {
	case string:
		root = a.doc.QuerySelector(t)
	case *dom.Node:
		root = t
	case *dom.Document:
		if t != nil {
			root = t.Body()
		}
	}
	if root == nil {
		return &MountError{Target: target, Err: ErrMountTarget}
	}

	a.root = root
	a.logger.Debug("mounted", "tag", root.Tag, "id", root.ID())
	a.render()
	return nil
}

// scheduleRender is the state's notify callback. It never renders
// synchronously.
func (a *App) scheduleRender() {
	absorbed := a.scheduled
	for _, o := range a.observers {
		o.Notified(!absorbed)
	}
	if absorbed {
		return
	}
	a.scheduled = true
	a.loop.QueueMicrotask(func() {
		a.scheduled = false
		a.render()
	})
}

// render performs one pass: build the tree, clear the root, attach the new
// content. Before Mount it does nothing.
func (a *App) render() {
	if a.root == nil || a.component.Render == nil {
		return
	}

	start := time.Now()
	_, span := a.tracer.Start(context.Background(), "app.render",
		trace.WithAttributes(attribute.Int("app.pass", a.renders+1)))
	defer span.End()

	tree := a.component.Render(a.state)
	a.root.ReplaceChildren()
	a.root.AppendChild(a.renderer.Render(tree))
	a.renders++

	elapsed := time.Since(start)
	span.SetAttributes(attribute.Int("dom.children", a.root.Len()))
	a.logger.Debug("render pass", "pass", a.renders, "duration", elapsed)
	for _, o := range a.observers {
		o.Rendered(elapsed)
	}
	for _, hook := range a.hooks {
		hook(a)
	}
}

// State returns the wrapped state.
func (a *App) State() *reactive.Object {
	return a.state
}

// Root returns the mount point, or nil before Mount.
func (a *App) Root() *dom.Node {
	return a.root
}

// Document returns the app's document.
func (a *App) Document() *dom.Document {
	return a.doc
}

// Loop returns the loop render passes are queued on.
func (a *App) Loop() *loop.Loop {
	return a.loop
}

// Renders returns the number of completed render passes.
func (a *App) Renders() int {
	return a.renders
}

// Scheduled reports whether a render pass is pending.
func (a *App) Scheduled() bool {
	return a.scheduled
}
