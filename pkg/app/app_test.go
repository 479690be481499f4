package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/teamfight/pkg/dom"
	"github.com/vango-dev/teamfight/pkg/reactive"
	"github.com/vango-dev/teamfight/pkg/vdom"
)

func newDoc() (*dom.Document, *dom.Node) {
	doc := dom.NewDocument()
	root := doc.Body().AppendChild(doc.CreateElement("div"))
	root.SetAttribute("id", "app")
	return doc, root
}

func counterApp(doc *dom.Document, opts ...Option) *App {
	opts = append([]Option{WithDocument(doc)}, opts...)
	return CreateApp(Component{
		Setup: func() map[string]any { return map[string]any{"count": 0} },
		Render: func(s *reactive.Object) *vdom.VNode {
			return vdom.Text(s.String("count"))
		},
	}, opts...)
}

func TestCounterScenario(t *testing.T) {
	doc, root := newDoc()
	a := counterApp(doc)

	if err := a.Mount("#app"); err != nil {
		t.Fatal(err)
	}
	if got := root.TextContent(); got != "0" {
		t.Fatalf("after mount = %q, want 0", got)
	}

	a.Loop().Do(func() {
		a.State().Set("count", 3)
		if got := root.TextContent(); got != "0" {
			t.Errorf("render must not run synchronously, content = %q", got)
		}
	})

	if got := root.TextContent(); got != "3" {
		t.Errorf("after flush = %q, want 3", got)
	}
}

func TestCoalescing(t *testing.T) {
	doc, _ := newDoc()
	var seen []int
	a := CreateApp(Component{
		Setup: func() map[string]any {
			return map[string]any{"form": map[string]any{"a": "", "b": "", "c": "", "d": "", "e": ""}}
		},
		Render: func(s *reactive.Object) *vdom.VNode {
			n := 0
			for _, k := range s.Object("form").Keys() {
				if s.Object("form").String(k) != "" {
					n++
				}
			}
			seen = append(seen, n)
			return vdom.Div()
		},
	}, WithDocument(doc))
	if err := a.Mount("#app"); err != nil {
		t.Fatal(err)
	}

	a.Loop().Do(func() {
		form := a.State().Object("form")
		for _, k := range []string{"a", "b", "c", "d", "e"} {
			form.Set(k, "x")
		}
		if !a.Scheduled() {
			t.Error("a render should be pending")
		}
	})

	if a.Renders() != 2 {
		t.Errorf("renders = %d, want 2 (mount + one coalesced pass)", a.Renders())
	}
	if seen[len(seen)-1] != 5 {
		t.Errorf("coalesced pass saw %d writes, want 5", seen[len(seen)-1])
	}
}

type recorder struct {
	notified, absorbed, rendered int
}

func (r *recorder) Notified(scheduled bool) {
	r.notified++
	if !scheduled {
		r.absorbed++
	}
}

func (r *recorder) Rendered(time.Duration) { r.rendered++ }

func TestObserverAndHooks(t *testing.T) {
	doc, _ := newDoc()
	rec := &recorder{}
	hooks := 0
	a := counterApp(doc, WithObserver(rec), WithRenderHook(func(*App) { hooks++ }))
	if err := a.Mount("#app"); err != nil {
		t.Fatal(err)
	}

	a.Loop().Do(func() {
		a.State().Set("count", 1)
		a.State().Set("count", 2)
		a.State().Set("count", 3)
	})

	if rec.notified != 3 || rec.absorbed != 2 {
		t.Errorf("notified=%d absorbed=%d, want 3 and 2", rec.notified, rec.absorbed)
	}
	if rec.rendered != 2 || hooks != 2 {
		t.Errorf("rendered=%d hooks=%d, want 2 each", rec.rendered, hooks)
	}
}

func TestFullReplace(t *testing.T) {
	doc, root := newDoc()
	a := CreateApp(Component{
		Setup: func() map[string]any { return map[string]any{"step": 1} },
		Render: func(s *reactive.Object) *vdom.VNode {
			if s.Int("step") == 1 {
				return vdom.Group(vdom.P("first"), vdom.P("second"))
			}
			return vdom.Span("third")
		},
	}, WithDocument(doc))
	if err := a.Mount(root); err != nil {
		t.Fatal(err)
	}
	first := root.ChildNodes()
	if len(first) != 2 {
		t.Fatalf("first pass attached %d nodes, want 2", len(first))
	}

	a.Loop().Do(func() { a.State().Set("step", 2) })

	kids := root.ChildNodes()
	if len(kids) != 1 || kids[0].Tag != "span" {
		t.Fatalf("second pass children = %d", len(kids))
	}
	for _, old := range first {
		if old.Parent() != nil {
			t.Error("nodes from the first pass are still attached")
		}
	}
}

func TestNoOpWriteRerenders(t *testing.T) {
	doc, root := newDoc()
	a := counterApp(doc)
	if err := a.Mount("#app"); err != nil {
		t.Fatal(err)
	}
	before := root.FirstChild()

	a.Loop().Do(func() { a.State().Set("count", 0) })

	if a.Renders() != 2 {
		t.Errorf("renders = %d, want 2", a.Renders())
	}
	if root.FirstChild() == before {
		t.Error("a pass must build new nodes")
	}
}

func TestWriteDuringRenderSchedulesNextPass(t *testing.T) {
	doc, root := newDoc()
	a := CreateApp(Component{
		Setup: func() map[string]any { return map[string]any{"n": 0} },
		Render: func(s *reactive.Object) *vdom.VNode {
			if n := s.Int("n"); n < 3 {
				s.Set("n", n+1)
			}
			return vdom.Text(s.String("n"))
		},
	}, WithDocument(doc))
	if err := a.Mount("#app"); err != nil {
		t.Fatal(err)
	}
	if got := root.TextContent(); got != "1" {
		t.Errorf("in-flight pass shows %q, want 1", got)
	}

	a.Loop().Flush()

	if got := root.TextContent(); got != "3" {
		t.Errorf("after flush = %q, want 3", got)
	}
	if a.Renders() != 4 {
		t.Errorf("renders = %d, want 4", a.Renders())
	}
}

func TestMountTargetNotFound(t *testing.T) {
	doc, _ := newDoc()
	a := counterApp(doc)

	for _, target := range []any{"#missing", (*dom.Node)(nil), 42} {
		err := a.Mount(target)
		if !errors.Is(err, ErrMountTarget) {
			t.Errorf("Mount(%v) = %v, want ErrMountTarget", target, err)
		}
		var me *MountError
		if !errors.As(err, &me) {
			t.Errorf("Mount(%v) error is %T, want *MountError", target, err)
		}
	}
	if err := a.Mount("#missing"); !strings.Contains(err.Error(), `"#missing"`) {
		t.Errorf("error should name the selector: %v", err)
	}
	if a.Root() != nil || a.Renders() != 0 {
		t.Error("failed mount must not render")
	}
}

func TestNoSetupMeansEmptyState(t *testing.T) {
	doc, root := newDoc()
	a := CreateApp(Component{
		Render: func(s *reactive.Object) *vdom.VNode {
			return vdom.Textf("%d keys", s.Len())
		},
	}, WithDocument(doc))
	if err := a.Mount("#app"); err != nil {
		t.Fatal(err)
	}
	if got := root.TextContent(); got != "0 keys" {
		t.Errorf("got %q", got)
	}
}

func TestNotifyBeforeMountDoesNothing(t *testing.T) {
	doc, _ := newDoc()
	a := counterApp(doc)

	a.Loop().Do(func() { a.State().Set("count", 1) })

	if a.Renders() != 0 {
		t.Errorf("renders = %d before mount", a.Renders())
	}
}

func TestRenderPanicPropagates(t *testing.T) {
	doc, root := newDoc()
	a := CreateApp(Component{
		Setup: func() map[string]any { return map[string]any{"fail": false} },
		Render: func(s *reactive.Object) *vdom.VNode {
			if s.Bool("fail") {
				panic("render failed")
			}
			return vdom.Text("ok")
		},
	}, WithDocument(doc))
	if err := a.Mount("#app"); err != nil {
		t.Fatal(err)
	}

	func() {
		defer func() {
			if r := recover(); r != "render failed" {
				t.Errorf("recovered %v, want the render panic", r)
			}
		}()
		a.Loop().Do(func() { a.State().Set("fail", true) })
	}()

	if got := root.TextContent(); got != "ok" {
		t.Errorf("a panicking render leaves the previous content, got %q", got)
	}

	// Scheduling recovers for the next write.
	a.Loop().Do(func() { a.State().Set("fail", false) })
	if a.Renders() != 2 {
		t.Errorf("renders = %d, want 2", a.Renders())
	}
}
