package render

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/teamfight/pkg/dom"
	"github.com/vango-dev/teamfight/pkg/vdom"
)

// Renderer materializes vdom trees into a document.
type Renderer struct {
	doc    *dom.Document
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for dropped props.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a Renderer that creates nodes owned by doc.
func NewRenderer(doc *dom.Document, opts ...Option) *Renderer {
	r := &Renderer{
		doc:    doc,
		logger: slog.Default().With("component", "render"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render materializes node with a default Renderer.
func Render(node *vdom.VNode, doc *dom.Document) *dom.Node {
	return NewRenderer(doc).Render(node)
}

// Render materializes node. A nil node yields an empty comment.
func (r *Renderer) Render(node *vdom.VNode) *dom.Node {
	if node == nil {
		return r.doc.CreateComment("")
	}

	switch node.Kind {
	case vdom.KindText:
		return r.doc.CreateTextNode(node.Text)
	case vdom.KindFragment:
		frag := r.doc.CreateDocumentFragment()
		r.appendChildren(frag, node.Children)
		return frag
	case vdom.KindElement:
		el := r.doc.CreateElement(node.Tag)
		r.applyProps(el, node.Props)
		r.appendChildren(el, node.Children)
		return el
	default:
		r.logger.Warn("unknown node kind", "kind", node.Kind)
		return r.doc.CreateComment("")
	}
}

func (r *Renderer) appendChildren(parent *dom.Node, children []*vdom.VNode) {
	for _, child := range children {
		parent.AppendChild(r.Render(child))
	}
}

// applyProps applies props in sorted key order.
func (r *Renderer) applyProps(el *dom.Node, props vdom.Props) {
	if len(props) == 0 {
		return
	}
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		r.applyProp(el, key, props[key])
	}
}

func (r *Renderer) applyProp(el *dom.Node, key string, value any) {
	if len(key) > 2 && strings.HasPrefix(key, "on") {
		if fn := listener(value); fn != nil {
			el.AddEventListener(strings.ToLower(key[2:]), fn)
			return
		}
	}

	switch key {
	case "class":
		if value == nil || value == false {
			el.SetClassName("")
			return
		}
		el.SetClassName(attrString(value))
		return
	case "style":
		if applyStyle(el, value) {
			return
		}
	}

	if el.HasProperty(key) {
		el.SetProperty(key, value)
		return
	}

	if value == nil || value == false {
		return
	}
	el.SetAttribute(key, attrString(value))
}

func applyStyle(el *dom.Node, value any) bool {
	var entries map[string]string
	switch s := value.(type) {
	case vdom.StyleMap:
		entries = s
	case map[string]string:
		entries = s
	case map[string]any:
		entries = make(map[string]string, len(s))
		for k, v := range s {
			if v == nil || v == false {
				entries[k] = ""
				continue
			}
			entries[k] = attrString(v)
		}
	default:
		return false
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	style := el.Style()
	for _, name := range names {
		style.Set(name, entries[name])
	}
	return true
}

// listener converts a callable prop value to a dom.Listener, or returns nil
// when value is not callable.
func listener(value any) dom.Listener {
	switch fn := value.(type) {
	case nil:
		return nil
	case dom.Listener:
		return fn
	case func(*dom.Event):
		return fn
	case func():
		return func(*dom.Event) { fn() }
	case vdom.EventHandler:
		return listener(fn.Handler)
	}

	// Other func shapes: no arguments, or one argument an *Event can be
	// passed as. Results are ignored.
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil
	}
	t := rv.Type()
	if t.IsVariadic() {
		return nil
	}
	switch t.NumIn() {
	case 0:
		return func(*dom.Event) { rv.Call(nil) }
	case 1:
		if !reflect.TypeOf((*dom.Event)(nil)).AssignableTo(t.In(0)) {
			return nil
		}
		return func(ev *dom.Event) { rv.Call([]reflect.Value{reflect.ValueOf(ev)}) }
	}
	return nil
}

// attrString converts a prop value to its attribute form.
func attrString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
