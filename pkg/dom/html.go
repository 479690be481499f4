package dom

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	doc := &Document{root: &Node{Type: DocumentNode}}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := fromHTML(c); n != nil {
			doc.root.AppendChild(n)
		}
	}
	return doc, nil
}

func fromHTML(h *html.Node) *Node {
	var n *Node
	switch h.Type {
	case html.ElementNode:
		n = NewElement(h.Data)
		for _, a := range h.Attr {
			if a.Namespace != "" {
				continue
			}
			n.SetAttribute(a.Key, a.Val)
		}
	case html.TextNode:
		return NewText(h.Data)
	case html.CommentNode:
		return NewComment(h.Data)
	default:
		return nil
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if child := fromHTML(c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

// HIDTable maps hydration ids to the elements they were assigned to.
type HIDTable map[string]*Node

// Render writes n, including n itself, as HTML. A document is written with a
// leading doctype.
func Render(w io.Writer, n *Node) error {
	s := &serializer{}
	if n.Type == DocumentNode {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
	}
	return s.write(w, s.convert(n))
}

// RenderInner writes the children of n as HTML.
func RenderInner(w io.Writer, n *Node) error {
	s := &serializer{}
	return s.writeChildren(w, n)
}

// RenderInnerHydrated writes the children of n as HTML, giving every element
// that has event listeners a data-hid attribute plus a data-on-<type> marker
// per event type. The returned table resolves those ids back to elements.
// Ids are assigned in document order, starting from h1.
func RenderInnerHydrated(w io.Writer, n *Node) (HIDTable, error) {
	s := &serializer{hids: HIDTable{}}
	if err := s.writeChildren(w, n); err != nil {
		return nil, err
	}
	return s.hids, nil
}

type serializer struct {
	hids    HIDTable // nil: no hydration markers
	counter int
}

func (s *serializer) writeChildren(w io.Writer, n *Node) error {
	var out []*html.Node
	for _, c := range n.children {
		out = append(out, s.convert(c)...)
	}
	return s.write(w, out)
}

func (s *serializer) write(w io.Writer, nodes []*html.Node) error {
	for _, h := range nodes {
		if err := html.Render(w, h); err != nil {
			return err
		}
	}
	return nil
}

// convert maps a node to zero or more html nodes. Fragments and documents
// contribute their children.
func (s *serializer) convert(n *Node) []*html.Node {
	switch n.Type {
	case TextNode:
		return []*html.Node{{Type: html.TextNode, Data: n.Data}}
	case CommentNode:
		return []*html.Node{{Type: html.CommentNode, Data: n.Data}}
	case FragmentNode, DocumentNode:
		var out []*html.Node
		for _, c := range n.children {
			out = append(out, s.convert(c)...)
		}
		return out
	}

	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     s.attributes(n),
	}

	children := n.children
	if n.Tag == "textarea" {
		if v, ok := n.live["value"].(string); ok {
			children = []*Node{NewText(v)}
		}
	}
	for _, c := range children {
		for _, hc := range s.convert(c) {
			h.AppendChild(hc)
		}
	}
	if n.Tag == "select" {
		if v, ok := n.live["value"].(string); ok {
			markSelected(h, n, v)
		}
	}
	return []*html.Node{h}
}

func (s *serializer) attributes(n *Node) []html.Attribute {
	attrs := n.Attributes()
	out := make([]html.Attribute, 0, len(attrs)+3)
	for _, a := range attrs {
		out = append(out, html.Attribute{Key: a.Name, Val: a.Value})
	}

	switch n.Tag {
	case "input":
		if v, ok := n.live["value"].(string); ok {
			out = setHTMLAttr(out, "value", v, true)
		}
		if c, ok := n.live["checked"].(bool); ok {
			out = setHTMLAttr(out, "checked", "", c)
		}
	case "option":
		if c, ok := n.live["selected"].(bool); ok {
			out = setHTMLAttr(out, "selected", "", c)
		}
	}

	if s.hids != nil && n.HasListeners() {
		s.counter++
		hid := fmt.Sprintf("h%d", s.counter)
		s.hids[hid] = n
		out = append(out, html.Attribute{Key: "data-hid", Val: hid})
		types := n.EventTypes()
		sort.Strings(types)
		for _, typ := range types {
			out = append(out, html.Attribute{Key: "data-on-" + typ, Val: "true"})
		}
	}
	return out
}

// markSelected sets the selected attribute on the html options of a select
// whose value matches v, and clears it on the others.
func markSelected(h *html.Node, n *Node, v string) {
	var opts []*Node
	n.walk(func(d *Node) bool {
		if d.Type == ElementNode && d.Tag == "option" {
			opts = append(opts, d)
		}
		return true
	})
	i := 0
	var visit func(*html.Node)
	visit = func(x *html.Node) {
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "option" && i < len(opts) {
				c.Attr = setHTMLAttr(c.Attr, "selected", "", optionValue(opts[i]) == v)
				i++
				continue
			}
			visit(c)
		}
	}
	visit(h)
}

// setHTMLAttr sets (present=true) or removes (present=false) an attribute.
func setHTMLAttr(attrs []html.Attribute, key, val string, present bool) []html.Attribute {
	for i, a := range attrs {
		if a.Key == key {
			if !present {
				return append(attrs[:i], attrs[i+1:]...)
			}
			attrs[i].Val = val
			return attrs
		}
	}
	if present {
		attrs = append(attrs, html.Attribute{Key: key, Val: val})
	}
	return attrs
}
