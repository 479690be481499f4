package vdom

import (
	"fmt"
	"strconv"
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// A nil *VNode is a valid child: it keeps its position in the tree and is
// materialized as an empty placeholder.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes, nil entries are placeholders
	Text     string   // For KindText
}

// Props holds attributes and event handlers.
type Props map[string]any

// StyleMap is an inline style object: CSS property name to value.
type StyleMap map[string]string

// group is the type of the Fragment marker.
type group struct{}

// Fragment is the group marker. Passed as the type argument of H it produces
// a node whose children become siblings with no wrapping element.
var Fragment = &group{}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// H builds a node from a type, a props mapping and children.
//
// typ is an element tag or Fragment. A nil props mapping defaults to an empty
// one. Each child argument is either a single child or a slice of children;
// slices are flattened one level, preserving order.
func H(typ any, props Props, children ...any) *VNode {
	if props == nil {
		props = Props{}
	}

	node := &VNode{
		Props:    props,
		Children: make([]*VNode, 0, len(children)),
	}

	switch t := typ.(type) {
	case *group:
		node.Kind = KindFragment
	case string:
		node.Kind = KindElement
		node.Tag = t
	default:
		panic(fmt.Sprintf("vdom: H: unsupported node type %T", typ))
	}

	for _, child := range children {
		node.Children = appendChild(node.Children, child, true)
	}
	return node
}

// appendChild normalizes one child argument and appends it. When flatten is
// set, slice arguments contribute their elements instead of themselves.
func appendChild(dst []*VNode, child any, flatten bool) []*VNode {
	switch v := child.(type) {
	case []*VNode:
		if !flatten {
			break
		}
		return append(dst, v...)
	case []any:
		if !flatten {
			break
		}
		for _, c := range v {
			dst = appendChild(dst, c, false)
		}
		return dst
	case []string:
		if !flatten {
			break
		}
		for _, s := range v {
			dst = append(dst, Text(s))
		}
		return dst
	}
	return append(dst, toNode(child))
}

// toNode converts a single child value to a node.
func toNode(child any) *VNode {
	switch v := child.(type) {
	case nil:
		return nil
	case *VNode:
		return v
	case string:
		return Text(v)
	case []*VNode, []any, []string:
		// Nested deeper than one level: keep the group as a fragment.
		return H(Fragment, nil, v)
	case bool:
		// Conditional children such as `cond && node` collapse to a placeholder.
		return nil
	case int:
		return Text(strconv.Itoa(v))
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Text(fmt.Sprintf("%d", v))
	case float32:
		return Text(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64))
	case fmt.Stringer:
		return Text(v.String())
	default:
		return Text(fmt.Sprintf("%v", v))
	}
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}
