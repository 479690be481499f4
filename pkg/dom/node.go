package dom

import "strings"

// NodeType identifies the kind of a Node.
type NodeType uint8

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CommentNode
	FragmentNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case FragmentNode:
		return "DocumentFragment"
	default:
		return "Unknown"
	}
}

// Attribute is a single name/value attribute pair.
type Attribute struct {
	Name  string
	Value string
}

// Node is a document node. Which fields are meaningful depends on Type.
type Node struct {
	Type NodeType
	Tag  string // lower-cased tag name, elements only
	Data string // text and comment content

	parent   *Node
	children []*Node

	attrs     []Attribute
	style     *Style
	live      map[string]any // non-reflected properties: value, checked, selected
	listeners map[string][]Listener
}

// NewElement creates a detached element.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: strings.ToLower(tag)}
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// NewComment creates a detached comment node.
func NewComment(data string) *Node {
	return &Node{Type: CommentNode, Data: data}
}

// NewFragment creates an empty document fragment.
func NewFragment() *Node {
	return &Node{Type: FragmentNode}
}

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildNodes returns a copy of the child list.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// AppendChild appends child to n and returns it. A child that is already
// attached elsewhere is moved. Appending a fragment moves the fragment's
// children, in order, and leaves the fragment empty.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil {
		return nil
	}
	if child.Type == FragmentNode {
		moved := child.children
		child.children = nil
		for _, c := range moved {
			c.parent = nil
			n.AppendChild(c)
		}
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// ReplaceChildren removes every child of n, then appends nodes in order.
func (n *Node) ReplaceChildren(nodes ...*Node) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	for _, c := range nodes {
		n.AppendChild(c)
	}
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	switch n.Type {
	case TextNode:
		return n.Data
	case CommentNode:
		return ""
	}
	var b strings.Builder
	n.walk(func(d *Node) bool {
		if d.Type == TextNode {
			b.WriteString(d.Data)
		}
		return true
	})
	return b.String()
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(s string) {
	if n.Type == TextNode || n.Type == CommentNode {
		n.Data = s
		return
	}
	if s == "" {
		n.ReplaceChildren()
		return
	}
	n.ReplaceChildren(NewText(s))
}

// walk visits descendants of n in document order. fn returning false skips
// the subtree of that node.
func (n *Node) walk(fn func(*Node) bool) {
	for _, c := range n.children {
		if fn(c) {
			c.walk(fn)
		}
	}
}

// Walk visits n and its descendants in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	n.walk(func(d *Node) bool {
		fn(d)
		return true
	})
}

// Closest returns the nearest inclusive ancestor element with the given tag.
func (n *Node) Closest(tag string) *Node {
	tag = strings.ToLower(tag)
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Type == ElementNode && cur.Tag == tag {
			return cur
		}
	}
	return nil
}

// Document is the root of a node tree.
type Document struct {
	root *Node
}

// NewDocument creates a document with an empty html/head/body skeleton.
func NewDocument() *Document {
	root := &Node{Type: DocumentNode}
	html := root.AppendChild(NewElement("html"))
	html.AppendChild(NewElement("head"))
	html.AppendChild(NewElement("body"))
	return &Document{root: root}
}

// Root returns the document node.
func (d *Document) Root() *Node {
	return d.root
}

// Body returns the body element, or nil when the document has none.
func (d *Document) Body() *Node {
	return d.root.QuerySelector("body")
}

// Head returns the head element, or nil when the document has none.
func (d *Document) Head() *Node {
	return d.root.QuerySelector("head")
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Node { return NewElement(tag) }

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Node { return NewText(data) }

// CreateComment creates a detached comment.
func (d *Document) CreateComment(data string) *Node { return NewComment(data) }

// CreateDocumentFragment creates an empty fragment.
func (d *Document) CreateDocumentFragment() *Node { return NewFragment() }

// QuerySelector returns the first element in the document matching sel.
func (d *Document) QuerySelector(sel string) *Node {
	return d.root.QuerySelector(sel)
}
