package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// childTexts returns the text of each child, "<nil>" for placeholders and
// the tag for elements.
func childTexts(n *VNode) []string {
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		switch {
		case c == nil:
			out = append(out, "<nil>")
		case c.Kind == KindText:
			out = append(out, c.Text)
		default:
			out = append(out, "<"+c.Tag+">")
		}
	}
	return out
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHFlattensOneLevel(t *testing.T) {
	node := H("div", Props{"class": "a"}, "x", []any{"y", "z"})

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("got kind=%v tag=%q, want element div", node.Kind, node.Tag)
	}
	if node.Props["class"] != "a" {
		t.Errorf("class = %v, want a", node.Props["class"])
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, childTexts(node)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestHChildForms(t *testing.T) {
	tests := []struct {
		name     string
		children []any
		want     []string
	}{
		{"strings", []any{"a", "b"}, []string{"a", "b"}},
		{"numbers", []any{3, 2.5, int64(7)}, []string{"3", "2.5", "7"}},
		{"nil and false keep position", []any{"a", nil, false, "b"}, []string{"a", "<nil>", "<nil>", "b"}},
		{"node slice", []any{[]*VNode{Text("p"), H("span", nil)}}, []string{"p", "<span>"}},
		{"string slice", []any{[]string{"s1", "s2"}}, []string{"s1", "s2"}},
		{"mixed order", []any{"first", []any{"mid1", "mid2"}, "last"}, []string{"first", "mid1", "mid2", "last"}},
		{"typed nil node", []any{(*VNode)(nil)}, []string{"<nil>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := H("div", nil, tt.children...)
			if diff := cmp.Diff(tt.want, childTexts(node)); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHNestedSliceBecomesFragment(t *testing.T) {
	node := H("ul", nil, []any{"a", []any{"b", "c"}})

	if len(node.Children) != 2 {
		t.Fatalf("Children len = %d, want 2", len(node.Children))
	}
	inner := node.Children[1]
	if inner.Kind != KindFragment {
		t.Fatalf("second child kind = %v, want Fragment", inner.Kind)
	}
	if diff := cmp.Diff([]string{"b", "c"}, childTexts(inner)); diff != "" {
		t.Errorf("fragment children mismatch (-want +got):\n%s", diff)
	}
}

func TestHDefaultsProps(t *testing.T) {
	node := H("p", nil)
	if node.Props == nil {
		t.Fatal("Props should default to an empty mapping")
	}
	if len(node.Props) != 0 {
		t.Errorf("Props len = %d, want 0", len(node.Props))
	}
}

func TestHFragment(t *testing.T) {
	node := H(Fragment, nil, H("a", nil), H("b", nil))
	if node.Kind != KindFragment {
		t.Fatalf("Kind = %v, want Fragment", node.Kind)
	}
	if node.Tag != "" {
		t.Errorf("Tag = %q, want empty", node.Tag)
	}
	if diff := cmp.Diff([]string{"<a>", "<b>"}, childTexts(node)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestHUnsupportedTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported node type")
		}
	}()
	H(42, nil)
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", Text("hello"), false},
		{"element without handlers", H("div", Props{"class": "test"}), false},
		{"element with onclick", H("button", Props{"onclick": func() {}}), true},
		{"fragment node", H(Fragment, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}
