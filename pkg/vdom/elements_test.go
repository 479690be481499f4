package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Div(Class("card"), ID("main"))
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
	})

	t.Run("with string shorthand", func(t *testing.T) {
		node := Div("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText || node.Children[0].Text != "Hello" {
			t.Errorf("child = %+v, want text Hello", node.Children[0])
		}
	})

	t.Run("event handler becomes prop", func(t *testing.T) {
		called := false
		node := Button(OnClick(func() { called = true }), "Go")
		fn, ok := node.Props["onclick"].(func())
		if !ok {
			t.Fatalf("onclick prop = %T, want func()", node.Props["onclick"])
		}
		fn()
		if !called {
			t.Error("handler was not the one passed in")
		}
	})

	t.Run("style map and props merge", func(t *testing.T) {
		node := Span(StyleMap{"color": "red"}, Props{"data-x": "1"})
		if _, ok := node.Props["style"].(StyleMap); !ok {
			t.Errorf("style prop = %T, want StyleMap", node.Props["style"])
		}
		if node.Props["data-x"] != "1" {
			t.Errorf("data-x = %v, want 1", node.Props["data-x"])
		}
	})

	t.Run("empty attr is skipped", func(t *testing.T) {
		node := Button(AttrIf(false, Disabled()))
		if _, ok := node.Props["disabled"]; ok {
			t.Error("AttrIf(false) should not set a prop")
		}
	})

	t.Run("children slices flatten", func(t *testing.T) {
		items := Range([]string{"a", "b"}, func(s string, _ int) *VNode { return Td(s) })
		node := Tr(Th("h"), items)
		if len(node.Children) != 3 {
			t.Errorf("Children len = %d, want 3", len(node.Children))
		}
	})
}

func TestClasses(t *testing.T) {
	got := Classes("btn", "", "active").Value
	if got != "btn active" {
		t.Errorf("Classes = %q, want %q", got, "btn active")
	}
	got = Classes(map[string]bool{"on": true, "off": false}).Value
	if got != "on" {
		t.Errorf("Classes(map) = %q, want on", got)
	}
}

func TestEventNames(t *testing.T) {
	h := func() {}
	tests := []struct {
		handler EventHandler
		want    string
	}{
		{OnClick(h), "onclick"},
		{OnInput(h), "oninput"},
		{OnChange(h), "onchange"},
		{OnSubmit(h), "onsubmit"},
		{On("keydown", h), "onkeydown"},
	}
	for _, tt := range tests {
		if tt.handler.Event != tt.want {
			t.Errorf("Event = %q, want %q", tt.handler.Event, tt.want)
		}
	}
}

func TestConditionalHelpers(t *testing.T) {
	a, b := Text("a"), Text("b")
	if If(false, a) != nil || If(true, a) != a {
		t.Error("If returned the wrong node")
	}
	if IfElse(false, a, b) != b || IfElse(true, a, b) != a {
		t.Error("IfElse returned the wrong node")
	}
	called := false
	When(false, func() *VNode { called = true; return a })
	if called {
		t.Error("When(false) must not evaluate the function")
	}
	if g := Group("x", nil); g.Kind != KindFragment || len(g.Children) != 2 {
		t.Errorf("Group = %+v, want fragment with 2 children", g)
	}
}
