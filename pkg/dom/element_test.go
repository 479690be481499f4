package dom

import (
	"reflect"
	"testing"
)

func TestAttributes(t *testing.T) {
	el := NewElement("div")
	el.SetAttribute("data-a", "1")
	el.SetAttribute("Title", "x")
	el.SetAttribute("data-a", "2")

	if v, ok := el.GetAttribute("data-a"); !ok || v != "2" {
		t.Errorf("data-a = %q,%v want 2,true", v, ok)
	}
	want := []Attribute{{"data-a", "2"}, {"title", "x"}}
	if got := el.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes = %v, want %v", got, want)
	}

	el.RemoveAttribute("data-a")
	if el.HasAttribute("data-a") {
		t.Error("data-a should be removed")
	}
}

func TestStyle(t *testing.T) {
	el := NewElement("span")
	el.Style().Set("backgroundColor", "red")
	el.Style().Set("width", "10px")

	if got := el.Style().Get("background-color"); got != "red" {
		t.Errorf("background-color = %q, want red", got)
	}
	if v, _ := el.GetAttribute("style"); v != "background-color: red; width: 10px" {
		t.Errorf("style attribute = %q", v)
	}

	el.Style().Set("width", "")
	if el.Style().Len() != 1 {
		t.Errorf("empty value should remove the property, Len = %d", el.Style().Len())
	}

	el.SetAttribute("style", "color: blue; margin: 0")
	if got := el.Style().Get("margin"); got != "0" {
		t.Errorf("parsed margin = %q, want 0", got)
	}
}

func TestHasProperty(t *testing.T) {
	tests := []struct {
		tag, name string
		want      bool
	}{
		{"input", "value", true},
		{"input", "checked", true},
		{"input", "disabled", true},
		{"button", "disabled", true},
		{"div", "id", true},
		{"div", "value", false},
		{"label", "for", false},
		{"label", "htmlFor", true},
		{"div", "data-x", false},
		{"img", "src", true},
	}
	for _, tt := range tests {
		if got := NewElement(tt.tag).HasProperty(tt.name); got != tt.want {
			t.Errorf("<%s>.HasProperty(%q) = %v, want %v", tt.tag, tt.name, got, tt.want)
		}
	}
	if NewText("x").HasProperty("id") {
		t.Error("text nodes have no element properties")
	}
}

func TestSetPropertyReflection(t *testing.T) {
	btn := NewElement("button")

	btn.SetProperty("disabled", true)
	if !btn.HasAttribute("disabled") {
		t.Error("disabled=true should reflect to the attribute")
	}
	btn.SetProperty("disabled", false)
	if btn.HasAttribute("disabled") {
		t.Error("disabled=false should remove the attribute")
	}

	btn.SetProperty("type", "button")
	if v, _ := btn.GetAttribute("type"); v != "button" {
		t.Errorf("type attribute = %q, want button", v)
	}
	btn.SetProperty("type", nil)
	if btn.HasAttribute("type") {
		t.Error("nil should remove a reflected string attribute")
	}

	if btn.SetProperty("data-x", "1") {
		t.Error("SetProperty should refuse non-properties")
	}
}

func TestLiveValue(t *testing.T) {
	input := NewElement("input")
	input.SetAttribute("value", "default")
	if got := input.Value(); got != "default" {
		t.Errorf("Value before set = %q, want default", got)
	}

	input.SetProperty("value", "typed")
	if got := input.Value(); got != "typed" {
		t.Errorf("Value = %q, want typed", got)
	}
	if v, _ := input.GetAttribute("value"); v != "default" {
		t.Errorf("value attribute should stay %q, got %q", "default", v)
	}

	input.SetProperty("value", nil)
	if got := input.Value(); got != "" {
		t.Errorf("nil value = %q, want empty", got)
	}

	input.SetProperty("checked", true)
	if !input.Checked() {
		t.Error("Checked should be true")
	}
}

func TestSelectValueFromOptions(t *testing.T) {
	sel := NewElement("select")
	for _, v := range []string{"all", "blue", "red"} {
		opt := sel.AppendChild(NewElement("option"))
		opt.SetAttribute("value", v)
	}
	if got := sel.Value(); got != "all" {
		t.Errorf("default select value = %q, want first option", got)
	}

	sel.ChildNodes()[2].SetProperty("selected", true)
	if got := sel.Value(); got != "red" {
		t.Errorf("select value = %q, want red", got)
	}

	sel.SetProperty("value", "blue")
	if got := sel.Value(); got != "blue" {
		t.Errorf("select value = %q, want blue", got)
	}
}
