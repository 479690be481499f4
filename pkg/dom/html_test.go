package dom

import (
	"strings"
	"testing"
)

func renderInner(t *testing.T, n *Node) string {
	t.Helper()
	var b strings.Builder
	if err := RenderInner(&b, n); err != nil {
		t.Fatalf("RenderInner: %v", err)
	}
	return b.String()
}

func TestRenderElementTree(t *testing.T) {
	root := NewElement("div")
	p := root.AppendChild(NewElement("p"))
	p.SetClassName("note")
	p.AppendChild(NewText("a < b"))
	root.AppendChild(NewComment(""))
	img := root.AppendChild(NewElement("img"))
	img.SetAttribute("src", "x.svg")

	got := renderInner(t, root)
	want := `<p class="note">a &lt; b</p><!----><img src="x.svg"/>`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderFragmentInline(t *testing.T) {
	frag := NewFragment()
	frag.AppendChild(NewElement("a"))
	frag.AppendChild(NewElement("b"))

	var b strings.Builder
	if err := Render(&b, frag); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "<a></a><b></b>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderLiveState(t *testing.T) {
	root := NewElement("div")
	input := root.AppendChild(NewElement("input"))
	input.SetProperty("value", "T1")
	box := root.AppendChild(NewElement("input"))
	box.SetAttribute("type", "checkbox")
	box.SetProperty("checked", true)
	area := root.AppendChild(NewElement("textarea"))
	area.SetProperty("value", "notes")
	sel := root.AppendChild(NewElement("select"))
	for _, v := range []string{"all", "red"} {
		o := sel.AppendChild(NewElement("option"))
		o.SetAttribute("value", v)
		o.AppendChild(NewText(v))
	}
	sel.SetProperty("value", "red")

	got := renderInner(t, root)
	for _, want := range []string{
		`<input value="T1"/>`,
		`<input type="checkbox" checked=""/>`,
		`<textarea>notes</textarea>`,
		`<option value="all">all</option>`,
		`<option value="red" selected="">red</option>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestRenderInnerHydrated(t *testing.T) {
	root := NewElement("div")
	plain := root.AppendChild(NewElement("span"))
	plain.AppendChild(NewText("x"))
	btn := root.AppendChild(NewElement("button"))
	btn.AddEventListener("click", func(*Event) {})
	input := root.AppendChild(NewElement("input"))
	input.AddEventListener("input", func(*Event) {})
	input.AddEventListener("change", func(*Event) {})

	var b strings.Builder
	table, err := RenderInnerHydrated(&b, root)
	if err != nil {
		t.Fatal(err)
	}
	if table["h1"] != btn || table["h2"] != input || len(table) != 2 {
		t.Errorf("unexpected table %v", table)
	}
	out := b.String()
	if !strings.Contains(out, `<button data-hid="h1" data-on-click="true">`) {
		t.Errorf("button markers missing: %s", out)
	}
	if !strings.Contains(out, `data-hid="h2" data-on-change="true" data-on-input="true"`) {
		t.Errorf("input markers missing or unsorted: %s", out)
	}
	if strings.Contains(out, `<span data-hid`) {
		t.Errorf("non-interactive elements must not get an id: %s", out)
	}
}

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<!DOCTYPE html><html><head><title>t</title></head><body><div id="app" class="shell"><!-- c --></div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	app := doc.QuerySelector("#app")
	if app == nil {
		t.Fatal("#app not found")
	}
	if app.ClassName() != "shell" {
		t.Errorf("class = %q, want shell", app.ClassName())
	}
	if app.Len() != 1 || app.FirstChild().Type != CommentNode {
		t.Errorf("comment child not preserved")
	}

	var b strings.Builder
	if err := Render(&b, doc.Root()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "<!DOCTYPE html><html><head><title>t</title>") {
		t.Errorf("document render = %q", b.String())
	}
}
