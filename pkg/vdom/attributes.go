package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrIf returns a when cond holds. Otherwise it returns the empty Attr,
// which element helpers ignore.
func AttrIf(cond bool, a Attr) Attr {
	if !cond {
		return Attr{}
	}
	return a
}

func ID(id string) Attr { return attr("id", id) }

// Class joins its arguments with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Classes accepts strings and map[string]bool values. Empty strings and
// false entries are left out. Map keys are added in map order.
func Classes(classes ...any) Attr {
	var parts []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				parts = append(parts, v)
			}
		case map[string]bool:
			for name, on := range v {
				if on {
					parts = append(parts, name)
				}
			}
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// Style takes a style object; the renderer writes each entry as a CSS
// property.
func Style(style StyleMap) Attr { return attr("style", style) }

// TitleAttr is the title attribute. Title is the element.
func TitleAttr(title string) Attr { return attr("title", title) }

// Data returns the data-<key> attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

func Name(name string) Attr { return attr("name", name) }
func Type(t string) Attr { return attr("type", t) }
func Placeholder(text string) Attr { return attr("placeholder", text) }
func For(id string) Attr { return attr("for", id) }
func Src(url string) Attr { return attr("src", url) }
func Alt(text string) Attr { return attr("alt", text) }
func Scope(scope string) Attr { return attr("scope", scope) }

// Value, Disabled, Checked and Selected name element properties where the
// element has them; the renderer assigns those instead of an attribute.
func Value(value string) Attr { return attr("value", value) }
func Disabled() Attr { return attr("disabled", true) }
func Checked() Attr { return attr("checked", true) }
func Selected() Attr { return attr("selected", true) }
