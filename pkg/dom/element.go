package dom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GetAttribute returns the attribute value and whether it is present.
func (n *Node) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	if name == "style" && n.style != nil {
		return n.style.String(), true
	}
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

// SetAttribute sets an attribute, keeping the position of an existing one.
func (n *Node) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	if name == "style" {
		n.style = parseStyle(value)
		return
	}
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Name: name, Value: value})
}

// RemoveAttribute removes an attribute if present.
func (n *Node) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	if name == "style" {
		n.style = nil
		return
	}
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the attribute list in insertion order. The
// style attribute, when set, comes last.
func (n *Node) Attributes() []Attribute {
	out := make([]Attribute, len(n.attrs), len(n.attrs)+1)
	copy(out, n.attrs)
	if n.style != nil && n.style.Len() > 0 {
		out = append(out, Attribute{Name: "style", Value: n.style.String()})
	}
	return out
}

// ClassName returns the class attribute.
func (n *Node) ClassName() string {
	v, _ := n.GetAttribute("class")
	return v
}

// SetClassName replaces the class attribute.
func (n *Node) SetClassName(class string) {
	n.SetAttribute("class", class)
}

// ClassList returns the whitespace-separated classes.
func (n *Node) ClassList() []string {
	return strings.Fields(n.ClassName())
}

// ID returns the id attribute.
func (n *Node) ID() string {
	v, _ := n.GetAttribute("id")
	return v
}

// Style returns the inline style declaration, creating it on first use.
func (n *Node) Style() *Style {
	if n.style == nil {
		n.style = &Style{}
	}
	return n.style
}

// Style is an ordered inline style declaration.
type Style struct {
	names  []string
	values map[string]string
}

// Set sets a property. An empty value removes it.
func (s *Style) Set(name, value string) {
	name = cssName(name)
	if value == "" {
		s.Remove(name)
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get returns a property value.
func (s *Style) Get(name string) string {
	return s.values[cssName(name)]
}

// Remove deletes a property.
func (s *Style) Remove(name string) {
	name = cssName(name)
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties.
func (s *Style) Len() int {
	return len(s.names)
}

// String serializes the declaration as "a: b; c: d".
func (s *Style) String() string {
	parts := make([]string, 0, len(s.names))
	for _, name := range s.names {
		parts = append(parts, name+": "+s.values[name])
	}
	return strings.Join(parts, "; ")
}

// cssName converts camelCase property names (backgroundColor) to their CSS
// form (background-color). Custom properties are kept as written.
func cssName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parseStyle(s string) *Style {
	st := &Style{}
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		st.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return st
}

// propKind describes how an intrinsic property is stored.
type propKind uint8

const (
	propString  propKind = iota // reflected to a string attribute
	propBool                    // reflected to a boolean attribute
	propInt                     // reflected to an integer attribute
	propLive                    // live state not reflected to an attribute
	propLiveBool                // live boolean state
)

type propSpec struct {
	kind propKind
	attr string // reflected attribute name
}

var globalProps = map[string]propSpec{
	"id":        {propString, "id"},
	"title":     {propString, "title"},
	"lang":      {propString, "lang"},
	"dir":       {propString, "dir"},
	"className": {propString, "class"},
	"hidden":    {propBool, "hidden"},
	"tabIndex":  {propInt, "tabindex"},
}

var tagProps = map[string]map[string]propSpec{
	"input": {
		"value":       {propLive, "value"},
		"checked":     {propLiveBool, "checked"},
		"disabled":    {propBool, "disabled"},
		"required":    {propBool, "required"},
		"readOnly":    {propBool, "readonly"},
		"autofocus":   {propBool, "autofocus"},
		"type":        {propString, "type"},
		"name":        {propString, "name"},
		"placeholder": {propString, "placeholder"},
		"src":         {propString, "src"},
		"alt":         {propString, "alt"},
		"min":         {propString, "min"},
		"max":         {propString, "max"},
		"step":        {propString, "step"},
		"pattern":     {propString, "pattern"},
	},
	"textarea": {
		"value":       {propLive, "value"},
		"disabled":    {propBool, "disabled"},
		"required":    {propBool, "required"},
		"readOnly":    {propBool, "readonly"},
		"name":        {propString, "name"},
		"placeholder": {propString, "placeholder"},
		"rows":        {propInt, "rows"},
		"cols":        {propInt, "cols"},
	},
	"select": {
		"value":    {propLive, "value"},
		"disabled": {propBool, "disabled"},
		"required": {propBool, "required"},
		"multiple": {propBool, "multiple"},
		"name":     {propString, "name"},
	},
	"option": {
		"value":    {propString, "value"},
		"label":    {propString, "label"},
		"selected": {propLiveBool, "selected"},
		"disabled": {propBool, "disabled"},
	},
	"button": {
		"type":     {propString, "type"},
		"name":     {propString, "name"},
		"value":    {propString, "value"},
		"disabled": {propBool, "disabled"},
	},
	"form": {
		"action":  {propString, "action"},
		"method":  {propString, "method"},
		"name":    {propString, "name"},
		"target":  {propString, "target"},
		"enctype": {propString, "enctype"},
	},
	"label": {
		"htmlFor": {propString, "for"},
	},
	"img": {
		"src":    {propString, "src"},
		"alt":    {propString, "alt"},
		"width":  {propInt, "width"},
		"height": {propInt, "height"},
	},
	"a": {
		"href":   {propString, "href"},
		"target": {propString, "target"},
		"rel":    {propString, "rel"},
	},
	"th": {
		"scope": {propString, "scope"},
	},
}

func (n *Node) propSpec(name string) (propSpec, bool) {
	if n.Type != ElementNode {
		return propSpec{}, false
	}
	if spec, ok := tagProps[n.Tag][name]; ok {
		return spec, true
	}
	spec, ok := globalProps[name]
	return spec, ok
}

// HasProperty reports whether name is an intrinsic settable property of the
// element (the equivalent of `name in element`).
func (n *Node) HasProperty(name string) bool {
	_, ok := n.propSpec(name)
	return ok
}

// SetProperty assigns an intrinsic property. Reflected string and integer
// properties remove their attribute on nil; boolean properties follow the
// truthiness of the value. It returns false when name is not a property of
// the element.
func (n *Node) SetProperty(name string, value any) bool {
	spec, ok := n.propSpec(name)
	if !ok {
		return false
	}
	switch spec.kind {
	case propString, propInt:
		if value == nil {
			n.RemoveAttribute(spec.attr)
			return true
		}
		n.SetAttribute(spec.attr, stringify(value))
	case propBool:
		if truthy(value) {
			n.SetAttribute(spec.attr, "")
		} else {
			n.RemoveAttribute(spec.attr)
		}
	case propLive:
		if n.live == nil {
			n.live = make(map[string]any)
		}
		if value == nil {
			n.live[name] = ""
		} else {
			n.live[name] = stringify(value)
		}
	case propLiveBool:
		if n.live == nil {
			n.live = make(map[string]any)
		}
		n.live[name] = truthy(value)
	}
	return true
}

// Property returns the current value of an intrinsic property, or nil when
// name is not a property of the element.
func (n *Node) Property(name string) any {
	spec, ok := n.propSpec(name)
	if !ok {
		return nil
	}
	switch spec.kind {
	case propBool:
		return n.HasAttribute(spec.attr)
	case propInt:
		v, _ := n.GetAttribute(spec.attr)
		i, _ := strconv.Atoi(v)
		return i
	case propLive:
		if v, ok := n.live[name]; ok {
			return v
		}
		if n.Tag == "select" {
			return n.selectedOptionValue()
		}
		if n.Tag == "textarea" {
			return n.TextContent()
		}
		v, _ := n.GetAttribute(spec.attr)
		return v
	case propLiveBool:
		if v, ok := n.live[name]; ok {
			return v
		}
		return n.HasAttribute(spec.attr)
	default:
		v, _ := n.GetAttribute(spec.attr)
		return v
	}
}

// Value returns the element's value property as a string.
func (n *Node) Value() string {
	v, _ := n.Property("value").(string)
	return v
}

// Checked returns the element's checked property.
func (n *Node) Checked() bool {
	v, _ := n.Property("checked").(bool)
	return v
}

func (n *Node) selectedOptionValue() string {
	var first, selected *Node
	n.walk(func(d *Node) bool {
		if d.Type == ElementNode && d.Tag == "option" {
			if first == nil {
				first = d
			}
			if selected == nil {
				if v, ok := d.Property("selected").(bool); ok && v {
					selected = d
				}
			}
		}
		return true
	})
	if selected == nil {
		selected = first
	}
	if selected == nil {
		return ""
	}
	return optionValue(selected)
}

func optionValue(opt *Node) string {
	if v, ok := opt.GetAttribute("value"); ok {
		return v
	}
	return strings.TrimSpace(opt.TextContent())
}

// AttributeNames returns the sorted attribute names. Useful for tests.
func (n *Node) AttributeNames() []string {
	names := make([]string, 0, len(n.attrs)+1)
	for _, a := range n.Attributes() {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case int:
		return b != 0
	case float64:
		return b != 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
