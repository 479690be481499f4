package dom

import "strings"

// compound is a parsed compound selector: tag#id.class.class.
type compound struct {
	tag     string
	id      string
	classes []string
}

// parseSelector parses a compound selector. It supports a type selector,
// one id and any number of classes, in any order after the type.
func parseSelector(sel string) (compound, bool) {
	sel = strings.TrimSpace(sel)
	if sel == "" || strings.ContainsAny(sel, " >+~[:,") {
		return compound{}, false
	}
	var c compound
	i := 0
	for i < len(sel) && sel[i] != '#' && sel[i] != '.' {
		i++
	}
	c.tag = strings.ToLower(sel[:i])
	for i < len(sel) {
		marker := sel[i]
		j := i + 1
		for j < len(sel) && sel[j] != '#' && sel[j] != '.' {
			j++
		}
		name := sel[i+1 : j]
		if name == "" {
			return compound{}, false
		}
		if marker == '#' {
			if c.id != "" {
				return compound{}, false
			}
			c.id = name
		} else {
			c.classes = append(c.classes, name)
		}
		i = j
	}
	if c.tag == "*" {
		c.tag = ""
	}
	return c, true
}

func (c compound) matches(n *Node) bool {
	if n.Type != ElementNode {
		return false
	}
	if c.tag != "" && n.Tag != c.tag {
		return false
	}
	if c.id != "" && n.ID() != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := n.ClassList()
		for _, want := range c.classes {
			found := false
			for _, h := range have {
				if h == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// QuerySelector returns the first descendant element matching sel, in
// document order, or nil. Only compound selectors (tag, #id, .class and their
// combinations) are supported; anything else matches nothing.
func (n *Node) QuerySelector(sel string) *Node {
	c, ok := parseSelector(sel)
	if !ok {
		return nil
	}
	var found *Node
	n.walk(func(d *Node) bool {
		if found != nil {
			return false
		}
		if c.matches(d) {
			found = d
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns every descendant element matching sel in document
// order.
func (n *Node) QuerySelectorAll(sel string) []*Node {
	c, ok := parseSelector(sel)
	if !ok {
		return nil
	}
	var out []*Node
	n.walk(func(d *Node) bool {
		if c.matches(d) {
			out = append(out, d)
		}
		return true
	})
	return out
}
