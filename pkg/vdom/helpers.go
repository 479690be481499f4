package vdom

import "fmt"

// Text returns a text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf returns a text node with fmt.Sprintf formatting.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Group is shorthand for H(Fragment, nil, children...).
func Group(children ...any) *VNode {
	return H(Fragment, nil, children...)
}

// If returns node when cond holds and a placeholder otherwise.
func If(cond bool, node *VNode) *VNode {
	if !cond {
		return nil
	}
	return node
}

// IfElse returns ifTrue when cond holds and ifFalse otherwise.
func IfElse(cond bool, ifTrue, ifFalse *VNode) *VNode {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// When is If with the node built only when cond holds.
func When(cond bool, build func() *VNode) *VNode {
	if !cond {
		return nil
	}
	return build()
}

// Range builds one node per item. Items that build nil are skipped, so the
// result never holds placeholders.
func Range[T any](items []T, build func(item T, index int) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := build(item, i); n != nil {
			out = append(out, n)
		}
	}
	return out
}
