// Package vdom provides the virtual node tree used to describe UI.
//
// A VNode is a lightweight, immutable description of an element, a text leaf
// or a Fragment (siblings without a wrapper). Trees are built fresh on every
// render and consumed once by the renderer; nodes have no identity across
// renders.
//
// # Construction
//
// H is the low-level constructor:
//
//	H("div", Props{"class": "a"}, "x", []any{"y", "z"})
//
// Slice children are flattened one level, so callers may pass single
// children or slices interchangeably. nil and false children are kept as
// placeholders.
//
// # Element API
//
// Elements can also be created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
package vdom
