// Package dom is a small in-memory document model: the materialization target
// for rendered node trees.
//
// It covers what a renderer needs from a browser document: elements, text,
// comments and document fragments; ordered attributes, class, inline style
// and intrinsic element properties (value, checked, disabled, ...); event
// listeners with bubbling; simple selectors; and HTML parsing and
// serialization through golang.org/x/net/html.
//
// A Document is not safe for concurrent use. Callers serialize access, usually
// by touching it only from one event loop.
package dom
