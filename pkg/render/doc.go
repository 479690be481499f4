// Package render materializes vdom trees into pkg/dom nodes.
//
// Materialization is a single pass with no memory of earlier passes: every
// call builds fresh nodes. Callers that re-render replace the previous
// content wholesale.
//
// # Node kinds
//
//   - nil: an empty comment, a placeholder that keeps the tree position
//   - text: a text node
//   - fragment: a document fragment; its children become siblings of
//     whatever it is appended to
//   - element: an element with props applied, then children appended
//
// # Props
//
// Each prop key is handled on its own, in sorted key order:
//
//   - on<Event> with a callable value attaches a listener for the lower-cased
//     event name. Callables are func(), func(*dom.Event), dom.Listener and
//     vdom.EventHandler wrapping one of those.
//   - class sets the class attribute, replacing any previous value; nil and
//     false clear it.
//   - style holding a vdom.StyleMap, map[string]string or map[string]any
//     sets each entry as an inline style property.
//   - a key naming an intrinsic property of the element (value, checked,
//     disabled, id, htmlFor...) is assigned through that property.
//   - any other key sets a generic attribute, unless its value is nil or
//     false.
//
// Unknown keys never fail.
package render
