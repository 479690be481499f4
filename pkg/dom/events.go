package dom

import "strings"

// Listener handles a dispatched event.
type Listener func(*Event)

// Event is a DOM event. Value, Checked and Confirm carry input state from the
// environment that produced the event.
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node

	// Value is the target's value at the time of the event, if any.
	Value string
	// Checked is the target's checked state at the time of the event.
	Checked bool
	// Confirm is the user's answer to a confirmation prompt shown by the
	// environment before the event was sent.
	Confirm bool

	defaultPrevented bool
	stopped          bool
}

// PreventDefault cancels the event's default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from bubbling further.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// AddEventListener registers fn for events of the given type.
func (n *Node) AddEventListener(typ string, fn Listener) {
	if fn == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	typ = strings.ToLower(typ)
	n.listeners[typ] = append(n.listeners[typ], fn)
}

// EventTypes returns the event types n has listeners for.
func (n *Node) EventTypes() []string {
	types := make([]string, 0, len(n.listeners))
	for typ, fns := range n.listeners {
		if len(fns) > 0 {
			types = append(types, typ)
		}
	}
	return types
}

// HasListeners reports whether n has any event listener.
func (n *Node) HasListeners() bool {
	for _, fns := range n.listeners {
		if len(fns) > 0 {
			return true
		}
	}
	return false
}

// DispatchEvent delivers ev to n and then to each ancestor until propagation
// is stopped. It then runs the default action unless it was prevented and
// reports whether the default was not prevented.
//
// The only default action is form submission: a click on a submit button
// inside a form dispatches "submit" on that form.
func (n *Node) DispatchEvent(ev *Event) bool {
	ev.Type = strings.ToLower(ev.Type)
	ev.Target = n

	for cur := n; cur != nil && !ev.stopped; cur = cur.parent {
		fns := cur.listeners[ev.Type]
		if len(fns) == 0 {
			continue
		}
		ev.CurrentTarget = cur
		// Copy: a listener may add listeners while we iterate.
		for _, fn := range append([]Listener(nil), fns...) {
			fn(ev)
		}
	}
	ev.CurrentTarget = nil

	if ev.defaultPrevented {
		return false
	}
	if ev.Type == "click" && n.isSubmitButton() {
		if form := n.Closest("form"); form != nil {
			form.DispatchEvent(&Event{Type: "submit"})
		}
	}
	return true
}

func (n *Node) isSubmitButton() bool {
	if n.Type != ElementNode {
		return false
	}
	switch n.Tag {
	case "button":
		t, ok := n.GetAttribute("type")
		return !ok || strings.EqualFold(t, "submit")
	case "input":
		t, _ := n.GetAttribute("type")
		return strings.EqualFold(t, "submit")
	}
	return false
}
