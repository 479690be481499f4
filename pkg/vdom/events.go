package vdom

// On binds handler to events of type name. handler is a func(), a
// func(*dom.Event) or a func(any); the renderer adapts each form to a
// listener.
func On(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

func OnClick(handler any) EventHandler { return On("click", handler) }

// OnInput fires on every edit of a field.
func OnInput(handler any) EventHandler { return On("input", handler) }

// OnChange fires when a field's value is committed, e.g. a select choice.
func OnChange(handler any) EventHandler { return On("change", handler) }

func OnSubmit(handler any) EventHandler { return On("submit", handler) }
