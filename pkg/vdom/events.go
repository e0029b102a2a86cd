package vdom

func event(name string, handler func()) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick binds a click handler.
func OnClick(handler func()) EventHandler { return event("click", handler) }

// OnSubmit binds a form submit handler.
func OnSubmit(handler func()) EventHandler { return event("submit", handler) }

// OnInput binds an input handler.
func OnInput(handler func()) EventHandler { return event("input", handler) }
