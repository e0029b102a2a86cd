package vdom

import (
	"sort"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindComponent             // Nested component
	KindRaw                   // Raw HTML, written unescaped
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     Kind      // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	HID      string    // Hydration ID
}

// Props holds attributes and event handlers.
type Props map[string]any

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value any
}

// EventHandler binds a DOM event to a Go callback.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler func()
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

type funcComponent func() *VNode

func (f funcComponent) Render() *VNode { return f() }

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return funcComponent(render)
}

// IsInteractive reports whether the node carries event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsEventKey(key) {
			return true
		}
	}
	return false
}

// Handler returns the callback bound to event ("click" or "onclick").
func (v *VNode) Handler(event string) func() {
	if v == nil || v.Props == nil {
		return nil
	}
	if !strings.HasPrefix(event, "on") {
		event = "on" + event
	}
	if h, ok := v.Props[event].(func()); ok {
		return h
	}
	return nil
}

// Events returns the event names (without the "on" prefix) the node handles.
func (v *VNode) Events() []string {
	if v == nil {
		return nil
	}
	var events []string
	for key, val := range v.Props {
		if _, ok := val.(func()); ok && IsEventKey(key) {
			events = append(events, strings.TrimPrefix(key, "on"))
		}
	}
	sort.Strings(events)
	return events
}

// IsEventKey reports whether a prop key names an event handler.
func IsEventKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}
