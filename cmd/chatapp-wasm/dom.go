//go:build js && wasm

package main

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/vango-dev/chatapp/pkg/reactive"
	"github.com/vango-dev/chatapp/pkg/render"
	"github.com/vango-dev/chatapp/pkg/vdom"
)

// dom applies renders to the document. Elements are found by data-hid.
type dom struct {
	doc      js.Value
	rt       *reactive.Runtime
	logger   *slog.Logger
	rec      *vdom.Reconciler
	renderer *render.Renderer

	nodes     map[string]js.Value
	listening map[string]map[string]bool
	listener  js.Func
}

func newDOM(doc js.Value, rt *reactive.Runtime, logger *slog.Logger) *dom {
	d := &dom{
		doc:       doc,
		rt:        rt,
		logger:    logger,
		rec:       vdom.NewReconciler(),
		renderer:  render.NewRenderer(render.Config{}),
		nodes:     make(map[string]js.Value),
		listening: make(map[string]map[string]bool),
	}
	d.listener = js.FuncOf(d.onEvent)
	return d
}

// hydrate adopts server-rendered markup rooted at el.
func (d *dom) hydrate(el js.Value, view *vdom.VNode) {
	tree := d.rec.Mount(view)
	d.index(el)
	d.listen(tree)
}

// mount renders view into parent.
func (d *dom) mount(parent js.Value, view *vdom.VNode) error {
	tree := d.rec.Mount(view)
	html, err := d.renderer.RenderToString(tree)
	if err != nil {
		return err
	}
	parent.Call("insertAdjacentHTML", "afterbegin", html)
	d.index(parent)
	d.listen(tree)
	return nil
}

// update diffs view against the previous render and patches the DOM.
func (d *dom) update(view *vdom.VNode) error {
	for _, p := range d.rec.Update(view) {
		el, ok := d.nodes[p.HID]
		if !ok {
			return fmt.Errorf("no element for %s (%s)", p.HID, p.Op)
		}
		switch p.Op {
		case vdom.PatchSetText:
			el.Set("textContent", p.Value)
		case vdom.PatchSetAttr:
			el.Call("setAttribute", p.Key, p.Value)
		case vdom.PatchRemoveAttr:
			el.Call("removeAttribute", p.Key)
		case vdom.PatchReplaceNode:
			if err := d.replace(el, p.Node); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *dom) replace(old js.Value, node *vdom.VNode) error {
	html, err := d.renderer.RenderToString(node)
	if err != nil {
		return err
	}
	tmpl := d.doc.Call("createElement", "template")
	tmpl.Set("innerHTML", html)
	el := tmpl.Get("content").Get("firstElementChild")
	if el.IsNull() {
		return fmt.Errorf("replacement for %s rendered no element", node.HID)
	}

	d.forget(old)
	old.Call("replaceWith", el)
	d.index(el)
	d.listen(node)
	return nil
}

// index records el and its descendants by data-hid.
func (d *dom) index(el js.Value) {
	if hid := attr(el, "data-hid"); hid != "" {
		d.nodes[hid] = el
	}
	list := el.Call("querySelectorAll", "[data-hid]")
	for i := 0; i < list.Length(); i++ {
		child := list.Index(i)
		d.nodes[attr(child, "data-hid")] = child
	}
}

func (d *dom) forget(el js.Value) {
	delete(d.nodes, attr(el, "data-hid"))
	delete(d.listening, attr(el, "data-hid"))
	list := el.Call("querySelectorAll", "[data-hid]")
	for i := 0; i < list.Length(); i++ {
		hid := attr(list.Index(i), "data-hid")
		delete(d.nodes, hid)
		delete(d.listening, hid)
	}
}

// listen attaches one shared listener per element and event. The handler
// itself is looked up on each event.
func (d *dom) listen(node *vdom.VNode) {
	if node == nil {
		return
	}
	if node.Kind == vdom.KindElement && node.HID != "" {
		for _, event := range node.Events() {
			if d.listening[node.HID][event] {
				continue
			}
			el, ok := d.nodes[node.HID]
			if !ok {
				d.logger.Warn("handler on unknown element", "hid", node.HID, "event", event)
				continue
			}
			el.Call("addEventListener", event, d.listener)
			if d.listening[node.HID] == nil {
				d.listening[node.HID] = make(map[string]bool)
			}
			d.listening[node.HID][event] = true
		}
	}
	for _, child := range node.Children {
		d.listen(child)
	}
}

// onEvent runs the handler on the next tick so that state only changes
// inside Tick.
func (d *dom) onEvent(this js.Value, args []js.Value) any {
	if len(args) == 0 {
		return nil
	}
	ev := args[0]
	hid := attr(ev.Get("currentTarget"), "data-hid")
	typ := ev.Get("type").String()
	if h := d.rec.Handler(hid, typ); h != nil {
		ev.Call("preventDefault")
		d.rt.Post(h)
	}
	return nil
}
