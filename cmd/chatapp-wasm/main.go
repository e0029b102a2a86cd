//go:build js && wasm

// Command chatapp-wasm is the browser side of chatapp. It hydrates the
// server-rendered page, or mounts the UI into an empty page, then ticks the
// reactive runtime once per animation frame and patches the DOM.
package main

import (
	"log/slog"
	"syscall/js"

	"github.com/vango-dev/chatapp/app"
	"github.com/vango-dev/chatapp/pkg/reactive"
	"github.com/vango-dev/chatapp/pkg/serverfn"
)

func main() {
	logger := slog.Default().With("component", "client")
	doc := js.Global().Get("document")

	serverURL := attr(doc.Get("body"), "data-server-url")
	if serverURL == "" {
		serverURL = js.Global().Get("location").Get("origin").String()
	}

	rt := reactive.NewRuntime()
	root := app.New(rt, serverfn.NewClient(serverURL, nil))
	d := newDOM(doc, rt, logger)

	if el := doc.Call("getElementById", "app"); !el.IsNull() && attr(el, "data-hid") != "" {
		d.hydrate(el, root.Render())
		logger.Debug("hydrated", "server", serverURL)
	} else {
		if err := d.mount(doc.Get("body"), root.Render()); err != nil {
			logger.Error("mount failed", "error", err)
			return
		}
		logger.Debug("mounted", "server", serverURL)
	}

	var frame js.Func
	frame = js.FuncOf(func(js.Value, []js.Value) any {
		if rt.Tick() {
			if err := d.update(root.Render()); err != nil {
				logger.Error("update failed", "error", err)
			}
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	select {}
}

func attr(el js.Value, name string) string {
	if el.IsNull() || el.IsUndefined() {
		return ""
	}
	v := el.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}
