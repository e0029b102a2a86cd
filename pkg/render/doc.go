// Package render writes VNode trees as HTML.
//
// The renderer resolves components, numbers every element with the same
// hydration IDs the browser client computes (data-hid="h1", ...), and marks
// elements that carry event handlers with data-on-<event> attributes so the
// client knows which listeners to attach.
//
//	r := render.NewRenderer(render.Config{})
//	html, err := r.RenderToString(view)
//
// RenderPage wraps a view in the document shell that loads the wasm client:
//
//	err := r.RenderPage(w, opts, render.PageData{Title: "chatapp", Body: view})
package render
