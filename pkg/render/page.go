package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/chatapp/pkg/vdom"
)

// PageData is the content of one HTML document.
type PageData struct {
	// Body is rendered as the only content of <body>.
	Body *vdom.VNode

	Title string

	// Lang defaults to "en".
	Lang string

	// StyleSheets are extra stylesheet URLs linked after the generated one.
	StyleSheets []string
}

const bootstrapScript = `const go = new Go();
WebAssembly.instantiateStreaming(fetch(%q), go.importObject)
  .then((result) => go.run(result.instance))
  .catch((err) => console.error("chatapp: client failed to start", err));`

const reloadScript = `(() => {
  const proto = location.protocol === "https:" ? "wss://" : "ws://";
  const ws = new WebSocket(proto + location.host + %q);
  ws.onmessage = (ev) => { if (ev.data === "reload") location.reload(); };
})();`

// RenderPage writes a complete document: head, the rendered body, the wasm
// loader and, in dev, the live-reload client.
func (r *Renderer) RenderPage(w io.Writer, opts Options, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta charset="utf-8">`+"\n"+
		`<meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	styles := append([]string{opts.StyleURL()}, page.StyleSheets...)
	for _, href := range styles {
		if _, err := fmt.Fprintf(w, `<link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n"); err != nil {
		return err
	}

	if opts.ServerURL != "" {
		_, err := fmt.Fprintf(w, "<body data-server-url=\"%s\">\n", escapeAttr(opts.ServerURL))
		if err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}

	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n<script src=\"%s\"></script>\n", escapeAttr(opts.LoaderURL())); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<script>\n"+bootstrapScript+"\n</script>\n", opts.WasmURL()); err != nil {
		return err
	}
	if opts.IsDev() && opts.ReloadPath != "" {
		if _, err := fmt.Fprintf(w, "<script>\n"+reloadScript+"\n</script>\n", opts.ReloadPath); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
