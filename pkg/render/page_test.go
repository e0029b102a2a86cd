package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/chatapp/pkg/vdom"
)

func testOptions(env Env) Options {
	return Options{
		OutputName: "chatapp",
		SiteRoot:   "target/site",
		SitePkgDir: "pkg",
		SiteAddr:   "127.0.0.1:3000",
		Env:        env,
		ReloadPath: "/_chatapp/reload",
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(Config{})
	err := r.RenderPage(&buf, testOptions(EnvProd), PageData{
		Title: "Tom & Jerry",
		Body:  vdom.Main(vdom.ID("app"), vdom.Text("hello")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		"<title>Tom &amp; Jerry</title>",
		`<link rel="stylesheet" href="/pkg/chatapp.css">`,
		"<body>\n",
		`<main id="app" data-hid="h1">hello</main>`,
		`<script src="/pkg/wasm_exec.js"></script>`,
		`fetch("/pkg/chatapp.wasm")`,
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(html, "WebSocket") {
		t.Error("production page should not include the reload client")
	}
}

func TestRenderPageDev(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(EnvDev)
	opts.ServerURL = "http://127.0.0.1:3000"

	if err := NewRenderer(Config{}).RenderPage(&buf, opts, PageData{Lang: "fr", Body: vdom.Div()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, `<html lang="fr">`) {
		t.Error("lang not applied")
	}
	if !strings.Contains(html, `<body data-server-url="http://127.0.0.1:3000">`) {
		t.Error("server url not written to body")
	}
	if !strings.Contains(html, `"/_chatapp/reload"`) {
		t.Error("dev page should include the reload client")
	}
}

func TestOptionsURLs(t *testing.T) {
	o := testOptions(EnvProd)
	if got := o.WasmURL(); got != "/pkg/chatapp.wasm" {
		t.Errorf("WasmURL() = %q", got)
	}
	if got := o.LoaderURL(); got != "/pkg/wasm_exec.js" {
		t.Errorf("LoaderURL() = %q", got)
	}
	if o.IsDev() {
		t.Error("IsDev() = true for prod")
	}
	if !(Options{}).IsDev() {
		t.Error("zero Options should default to dev")
	}
}
