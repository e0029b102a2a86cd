package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/chatapp/pkg/vdom"
)

func TestRenderElements(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"text", vdom.Text("a < b"), "a &lt; b"},
		{"raw", vdom.Raw("<b>x</b>"), "<b>x</b>"},
		{"element", vdom.P(vdom.Text("hi")), `<p data-hid="h1">hi</p>`},
		{"void", vdom.Input(vdom.Type("text")), `<input type="text" data-hid="h1">`},
		{"boolean true", vdom.Button(vdom.Disabled(true)), `<button disabled data-hid="h1"></button>`},
		{"boolean false", vdom.Button(vdom.Disabled(false)), `<button data-hid="h1"></button>`},
		{"sorted attrs", vdom.Div(vdom.ID("x"), vdom.Class("c")), `<div class="c" id="x" data-hid="h1"></div>`},
		{"escaped attr", vdom.Div(vdom.Data("v", `"q"`)), `<div data-v="&quot;q&quot;" data-hid="h1"></div>`},
		{"fragment", vdom.Fragment(vdom.Span(), vdom.Span()), `<span data-hid="h1"></span><span data-hid="h2"></span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(Config{})
			got, err := r.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEventMarkers(t *testing.T) {
	r := NewRenderer(Config{})
	got, err := r.RenderToString(vdom.Button(vdom.Type("button"), vdom.OnClick(func() {}), vdom.Text("go")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<button type="button" data-on-click="true" data-hid="h1">go</button>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderMatchesClientNumbering(t *testing.T) {
	view := func() *vdom.VNode {
		return vdom.Main(
			vdom.Func(func() *vdom.VNode { return vdom.Button(vdom.Text("b")) }),
			vdom.P(vdom.Span(vdom.Text("x"))),
		)
	}

	r := NewRenderer(Config{})
	html, err := r.RenderToString(view())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tree := vdom.Resolve(view())
	vdom.AssignHIDs(tree, vdom.NewHIDGenerator())
	for hid, node := range vdom.CollectHIDs(tree) {
		marker := "<" + node.Tag + ` data-hid="` + hid + `"`
		if !strings.Contains(html, marker) {
			t.Errorf("rendered HTML lacks %s", marker)
		}
	}
}

func TestRenderResetsNumbering(t *testing.T) {
	r := NewRenderer(Config{})
	for i := 0; i < 2; i++ {
		got, err := r.RenderToString(vdom.Div())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `<div data-hid="h1"></div>` {
			t.Errorf("render %d: got %q", i, got)
		}
	}
}

func TestRenderSkipHIDs(t *testing.T) {
	r := NewRenderer(Config{SkipHIDs: true})
	got, err := r.RenderToString(vdom.Div(vdom.Text("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<div>x</div>" {
		t.Errorf("got %q, want %q", got, "<div>x</div>")
	}
}
