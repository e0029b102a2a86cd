package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/chatapp/pkg/reactive"
	"github.com/vango-dev/chatapp/pkg/render"
	"github.com/vango-dev/chatapp/pkg/serverfn"
)

type callerFunc func(ctx context.Context, name string, args, out any) error

func (f callerFunc) Call(ctx context.Context, name string, args, out any) error {
	return f(ctx, name, args, out)
}

func replying(text string, err error) Caller {
	return callerFunc(func(_ context.Context, name string, _, out any) error {
		if name != HelloWorld {
			return serverfn.ServerError("unexpected function " + name)
		}
		if err != nil {
			return err
		}
		*out.(*string) = text
		return nil
	})
}

// settle waits for in-flight calls and applies their results.
func settle(g *Greeter, rt *reactive.Runtime) {
	g.Wait()
	rt.Tick()
}

func TestGreeterCountsWhileIdle(t *testing.T) {
	rt := reactive.NewRuntime()
	g := New(rt, nil)

	want := []string{"WUT0", "WUT1", "WUT2", "WUT3"}
	for i, w := range want {
		if i > 0 && !rt.Tick() {
			t.Fatalf("tick %d did no work", i)
		}
		if got := g.Text(); got != w {
			t.Fatalf("after %d ticks Text() = %q, want %q", i, got, w)
		}
	}
}

func TestGreeterShowsGreeting(t *testing.T) {
	rt := reactive.NewRuntime()
	g := New(rt, replying("Hey.", nil))
	rt.Tick()

	g.Greet()
	if !g.Pending() {
		t.Error("Pending() = false right after Greet")
	}
	settle(g, rt)

	if got := g.Text(); got != "Hey." {
		t.Fatalf("Text() = %q, want %q", got, "Hey.")
	}
	if g.Pending() {
		t.Error("Pending() = true after the call settled")
	}

	// The counter stops once a greeting is held.
	count := g.count.Peek()
	for i := 0; i < 3; i++ {
		rt.Tick()
	}
	if g.Text() != "Hey." || g.count.Peek() != count {
		t.Errorf("counter kept running: text %q, count %d -> %d", g.Text(), count, g.count.Peek())
	}
	if rt.Pending() {
		t.Error("runtime still has work after the greeting settled")
	}
}

func TestGreeterShowsError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server error", serverfn.ServerError("boom"), "ServerError: boom"},
		{"request error", &serverfn.Error{Kind: serverfn.KindRequest, Message: "connection refused"}, "Request: connection refused"},
		{"plain error", errors.New("oops"), "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := reactive.NewRuntime()
			g := New(rt, replying("", tt.err))
			g.Greet()
			settle(g, rt)
			if got := g.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGreeterWithoutCaller(t *testing.T) {
	rt := reactive.NewRuntime()
	g := New(rt, nil)
	g.Greet()
	settle(g, rt)
	if got := g.Text(); !strings.HasPrefix(got, "ServerError: ") {
		t.Errorf("Text() = %q, want a ServerError", got)
	}
}

func TestGreeterRedispatchResumesCounting(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	caller := callerFunc(func(_ context.Context, _ string, _, out any) error {
		calls++
		if calls == 2 {
			<-release
		}
		*out.(*string) = "Hey."
		return nil
	})

	rt := reactive.NewRuntime()
	g := New(rt, caller)
	rt.Tick()
	rt.Tick() // WUT2, count 3

	g.Greet()
	settle(g, rt)
	if g.Text() != "Hey." {
		t.Fatalf("Text() = %q, want %q", g.Text(), "Hey.")
	}

	g.Greet()
	rt.Tick()
	if got := g.Text(); got != "WUT3" {
		t.Errorf("after re-dispatch Text() = %q, want %q", got, "WUT3")
	}
	rt.Tick()
	if got := g.Text(); got != "WUT4" {
		t.Errorf("Text() = %q, want %q", got, "WUT4")
	}

	close(release)
	settle(g, rt)
	if g.Text() != "Hey." {
		t.Errorf("Text() = %q, want %q", g.Text(), "Hey.")
	}
}

func TestGreeterRender(t *testing.T) {
	rt := reactive.NewRuntime()
	g := New(rt, nil)

	html, err := render.NewRenderer(render.Config{}).RenderToString(g.Render())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		`<main id="app" data-hid="h1">`,
		`<button aria-busy="false" type="button" data-on-click="true" data-hid="h2">Hello worlddddd.</button>`,
		`<p id="greeting" data-hid="h3">WUT0</p>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRoutes(t *testing.T) {
	routes := Routes()
	if len(routes) != 1 || routes[0].Path != "/" {
		t.Errorf("Routes() = %+v, want just /", routes)
	}
}

func TestRegister(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	reg := serverfn.NewRegistry()
	if err := Register(reg, logger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Register(reg, logger); err == nil {
		t.Error("expected duplicate registration to fail")
	}

	out, err := reg.Call(context.Background(), HelloWorld, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != Greeting {
		t.Errorf("hello_world returned %v, want %q", out, Greeting)
	}
	if !strings.Contains(buf.String(), "msg=Hey?") {
		t.Errorf("log output %q missing Hey?", buf.String())
	}
}

func TestGreeterAgainstServer(t *testing.T) {
	reg := serverfn.NewRegistry()
	if err := Register(reg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := chi.NewRouter()
	r.Handle(serverfn.DefaultPrefix+"/{fn}", serverfn.NewHandler(reg))
	srv := httptest.NewServer(r)
	defer srv.Close()

	rt := reactive.NewRuntime()
	g := New(rt, serverfn.NewClient(srv.URL, srv.Client()))
	g.Greet()
	settle(g, rt)
	if got := g.Text(); got != "Hey." {
		t.Errorf("Text() = %q, want %q", got, "Hey.")
	}
}
