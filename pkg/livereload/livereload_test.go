package livereload

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubReload(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	if hub.ClientCount() != 0 {
		t.Fatalf("ClientCount() = %d, want 0", hub.ClientCount())
	}

	a := dial(t, srv)
	b := dial(t, srv)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Reload()

	for _, c := range []*websocket.Conn{a, b} {
		c.SetReadDeadline(time.Now().Add(2 * time.Second))
		typ, data, err := c.ReadMessage()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if typ != websocket.TextMessage || string(data) != Message {
			t.Errorf("got %d %q, want text %q", typ, data, Message)
		}
	}

	a.Close()
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Close()
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() after Close = %d, want 0", hub.ClientCount())
	}
}

func TestHubRejectsPlainHTTP(t *testing.T) {
	hub := NewHub(nil)
	rec := httptest.NewRecorder()
	hub.ServeHTTP(rec, httptest.NewRequest("GET", "/_chatapp/reload", nil))
	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	err := Watch(ctx, dir, func() { changed <- struct{}{} }, WatchOptions{Debounce: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectChange := func(what string) {
		t.Helper()
		select {
		case <-changed:
		case <-time.After(3 * time.Second):
			t.Fatalf("no change reported for %s", what)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "chatapp.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}
	expectChange("new file")

	sub := filepath.Join(dir, "pkg")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	expectChange("new directory")

	// Give the watcher a moment to pick up the new directory.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(sub, "chatapp.wasm"), []byte("wasm"), 0644); err != nil {
		t.Fatal(err)
	}
	expectChange("file in new directory")
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), func() {}, WatchOptions{})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestIgnored(t *testing.T) {
	tests := map[string]bool{
		"/site/chatapp.css":    false,
		"/site/.chatapp.css.x": true,
		"/site/main.go~":       true,
		"/site/.git":           true,
		"/site/a.swp":          true,
	}
	for p, want := range tests {
		if got := ignored(p); got != want {
			t.Errorf("ignored(%q) = %v, want %v", p, got, want)
		}
	}
}
