package serverfn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	cerrors "github.com/vango-dev/chatapp/internal/errors"
)

type greetArgs struct {
	Name string `json:"name"`
}

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	reg := NewRegistry(opts...)
	if err := Handle(reg, "hello_world", func(context.Context, struct{}) (string, error) {
		return "Hey.", nil
	}); err != nil {
		t.Fatalf("register hello_world: %v", err)
	}
	if err := Handle(reg, "greet", func(_ context.Context, a greetArgs) (string, error) {
		return "hi " + a.Name, nil
	}); err != nil {
		t.Fatalf("register greet: %v", err)
	}
	if err := Handle(reg, "fail", func(context.Context, struct{}) (string, error) {
		return "", errors.New("boom")
	}); err != nil {
		t.Fatalf("register fail: %v", err)
	}
	return reg
}

func newTestServer(t *testing.T, reg *Registry, opts ...HandlerOption) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	h := NewHandler(reg, opts...)
	r.Get("/api/{fn}", h.ServeHTTP)
	r.Post("/api/{fn}", h.ServeHTTP)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRegister(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.Register("hello_world", nil)
	if !errors.Is(err, cerrors.New("E201")) {
		t.Errorf("duplicate Register error = %v, want E201", err)
	}
	for _, bad := range []string{"", "a/b"} {
		if err := reg.Register(bad, nil); !errors.Is(err, cerrors.New("E202")) {
			t.Errorf("Register(%q) error = %v, want E202", bad, err)
		}
	}

	names := reg.Names()
	want := []string{"fail", "greet", "hello_world"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestCall(t *testing.T) {
	var observed []string
	reg := newTestRegistry(t, WithObserver(func(name string, _ time.Duration, err error) {
		observed = append(observed, name)
	}))

	out, err := reg.Call(context.Background(), "hello_world", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hey." {
		t.Errorf("got %v, want Hey.", out)
	}

	_, err = reg.Call(context.Background(), "missing", nil)
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindRegistration {
		t.Errorf("missing function error = %v, want Registration", err)
	}

	_, err = reg.Call(context.Background(), "fail", nil)
	if !errors.As(err, &fe) || fe.Kind != KindServerError || fe.Message != "boom" {
		t.Errorf("fail error = %v, want ServerError boom", err)
	}

	if len(observed) != 2 {
		t.Errorf("observer saw %v, want two registered calls", observed)
	}
}

func TestHandler(t *testing.T) {
	srv := newTestServer(t, newTestRegistry(t))

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantBody    string
	}{
		{"get hello", http.MethodGet, "/api/hello_world", "", "", 200, `"Hey."`},
		{"post hello", http.MethodPost, "/api/hello_world", "", "", 200, `"Hey."`},
		{"post json args", http.MethodPost, "/api/greet", "application/json", `{"name":"ann"}`, 200, `"hi ann"`},
		{"post form args", http.MethodPost, "/api/greet", "application/x-www-form-urlencoded", "name=bo", 200, `"hi bo"`},
		{"get query args", http.MethodGet, "/api/greet?name=cy", "", "", 200, `"hi cy"`},
		{"get json args", http.MethodGet, `/api/greet?args=%7B%22name%22%3A%22di%22%7D`, "", "", 200, `"hi di"`},
		{"bad json", http.MethodPost, "/api/greet", "application/json", `{`, 400, "Deserialization|request body is not valid JSON"},
		{"wrong arg type", http.MethodPost, "/api/greet", "application/json", `{"name":1}`, 400, "Args|"},
		{"unknown", http.MethodGet, "/api/nope", "", "", 404, `Registration|no server function named "nope"`},
		{"failure", http.MethodPost, "/api/fail", "", "", 500, "ServerError|boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("NewRequest: %v", err)
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %q)", resp.StatusCode, tt.wantStatus, body)
			}
			if !strings.HasPrefix(string(body), tt.wantBody) {
				t.Errorf("body = %q, want prefix %q", body, tt.wantBody)
			}
		})
	}
}

func TestHandlerLimitsAndMethods(t *testing.T) {
	h := NewHandler(newTestRegistry(t), WithMaxBodyBytes(8))

	req := httptest.NewRequest(http.MethodPost, "/api/greet", strings.NewReader(`{"name":"a long name"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversized body status = %d, want 413", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/hello_world", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT status = %d, want 405", rec.Code)
	}

	// Without a chi route the name comes from the last path segment.
	req = httptest.NewRequest(http.MethodGet, "/api/hello_world", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != `"Hey."` {
		t.Errorf("got %d %q, want 200 \"Hey.\"", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestClient(t *testing.T) {
	srv := newTestServer(t, newTestRegistry(t))
	c := NewClient(srv.URL+"/", srv.Client())
	ctx := context.Background()

	var got string
	if err := c.Call(ctx, "hello_world", nil, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hey." {
		t.Errorf("got %q, want %q", got, "Hey.")
	}

	if err := c.Call(ctx, "greet", greetArgs{Name: "eve"}, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi eve" {
		t.Errorf("got %q, want %q", got, "hi eve")
	}

	err := c.Call(ctx, "fail", nil, &got)
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("error = %T %v, want *Error", err, err)
	}
	if fe.Kind != KindServerError || fe.Message != "boom" {
		t.Errorf("error = %+v, want ServerError boom", fe)
	}
	if fe.Error() != "ServerError: boom" {
		t.Errorf("Error() = %q", fe.Error())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		msg  string
	}{
		{"ServerError|boom", KindServerError, "boom"},
		{"Args|missing a|b", KindArgs, "missing a|b"},
		{"Method Not Allowed\n", KindServerError, "Method Not Allowed"},
		{"Weird|thing", KindServerError, "Weird|thing"},
	}
	for _, tt := range tests {
		got := Decode(tt.in)
		if got.Kind != tt.kind || got.Message != tt.msg {
			t.Errorf("Decode(%q) = %+v, want {%s %s}", tt.in, got, tt.kind, tt.msg)
		}
	}

	if AsError(nil) != nil {
		t.Error("AsError(nil) != nil")
	}
	e := &Error{Kind: KindArgs, Message: "x"}
	if AsError(e) != e {
		t.Error("AsError should return *Error unchanged")
	}
	if e.StatusCode() != http.StatusBadRequest {
		t.Errorf("Args StatusCode() = %d", e.StatusCode())
	}
}
