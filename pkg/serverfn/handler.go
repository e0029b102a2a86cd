package serverfn

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxBodyBytes caps POST bodies.
const DefaultMaxBodyBytes int64 = 1 << 20

// HandlerOption configures the HTTP handler.
type HandlerOption func(*handler)

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

type handler struct {
	reg          *Registry
	maxBodyBytes int64
}

// NewHandler serves the registry. The function name is the chi URL
// parameter "fn", or the last path segment when the handler is mounted
// without one.
func NewHandler(reg *Registry, opts ...HandlerOption) http.Handler {
	h := &handler{reg: reg, maxBodyBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := chi.URLParam(r, "fn")
	if name == "" {
		name = path.Base(r.URL.Path)
	}

	args, err := h.readArgs(w, r)
	if err != nil {
		writeError(w, AsError(err))
		return
	}

	out, err := h.reg.Call(r.Context(), name, args)
	if err != nil {
		writeError(w, AsError(err))
		return
	}

	body, err := json.Marshal(out)
	if err != nil {
		writeError(w, &Error{Kind: KindSerialization, Message: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// readArgs returns the call arguments as JSON. GET takes ?args=<json> or
// the query values; POST takes a JSON or form-encoded body.
func (h *handler) readArgs(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		if raw := q.Get("args"); raw != "" {
			return json.RawMessage(raw), nil
		}
		return valuesToJSON(q)
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &Error{Kind: KindRequest, Message: "request body too large"}
		}
		return nil, &Error{Kind: KindDeserialization, Message: err.Error()}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		form, err := url.ParseQuery(string(raw))
		if err != nil {
			return nil, &Error{Kind: KindDeserialization, Message: err.Error()}
		}
		return valuesToJSON(form)
	}
	if !json.Valid(raw) {
		return nil, &Error{Kind: KindDeserialization, Message: "request body is not valid JSON"}
	}
	return raw, nil
}

// valuesToJSON turns form values into a JSON object of strings, keeping
// the first value of each key. No values means no arguments.
func valuesToJSON(values url.Values) (json.RawMessage, error) {
	if len(values) == 0 {
		return nil, nil
	}
	obj := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			obj[k] = v[0]
		}
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, &Error{Kind: KindDeserialization, Message: err.Error()}
	}
	return raw, nil
}

func writeError(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(e.StatusCode())
	io.WriteString(w, e.Encode())
}
