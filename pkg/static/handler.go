package static

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// HandlerOptions configures Handler.
type HandlerOptions struct {
	// CacheControl, when set, is sent verbatim on every response.
	CacheControl string

	// Dev disables caching.
	Dev bool

	// NotFound handles misses. Default: http.NotFound.
	NotFound http.Handler

	Logger *slog.Logger
}

// Handler serves files from src by request path.
func Handler(src Source, opts HandlerOptions) http.Handler {
	if opts.NotFound == nil {
		opts.NotFound = http.HandlerFunc(http.NotFound)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		name, ok := CleanPath(r.URL.Path)
		if !ok {
			opts.NotFound.ServeHTTP(w, r)
			return
		}
		ServeFile(w, r, src, name, opts)
	})
}

// ServeFile serves one named file from src.
func ServeFile(w http.ResponseWriter, r *http.Request, src Source, name string, opts HandlerOptions) {
	if opts.NotFound == nil {
		opts.NotFound = http.HandlerFunc(http.NotFound)
	}

	f, err := src.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			opts.NotFound.ServeHTTP(w, r)
			return
		}
		if opts.Logger != nil {
			opts.Logger.ErrorContext(r.Context(), "static file open failed", "name", name, "error", err)
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	applyCacheHeaders(w, name, opts)
	if f.ContentType != "" {
		w.Header().Set("Content-Type", f.ContentType)
	}

	if rs, ok := f.Content.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, f.ModTime, rs)
		return
	}

	if !f.ModTime.IsZero() {
		w.Header().Set("Last-Modified", f.ModTime.UTC().Format(http.TimeFormat))
	}
	if f.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	io.Copy(w, f.Content)
}

func applyCacheHeaders(w http.ResponseWriter, name string, opts HandlerOptions) {
	switch {
	case opts.CacheControl != "":
		w.Header().Set("Cache-Control", opts.CacheControl)
	case opts.Dev:
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	case isFingerprinted(name):
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	default:
		w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
	}
}
