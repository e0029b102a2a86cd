package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vango-dev/chatapp/app"
	"github.com/vango-dev/chatapp/pkg/middleware"
	"github.com/vango-dev/chatapp/pkg/reactive"
	"github.com/vango-dev/chatapp/pkg/render"
	"github.com/vango-dev/chatapp/pkg/serverfn"
	"github.com/vango-dev/chatapp/pkg/static"
)

// routes builds the router. Every handler closes over s.state.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.RequestLogger(s.logger),
		middleware.Recoverer(s.logger),
		middleware.OpenTelemetry(),
	)
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}
	r.Use(s.state.inject)

	r.Route(serverfn.DefaultPrefix, func(r chi.Router) {
		if len(s.config.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: s.config.AllowedOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}
		fn := serverfn.NewHandler(s.state.Functions)
		r.Get("/{fn}", fn.ServeHTTP)
		r.Post("/{fn}", fn.ServeHTTP)
	})

	for _, route := range s.state.Routes {
		page := s.page(route)
		r.Get(route.Path, page)
		r.Head(route.Path, page)
	}

	staticOpts := static.HandlerOptions{
		CacheControl: s.config.CacheControl,
		Dev:          s.state.Options.IsDev(),
		Logger:       s.logger,
	}
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		if s.static == nil {
			http.NotFound(w, r)
			return
		}
		static.ServeFile(w, r, s.static, "favicon.ico", staticOpts)
	})

	r.Get("/healthz", s.healthz)

	if s.metrics != nil {
		r.Method(http.MethodGet, s.config.MetricsPath, s.metrics.Exposer())
	}
	if s.reload != nil && s.state.Options.IsDev() && s.state.Options.ReloadPath != "" {
		r.Get(s.state.Options.ReloadPath, s.reload.ServeHTTP)
	}

	var files http.Handler = http.HandlerFunc(http.NotFound)
	if s.static != nil {
		files = static.Handler(s.static, staticOpts)
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})

	return r
}

// page renders the root component for one route. Each request gets its
// own runtime; the server never ticks it, so the counter shows its first
// value.
func (s *Server) page(route app.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rt := reactive.NewRuntime()
		root := app.New(rt, nil)
		defer root.Dispose()

		var buf bytes.Buffer
		err := render.NewRenderer(render.Config{}).RenderPage(&buf, s.state.Options, render.PageData{
			Body:  root.Render(),
			Title: route.Title,
		})
		if err != nil {
			s.logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if s.state.Options.IsDev() {
			w.Header().Set("Cache-Control", "no-store")
		}
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		w.Write(buf.Bytes())
	}
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if s.state.DB == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("no database\n"))
		return
	}
	if err := s.state.DB.PingContext(r.Context()); err != nil {
		s.logger.WarnContext(r.Context(), "health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unreachable\n"))
		return
	}
	w.Write([]byte("ok\n"))
}
