package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cerrors "github.com/vango-dev/chatapp/internal/errors"
	"github.com/vango-dev/chatapp/pkg/livereload"
	"github.com/vango-dev/chatapp/pkg/middleware"
	"github.com/vango-dev/chatapp/pkg/static"
)

// Server serves the UI and the server functions.
type Server struct {
	config  *ServerConfig
	state   *State
	static  static.Source
	metrics *middleware.Metrics
	reload  *livereload.Hub
	logger  *slog.Logger

	handler    http.Handler
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithStatic sets where the favicon and other site files come from.
// Without it every unmatched path is a 404.
func WithStatic(src static.Source) Option {
	return func(s *Server) {
		s.static = src
	}
}

// WithMetrics records request metrics and exposes them at MetricsPath.
func WithMetrics(m *middleware.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithReloadHub mounts hub at Options.ReloadPath in the dev environment.
func WithReloadHub(hub *livereload.Hub) Option {
	return func(s *Server) {
		s.reload = hub
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server for state. A nil config means DefaultServerConfig.
func New(state *State, config *ServerConfig, opts ...Option) *Server {
	s := &Server{
		config: config.withDefaults(),
		state:  state,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")
	s.handler = s.routes()
	return s
}

// Handler returns the fully wired handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Config returns the effective configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Run listens on the configured address and serves until ctx is done or
// the process receives SIGINT or SIGTERM.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return cerrors.New("E120").
			WithDetail("address " + s.config.Address).
			WithSuggestion("Pick a free port with --addr or site.addr").
			Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done or the process receives SIGINT or
// SIGTERM, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening on http://" + ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server within ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
