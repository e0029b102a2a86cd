// Package middleware provides the HTTP middleware used by the chatapp server.
//
// This package includes:
//   - Prometheus request and server function metrics
//   - OpenTelemetry request tracing
//   - Request logging and panic recovery on log/slog
//
// Each middleware has the func(http.Handler) http.Handler shape, so it can
// be mounted on a chi router directly:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("chatapp"))
//	r := chi.NewRouter()
//	r.Use(
//	    middleware.Recoverer(logger),
//	    middleware.RequestLogger(logger),
//	    middleware.OpenTelemetry(),
//	    m.Handler,
//	)
//	r.Handle("/metrics", m.Exposer())
//
// # Context Propagation
//
// OpenTelemetry stores the request span in r.Context(), so server functions,
// database calls and outgoing HTTP requests made with that context join the
// trace.
package middleware
