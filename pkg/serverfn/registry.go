package serverfn

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	cerrors "github.com/vango-dev/chatapp/internal/errors"
)

const defaultTracerName = "chatapp/serverfn"

// Func is a registered server function. args holds the raw JSON arguments
// (possibly empty); the result is JSON-encoded by the handler.
type Func func(ctx context.Context, args json.RawMessage) (any, error)

// Observer is told about every call, e.g. to record metrics.
type Observer func(name string, duration time.Duration, err error)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithTracerName sets the OpenTelemetry tracer name.
func WithTracerName(name string) Option {
	return func(r *Registry) {
		r.tracer = otel.Tracer(name)
	}
}

// WithObserver adds a call observer.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observers = append(r.observers, o)
	}
}

// Registry maps names to server functions. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	fns       map[string]Func
	logger    *slog.Logger
	tracer    trace.Tracer
	observers []Observer
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		fns:    make(map[string]Func),
		logger: slog.Default(),
		tracer: otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "serverfn")
	return r
}

// Register adds fn under name.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" || strings.Contains(name, "/") {
		return cerrors.New("E202").WithDetail("invalid name " + strconv.Quote(name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.fns[name]; exists {
		return cerrors.New("E201").WithDetail(name + " is already registered")
	}
	r.fns[name] = fn
	return nil
}

// Handle registers a typed function. Arguments are decoded into A; an
// empty argument payload leaves A at its zero value.
func Handle[A, R any](r *Registry, name string, fn func(context.Context, A) (R, error)) error {
	return r.Register(name, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args A
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, &Error{Kind: KindArgs, Message: err.Error()}
			}
		}
		return fn(ctx, args)
	})
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fns[name]
	return fn, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the function registered under name inside a trace span.
// Failures are always returned as *Error.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, &Error{Kind: KindRegistration, Message: "no server function named " + strconv.Quote(name)}
	}

	ctx, span := r.tracer.Start(ctx, "serverfn "+name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("serverfn.name", name)),
	)
	defer span.End()

	start := time.Now()
	out, err := fn(ctx, args)
	elapsed := time.Since(start)

	for _, o := range r.observers {
		o(name, elapsed, err)
	}

	if err != nil {
		fe := AsError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, fe.Message)
		r.logger.DebugContext(ctx, "server function failed", "name", name, "duration", elapsed, "error", err)
		return nil, fe
	}
	span.SetStatus(codes.Ok, "")
	r.logger.DebugContext(ctx, "server function", "name", name, "duration", elapsed)
	return out, nil
}
