package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/vango-dev/chatapp/app"
	"github.com/vango-dev/chatapp/pkg/render"
	"github.com/vango-dev/chatapp/pkg/serverfn"
)

// State is built once at startup and never modified afterwards.
type State struct {
	DB        *sql.DB
	Options   render.Options
	Routes    []app.Route
	Functions *serverfn.Registry
}

type stateKey struct{}

// WithState returns a copy of ctx carrying s.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// StateFrom returns the State stored by WithState, or nil.
func StateFrom(ctx context.Context) *State {
	s, _ := ctx.Value(stateKey{}).(*State)
	return s
}

func (s *State) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), s)))
	})
}
