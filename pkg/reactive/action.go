package reactive

import (
	"context"
	"sync"
)

// Result is the settled outcome of one action run.
type Result[R any] struct {
	Value R
	Err   error
}

// Action runs an asynchronous function and publishes its outcome through
// signals. Only the latest dispatch publishes; results of superseded runs
// are dropped. Runs are never cancelled.
type Action[A, R any] struct {
	rt *Runtime
	fn func(context.Context, A) (R, error)

	ctx     context.Context
	value   *Signal[*Result[R]]
	pending *Signal[bool]
	version *Signal[int]

	seq int
	wg  sync.WaitGroup
}

// NewAction creates an action bound to rt. ctx is passed to every run.
func NewAction[A, R any](ctx context.Context, rt *Runtime, fn func(context.Context, A) (R, error)) *Action[A, R] {
	return &Action[A, R]{
		rt:      rt,
		fn:      fn,
		ctx:     ctx,
		value:   NewSignal[*Result[R]](rt, nil),
		pending: NewSignal(rt, false),
		version: NewSignal(rt, 0),
	}
}

// Dispatch clears the current value and starts a run with arg. The result
// is applied on a later Tick.
func (a *Action[A, R]) Dispatch(arg A) {
	a.seq++
	seq := a.seq
	a.value.Set(nil)
	a.pending.Set(true)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		v, err := a.fn(a.ctx, arg)
		a.rt.Post(func() {
			if seq != a.seq {
				return
			}
			a.value.Set(&Result[R]{Value: v, Err: err})
			a.pending.Set(false)
			a.version.Update(func(n int) int { return n + 1 })
		})
	}()
}

// Value is nil until the latest dispatch settles.
func (a *Action[A, R]) Value() *Signal[*Result[R]] { return a.value }

// Pending is true while the latest dispatch is in flight.
func (a *Action[A, R]) Pending() *Signal[bool] { return a.pending }

// Version counts settled dispatches.
func (a *Action[A, R]) Version() *Signal[int] { return a.version }

// Wait blocks until every started run has posted its result. The results
// still need a Tick to be applied.
func (a *Action[A, R]) Wait() {
	a.wg.Wait()
}
