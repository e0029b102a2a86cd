package reactive

import "sync"

// Runtime schedules effects and posted callbacks.
type Runtime struct {
	mu     sync.Mutex
	posted []func()
	wake   chan struct{}

	// Owned by the ticking goroutine.
	queue   []*Effect
	current *Effect
}

// NewRuntime creates an idle runtime.
func NewRuntime() *Runtime {
	return &Runtime{wake: make(chan struct{}, 1)}
}

// Post queues fn to run at the start of the next Tick. It is the only
// Runtime method safe to call from other goroutines.
func (rt *Runtime) Post(fn func()) {
	rt.mu.Lock()
	rt.posted = append(rt.posted, fn)
	rt.mu.Unlock()

	select {
	case rt.wake <- struct{}{}:
	default:
	}
}

// Wake is signalled after Post. Loops that do not tick on a timer can
// block on it.
func (rt *Runtime) Wake() <-chan struct{} {
	return rt.wake
}

// Tick runs the callbacks posted so far, then the effects that were dirty
// at that point. Effects dirtied while this tick runs wait for the next one.
// It reports whether anything ran.
func (rt *Runtime) Tick() bool {
	rt.mu.Lock()
	posted := rt.posted
	rt.posted = nil
	rt.mu.Unlock()

	for _, fn := range posted {
		fn()
	}

	queued := rt.queue
	rt.queue = nil
	for _, e := range queued {
		e.queued = false
	}
	for _, e := range queued {
		e.run()
	}

	return len(posted) > 0 || len(queued) > 0
}

// Pending reports whether a Tick would do any work.
func (rt *Runtime) Pending() bool {
	rt.mu.Lock()
	n := len(rt.posted)
	rt.mu.Unlock()
	return n > 0 || len(rt.queue) > 0
}

func (rt *Runtime) schedule(e *Effect) {
	if e.queued || e.disposed {
		return
	}
	e.queued = true
	rt.queue = append(rt.queue, e)
}

// Untrack runs fn without recording the signals it reads.
func (rt *Runtime) Untrack(fn func()) {
	prev := rt.current
	rt.current = nil
	defer func() { rt.current = prev }()
	fn()
}
