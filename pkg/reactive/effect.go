package reactive

// Effect re-runs its function whenever a signal it read during the previous
// run changes.
type Effect struct {
	rt       *Runtime
	fn       func()
	sources  []source
	queued   bool
	disposed bool
	runs     int
}

// NewEffect creates an effect and runs it once immediately.
func NewEffect(rt *Runtime, fn func()) *Effect {
	e := &Effect{rt: rt, fn: fn}
	e.run()
	return e
}

// Runs returns how many times the effect has run.
func (e *Effect) Runs() int {
	return e.runs
}

// Dispose stops the effect and drops its subscriptions.
func (e *Effect) Dispose() {
	e.disposed = true
	e.untrack()
}

func (e *Effect) run() {
	if e.disposed {
		return
	}
	e.untrack()

	prev := e.rt.current
	e.rt.current = e
	defer func() { e.rt.current = prev }()

	e.runs++
	e.fn()
}

func (e *Effect) untrack() {
	for _, s := range e.sources {
		s.unsubscribe(e)
	}
	e.sources = e.sources[:0]
}
