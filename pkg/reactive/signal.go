package reactive

// source is the dependency side of a signal, seen from an effect.
type source interface {
	unsubscribe(e *Effect)
}

// Signal holds a value and notifies the effects that read it when it changes.
type Signal[T comparable] struct {
	rt    *Runtime
	value T
	subs  []*Effect
}

// NewSignal creates a signal with an initial value.
func NewSignal[T comparable](rt *Runtime, initial T) *Signal[T] {
	return &Signal[T]{rt: rt, value: initial}
}

// Get returns the value and subscribes the running effect, if any.
func (s *Signal[T]) Get() T {
	if e := s.rt.current; e != nil {
		s.subscribe(e)
	}
	return s.value
}

// Peek returns the value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores v. Subscribers are scheduled only when the value changes.
func (s *Signal[T]) Set(v T) {
	if s.value == v {
		return
	}
	s.value = v
	for _, e := range s.subs {
		s.rt.schedule(e)
	}
}

// Update sets the value to fn(current).
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

func (s *Signal[T]) subscribe(e *Effect) {
	for _, sub := range s.subs {
		if sub == e {
			return
		}
	}
	s.subs = append(s.subs, e)
	e.sources = append(e.sources, s)
}

func (s *Signal[T]) unsubscribe(e *Effect) {
	for i, sub := range s.subs {
		if sub == e {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
