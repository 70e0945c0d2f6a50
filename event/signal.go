package event

// Subscription identifies a registered handler for later removal
// Zero value is never issued
type Subscription uint64

type entry[T any] struct {
	id Subscription
	fn func(T)
}

// Signal is a synchronous multicast notification
//
// Architecture:
//   - Single-threaded: Emit, Subscribe and Unsubscribe are called from the frame loop
//   - Handlers are invoked in subscription order
//   - Subscribe/Unsubscribe during Emit take effect from the next Emit
//
// Zero value is ready to use
type Signal[T any] struct {
	kind     Type
	handlers []entry[T]
	nextID   Subscription
	emitting int
}

// NewSignal creates a signal tagged with its event type
func NewSignal[T any](kind Type) *Signal[T] {
	return &Signal[T]{kind: kind}
}

// Type returns the event type this signal carries
func (s *Signal[T]) Type() Type {
	return s.kind
}

// Subscribe appends a handler and returns its subscription id
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return 0
	}
	s.nextID++
	s.handlers = s.cloneIfEmitting()
	s.handlers = append(s.handlers, entry[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe removes a handler, returns false if the id is unknown
// Relative order of remaining handlers is preserved
func (s *Signal[T]) Unsubscribe(id Subscription) bool {
	for i, e := range s.handlers {
		if e.id != id {
			continue
		}
		s.handlers = s.cloneIfEmitting()
		s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
		return true
	}
	return false
}

// Emit delivers v to every handler in subscription order
func (s *Signal[T]) Emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	handlers := s.handlers
	s.emitting++
	defer func() { s.emitting-- }()
	for _, e := range handlers {
		e.fn(v)
	}
}

// HandlerCount returns the number of registered handlers
func (s *Signal[T]) HandlerCount() int {
	return len(s.handlers)
}

// Clear removes all handlers
func (s *Signal[T]) Clear() {
	s.handlers = nil
}

// cloneIfEmitting detaches the handler slice from an in-flight Emit
func (s *Signal[T]) cloneIfEmitting() []entry[T] {
	if s.emitting == 0 {
		return s.handlers
	}
	out := make([]entry[T], len(s.handlers), len(s.handlers)+1)
	copy(out, s.handlers)
	return out
}
