// Package signal provides a synchronous observer list whose handlers may
// subscribe, unsubscribe or emit again while a dispatch is in progress.
package signal

// Subscription identifies a registered handler. The zero value never refers
// to a live handler.
type Subscription uint64

type handler[T any] struct {
	id     Subscription
	fn     func(T)
	active bool
}

// Signal is a typed notification with an ordered handler list.
//
// Emit dispatches over the handlers registered when it was called. Handlers
// added during a dispatch are first called by the next Emit; handlers removed
// during a dispatch are skipped if they have not run yet. A handler is never
// called twice for one Emit.
type Signal[T any] struct {
	handlers []*handler[T]
	nextID   Subscription
	emitting int
	dirty    bool
}

func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Subscribe registers fn and returns the handle needed to remove it.
func (s *Signal[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return 0
	}
	s.nextID++
	s.handlers = append(s.handlers, &handler[T]{id: s.nextID, fn: fn, active: true})
	return s.nextID
}

// Unsubscribe removes the handler behind sub. It reports false if sub is not
// registered.
func (s *Signal[T]) Unsubscribe(sub Subscription) bool {
	if sub == 0 {
		return false
	}
	for i, h := range s.handlers {
		if h.id != sub || !h.active {
			continue
		}
		h.active = false
		if s.emitting > 0 {
			// compacted once the outermost dispatch returns
			s.dirty = true
		} else {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
		}
		return true
	}
	return false
}

// Subscribed reports whether sub is still registered.
func (s *Signal[T]) Subscribed(sub Subscription) bool {
	for _, h := range s.handlers {
		if h.id == sub && h.active {
			return true
		}
	}
	return false
}

// Len returns the number of live handlers.
func (s *Signal[T]) Len() int {
	n := 0
	for _, h := range s.handlers {
		if h.active {
			n++
		}
	}
	return n
}

// Emit calls every live handler with v in subscription order.
func (s *Signal[T]) Emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := s.handlers
	s.emitting++
	defer s.finishEmit()

	for _, h := range snapshot {
		if h.active {
			h.fn(v)
		}
	}
}

func (s *Signal[T]) finishEmit() {
	s.emitting--
	if s.emitting > 0 || !s.dirty {
		return
	}
	live := make([]*handler[T], 0, len(s.handlers))
	for _, h := range s.handlers {
		if h.active {
			live = append(live, h)
		}
	}
	s.handlers = live
	s.dirty = false
}
