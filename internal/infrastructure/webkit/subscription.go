package webkit

import (
	"sync"

	"github.com/bnema/dimmer/internal/application/port"
)

// signalHub fans one WebKit signal out to any number of Go subscribers.
// Subscribers are invoked in registration order. All dispatching happens
// on the GTK main loop, so the mutex only guards against registration
// and cancellation racing a dispatch.
type signalHub[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []hubEntry[T]
}

type hubEntry[T any] struct {
	id uint64
	fn func(T)
}

// add registers fn and returns a cancellable subscription handle.
func (h *signalHub[T]) add(fn func(T)) port.Subscription {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, hubEntry[T]{id: id, fn: fn})
	h.mu.Unlock()

	return &hubSubscription{cancel: func() { h.remove(id) }}
}

func (h *signalHub[T]) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, e := range h.subs {
		if e.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// dispatch invokes every subscriber with v. The subscriber list is copied
// under the lock so a callback may cancel its own subscription.
func (h *signalHub[T]) dispatch(v T) {
	h.mu.Lock()
	subs := make([]hubEntry[T], len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, e := range subs {
		e.fn(v)
	}
}

// clear drops all subscribers. Used on Tab destruction so no events
// reach callbacks after the widget is gone.
func (h *signalHub[T]) clear() {
	h.mu.Lock()
	h.subs = nil
	h.mu.Unlock()
}

// hubSubscription implements port.Subscription for signalHub registrations.
type hubSubscription struct {
	once   sync.Once
	cancel func()
}

func (s *hubSubscription) Cancel() {
	s.once.Do(s.cancel)
}
