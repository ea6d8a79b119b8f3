package window

import (
	"slices"
	"sync"
)

// PointerButton identifies the button behind a pointer event.
type PointerButton int

const (
	// ButtonPrimary is the left mouse button.
	ButtonPrimary PointerButton = iota

	// ButtonSecondary is the right mouse button.
	ButtonSecondary

	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
)

// PointerEvent is a pointer position in logical pixels relative to the window's top-left corner.
// Button is only meaningful for down and up events.
type PointerEvent struct {
	X, Y   float64
	Button PointerButton
}

// Subscription is returned by the On* registration methods. Unsubscribe may be called any number
// of times; only the first call has an effect.
type Subscription struct {
	once   *sync.Once
	cancel func()
}

// NewSubscription wraps cancel in a Subscription. Window implementations outside this package
// use it to hand out subscriptions.
func NewSubscription(cancel func()) Subscription {
	return Subscription{once: &sync.Once{}, cancel: cancel}
}

// Unsubscribe stops future deliveries to the subscribed handler.
func (s Subscription) Unsubscribe() {
	if s.once == nil {
		return
	}
	s.once.Do(s.cancel)
}

// listeners is an ordered, concurrency-safe set of handlers of one event kind.
type listeners[T any] struct {
	mu       sync.Mutex
	next     uint64
	ids      []uint64
	handlers map[uint64]T
}

func (l *listeners[T]) add(handler T) Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handlers == nil {
		l.handlers = make(map[uint64]T)
	}
	l.next++
	id := l.next
	l.ids = append(l.ids, id)
	l.handlers[id] = handler

	return NewSubscription(func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.handlers, id)
		l.ids = slices.DeleteFunc(l.ids, func(v uint64) bool { return v == id })
	})
}

// snapshot returns the handlers in subscription order so they can be called without the lock held.
func (l *listeners[T]) snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, len(l.ids))
	for _, id := range l.ids {
		out = append(out, l.handlers[id])
	}
	return out
}

func (l *listeners[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}

// events holds every subscriber list of a window.
type events struct {
	resize      listeners[func(width, height int)]
	pointerDown listeners[func(PointerEvent)]
	pointerUp   listeners[func(PointerEvent)]
	pointerMove listeners[func(PointerEvent)]
	scroll      listeners[func(delta float32)]
}

func (e *events) emitResize(width, height int) {
	for _, fn := range e.resize.snapshot() {
		fn(width, height)
	}
}

func (e *events) emitPointerDown(ev PointerEvent) {
	for _, fn := range e.pointerDown.snapshot() {
		fn(ev)
	}
}

func (e *events) emitPointerUp(ev PointerEvent) {
	for _, fn := range e.pointerUp.snapshot() {
		fn(ev)
	}
}

func (e *events) emitPointerMove(ev PointerEvent) {
	for _, fn := range e.pointerMove.snapshot() {
		fn(ev)
	}
}

func (e *events) emitScroll(delta float32) {
	for _, fn := range e.scroll.snapshot() {
		fn(delta)
	}
}
