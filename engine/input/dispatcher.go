package input

import (
	"sync"
)

// Subscription identifies a Handler registered with a Source.
// The zero value never identifies a live subscription.
type Subscription uint64

// Handler receives platform input events. Nil fields are skipped.
type Handler struct {
	// OnKeyDown is called when a key is pressed or auto-repeats.
	OnKeyDown func(keyCode uint32)

	// OnKeyUp is called when a key is released.
	OnKeyUp func(keyCode uint32)

	// OnPointerMotion is called with the pointer movement since the previous motion event.
	OnPointerMotion func(dx, dy float32)
}

// Source is a platform input source that handlers can subscribe to and unsubscribe from.
type Source interface {
	// Subscribe registers a handler for subsequent events.
	//
	// Parameters:
	//   - h: the handler to register
	//
	// Returns:
	//   - Subscription: identifier to pass to Unsubscribe
	Subscribe(h Handler) Subscription

	// Unsubscribe removes a previously registered handler.
	// Unknown or already removed subscriptions are ignored.
	//
	// Parameters:
	//   - sub: the subscription to remove
	Unsubscribe(sub Subscription)
}

// CallbackHost is the callback surface of a platform window. window.Window satisfies it.
type CallbackHost interface {
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
	SetMouseMoveCallback(callback func(dx, dy float32))
}

// Dispatcher is a multi-subscriber Source. Platform adapters feed it through KeyDown,
// KeyUp and PointerMotion, and it fans each event out to the handlers in subscription order.
// Handlers run outside the dispatcher's lock so they may subscribe or unsubscribe.
type Dispatcher struct {
	mu *sync.Mutex

	next     Subscription
	order    []Subscription
	handlers map[Subscription]Handler
}

var _ Source = &Dispatcher{}

// NewDispatcher creates an empty Dispatcher.
//
// Returns:
//   - *Dispatcher: the newly created dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		mu:       &sync.Mutex{},
		handlers: make(map[Subscription]Handler),
	}
}

// Attach routes a window's key and pointer-motion callbacks into the dispatcher.
// Any callbacks previously set on those window hooks are replaced.
//
// Parameters:
//   - w: the window to read input from
func (d *Dispatcher) Attach(w CallbackHost) {
	w.SetKeyDownCallback(d.KeyDown)
	w.SetKeyUpCallback(d.KeyUp)
	w.SetMouseMoveCallback(d.PointerMotion)
}

func (d *Dispatcher) Subscribe(h Handler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	d.handlers[d.next] = h
	d.order = append(d.order, d.next)
	return d.next
}

func (d *Dispatcher) Unsubscribe(sub Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.handlers[sub]; !ok {
		return
	}
	delete(d.handlers, sub)
	for i, s := range d.order {
		if s == sub {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live subscriptions.
//
// Returns:
//   - int: subscription count
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}

// KeyDown delivers a key press to every subscribed handler.
//
// Parameters:
//   - keyCode: the virtual key code
func (d *Dispatcher) KeyDown(keyCode uint32) {
	for _, h := range d.snapshot() {
		if h.OnKeyDown != nil {
			h.OnKeyDown(keyCode)
		}
	}
}

// KeyUp delivers a key release to every subscribed handler.
//
// Parameters:
//   - keyCode: the virtual key code
func (d *Dispatcher) KeyUp(keyCode uint32) {
	for _, h := range d.snapshot() {
		if h.OnKeyUp != nil {
			h.OnKeyUp(keyCode)
		}
	}
}

// PointerMotion delivers a pointer movement delta to every subscribed handler.
//
// Parameters:
//   - dx, dy: pointer movement since the previous event
func (d *Dispatcher) PointerMotion(dx, dy float32) {
	for _, h := range d.snapshot() {
		if h.OnPointerMotion != nil {
			h.OnPointerMotion(dx, dy)
		}
	}
}

// snapshot copies the live handlers in subscription order.
func (d *Dispatcher) snapshot() []Handler {
	d.mu.Lock()
	defer d.mu.Unlock()
	hs := make([]Handler, 0, len(d.order))
	for _, s := range d.order {
		hs = append(hs, d.handlers[s])
	}
	return hs
}
