// Package libemit provides a minimal synchronous publish/subscribe
// primitive. An Emitter is created standalone with New, or grafted onto an
// existing value with Graft. Listeners are notified in registration order,
// named listeners before catch-all ones, on the publisher's goroutine.
package libemit

// Emitter maps event names to listeners and notifies them synchronously.
// Handlers may subscribe, unsubscribe and publish on the same emitter while
// being notified. The zero value is ready to use.
type Emitter[T any] struct {
	registry[T]
}

// New creates an Emitter with its own empty subscription store.
func New[T any](opts ...Option) *Emitter[T] {
	e := &Emitter[T]{}
	e.init(opts)
	return e
}

// Subscribe registers handler for event. An optional context is handed to
// the handler as Event.Context, defaulting to the emitter itself.
// Subscribing under All or Wildcard notifies the handler of every event.
// It panics with an *ArgumentError if event is empty or handler is not
// one of the accepted callable shapes.
func (e *Emitter[T]) Subscribe(event string, handler any, context ...any) *Emitter[T] {
	e.subscribe(event, handler, false, context)
	return e
}

// On is an alias of Subscribe.
func (e *Emitter[T]) On(event string, handler any, context ...any) *Emitter[T] {
	return e.Subscribe(event, handler, context...)
}

// AddListener is an alias of Subscribe.
func (e *Emitter[T]) AddListener(event string, handler any, context ...any) *Emitter[T] {
	return e.Subscribe(event, handler, context...)
}

// Bind is an alias of Subscribe.
func (e *Emitter[T]) Bind(event string, handler any, context ...any) *Emitter[T] {
	return e.Subscribe(event, handler, context...)
}

// SubscribeOnce is like Subscribe but the listener is removed right before
// it is first notified.
func (e *Emitter[T]) SubscribeOnce(event string, handler any, context ...any) *Emitter[T] {
	e.subscribe(event, handler, true, context)
	return e
}

// Once is an alias of SubscribeOnce.
func (e *Emitter[T]) Once(event string, handler any, context ...any) *Emitter[T] {
	return e.SubscribeOnce(event, handler, context...)
}

// Unsubscribe removes listeners. An empty event removes all of them; an
// event without handlers removes every listener of that event; otherwise
// only the listeners of event registered with one of handlers go. Unknown
// events and handlers are ignored.
func (e *Emitter[T]) Unsubscribe(event string, handlers ...any) *Emitter[T] {
	e.unsubscribe(event, handlers)
	return e
}

// Off is an alias of Unsubscribe.
func (e *Emitter[T]) Off(event string, handlers ...any) *Emitter[T] {
	return e.Unsubscribe(event, handlers...)
}

// RemoveListener is an alias of Unsubscribe.
func (e *Emitter[T]) RemoveListener(event string, handlers ...any) *Emitter[T] {
	return e.Unsubscribe(event, handlers...)
}

// Unbind is an alias of Unsubscribe.
func (e *Emitter[T]) Unbind(event string, handlers ...any) *Emitter[T] {
	return e.Unsubscribe(event, handlers...)
}

// RemoveAllListeners removes every listener of every event.
func (e *Emitter[T]) RemoveAllListeners() *Emitter[T] {
	return e.Unsubscribe("")
}

// Publish notifies the listeners of event with payload, then the catch-all
// listeners. Panics raised by handlers propagate to the caller and skip
// the remaining listeners. It panics with an *ArgumentError if event is
// empty.
func (e *Emitter[T]) Publish(event string, payload T) *Emitter[T] {
	e.publish(e, event, payload)
	return e
}

// Emit is an alias of Publish.
func (e *Emitter[T]) Emit(event string, payload T) *Emitter[T] {
	return e.Publish(event, payload)
}

// Trigger is an alias of Publish.
func (e *Emitter[T]) Trigger(event string, payload T) *Emitter[T] {
	return e.Publish(event, payload)
}

// Fire is an alias of Publish.
func (e *Emitter[T]) Fire(event string, payload T) *Emitter[T] {
	return e.Publish(event, payload)
}

// ListenerCount returns the number of listeners registered under event, or
// under any event when event is empty.
func (e *Emitter[T]) ListenerCount(event string) int {
	return e.count(event)
}

// HasListeners reports whether event has at least one listener.
func (e *Emitter[T]) HasListeners(event string) bool {
	return e.count(event) > 0
}

// EventNames returns the events with listeners, in first registration order.
func (e *Emitter[T]) EventNames() []string {
	return e.eventNames()
}

// Graft attaches a new, independent store to target. The receiver's logger
// is carried over; its listeners are not.
func (e *Emitter[T]) Graft(target any) *Grafted[T, any] {
	return Graft[T, any](target, WithLogger(e.log()))
}
