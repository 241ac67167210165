package libemit

// Grafted gives an existing value the Emitter operations. It keeps a
// reference to the value, never a copy, next to a private subscription
// store. Listeners registered without a context receive the Grafted value
// as Event.Context.
type Grafted[T any, O any] struct {
	registry[T]
	target O
}

// Graft attaches a fresh subscription store to target. Grafting the same
// value twice yields two wrappers that do not share listeners.
func Graft[T any, O any](target O, opts ...Option) *Grafted[T, O] {
	g := &Grafted[T, O]{target: target}
	g.init(opts)
	return g
}

// Target returns the grafted value.
func (g *Grafted[T, O]) Target() O {
	return g.target
}

// Subscribe registers handler for event, see Emitter.Subscribe.
func (g *Grafted[T, O]) Subscribe(event string, handler any, context ...any) *Grafted[T, O] {
	g.subscribe(event, handler, false, context)
	return g
}

// On is an alias of Subscribe.
func (g *Grafted[T, O]) On(event string, handler any, context ...any) *Grafted[T, O] {
	return g.Subscribe(event, handler, context...)
}

// AddListener is an alias of Subscribe.
func (g *Grafted[T, O]) AddListener(event string, handler any, context ...any) *Grafted[T, O] {
	return g.Subscribe(event, handler, context...)
}

// Bind is an alias of Subscribe.
func (g *Grafted[T, O]) Bind(event string, handler any, context ...any) *Grafted[T, O] {
	return g.Subscribe(event, handler, context...)
}

// SubscribeOnce registers a listener removed right before its first
// notification.
func (g *Grafted[T, O]) SubscribeOnce(event string, handler any, context ...any) *Grafted[T, O] {
	g.subscribe(event, handler, true, context)
	return g
}

// Once is an alias of SubscribeOnce.
func (g *Grafted[T, O]) Once(event string, handler any, context ...any) *Grafted[T, O] {
	return g.SubscribeOnce(event, handler, context...)
}

// Unsubscribe removes listeners, see Emitter.Unsubscribe.
func (g *Grafted[T, O]) Unsubscribe(event string, handlers ...any) *Grafted[T, O] {
	g.unsubscribe(event, handlers)
	return g
}

// Off is an alias of Unsubscribe.
func (g *Grafted[T, O]) Off(event string, handlers ...any) *Grafted[T, O] {
	return g.Unsubscribe(event, handlers...)
}

// RemoveListener is an alias of Unsubscribe.
func (g *Grafted[T, O]) RemoveListener(event string, handlers ...any) *Grafted[T, O] {
	return g.Unsubscribe(event, handlers...)
}

// Unbind is an alias of Unsubscribe.
func (g *Grafted[T, O]) Unbind(event string, handlers ...any) *Grafted[T, O] {
	return g.Unsubscribe(event, handlers...)
}

// RemoveAllListeners removes every listener of every event.
func (g *Grafted[T, O]) RemoveAllListeners() *Grafted[T, O] {
	return g.Unsubscribe("")
}

// Publish notifies the listeners of event, see Emitter.Publish.
func (g *Grafted[T, O]) Publish(event string, payload T) *Grafted[T, O] {
	g.publish(g, event, payload)
	return g
}

// Emit is an alias of Publish.
func (g *Grafted[T, O]) Emit(event string, payload T) *Grafted[T, O] {
	return g.Publish(event, payload)
}

// Trigger is an alias of Publish.
func (g *Grafted[T, O]) Trigger(event string, payload T) *Grafted[T, O] {
	return g.Publish(event, payload)
}

// Fire is an alias of Publish.
func (g *Grafted[T, O]) Fire(event string, payload T) *Grafted[T, O] {
	return g.Publish(event, payload)
}

// ListenerCount returns the number of listeners registered under event, or
// under any event when event is empty.
func (g *Grafted[T, O]) ListenerCount(event string) int {
	return g.count(event)
}

// HasListeners reports whether event has at least one listener.
func (g *Grafted[T, O]) HasListeners(event string) bool {
	return g.count(event) > 0
}

// EventNames returns the events with listeners, in first registration order.
func (g *Grafted[T, O]) EventNames() []string {
	return g.eventNames()
}

// Graft attaches a new, independent store to another target.
func (g *Grafted[T, O]) Graft(target any) *Grafted[T, any] {
	return Graft[T, any](target, WithLogger(g.log()))
}
