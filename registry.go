package libemit

import (
	"sync"

	"github.com/pkg/errors"
)

// subscription is one registered listener. ref is the value the caller
// registered, kept to match unsubscribe calls. A nil context falls back to
// the registry default when dispatched. consumed is guarded by the owning
// registry's lock.
type subscription[T any] struct {
	event    string
	handler  Handler[T]
	ref      any
	context  any
	once     bool
	consumed bool
}

// registry is the subscription store shared by Emitter and Grafted. The
// listeners slice stays nil until the first subscription and is only ever
// mutated in place afterwards. The lock is never held while a handler runs.
// context, when set by WithContext, replaces the owner as default receiver.
type registry[T any] struct {
	listeners []*subscription[T]
	lock      sync.RWMutex
	logger    Logger
	context   any
}

func (r *registry[T]) init(opts []Option) {
	o := newOptions(opts)
	r.logger = o.logger
	r.context = o.context
}

func (r *registry[T]) log() Logger {
	if r.logger == nil {
		return noopLogger{}
	}
	return r.logger
}

// reject reports and raises an invalid argument. Nothing has been recorded
// when it is called.
func (r *registry[T]) reject(err *ArgumentError) {
	r.log().WithField("arg", err.Arg).Warnf("rejecting call: %s", err)
	panic(errors.WithStack(err))
}

func (r *registry[T]) subscribe(event string, handler any, once bool, context []any) {
	if event == "" {
		r.reject(newArgumentError("event", "must be a non-empty string"))
	}

	h, err := toHandler[T](handler)
	if err != nil {
		r.reject(err)
	}

	sub := &subscription[T]{
		event:   event,
		handler: h,
		ref:     handler,
		once:    once,
	}
	if len(context) > 0 {
		sub.context = context[0]
	}

	r.lock.Lock()
	r.listeners = append(r.listeners, sub)
	r.lock.Unlock()

	r.log().WithField("event", event).Debugf("listener added (once=%t)", once)
}

// unsubscribe removes every listener when event is empty, every listener of
// event when no handlers are given, or only the listeners of event
// registered with one of handlers.
func (r *registry[T]) unsubscribe(event string, handlers []any) {
	var match func(*subscription[T]) bool

	switch {
	case event == "":
		match = func(*subscription[T]) bool { return true }
	case len(handlers) == 0:
		match = func(s *subscription[T]) bool { return s.event == event }
	default:
		match = func(s *subscription[T]) bool {
			if s.event != event {
				return false
			}
			for _, h := range handlers {
				if sameHandler(s.ref, h) {
					return true
				}
			}
			return false
		}
	}

	r.lock.Lock()
	removed := r.remove(match)
	r.lock.Unlock()

	r.log().WithField("event", event).Debugf("%d listeners removed", removed)
}

// remove filters listeners in place and returns how many were dropped.
// Callers must hold the write lock.
func (r *registry[T]) remove(match func(*subscription[T]) bool) int {
	kept := r.listeners[:0]
	for _, sub := range r.listeners {
		if !match(sub) {
			kept = append(kept, sub)
		}
	}
	for i := len(kept); i < len(r.listeners); i++ {
		r.listeners[i] = nil
	}
	removed := len(r.listeners) - len(kept)
	r.listeners = kept
	return removed
}

func (r *registry[T]) snapshot() []*subscription[T] {
	r.lock.RLock()
	defer r.lock.RUnlock()

	snapshot := make([]*subscription[T], len(r.listeners))
	copy(snapshot, r.listeners)
	return snapshot
}

// publish notifies the listeners of event and then the catch-all listeners,
// each class in registration order. Membership is fixed by the snapshot
// taken on entry. A panicking handler aborts the rest of the dispatch.
// owner is the receiver handlers get when neither the subscription nor
// WithContext set one.
func (r *registry[T]) publish(owner any, event string, payload T) {
	if event == "" {
		r.reject(newArgumentError("event", "must be a non-empty string"))
	}

	snapshot := r.snapshot()

	r.log().WithField("event", event).Debugf("publishing to %d candidate listeners", len(snapshot))

	for _, sub := range snapshot {
		if sub.event == event && !IsCatchAll(sub.event) {
			r.dispatch(owner, sub, event, payload)
		}
	}

	for _, sub := range snapshot {
		if IsCatchAll(sub.event) {
			r.dispatch(owner, sub, event, payload)
		}
	}
}

func (r *registry[T]) dispatch(owner any, sub *subscription[T], event string, payload T) {
	if sub.once && !r.consume(sub) {
		return
	}

	sub.handler.Handle(Event[T]{
		Name:    event,
		Payload: payload,
		Context: r.receiver(owner, sub),
	})
}

func (r *registry[T]) receiver(owner any, sub *subscription[T]) any {
	switch {
	case sub.context != nil:
		return sub.context
	case r.context != nil:
		return r.context
	default:
		return owner
	}
}

// consume removes a once listener from the live store before it runs. It
// returns false when a nested publish already consumed it.
func (r *registry[T]) consume(sub *subscription[T]) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	if sub.consumed {
		return false
	}
	sub.consumed = true
	r.remove(func(s *subscription[T]) bool { return s == sub })
	return true
}

func (r *registry[T]) count(event string) int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if event == "" {
		return len(r.listeners)
	}

	n := 0
	for _, sub := range r.listeners {
		if sub.event == event {
			n++
		}
	}
	return n
}

func (r *registry[T]) eventNames() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	seen := make(map[string]struct{}, len(r.listeners))
	names := make([]string, 0, len(r.listeners))
	for _, sub := range r.listeners {
		if _, ok := seen[sub.event]; ok {
			continue
		}
		seen[sub.event] = struct{}{}
		names = append(names, sub.event)
	}
	return names
}
