package libemit

import (
	"fmt"
	"reflect"
	"unsafe"
)

const (
	// All is the catch-all event key. Listeners registered under it are
	// notified of every published event, after the listeners of that event.
	All = "all"
	// Wildcard behaves exactly like All.
	Wildcard = "*"
)

// IsCatchAll reports whether event is one of the reserved catch-all keys.
func IsCatchAll(event string) bool {
	return event == All || event == Wildcard
}

type (
	// Event is what a handler observes when it is notified.
	Event[T any] struct {
		// Name is the published event name, also for catch-all listeners.
		Name    string
		Payload T
		// Context is the receiver the listener was registered with. It defaults
		// to the value the listener was registered on.
		Context any
	}

	Handler[T any] interface {
		Handle(ev Event[T])
	}

	HandlerFunc[T any] func(ev Event[T])
)

func (f HandlerFunc[T]) Handle(ev Event[T]) {
	f(ev)
}

// toHandler normalizes the callable shapes accepted by subscribe:
// Handler[T], func(Event[T]), func(T), func(string, T) and func().
func toHandler[T any](handler any) (Handler[T], *ArgumentError) {
	if isNil(handler) {
		return nil, newArgumentError("handler", "must not be nil")
	}

	switch h := handler.(type) {
	case Handler[T]:
		return h, nil
	case func(Event[T]):
		return HandlerFunc[T](h), nil
	case func(T):
		return HandlerFunc[T](func(ev Event[T]) { h(ev.Payload) }), nil
	case func(string, T):
		return HandlerFunc[T](func(ev Event[T]) { h(ev.Name, ev.Payload) }), nil
	case func():
		return HandlerFunc[T](func(Event[T]) { h() }), nil
	}

	return nil, newArgumentError("handler", fmt.Sprintf("must be callable, got %T", handler))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Ptr, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sameHandler reports whether two registered handler values are the same
// reference. Funcs are not comparable in Go, so they match on the func value
// itself: the closure object the interface points at. Closures created by
// separate evaluations of one literal, and method values bound to different
// receivers, are different handlers. A method value must be kept in a
// variable to be removed later, since every evaluation binds a new one.
func sameHandler(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		return funcValue(a) == funcValue(b)
	}
	if !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}

// funcValue returns the data word of an interface holding a func. Func
// types are pointer shaped, so the word is the func value pointer.
func funcValue(v any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1]
}
