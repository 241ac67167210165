package libemit

import (
	"github.com/stretchr/testify/mock"
)

// mockListener is a Handler whose notifications are recorded as calls to
// Handle(name, payload).
type mockListener[T any] struct {
	mock.Mock
}

func (m *mockListener[T]) Handle(ev Event[T]) {
	m.Called(ev.Name, ev.Payload)
}

// recorder collects the labels of the listeners it created, in the order
// they were notified.
type recorder struct {
	calls []string
}

func (r *recorder) listener(label string) func() {
	return func() {
		r.calls = append(r.calls, label)
	}
}
