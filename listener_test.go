package libemit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHandler_Shapes(t *testing.T) {
	ev := Event[int]{Name: "foo", Payload: 7, Context: "ctx"}

	var got []any
	tests := []struct {
		name    string
		handler any
		want    []any
	}{
		{
			name:    "event func",
			handler: func(e Event[int]) { got = append(got, e.Name, e.Payload, e.Context) },
			want:    []any{"foo", 7, "ctx"},
		},
		{
			name:    "payload func",
			handler: func(p int) { got = append(got, p) },
			want:    []any{7},
		},
		{
			name:    "name and payload func",
			handler: func(name string, p int) { got = append(got, name, p) },
			want:    []any{"foo", 7},
		},
		{
			name:    "no arguments",
			handler: func() { got = append(got, "called") },
			want:    []any{"called"},
		},
		{
			name:    "handler func",
			handler: HandlerFunc[int](func(e Event[int]) { got = append(got, e.Context) }),
			want:    []any{"ctx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil

			h, err := toHandler[int](tt.handler)
			require.Nil(t, err)
			h.Handle(ev)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHandler_Rejects(t *testing.T) {
	var (
		nilFunc     func(int)
		nilListener *mockListener[int]
	)

	for _, handler := range []any{nil, 123, "foo", nilFunc, nilListener, func(string) {}, struct{}{}} {
		h, err := toHandler[int](handler)

		assert.Nil(t, h)
		if assert.NotNil(t, err) {
			assert.Equal(t, "handler", err.Arg)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		}
	}
}

func TestSameHandler(t *testing.T) {
	first := func() {}
	second := func() {}
	listener := &mockListener[int]{}
	other := &mockListener[int]{}

	assert.True(t, sameHandler(first, first))
	assert.False(t, sameHandler(first, second))
	assert.True(t, sameHandler(listener, listener))
	assert.False(t, sameHandler(listener, other))
	assert.False(t, sameHandler(first, listener))
	assert.False(t, sameHandler(nil, first))
	assert.False(t, sameHandler(first, nil))
	assert.False(t, sameHandler([]int{1}, []int{1}))

	counters := []*hitCounter{{}, {}}
	hits := []func(){counters[0].Hit, counters[1].Hit}
	assert.True(t, sameHandler(hits[0], hits[0]))
	assert.False(t, sameHandler(hits[0], hits[1]))

	rec := &recorder{}
	a, b := rec.listener("a"), rec.listener("b")
	assert.True(t, sameHandler(a, a))
	assert.False(t, sameHandler(a, b))
}

func TestIsCatchAll(t *testing.T) {
	assert.True(t, IsCatchAll(All))
	assert.True(t, IsCatchAll(Wildcard))
	assert.False(t, IsCatchAll("alls"))
	assert.False(t, IsCatchAll(""))
}
