package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalHub_DispatchOrder(t *testing.T) {
	var hub signalHub[string]
	var got []string

	hub.add(func(s string) { got = append(got, "first:"+s) })
	hub.add(func(s string) { got = append(got, "second:"+s) })

	hub.dispatch("x")

	assert.Equal(t, []string{"first:x", "second:x"}, got)
}

func TestSignalHub_CancelRemovesSubscriber(t *testing.T) {
	var hub signalHub[int]
	var calls int

	sub := hub.add(func(int) { calls++ })
	hub.dispatch(1)
	sub.Cancel()
	hub.dispatch(2)

	assert.Equal(t, 1, calls)
}

func TestSignalHub_CancelIsIdempotent(t *testing.T) {
	var hub signalHub[int]
	var calls int

	keep := hub.add(func(int) { calls++ })
	sub := hub.add(func(int) { calls++ })

	sub.Cancel()
	sub.Cancel()
	hub.dispatch(1)

	assert.Equal(t, 1, calls)
	keep.Cancel()
}

func TestSignalHub_CancelDuringDispatch(t *testing.T) {
	var hub signalHub[int]
	var calls []string

	var sub1 interface{ Cancel() }
	sub1 = hub.add(func(int) {
		calls = append(calls, "one")
		sub1.Cancel()
	})
	hub.add(func(int) { calls = append(calls, "two") })

	// A subscriber cancelling itself mid-dispatch must not skip others.
	hub.dispatch(1)
	assert.Equal(t, []string{"one", "two"}, calls)

	hub.dispatch(2)
	assert.Equal(t, []string{"one", "two", "two"}, calls)
}

func TestSignalHub_ClearDropsAll(t *testing.T) {
	var hub signalHub[int]
	var calls int

	hub.add(func(int) { calls++ })
	hub.add(func(int) { calls++ })
	hub.clear()
	hub.dispatch(1)

	assert.Equal(t, 0, calls)
}
