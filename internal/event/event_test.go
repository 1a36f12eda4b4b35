package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(DestinationSet, ListenerFunc(func(Event) { order = append(order, "a") }))
	d.Subscribe(DestinationSet, ListenerFunc(func(Event) { order = append(order, "b") }))

	d.Dispatch(Event{Type: DestinationSet})
	d.Dispatch(Event{Type: PawnSpawned})

	assert.Equal(t, []string{"a", "b"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PawnSpawned, a)
	d.Subscribe(PawnSpawned, b)

	d.Unsubscribe(PawnSpawned, a)
	d.Dispatch(Event{Type: PawnSpawned, Data: EntityData{Entity: 7}})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
	assert.Equal(t, EntityData{Entity: 7}, b.got[0].Data)
	assert.Equal(t, 1, d.Listeners(PawnSpawned))
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	b := &recorder{}
	var self Listener
	calls := 0
	self = ListenerFunc(func(Event) { calls++ })
	d.Subscribe(DestinationReached, self)
	d.Subscribe(DestinationReached, ListenerFunc(func(Event) { d.Unsubscribe(DestinationReached, b) }))
	d.Subscribe(DestinationReached, b)

	d.Dispatch(Event{Type: DestinationReached})
	d.Dispatch(Event{Type: DestinationReached})

	assert.Equal(t, 2, calls)
	assert.Len(t, b.got, 1)
}
