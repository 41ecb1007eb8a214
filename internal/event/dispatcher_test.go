package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	names  []string
	values []any
}

func (r *recorder) OnEvent(name string, value any) {
	r.names = append(r.names, name)
	r.values = append(r.values, value)
}

func TestPublishReachesMatchingListeners(t *testing.T) {
	d := NewDispatcher()
	first := &recorder{}
	second := &recorder{}
	d.Subscribe("event1", first)
	d.Subscribe("event2", second)

	d.Publish("event1", "value1")

	assert.Equal(t, []string{"event1"}, first.names)
	assert.Equal(t, []any{"value1"}, first.values)
	assert.Empty(t, second.names)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(WalkerArrived, r)
	d.Subscribe(WalkerArrived, r)

	d.Publish(WalkerArrived, 1)
	assert.Len(t, r.names, 1)
}

func TestOneListenerSeveralNames(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerArrived, r)
	d.Subscribe(PlayerCaught, r)

	d.Publish(PlayerArrived, "a")
	d.Publish(PlayerCaught, "b")
	d.Publish(WalkerBlocked, "c")

	assert.Equal(t, []string{PlayerArrived, PlayerCaught}, r.names)
	assert.Equal(t, []any{"a", "b"}, r.values)
}

func TestPublishOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	for i := 0; i < 3; i++ {
		d.Subscribe("tick", &orderListener{id: i, order: &order})
	}

	d.Publish("tick", nil)
	assert.Equal(t, []int{0, 1, 2}, order)
}

type orderListener struct {
	id    int
	order *[]int
}

func (l *orderListener) OnEvent(string, any) {
	*l.order = append(*l.order, l.id)
}

func TestUnsubscribeAndClear(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe("e", a)
	d.Subscribe("e", b)

	d.Unsubscribe("e", a)
	d.Publish("e", 1)
	assert.Empty(t, a.names)
	assert.Len(t, b.names, 1)

	d.Clear()
	d.Publish("e", 2)
	assert.Len(t, b.names, 1)
}
