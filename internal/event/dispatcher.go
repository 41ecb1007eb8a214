// Package event provides a small publish/subscribe registry.
package event

// Event names published by the game.
const (
	PlayerArrived = "player.arrived"
	WalkerArrived = "walker.arrived"
	WalkerBlocked = "walker.blocked"
	PlayerCaught  = "player.caught"
)

// Listener receives published events.
type Listener interface {
	OnEvent(name string, value any)
}

// Dispatcher maps event names to their listeners. It is owned by whoever
// creates it and is not safe for concurrent use.
type Dispatcher struct {
	listeners map[string][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[string][]Listener),
	}
}

// Subscribe registers listener for name. Subscribing the same listener to
// the same name again has no effect. Listeners must be comparable.
func (d *Dispatcher) Subscribe(name string, listener Listener) {
	for _, l := range d.listeners[name] {
		if l == listener {
			return
		}
	}
	d.listeners[name] = append(d.listeners[name], listener)
}

// Unsubscribe removes listener from name.
func (d *Dispatcher) Unsubscribe(name string, listener Listener) {
	listeners := d.listeners[name]
	for i, l := range listeners {
		if l == listener {
			d.listeners[name] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Publish calls every listener subscribed to name, in subscription order.
func (d *Dispatcher) Publish(name string, value any) {
	for _, l := range d.listeners[name] {
		l.OnEvent(name, value)
	}
}

// Clear removes every subscription.
func (d *Dispatcher) Clear() {
	clear(d.listeners)
}
