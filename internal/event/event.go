// internal/event/event.go
package event

// EventType identifies a kind of game event.
type EventType string

// Event carries a type tag and an optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is implemented by anything that wants to receive events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher routes events to subscribed listeners. Listeners for one
// event type are notified in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for an event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes a previously registered listener.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers an event to every subscriber of its type.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
