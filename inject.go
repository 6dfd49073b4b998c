package keepsake

import "sync"

// EventQueue holds synthetic events for automated runs. One event is released
// per tick, ahead of real input. It is an EventSource and safe for concurrent
// use.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// InjectPress queues a pointer press at the given canvas coordinates.
func (q *EventQueue) InjectPress(x, y float64, button MouseButton) {
	q.push(Event{Kind: EventPointerPress, X: x, Y: y, Button: button})
}

// InjectClick queues a left-button press at the given canvas coordinates.
func (q *EventQueue) InjectClick(x, y float64) {
	q.InjectPress(x, y, MouseButtonLeft)
}

// InjectQuit queues a quit request.
func (q *EventQueue) InjectQuit() {
	q.push(Event{Kind: EventQuit})
}

func (q *EventQueue) push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Len returns the number of events still queued.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// PollEvents pops at most one queued event onto buf.
func (q *EventQueue) PollEvents(buf []Event) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return buf
	}
	buf = append(buf, q.events[0])
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]
	return buf
}
