package workflow

// Event names published on the store's bus.
const (
	EventEvidenceAdded   = "evidence_added"
	EventActionCompleted = "action_completed"
)

// Event is a broadcast notification. Side effects that intentionally fan out
// (one upload satisfying every matching recommendation) travel through the
// bus so each subscriber decides whether to react, instead of being mutated
// inline by the publisher.
type Event struct {
	Name     string
	ActionID string
	Detail   string
}

// EventBus is a minimal synchronous publish/subscribe hub. Handlers run in
// subscription order on the publisher's goroutine; the whole application is
// single-threaded around the UI event loop, so no locking is needed.
type EventBus struct {
	handlers map[string][]func(Event)
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[string][]func(Event))}
}

// Subscribe registers a handler for the named event.
func (b *EventBus) Subscribe(name string, fn func(Event)) {
	b.handlers[name] = append(b.handlers[name], fn)
}

// Publish delivers the event to every handler subscribed to its name.
func (b *EventBus) Publish(e Event) {
	for _, fn := range b.handlers[e.Name] {
		fn(e)
	}
}
