package events

// EventSink represents a destination for completion lifecycle events.
// Implementations can publish events to a message bus, a logger, or drop
// them entirely.
type EventSink interface {
	// PublishEvent publishes an event to the sink.
	PublishEvent(event Event) error
}

// NullSink discards all events.
type NullSink struct{}

func (NullSink) PublishEvent(Event) error {
	return nil
}

var _ EventSink = NullSink{}

// PublishBlind publishes an event to all sinks, ignoring publish errors.
// Event delivery is best effort and must never fail a completion call.
func PublishBlind(sinks []EventSink, event Event) {
	for _, sink := range sinks {
		_ = sink.PublishEvent(event)
	}
}
