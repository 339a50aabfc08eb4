package events

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type EventType string

const (
	// EventTypeStart is published when a completion call is sent to the service.
	EventTypeStart EventType = "start"
	// EventTypeFinal carries the full assistant response text.
	EventTypeFinal     EventType = "final"
	EventTypeError     EventType = "error"
	EventTypeInterrupt EventType = "interrupt"
)

type Event interface {
	Type() EventType
	Metadata() EventMetadata
	Payload() []byte
}

// EventMetadata is passed along with every event so subscribers can
// correlate events with a session and model.
type EventMetadata struct {
	ID             uuid.UUID `json:"message_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Model          string    `json:"model,omitempty"`
}

func (em EventMetadata) MarshalZerologObject(e *zerolog.Event) {
	e.Str("message_id", em.ID.String())
	e.Str("conversation_id", em.ConversationID.String())
	if em.Model != "" {
		e.Str("model", em.Model)
	}
}

type EventImpl struct {
	Type_     EventType     `json:"type"`
	Metadata_ EventMetadata `json:"meta,omitempty"`

	// raw JSON, set when the event was deserialized (see NewEventFromJson)
	payload []byte
}

func (e *EventImpl) Type() EventType {
	return e.Type_
}

func (e *EventImpl) Metadata() EventMetadata {
	return e.Metadata_
}

func (e *EventImpl) Payload() []byte {
	return e.payload
}

func (e *EventImpl) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("type", string(e.Type_))
	ev.Object("meta", e.Metadata_)
}

var _ Event = &EventImpl{}

type EventStart struct {
	EventImpl
}

func NewStartEvent(metadata EventMetadata) *EventStart {
	return &EventStart{
		EventImpl: EventImpl{
			Type_:     EventTypeStart,
			Metadata_: metadata,
		},
	}
}

var _ Event = &EventStart{}

type EventFinal struct {
	EventImpl
	Text string `json:"text"`
}

func NewFinalEvent(metadata EventMetadata, text string) *EventFinal {
	return &EventFinal{
		EventImpl: EventImpl{
			Type_:     EventTypeFinal,
			Metadata_: metadata,
		},
		Text: text,
	}
}

var _ Event = &EventFinal{}

type EventError struct {
	EventImpl
	ErrorString string `json:"error_string"`
}

func NewErrorEvent(metadata EventMetadata, err error) *EventError {
	return &EventError{
		EventImpl: EventImpl{
			Type_:     EventTypeError,
			Metadata_: metadata,
		},
		ErrorString: err.Error(),
	}
}

var _ Event = &EventError{}

type EventInterrupt struct {
	EventImpl
	Text string `json:"text"`
}

func NewInterruptEvent(metadata EventMetadata, text string) *EventInterrupt {
	return &EventInterrupt{
		EventImpl: EventImpl{
			Type_:     EventTypeInterrupt,
			Metadata_: metadata,
		},
		Text: text,
	}
}

var _ Event = &EventInterrupt{}

// NewEventFromJson decodes a serialized event into its concrete type based
// on the type header.
func NewEventFromJson(b []byte) (Event, error) {
	var hdr struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(b, &hdr); err != nil {
		return nil, errors.Wrap(err, "could not parse event header")
	}

	switch hdr.Type {
	case EventTypeStart:
		var e EventStart
		if err := json.Unmarshal(b, &e); err != nil {
			return nil, err
		}
		e.payload = b
		return &e, nil
	case EventTypeFinal:
		var e EventFinal
		if err := json.Unmarshal(b, &e); err != nil {
			return nil, err
		}
		e.payload = b
		return &e, nil
	case EventTypeError:
		var e EventError
		if err := json.Unmarshal(b, &e); err != nil {
			return nil, err
		}
		e.payload = b
		return &e, nil
	case EventTypeInterrupt:
		var e EventInterrupt
		if err := json.Unmarshal(b, &e); err != nil {
			return nil, err
		}
		e.payload = b
		return &e, nil
	}

	return nil, errors.Errorf("unknown event type %q", hdr.Type)
}
