package envelope

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/event-builder-go/event"
)

// EventType is the event type of all StorableEvent(s) created from an event.Event.
const EventType = "EventBuilt"

var ErrUnknownEventType = errors.New("unknown event type")
var ErrMappingToStorableEventFailed = errors.New("mapping to storable event failed")
var ErrEventEnvelopeFromStorableEventFailed = errors.New("event envelope from storable event failed")

type EventEnvelopes = []EventEnvelope

type EventEnvelope struct {
	Event         event.Event
	EventMetadata EventMetadata
	OccurredAt    time.Time
}

func BuildEventEnvelope(e event.Event, eventMetadata EventMetadata, occurredAt time.Time) EventEnvelope {
	return EventEnvelope{
		Event:         e,
		EventMetadata: eventMetadata,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// StorableEventFrom converts an event.Event and EventMetadata to a StorableEvent.
func StorableEventFrom(e event.Event, metadata EventMetadata, occurredAt time.Time) (StorableEvent, error) {
	payloadJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(e)
	if err != nil {
		return StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	metadataJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(metadata)
	if err != nil {
		return StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	storableEvent, err := BuildStorableEvent(EventType, occurredAt, payloadJSON, metadataJSON)
	if err != nil {
		return StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	return storableEvent, nil
}

func EventEnvelopeFrom(storableEvent StorableEvent) (EventEnvelope, error) {
	if storableEvent.EventType != EventType {
		return EventEnvelope{}, errors.Join(ErrEventEnvelopeFromStorableEventFailed, ErrUnknownEventType)
	}

	metadata, err := EventMetadataFrom(storableEvent)
	if err != nil {
		return EventEnvelope{}, errors.Join(ErrEventEnvelopeFromStorableEventFailed, err)
	}

	e, err := event.FromJSON(storableEvent.PayloadJSON)
	if err != nil {
		return EventEnvelope{}, errors.Join(ErrEventEnvelopeFromStorableEventFailed, err)
	}

	return BuildEventEnvelope(e, metadata, storableEvent.OccurredAt), nil
}

func EventEnvelopesFrom(storableEvents StorableEvents) (EventEnvelopes, error) {
	envelopes := make(EventEnvelopes, 0)

	for _, storableEvent := range storableEvents {
		envelope, err := EventEnvelopeFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		envelopes = append(envelopes, envelope)
	}

	return envelopes, nil
}
