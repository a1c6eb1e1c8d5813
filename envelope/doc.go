// Package envelope wraps a built event.Event into transport-ready DTOs.
//
// A StorableEvent is built on scalars (event type, time, payload JSON, metadata JSON) so it can be
// handed to any storage or messaging layer without that layer knowing the event package.
// EventMetadata carries message, causation and correlation ids generated with google/uuid.
//
// Common usage pattern:
//
//	e := event.BuildEvent().WithID(122).WithName("Suman").Build()
//
//	storableEvent, err := envelope.StorableEventFrom(e, envelope.NewEventMetadata(), time.Now())
//	if err != nil {
//		// handle error
//	}
//
//	eventEnvelope, err := envelope.EventEnvelopeFrom(storableEvent)
package envelope
