package event

import (
	"errors"
)

// Builder accumulates the optional fields of an Event and produces it with Build() or BuildComplete().
//
// All methods have value receivers and return an updated copy, which allows chaining and
// forking without aliasing:
//
//	base := BuildEvent().WithID(1)
//	a := base.WithName("a").Build() // {1, "a"}
//	b := base.WithName("b").Build() // {1, "b"}
//
// The zero value is ready to use and equivalent to BuildEvent().
type Builder struct {
	event Event
}

// BuildEvent creates a Builder with all fields unset.
func BuildEvent() Builder {
	return Builder{}
}

// WithID sets the id, replacing any previously set id. Any value is accepted.
func (b Builder) WithID(id IDInt64) Builder {
	b.event.id = id
	b.event.bits |= idBit

	return b
}

// WithoutID resets the id to unset.
func (b Builder) WithoutID() Builder {
	b.event.id = 0
	b.event.bits &^= idBit

	return b
}

// WithName sets the name, replacing any previously set name. Any value is accepted, including "".
func (b Builder) WithName(name NameString) Builder {
	b.event.name = name
	b.event.bits |= nameBit

	return b
}

// WithoutName resets the name to unset.
func (b Builder) WithoutName() Builder {
	b.event.name = ""
	b.event.bits &^= nameBit

	return b
}

// From copies all fields of the given Event into the Builder, discarding any previous values.
func (b Builder) From(e Event) Builder {
	b.event = e

	return b
}

// Build returns a new Event populated from the current values.
//
// It never fails and leaves the Builder untouched, so calling it repeatedly yields equal, independent Events.
func (b Builder) Build() Event {
	return b.event
}

// BuildComplete works like Build but requires all fields to be set.
//
// Returns ErrMissingID and/or ErrMissingName (joined) if a field is unset.
func (b Builder) BuildComplete() (Event, error) {
	var errs []error

	if !b.event.HasID() {
		errs = append(errs, ErrMissingID)
	}

	if !b.event.HasName() {
		errs = append(errs, ErrMissingName)
	}

	if len(errs) > 0 {
		return Event{}, errors.Join(errs...)
	}

	return b.event, nil
}
