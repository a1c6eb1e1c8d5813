package event

import (
	"fmt"
	"strconv"
)

// Event is an immutable value holding an optional ID and an optional Name.
//
// Its fields are unexported, so a populated Event can only be obtained from a Builder.
// The zero value is a valid Event with both fields unset.
type Event struct {
	bits fieldBits
	id   IDInt64
	name NameString
}

// ID returns the id, or 0 if it is not set.
func (e Event) ID() IDInt64 {
	return e.id
}

// GetID returns the id and a flag indicating whether it is set.
func (e Event) GetID() (IDInt64, bool) {
	return e.id, e.HasID()
}

// HasID reports whether the id is set.
func (e Event) HasID() bool {
	return e.bits&idBit != 0
}

// Name returns the name, or "" if it is not set.
func (e Event) Name() NameString {
	return e.name
}

// GetName returns the name and a flag indicating whether it is set.
func (e Event) GetName() (NameString, bool) {
	return e.name, e.HasName()
}

// HasName reports whether the name is set.
func (e Event) HasName() bool {
	return e.bits&nameBit != 0
}

// Equal reports whether both Events hold the same values, taking into account which fields are set.
func (e Event) Equal(other Event) bool {
	return e == other
}

func (e Event) String() string {
	id := "<unset>"
	if e.HasID() {
		id = strconv.FormatInt(e.id, 10)
	}

	name := "<unset>"
	if e.HasName() {
		name = strconv.Quote(e.name)
	}

	return fmt.Sprintf("Event{ID: %s, Name: %s}", id, name)
}
