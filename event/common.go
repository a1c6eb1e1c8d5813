package event

import (
	"errors"
)

var ErrMissingID = errors.New("event id is not set")
var ErrMissingName = errors.New("event name is not set")
var ErrInvalidEventJSON = errors.New("event json is not valid")
var ErrInvalidEventYAML = errors.New("event yaml is not valid")

// IDInt64 is a type alias for int64, representing the identifier of an Event.
type IDInt64 = int64

// NameString is a type alias for string, representing the name of an Event.
type NameString = string

// Events is an alias type for a slice of Event
type Events = []Event

// fieldBits records which optional fields have been set.
type fieldBits uint8

const (
	idBit fieldBits = 1 << iota
	nameBit
)
