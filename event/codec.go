package event

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// eventDTO is the wire form of an Event. Unset fields are encoded as null.
type eventDTO struct {
	ID   *IDInt64    `json:"id" yaml:"id"`
	Name *NameString `json:"name" yaml:"name"`
}

func (e Event) toDTO() eventDTO {
	dto := eventDTO{}

	if id, ok := e.GetID(); ok {
		dto.ID = &id
	}

	if name, ok := e.GetName(); ok {
		dto.Name = &name
	}

	return dto
}

func (dto eventDTO) toEvent() Event {
	b := BuildEvent()

	if dto.ID != nil {
		b = b.WithID(*dto.ID)
	}

	if dto.Name != nil {
		b = b.WithName(*dto.Name)
	}

	return b.Build()
}

// MarshalJSON implements json.Marshaler, e.g.: {"id":122,"name":"Suman"}
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toDTO())
}

// FromJSON decodes an Event from JSON. Missing or null keys result in unset fields.
func FromJSON(data []byte) (Event, error) {
	if !json.Valid(data) {
		return Event{}, ErrInvalidEventJSON
	}

	dto := new(eventDTO)
	if err := json.Unmarshal(data, dto); err != nil {
		return Event{}, errors.Join(ErrInvalidEventJSON, err)
	}

	return dto.toEvent(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Event) MarshalYAML() (any, error) {
	return e.toDTO(), nil
}

// FromYAML decodes an Event from YAML. Missing or null keys result in unset fields.
func FromYAML(data []byte) (Event, error) {
	dto := new(eventDTO)
	if err := yaml.Unmarshal(data, dto); err != nil {
		return Event{}, errors.Join(ErrInvalidEventYAML, err)
	}

	return dto.toEvent(), nil
}
