package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/event-builder-go/event"
)

func Test_Builder_DemonstrationScenario(t *testing.T) {
	e := event.BuildEvent().WithID(122).WithName("Suman").Build()

	assert.Equal(t, "Suman", e.Name())
	assert.Equal(t, int64(122), e.ID())
	assert.True(t, e.HasID())
	assert.True(t, e.HasName())
}

//nolint:funlen
func Test_Builder_FieldCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() event.Event
		validate func(t *testing.T, e event.Event)
	}{
		{
			name: "no_setters_yields_unset_fields",
			build: func() event.Event {
				return event.BuildEvent().Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.False(t, e.HasID())
				assert.False(t, e.HasName())
				assert.Equal(t, int64(0), e.ID())
				assert.Equal(t, "", e.Name())
				assert.True(t, e.Equal(event.Event{}))
			},
		},
		{
			name: "zero_value_builder_is_usable",
			build: func() event.Event {
				var b event.Builder
				return b.WithName("zero").Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.False(t, e.HasID())
				assert.Equal(t, "zero", e.Name())
			},
		},
		{
			name: "id_only",
			build: func() event.Event {
				return event.BuildEvent().WithID(7).Build()
			},
			validate: func(t *testing.T, e event.Event) {
				id, ok := e.GetID()
				assert.True(t, ok)
				assert.Equal(t, int64(7), id)

				_, ok = e.GetName()
				assert.False(t, ok)
			},
		},
		{
			name: "name_only",
			build: func() event.Event {
				return event.BuildEvent().WithName("A").Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.False(t, e.HasID())
				name, ok := e.GetName()
				assert.True(t, ok)
				assert.Equal(t, "A", name)
			},
		},
		{
			name: "zero_values_are_set_not_unset",
			build: func() event.Event {
				return event.BuildEvent().WithID(0).WithName("").Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.True(t, e.HasID())
				assert.True(t, e.HasName())
				assert.False(t, e.Equal(event.Event{}))
			},
		},
		{
			name: "negative_and_extreme_ids_are_accepted",
			build: func() event.Event {
				return event.BuildEvent().WithID(-9223372036854775808).Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.Equal(t, int64(-9223372036854775808), e.ID())
			},
		},
		{
			name: "last_write_wins",
			build: func() event.Event {
				return event.BuildEvent().
					WithID(1).
					WithName("first").
					WithID(2).
					WithName("second").
					Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.Equal(t, int64(2), e.ID())
				assert.Equal(t, "second", e.Name())
			},
		},
		{
			name: "without_resets_to_unset",
			build: func() event.Event {
				return event.BuildEvent().
					WithID(1).
					WithName("gone").
					WithoutID().
					WithoutName().
					Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.False(t, e.HasID())
				assert.False(t, e.HasName())
				assert.True(t, e.Equal(event.BuildEvent().Build()))
			},
		},
		{
			name: "from_copies_existing_event",
			build: func() event.Event {
				source := event.BuildEvent().WithID(5).Build()
				return event.BuildEvent().WithName("discarded").From(source).Build()
			},
			validate: func(t *testing.T, e event.Event) {
				assert.Equal(t, int64(5), e.ID())
				assert.False(t, e.HasName())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func Test_Builder_SettersCommute(t *testing.T) {
	a := event.BuildEvent().WithName("A").WithID(1).Build()
	b := event.BuildEvent().WithID(1).WithName("A").Build()

	assert.True(t, a.Equal(b))
	assert.Equal(t, a, b)
}

func Test_Builder_SeparateStatementsEqualChaining(t *testing.T) {
	b := event.BuildEvent()
	b = b.WithID(1)
	b = b.WithName("A")

	assert.Equal(t, event.BuildEvent().WithID(1).WithName("A").Build(), b.Build())
}

func Test_Builder_BuildIsRepeatable(t *testing.T) {
	b := event.BuildEvent().WithID(122).WithName("Suman")

	first := b.Build()
	second := b.Build()

	assert.True(t, first.Equal(second))

	third := b.WithName("Other").Build()
	assert.Equal(t, "Suman", first.Name(), "earlier snapshots must not change")
	assert.Equal(t, "Other", third.Name())
	assert.Equal(t, "Suman", b.Build().Name(), "forking must not change the original builder")
}

func Test_Builder_BuildComplete(t *testing.T) {
	tests := []struct {
		name        string
		builder     event.Builder
		expectedErr []error
		notErr      []error
	}{
		{
			name:        "missing both",
			builder:     event.BuildEvent(),
			expectedErr: []error{event.ErrMissingID, event.ErrMissingName},
		},
		{
			name:        "missing id",
			builder:     event.BuildEvent().WithName("Suman"),
			expectedErr: []error{event.ErrMissingID},
			notErr:      []error{event.ErrMissingName},
		},
		{
			name:        "missing name",
			builder:     event.BuildEvent().WithID(122),
			expectedErr: []error{event.ErrMissingName},
			notErr:      []error{event.ErrMissingID},
		},
		{
			name:        "missing name after reset",
			builder:     event.BuildEvent().WithID(122).WithName("Suman").WithoutName(),
			expectedErr: []error{event.ErrMissingName},
			notErr:      []error{event.ErrMissingID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.builder.BuildComplete()

			for _, expected := range tt.expectedErr {
				assert.ErrorIs(t, err, expected)
			}

			for _, unexpected := range tt.notErr {
				assert.NotErrorIs(t, err, unexpected)
			}

			assert.Equal(t, event.Event{}, e)
		})
	}
}

func Test_Builder_BuildComplete_Success(t *testing.T) {
	b := event.BuildEvent().WithID(0).WithName("")

	e, err := b.BuildComplete()
	assert.NoError(t, err)
	assert.Equal(t, b.Build(), e)
}
