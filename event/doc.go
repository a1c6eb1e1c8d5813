// Package event provides an immutable Event value and the fluent Builder that constructs it.
//
// An Event carries two optional fields, an ID and a Name. Both may be unset, and an unset
// field is distinguishable from a field that was set to its zero value.
//
// Events can only be populated via the Builder (or by decoding JSON/YAML, which uses the
// Builder internally). The Builder has value semantics: every With* call returns an updated
// copy, so a Builder can be forked and reused, and Build() never invalidates it.
//
// Common usage pattern:
//
//	e := event.BuildEvent().
//		WithID(122).
//		WithName("Suman").
//		Build()
//
//	fmt.Println(e.Name()) // Suman
//
//	// fail when a field was never set
//	e, err := event.BuildEvent().WithName("Suman").BuildComplete()
//	if errors.Is(err, event.ErrMissingID) {
//		// handle error
//	}
package event
