// Package tuning computes pitches for arbitrary tuning systems: equal
// divisions of the octave (Edo), equal steps of any size (EqualSteps),
// repeating patterns of unequal steps (Cyclic), and flattened pitch tables
// indexed by MIDI note number (Midi), which is what a synth should actually
// use in its note-on handler.
//
// All types are immutable value types: a tuning is constructed once from its
// parameters and only queried after that, so concurrent readers need no
// coordination.
package tuning

type (
	// Tuning is a tuning system: anything that can resolve an integer step
	// index to a frequency. A step is an index into the tuning's scale, not
	// necessarily a semitone. Step 0 always resolves to the reference pitch:
	// t.Pitch(0) returns (t.ReferencePitch(), true) for every implementation.
	Tuning interface {
		// ReferencePitch returns the frequency of step 0.
		ReferencePitch() Hz

		// Pitch returns the frequency of a step, with ok == false if the
		// tuning has no pitch for that step. Only Midi is partial; the other
		// implementations are total over all integers, negative steps
		// included.
		Pitch(step int) (hz Hz, ok bool)

		// Interval returns the interval from one step to another, with
		// ok == false if either step has no pitch.
		Interval(from, to int) (cents Cents, ok bool)
	}
)

// defaultInterval computes the interval between two steps from two pitch
// lookups. Implementations without a cheaper exact formula (see Edo.Interval
// for one that has) just delegate to it.
func defaultInterval(t Tuning, from, to int) (Cents, bool) {
	f, ok := t.Pitch(from)
	if !ok {
		return 0, false
	}
	g, ok := t.Pitch(to)
	if !ok {
		return 0, false
	}
	return g.Div(f), true
}
