package tuning

import (
	"fmt"

	"github.com/viterin/vek/vek32"
	"gopkg.in/yaml.v3"
)

// MidiNotes is the number of notes in a Midi table. The table covers notes
// 0-126; note 127 is never populated.
const MidiNotes = 127

// defaultRefKey is the MIDI note carrying the reference pitch of the default
// table, the A above middle C.
const defaultRefKey = 69

// Midi maps MIDI note numbers to pitches. It materializes any Tuning into a
// flat table of 127 ready frequencies; this is what a synth should actually
// index in its note-on handler. The zero value is not usable, build one with
// MidiFromTuning, MidiFromPitches or DefaultMidi.
type Midi struct {
	pitches []float32
}

// MidiFromTuning samples a tuning into a Midi table so that refKey, which
// must be in 0..126, is the note sounding the tuning's reference pitch. If
// the source tuning has no pitch for any of the 127 sampled steps the whole
// construction fails; no partial table is ever produced.
func MidiFromTuning(t Tuning, refKey int) (Midi, bool) {
	pitches := make([]float32, MidiNotes)
	for i := range pitches {
		hz, ok := t.Pitch(i - refKey)
		if !ok {
			return Midi{}, false
		}
		pitches[i] = float32(hz)
	}
	return Midi{pitches: pitches}, true
}

// MidiFromPitches builds a Midi table from precomputed frequencies, taking
// the first 127 verbatim and failing if fewer are supplied.
func MidiFromPitches(pitches []Hz) (Midi, bool) {
	if len(pitches) < MidiNotes {
		return Midi{}, false
	}
	p := make([]float32, MidiNotes)
	for i := range p {
		p[i] = float32(pitches[i])
	}
	return Midi{pitches: p}, true
}

// DefaultMidi returns the standard table: 12-EDO with A440 at MIDI note 69.
func DefaultMidi() Midi {
	pitches := make([]float32, MidiNotes)
	for i := range pitches {
		pitches[i] = float32(A440.Add(Cents(i-defaultRefKey) * 100))
	}
	return Midi{pitches: pitches}
}

// ReferencePitch returns the pitch of note 0: the table is its own step
// space, so note 0 is its reference.
func (m Midi) ReferencePitch() Hz { return Hz(m.pitches[0]) }

// Pitch is partial in both directions: negative steps and steps above 126
// have no pitch.
func (m Midi) Pitch(step int) (Hz, bool) {
	if step < 0 || step >= len(m.pitches) {
		return 0, false
	}
	return Hz(m.pitches[step]), true
}

func (m Midi) Interval(from, to int) (Cents, bool) {
	return defaultInterval(m, from, to)
}

// At returns the pitch of a note without bounds checking, for callers that
// already know the note is in 0..126 and want the bare lookup on the note-on
// path.
func (m Midi) At(note int) Hz { return Hz(m.pitches[note]) }

// Transposed returns a copy of the table with every pitch transposed by the
// given interval; in synth terms, a master tune control.
func (m Midi) Transposed(offset Cents) Midi {
	return Midi{pitches: vek32.MulNumber(m.pitches, offset.Ratio())}
}

// Pitches returns a copy of the table.
func (m Midi) Pitches() []Hz {
	pitches := make([]Hz, len(m.pitches))
	for i, p := range m.pitches {
		pitches[i] = Hz(p)
	}
	return pitches
}

// Copy makes a deep copy of the table.
func (m Midi) Copy() Midi {
	pitches := make([]float32, len(m.pitches))
	copy(pitches, m.pitches)
	return Midi{pitches: pitches}
}

type midiParams struct {
	Pitches []float32 `yaml:",flow"`
}

func (m Midi) MarshalYAML() (interface{}, error) {
	return midiParams{Pitches: m.pitches}, nil
}

func (m *Midi) UnmarshalYAML(value *yaml.Node) error {
	var params midiParams
	if err := value.Decode(&params); err != nil {
		return fmt.Errorf("Midi.UnmarshalYAML: %v", err)
	}
	if len(params.Pitches) < MidiNotes {
		return fmt.Errorf("Midi.UnmarshalYAML: expected %v pitches, got %v", MidiNotes, len(params.Pitches))
	}
	m.pitches = params.Pitches[:MidiNotes]
	return nil
}
