package tuning_test

import (
	"math"
	"testing"

	"github.com/tunelab/tuning"
	"gopkg.in/yaml.v3"
)

func TestDefaultMidi(t *testing.T) {
	m := tuning.DefaultMidi()
	for _, test := range []struct {
		note int
		want float64
	}{
		{69, 440},
		{81, 880},
		{57, 220},
		{60, 261.6256}, // middle C
	} {
		got, ok := m.Pitch(test.note)
		if !ok {
			t.Fatalf("Pitch(%v) has no pitch", test.note)
		}
		if math.Abs(float64(got)-test.want) > 1e-3*test.want {
			t.Errorf("Pitch(%v) = %v, expected ~%v", test.note, got, test.want)
		}
	}
}

func TestMidiBounds(t *testing.T) {
	m := tuning.DefaultMidi()
	if _, ok := m.Pitch(-1); ok {
		t.Errorf("Pitch(-1) should have no pitch")
	}
	if _, ok := m.Pitch(127); ok {
		t.Errorf("Pitch(127) should have no pitch; the table ends at note 126")
	}
	if _, ok := m.Pitch(126); !ok {
		t.Errorf("Pitch(126) should have a pitch")
	}
}

func TestMidiFromPitches(t *testing.T) {
	if _, ok := tuning.MidiFromPitches(make([]tuning.Hz, 126)); ok {
		t.Errorf("126 pitches should be too few for a table")
	}
	pitches := make([]tuning.Hz, 128)
	for i := range pitches {
		pitches[i] = tuning.Hz(i + 1)
	}
	m, ok := tuning.MidiFromPitches(pitches)
	if !ok {
		t.Fatalf("MidiFromPitches failed with 128 pitches")
	}
	if got := m.At(126); got != 127 {
		t.Errorf("At(126) = %v, expected 127", got)
	}
	if _, ok := m.Pitch(127); ok {
		t.Errorf("the 128th supplied pitch should not make it into the table")
	}
	if got := len(m.Pitches()); got != tuning.MidiNotes {
		t.Errorf("len(Pitches()) = %v, expected %v", got, tuning.MidiNotes)
	}
	if got := m.Copy().At(0); got != 1 {
		t.Errorf("At(0) of a copy = %v, expected 1", got)
	}
}

func TestMidiFromTuning(t *testing.T) {
	fifths := tuning.NewCyclicRatios([]float32{1.5, 2}, 440)
	m, ok := tuning.MidiFromTuning(fifths, 69)
	if !ok {
		t.Fatalf("MidiFromTuning failed")
	}
	for _, test := range []struct {
		note int
		want float64
	}{
		{69, 440},
		{70, 660},
		{71, 880},
		{68, 330},
		{67, 220},
	} {
		if got := m.At(test.note); math.Abs(float64(got)-test.want) > 1e-3*test.want {
			t.Errorf("At(%v) = %v, expected ~%v", test.note, got, test.want)
		}
	}
}

func TestMidiFromTuningPartialSource(t *testing.T) {
	// a Midi table is itself a Tuning, but a partial one: resampling it
	// around a new reference key asks for steps it cannot produce, and no
	// partial table may come out of that
	if _, ok := tuning.MidiFromTuning(tuning.DefaultMidi(), 69); ok {
		t.Errorf("construction from a partial source should fail")
	}
	// with the reference at note 0 every sampled step exists
	m, ok := tuning.MidiFromTuning(tuning.DefaultMidi(), 0)
	if !ok {
		t.Fatalf("MidiFromTuning failed with refKey 0")
	}
	if got, want := m.At(69), tuning.DefaultMidi().At(69); got != want {
		t.Errorf("At(69) = %v, expected %v", got, want)
	}
}

func TestMidiTransposed(t *testing.T) {
	m := tuning.DefaultMidi().Transposed(tuning.Octave)
	got := m.At(57)
	if want := 440.0; math.Abs(float64(got)-want) > 1e-3*want {
		t.Errorf("At(57) after transposing up an octave = %v, expected ~%v", got, want)
	}
}

func TestMidiInterval(t *testing.T) {
	m := tuning.DefaultMidi()
	got, ok := m.Interval(69, 81)
	if !ok {
		t.Fatalf("Interval(69, 81) has no value")
	}
	if math.Abs(float64(got-1200)) > 0.5 {
		t.Errorf("Interval(69, 81) = %v, expected ~1200", got)
	}
	if _, ok := m.Interval(69, 127); ok {
		t.Errorf("Interval(69, 127) should have no value")
	}
	if _, ok := m.Interval(-1, 69); ok {
		t.Errorf("Interval(-1, 69) should have no value")
	}
}

func TestMidiYAML(t *testing.T) {
	m := tuning.DefaultMidi()
	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var got tuning.Midi
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for note := 0; note < tuning.MidiNotes; note++ {
		if got.At(note) != m.At(note) {
			t.Fatalf("At(%v) = %v after round trip, expected %v", note, got.At(note), m.At(note))
		}
	}
	var short tuning.Midi
	if err := yaml.Unmarshal([]byte("pitches: [440]"), &short); err == nil {
		t.Errorf("unmarshalling a single pitch should fail")
	}
}
