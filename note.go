package tuning

import "fmt"

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the conventional spelling of a MIDI note number, e.g.
// "A4" for note 69 and "C-1" for note 0.
func NoteName(note int) string {
	n := mod(note, 12)
	octave := (note-n)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[n], octave)
}

// mod is the positive remainder, so negative notes still resolve to a pitch
// class.
func mod(a, b int) int {
	if a < 0 {
		return b - 1 - mod(-a-1, b)
	}
	return a % b
}
