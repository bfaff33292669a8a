package tuning

import "github.com/chewxy/math32"

// Hz is a frequency in Hertz, the unit of concrete, playable pitches. It is
// semantically non-negative in valid use, though nothing enforces that.
type Hz float32

// A440 is the standard concert pitch, the default reference of the
// convenience constructors.
const A440 Hz = 440

// Add transposes the frequency up by an interval, multiplying it by the
// interval's frequency ratio.
func (f Hz) Add(c Cents) Hz {
	return f * Hz(math32.Exp2(float32(c)/1200))
}

// Sub transposes the frequency down by an interval.
func (f Hz) Sub(c Cents) Hz {
	return f * Hz(math32.Exp2(-float32(c)/1200))
}

// Div returns the interval between two frequencies, so that for any a and b,
// b.Add(a.Div(b)) == a up to rounding. a.Div(b) equals
// CentsFromRatio(float32(a) / float32(b)).
func (f Hz) Div(g Hz) Cents {
	return CentsFromRatio(float32(f) / float32(g))
}
