package tuning

import "github.com/chewxy/math32"

// Cents is a logarithmic musical interval. A 12-EDO semitone is 100 cents and
// an octave (a 2:1 frequency ratio) is 1200 cents. Cents add and subtract
// with the ordinary operators; only the conversions to and from linear
// frequency ratios need methods.
type Cents float32

// Octave is the 2:1 interval.
const Octave Cents = 1200

// CentsFromRatio converts a linear frequency ratio to an interval:
// 1200 * log2(ratio). The ratio must be positive.
func CentsFromRatio(ratio float32) Cents {
	return Cents(1200 * math32.Log2(ratio))
}

// Ratio converts the interval to a linear frequency ratio: 2^(cents/1200).
func (c Cents) Ratio() float32 {
	return math32.Exp2(float32(c) / 1200)
}
