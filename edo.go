package tuning

import "gopkg.in/yaml.v3"

// Edo is an equal division of the octave: Cardinality steps of
// 1200/cardinality cents each, the tuning family of ordinary 12-tone equal
// temperament and its microtonal relatives.
type Edo struct {
	cardinality int
	reference   Hz
}

// NewEdo returns an equal division of the octave with the given number of
// steps per octave and reference pitch. The cardinality must be positive;
// constructing with 0 makes every pitch Inf or NaN rather than failing.
func NewEdo(cardinality int, reference Hz) Edo {
	return Edo{cardinality: cardinality, reference: reference}
}

// NewEdoA440 returns an equal division of the octave with A440 as the
// reference pitch.
func NewEdoA440(cardinality int) Edo {
	return NewEdo(cardinality, A440)
}

// Cardinality returns the number of steps per octave.
func (e Edo) Cardinality() int { return e.cardinality }

func (e Edo) ReferencePitch() Hz { return e.reference }

// Pitch is total; every integer step has a frequency.
func (e Edo) Pitch(step int) (Hz, bool) {
	c := Cents(1200 / float32(e.cardinality) * float32(step))
	return e.reference.Add(c), true
}

// Interval overrides the two-lookup default with the exact step count
// formula, so that whole-octave spans come out as exactly 1200 cents.
func (e Edo) Interval(from, to int) (Cents, bool) {
	return Cents(1200 / float32(e.cardinality) * float32(to-from)), true
}

type edoParams struct {
	Cardinality int
	Reference   Hz
}

func (e Edo) MarshalYAML() (interface{}, error) {
	return edoParams{Cardinality: e.cardinality, Reference: e.reference}, nil
}

func (e *Edo) UnmarshalYAML(value *yaml.Node) error {
	var params edoParams
	if err := value.Decode(&params); err != nil {
		return err
	}
	*e = NewEdo(params.Cardinality, params.Reference)
	return nil
}
