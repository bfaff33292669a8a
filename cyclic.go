package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Cyclic is a tuning whose pattern of unequal steps repeats indefinitely,
// transposed by a fixed period on every lap; a spiral rather than a circle.
// The steps hold the cumulative interval from the cycle start to each step:
// the implicit 0 cents of step 0 is not stored, and the final entry is the
// period, the interval by which the whole pattern repeats. For example, a
// 3-limit fifth-octave cycle is NewCyclicRatios([]float32{1.5, 2}, ref).
type Cyclic struct {
	steps     []Cents
	reference Hz
}

// NewCyclic returns a cyclic tuning with the given cumulative step intervals
// and reference pitch. The slice is copied. An empty step list is a
// degenerate but valid tuning in which every step sounds the reference pitch.
func NewCyclic(steps []Cents, reference Hz) Cyclic {
	s := make([]Cents, len(steps))
	copy(s, steps)
	return Cyclic{steps: s, reference: reference}
}

// NewCyclicRatios is NewCyclic with the steps given as linear frequency
// ratios instead of cents.
func NewCyclicRatios(ratios []float32, reference Hz) Cyclic {
	steps := make([]Cents, len(ratios))
	for i, r := range ratios {
		steps[i] = CentsFromRatio(r)
	}
	return Cyclic{steps: steps, reference: reference}
}

// Len returns the number of steps in one cycle.
func (c Cyclic) Len() int { return len(c.steps) }

// Period returns the interval by which the pattern repeats, 0 for the
// degenerate empty cycle.
func (c Cyclic) Period() Cents {
	if len(c.steps) == 0 {
		return 0
	}
	return c.steps[len(c.steps)-1]
}

// Steps returns a copy of the cumulative step intervals.
func (c Cyclic) Steps() []Cents {
	steps := make([]Cents, len(c.steps))
	copy(steps, c.steps)
	return steps
}

// Copy makes a deep copy of the tuning.
func (c Cyclic) Copy() Cyclic {
	return NewCyclic(c.steps, c.reference)
}

func (c Cyclic) ReferencePitch() Hz { return c.reference }

// Pitch is total; every integer step has a frequency. The quotient of
// step / Len() counts whole laps around the cycle and the remainder picks
// the step within it. Go's integer division truncates toward zero, so for
// negative steps the remainder is negative and counts backward from a cycle
// boundary: the step is indexed from the end of the pattern and lies one
// period below the lap the quotient points at. For every step,
// Pitch(step+Len()) sounds exactly one period above Pitch(step).
func (c Cyclic) Pitch(step int) (Hz, bool) {
	if len(c.steps) == 0 {
		return c.reference, true
	}
	div, rem := step/len(c.steps), step%len(c.steps)
	period := c.steps[len(c.steps)-1]
	laps := period * Cents(div)
	if rem == 0 {
		return c.reference.Add(laps), true
	}
	var intra Cents
	if rem > 0 {
		intra = c.steps[rem-1]
	} else {
		intra = c.steps[len(c.steps)+rem-1] - period
	}
	return c.reference.Add(laps + intra), true
}

func (c Cyclic) Interval(from, to int) (Cents, bool) {
	return defaultInterval(c, from, to)
}

type cyclicParams struct {
	Steps     []Cents `yaml:",flow"`
	Reference Hz
}

func (c Cyclic) MarshalYAML() (interface{}, error) {
	return cyclicParams{Steps: c.Steps(), Reference: c.reference}, nil
}

func (c *Cyclic) UnmarshalYAML(value *yaml.Node) error {
	var params cyclicParams
	if err := value.Decode(&params); err != nil {
		return fmt.Errorf("Cyclic.UnmarshalYAML: %v", err)
	}
	*c = NewCyclic(params.Steps, params.Reference)
	return nil
}
