package tuning

import "gopkg.in/yaml.v3"

// EqualSteps is a tuning of equal steps of arbitrary size. It generalizes
// Edo: the step need not divide the octave, or any other interval, evenly,
// so non-octave scales like Bohlen-Pierce or Wendy Carlos' alpha fit here.
type EqualSteps struct {
	step      Cents
	reference Hz
}

// NewEqualSteps returns a tuning whose steps are all the given size.
func NewEqualSteps(step Cents, reference Hz) EqualSteps {
	return EqualSteps{step: step, reference: reference}
}

// NewEqualStepsA440 returns an equal step tuning with A440 as the reference
// pitch.
func NewEqualStepsA440(step Cents) EqualSteps {
	return NewEqualSteps(step, A440)
}

// StepSize returns the size of one step.
func (e EqualSteps) StepSize() Cents { return e.step }

func (e EqualSteps) ReferencePitch() Hz { return e.reference }

// Pitch is total; every integer step has a frequency.
func (e EqualSteps) Pitch(step int) (Hz, bool) {
	return e.reference.Add(e.step * Cents(step)), true
}

func (e EqualSteps) Interval(from, to int) (Cents, bool) {
	return defaultInterval(e, from, to)
}

type equalStepsParams struct {
	Step      Cents
	Reference Hz
}

func (e EqualSteps) MarshalYAML() (interface{}, error) {
	return equalStepsParams{Step: e.step, Reference: e.reference}, nil
}

func (e *EqualSteps) UnmarshalYAML(value *yaml.Node) error {
	var params equalStepsParams
	if err := value.Decode(&params); err != nil {
		return err
	}
	*e = NewEqualSteps(params.Step, params.Reference)
	return nil
}
