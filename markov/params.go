// SPDX-License-Identifier: MIT

package markov

import "math"

// Params holds the three per-year event probabilities of the model.
// All three are immutable once built through NewParams.
type Params struct {
	SmallExtinction float64 // e_s: local extinction of the small patch
	LargeExtinction float64 // e_l: local extinction of the large patch
	Recolonization  float64 // r: recolonization of an empty patch from the occupied one
}

// NewParams validates and packs (e_s, e_l, r).
// Boundary values 0 and 1 are valid; no clamping is performed.
func NewParams(smallExtinction, largeExtinction, recolonization float64) (Params, error) {
	p := Params{
		SmallExtinction: smallExtinction,
		LargeExtinction: largeExtinction,
		Recolonization:  recolonization,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// Validate checks that every probability is finite and within [0,1].
// The first offending field is reported as a *ParameterError.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"e_s", p.SmallExtinction},
		{"e_l", p.LargeExtinction},
		{"r", p.Recolonization},
	} {
		if err := validateProbability(f.name, f.v); err != nil {
			return err
		}
	}

	return nil
}

// Swapped returns p with the small and large extinction rates exchanged.
func (p Params) Swapped() Params {
	p.SmallExtinction, p.LargeExtinction = p.LargeExtinction, p.SmallExtinction

	return p
}

func validateProbability(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Name: name, Value: v, Reason: "must be finite"}
	}
	if v < 0 || v > 1 {
		return &ParameterError{Name: name, Value: v, Reason: "must be within [0,1]"}
	}

	return nil
}

func validateSteps(steps int) error {
	if steps < 0 {
		return &ParameterError{Name: "steps", Value: float64(steps), Reason: "must be non-negative"}
	}

	return nil
}

// ValidateTolerance checks that tol is usable as an absolute tolerance.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return &ParameterError{Name: "tolerance", Value: tol, Reason: "must be finite and non-negative"}
	}

	return nil
}
