// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"
)

// Distribution is a probability mass over the four states, indexed by State.
// It is a value type: copies never alias.
type Distribution [NumStates]float64

// Certain returns the distribution that puts all mass on s.
func Certain(s State) Distribution {
	var d Distribution
	if s.Valid() {
		d[s] = 1
	}

	return d
}

// At returns the probability of state s (0 for invalid states).
func (d Distribution) At(s State) float64 {
	if !s.Valid() {
		return 0
	}

	return d[s]
}

// Extinct returns the probability of the absorbing None state.
func (d Distribution) Extinct() float64 { return d[None] }

// Sum returns the total mass.
func (d Distribution) Sum() float64 {
	var s float64
	for _, v := range d {
		s += v
	}

	return s
}

// Slice returns the distribution as a freshly allocated slice.
func (d Distribution) Slice() []float64 {
	out := make([]float64, NumStates)
	copy(out, d[:])

	return out
}

// Validate checks that d is non-negative, finite and sums to 1 within tol.
func (d Distribution) Validate(tol float64) error {
	for _, s := range States {
		v := d[s]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return &ParameterError{Name: fmt.Sprintf("distribution[%s]", s), Value: v, Reason: "must be finite and non-negative"}
		}
	}
	if sum := d.Sum(); !(math.Abs(sum-1) <= tol) {
		return &ParameterError{Name: "distribution sum", Value: sum, Reason: "must equal 1"}
	}

	return nil
}

// String renders the distribution as name=value pairs in state order.
func (d Distribution) String() string {
	return fmt.Sprintf("[%s=%g %s=%g %s=%g %s=%g]",
		Both, d[Both], SmallOnly, d[SmallOnly], LargeOnly, d[LargeOnly], None, d[None])
}

func distributionFromSlice(x []float64) (Distribution, error) {
	var d Distribution
	if len(x) != NumStates {
		return d, &ParameterError{Name: "distribution length", Value: float64(len(x)), Reason: "must equal 4"}
	}
	copy(d[:], x)

	return d, nil
}
