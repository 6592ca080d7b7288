// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/metapop/matrix"
)

const (
	opPropagate  = "Propagate"
	opSquaring   = "PropagateSquaring"
	opTrajectory = "Trajectory"
)

// validateTransition checks the structural contract shared by propagators:
// non-nil, square, NumStates×NumStates.
func validateTransition(m matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return err
	}
	if m.Rows() != NumStates {
		return fmt.Errorf("transition is %dx%d, want %dx%d: %w",
			m.Rows(), m.Cols(), NumStates, NumStates, matrix.ErrDimensionMismatch)
	}

	return nil
}

// Propagate applies steps one-year transitions to init:
// state_{k+1} = state_k · P. steps == 0 returns init unchanged.
//
// The caller owns validation of m (see ValidateStochastic) and of init;
// Propagate checks only shape and step count.
//
// Complexity: O(steps · n²).
func Propagate(m matrix.Matrix, init Distribution, steps int) (Distribution, error) {
	if err := validateSteps(steps); err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opPropagate, err)
	}
	if err := validateTransition(m); err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opPropagate, err)
	}

	state := init.Slice()
	var err error
	for year := 0; year < steps; year++ {
		if state, err = matrix.VecMul(state, m); err != nil {
			return Distribution{}, fmt.Errorf("%s: year %d: %w", opPropagate, year, err)
		}
	}

	return distributionFromSlice(state)
}

// PropagateSquaring computes init · P^steps with P^steps obtained by
// repeated squaring. The result agrees with Propagate up to rounding order.
//
// Complexity: O(n³ log steps).
func PropagateSquaring(m matrix.Matrix, init Distribution, steps int) (Distribution, error) {
	if err := validateSteps(steps); err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opSquaring, err)
	}
	if err := validateTransition(m); err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opSquaring, err)
	}
	if steps == 0 {
		return init, nil
	}

	pk, err := matrix.Pow(m, steps)
	if err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opSquaring, err)
	}
	out, err := matrix.VecMul(init.Slice(), pk)
	if err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opSquaring, err)
	}

	return distributionFromSlice(out)
}

// Trajectory returns the distributions for years 0..steps inclusive;
// element 0 is init. Same arithmetic as Propagate.
//
// Complexity: O(steps · n²) time, O(steps) space.
func Trajectory(m matrix.Matrix, init Distribution, steps int) ([]Distribution, error) {
	if err := validateSteps(steps); err != nil {
		return nil, fmt.Errorf("%s: %w", opTrajectory, err)
	}
	if err := validateTransition(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opTrajectory, err)
	}

	out := make([]Distribution, 0, steps+1)
	out = append(out, init)
	state := init.Slice()
	var err error
	for year := 0; year < steps; year++ {
		if state, err = matrix.VecMul(state, m); err != nil {
			return nil, fmt.Errorf("%s: year %d: %w", opTrajectory, year, err)
		}
		var d Distribution
		copy(d[:], state)
		out = append(out, d)
	}

	return out, nil
}
