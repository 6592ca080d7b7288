// SPDX-License-Identifier: MIT
// Package markov: sentinel errors and the typed errors that carry context.
// Callers match kinds with errors.Is and pull details with errors.As.

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when e_s, e_l or r fall outside [0,1]
	// (or are not finite), when the step count is negative, or when an
	// initial distribution or tolerance is malformed. Detected before any
	// matrix is built.
	ErrInvalidParameter = errors.New("markov: invalid parameter")

	// ErrStochasticityViolation is returned when a transition-matrix row is
	// not a probability distribution within tolerance. It signals a defect in
	// matrix construction; the chain is never propagated in that state.
	ErrStochasticityViolation = errors.New("markov: stochasticity violation")
)

// ParameterError names the offending input of an ErrInvalidParameter failure.
type ParameterError struct {
	Name   string  // parameter name, e.g. "e_s" or "steps"
	Value  float64 // offending value
	Reason string  // constraint that was violated
}

// Error implements error.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("markov: invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidParameter) hold.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// StochasticityError reports the first row that failed the stochasticity check.
// Col is -1 when the row sum is off; otherwise it is the column of a
// negative entry and Value holds that entry.
type StochasticityError struct {
	Row       int
	Sum       float64
	Tolerance float64
	Col       int
	Value     float64
}

// Error implements error.
func (e *StochasticityError) Error() string {
	if e.Col >= 0 {
		return fmt.Sprintf("markov: row %d has negative entry %g at column %d (sum %.17g)",
			e.Row, e.Value, e.Col, e.Sum)
	}

	return fmt.Sprintf("markov: row %d sums to %.17g, want 1 within %g", e.Row, e.Sum, e.Tolerance)
}

// Unwrap makes errors.Is(err, ErrStochasticityViolation) hold.
func (e *StochasticityError) Unwrap() error { return ErrStochasticityViolation }
