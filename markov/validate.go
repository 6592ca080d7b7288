// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metapop/matrix"
)

const opValidate = "ValidateStochastic"

// DefaultTolerance is the absolute row-sum tolerance of ValidateStochastic.
const DefaultTolerance = 1e-9

// ValidateStochastic asserts that m is a square row-stochastic matrix:
// no entry is negative and every row sums to 1 within tol.
//
// The first offending row is reported as a *StochasticityError, which
// matches ErrStochasticityViolation. Pure assertion; m is never mutated.
//
// Errors:
//   - ErrInvalidParameter (bad tol), matrix.ErrNilMatrix /
//     matrix.ErrDimensionMismatch (structural), ErrStochasticityViolation.
//
// Complexity: O(n^2).
func ValidateStochastic(m matrix.Matrix, tol float64) error {
	if err := ValidateTolerance(tol); err != nil {
		return fmt.Errorf("%s: %w", opValidate, err)
	}
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return fmt.Errorf("%s: %w", opValidate, err)
	}

	sums, err := matrix.RowSums(m)
	if err != nil {
		return fmt.Errorf("%s: %w", opValidate, err)
	}

	var v float64
	for i, sum := range sums {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("%s: %w", opValidate, err)
			}
			if v < 0 {
				return &StochasticityError{Row: i, Sum: sum, Tolerance: tol, Col: j, Value: v}
			}
		}
		// NaN sums fail this comparison as well.
		if !(math.Abs(sum-1) <= tol) {
			return &StochasticityError{Row: i, Sum: sum, Tolerance: tol, Col: -1}
		}
	}

	return nil
}
