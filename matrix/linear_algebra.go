// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the chain:
// matrix product, matrix-vector and vector-matrix products, and integer
// powers. All functions perform fail-fast validation and return clear
// errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.
//   - *Dense operands take a flat-slice fast path; other implementations go
//     through At/Set with the same loop order.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul    = "Mul"
	opMatVec = "MatVec"
	opVecMul = "VecMul"
	opPow    = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast-path if both are *Dense (i→k→j over flat slices);
//     otherwise a generic i→j→k loop through At/Set.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero A[i,k] entries are skipped.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMul computes the row-vector product y = x · m, i.e. y[j] = Σ_i x[i]·m[i,j].
// This is the natural update for row-stochastic chains where x is a
// distribution over states and m holds P(i → j).
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows(). x is never mutated.
// Determinism: fixed i→j order; for each j the terms are summed in ascending i.
// Complexity: Time O(r*c), Space O(c) for y.
func VecMul(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var i, j int
	var xi float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < d.r; i++ {
			xi = x[i]
			if xi == 0 {
				continue // no mass in state i
			}
			base = i * d.c
			for j = 0; j < d.c; j++ {
				y[j] += xi * d.data[base+j]
			}
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		xi = x[i]
		if xi == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opVecMul, err)
			}
			y[j] += xi * mv
		}
	}

	return y, nil
}

// Pow returns mᵏ for a square m using binary exponentiation.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); reject k < 0.
//   - Stage 2: result := I; base := m; walk the bits of k from the lowest,
//     multiplying result by base on set bits and squaring base in between.
//
// Behavior highlights:
//   - k == 0 yields the identity; k == 1 yields a copy of m.
//   - m is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNegativeExponent.
//
// Complexity:
//   - Time O(n³ log k), Space O(n²).
func Pow(m Matrix, k int) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}

	var (
		result Matrix
		base   = m.Clone()
		err    error
	)
	result, err = NewIdentity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}
