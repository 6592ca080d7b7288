// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks (identity, row sums,
//     state relabelling, approximate equality).
//   - Avoid logic duplication: facades compose the canonical kernels.

package matrix

import (
	"fmt"
	"math"
)

const (
	opRowSums  = "RowSums"
	opPermute  = "PermuteSymmetric"
	opAllClose = "AllClose"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
//
// Used by the stochasticity check of Markov transition matrices.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	cols := m.Cols()
	ones := make([]float64, cols)
	for j := 0; j < cols; j++ {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// PermuteSymmetric relabels the indices of a square matrix:
// out[i,j] = m[perm[i], perm[j]]. Rows and columns move together, which is
// how a state relabelling acts on a transition matrix.
//
// perm must be a permutation of 0..n-1; anything else is ErrOutOfRange or
// ErrDimensionMismatch.
// Complexity: O(n^2).
func PermuteSymmetric(m Matrix, perm []int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	n := m.Rows()
	if len(perm) != n {
		return nil, matrixErrorf(opPermute, ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, matrixErrorf(opPermute, fmt.Errorf("perm entry %d: %w", p, ErrOutOfRange))
		}
		seen[p] = true
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(perm[i], perm[j]); err != nil {
				return nil, matrixErrorf(opPermute, err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol for every element.
// Shapes must match. NaN never compares close; a negative atol is
// treated as |atol|.
// Complexity: O(r*c).
func AllClose(a, b Matrix, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	atol = math.Abs(atol)

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
