// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Force the At/Set fallback path through the hide wrapper.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/metapop/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so kernels under test take the generic fallback instead of the *Dense path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense filled from vals (row-major) or fails the test.
func MustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	if len(vals) == 0 {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// requireMatrixInDelta compares two matrices element-wise with an absolute delta.
func requireMatrixInDelta(t *testing.T, want, got matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, w, g, delta, "at (%d,%d)", i, j)
		}
	}
}

// chain3 is a small absorbing row-stochastic matrix used across kernel tests.
func chain3(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustDense(t, 3, 3,
		0.5, 0.25, 0.25,
		0.1, 0.8, 0.1,
		0, 0, 1,
	)
}
