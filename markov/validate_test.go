// SPDX-License-Identifier: MIT
package markov_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/metapop/markov"
	"github.com/katalvlaran/metapop/matrix"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(markov.NumStates, markov.NumStates, vals)
	require.NoError(t, err)

	return m
}

func TestValidateStochastic(t *testing.T) {
	t.Parallel()

	good := dense(t,
		0.5, 0.5, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	require.NoError(t, markov.ValidateStochastic(good, markov.DefaultTolerance))

	badSum := dense(t,
		0.5, 0.5, 0, 0,
		0, 1, 0, 0,
		0, 0, 0.9, 0,
		0, 0, 0, 1,
	)
	err := markov.ValidateStochastic(badSum, markov.DefaultTolerance)
	require.ErrorIs(t, err, markov.ErrStochasticityViolation)
	var se *markov.StochasticityError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 2, se.Row)
	require.Equal(t, -1, se.Col)
	require.InDelta(t, 0.9, se.Sum, 1e-15)
	require.Contains(t, err.Error(), "row 2")

	negative := dense(t,
		1.5, -0.5, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	err = markov.ValidateStochastic(negative, markov.DefaultTolerance)
	require.ErrorIs(t, err, markov.ErrStochasticityViolation)
	require.True(t, errors.As(err, &se))
	require.Equal(t, 0, se.Row)
	require.Equal(t, 1, se.Col)
	require.Equal(t, -0.5, se.Value)
}

// TestValidateStochastic_Tolerance: the tolerance is configurable.
func TestValidateStochastic_Tolerance(t *testing.T) {
	t.Parallel()

	off := dense(t,
		1+1e-7, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	require.ErrorIs(t, markov.ValidateStochastic(off, markov.DefaultTolerance), markov.ErrStochasticityViolation)
	require.NoError(t, markov.ValidateStochastic(off, 1e-6))

	require.ErrorIs(t, markov.ValidateStochastic(off, -1), markov.ErrInvalidParameter)
	require.ErrorIs(t, markov.ValidateStochastic(off, math.NaN()), markov.ErrInvalidParameter)
}

func TestValidateStochastic_Structural(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, markov.ValidateStochastic(nil, markov.DefaultTolerance), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, markov.ValidateStochastic(rect, markov.DefaultTolerance), matrix.ErrDimensionMismatch)
}
