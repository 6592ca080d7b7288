// SPDX-License-Identifier: MIT
package markov_test

import (
	"testing"

	"github.com/katalvlaran/metapop/markov"
	"github.com/stretchr/testify/require"
)

func referenceParams(t *testing.T) markov.Params {
	t.Helper()
	p, err := markov.NewParams(0.13, 0.03, 0.02)
	require.NoError(t, err)

	return p
}

func TestNewChain_Defaults(t *testing.T) {
	t.Parallel()

	c, err := markov.NewChain(referenceParams(t))
	require.NoError(t, err)
	require.Equal(t, markov.DefaultTolerance, c.Tolerance())
	require.Equal(t, markov.MethodIterate, c.Method())
	require.Equal(t, referenceParams(t), c.Params())

	// Matrix returns a copy.
	m := c.Matrix()
	require.NoError(t, m.Set(0, 0, 0))
	again := c.Matrix()
	v, err := again.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.87*0.97, v, 1e-15)
}

func TestNewChain_InvalidInputs(t *testing.T) {
	t.Parallel()

	_, err := markov.NewChain(markov.Params{SmallExtinction: 2})
	require.ErrorIs(t, err, markov.ErrInvalidParameter)

	_, err = markov.NewChain(referenceParams(t), markov.WithTolerance(-1e-9))
	require.ErrorIs(t, err, markov.ErrInvalidParameter)

	_, err = markov.NewChain(referenceParams(t), markov.WithMethod("eigen"))
	require.ErrorIs(t, err, markov.ErrInvalidParameter)
}

// TestChain_MethodsAgree: both propagation methods yield the same distribution.
func TestChain_MethodsAgree(t *testing.T) {
	t.Parallel()

	iter, err := markov.NewChain(referenceParams(t), markov.WithMethod(markov.MethodIterate))
	require.NoError(t, err)
	sq, err := markov.NewChain(referenceParams(t), markov.WithMethod(markov.MethodSquaring))
	require.NoError(t, err)

	for _, years := range []int{0, 1, 2, 10, 50, 333} {
		a, err := iter.Distribution(years)
		require.NoError(t, err)
		b, err := sq.Distribution(years)
		require.NoError(t, err)
		for _, s := range markov.States {
			require.InDeltaf(t, a.At(s), b.At(s), 1e-9, "years=%d state=%s", years, s)
		}
	}
}

func TestChain_DistributionFrom(t *testing.T) {
	t.Parallel()

	c, err := markov.NewChain(referenceParams(t))
	require.NoError(t, err)

	_, err = c.DistributionFrom(markov.Distribution{0.5, 0.5, 0.5, 0}, 3)
	require.ErrorIs(t, err, markov.ErrInvalidParameter)
	_, err = c.DistributionFrom(markov.Distribution{1.5, -0.5, 0, 0}, 3)
	require.ErrorIs(t, err, markov.ErrInvalidParameter)
	_, err = c.Distribution(-1)
	require.ErrorIs(t, err, markov.ErrInvalidParameter)

	mixed := markov.Distribution{0.25, 0.25, 0.25, 0.25}
	got, err := c.DistributionFrom(mixed, 0)
	require.NoError(t, err)
	require.Equal(t, mixed, got)
}

func TestChain_ExtinctionCurve(t *testing.T) {
	t.Parallel()

	c, err := markov.NewChain(referenceParams(t))
	require.NoError(t, err)

	curve, err := c.ExtinctionCurve(50)
	require.NoError(t, err)
	require.Len(t, curve, 51)
	require.Equal(t, 0.0, curve[0])

	final, err := c.Distribution(50)
	require.NoError(t, err)
	require.Equal(t, final.Extinct(), curve[50])

	_, err = c.ExtinctionCurve(-1)
	require.ErrorIs(t, err, markov.ErrInvalidParameter)
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	m, err := markov.ParseMethod(" Squaring ")
	require.NoError(t, err)
	require.Equal(t, markov.MethodSquaring, m)

	_, err = markov.ParseMethod("monte-carlo")
	require.ErrorIs(t, err, markov.ErrInvalidParameter)
}
