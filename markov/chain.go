// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/metapop/matrix"
)

const opNewChain = "NewChain"

// Chain is a validated transition matrix together with the settings used to
// evolve it. A Chain is immutable after NewChain and safe for concurrent reads.
type Chain struct {
	params Params
	p      *matrix.Dense
	opts   Options
}

// NewChain builds the transition matrix for params and validates it once,
// before any propagation can happen.
//
// Errors:
//   - ErrInvalidParameter (params or options), ErrStochasticityViolation.
func NewChain(params Params, opts ...Option) (*Chain, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewChain, err)
	}

	p, err := Build(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewChain, err)
	}
	if err = ValidateStochastic(p, o.tolerance); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewChain, err)
	}

	return &Chain{params: params, p: p, opts: o}, nil
}

// Params returns the parameters the chain was built from.
func (c *Chain) Params() Params { return c.params }

// Tolerance returns the row-sum tolerance used at construction.
func (c *Chain) Tolerance() float64 { return c.opts.tolerance }

// Method returns the propagation method.
func (c *Chain) Method() Method { return c.opts.method }

// Matrix returns a copy of the transition matrix.
func (c *Chain) Matrix() *matrix.Dense {
	return c.p.Clone().(*matrix.Dense)
}

// Distribution returns the state distribution after years, starting from
// full occupancy (Both).
func (c *Chain) Distribution(years int) (Distribution, error) {
	return c.DistributionFrom(Certain(Both), years)
}

// DistributionFrom returns the distribution after years starting from init.
// init must be non-negative and sum to 1 within the chain tolerance.
func (c *Chain) DistributionFrom(init Distribution, years int) (Distribution, error) {
	if err := init.Validate(c.opts.tolerance); err != nil {
		return Distribution{}, err
	}
	if c.opts.method == MethodSquaring {
		return PropagateSquaring(c.p, init, years)
	}

	return Propagate(c.p, init, years)
}

// ExtinctionCurve returns P(None) for every year 0..years, starting from Both.
// The curve is non-decreasing because None is absorbing.
func (c *Chain) ExtinctionCurve(years int) ([]float64, error) {
	traj, err := Trajectory(c.p, Certain(Both), years)
	if err != nil {
		return nil, err
	}
	curve := make([]float64, len(traj))
	for i, d := range traj {
		curve[i] = d.Extinct()
	}

	return curve, nil
}
