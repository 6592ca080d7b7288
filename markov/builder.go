// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/metapop/matrix"
)

const opBuild = "Build"

// Build derives the 4×4 row-stochastic transition matrix from p.
// Entry (i,j) is the one-year probability of moving from state i to state j.
//
// Implementation:
//   - Stage 1: validate p (ErrInvalidParameter; nothing is allocated on failure).
//   - Stage 2: fill each row from independent per-year events:
//     both patches face extinction independently from Both; from a
//     single-patch state, recolonization of the empty patch (r) and
//     extinction of the occupied one are independent, and a successful
//     recolonization establishes the other patch even if the source dies
//     the same year.
//   - Stage 3: None is the identity row.
//
// Behavior highlights:
//   - Boundary values produce degenerate but well-formed rows.
//   - Pure: no side effects, identical inputs give bit-identical matrices.
//
// Complexity:
//   - Time O(1), Space O(1) (fixed 4×4).
func Build(p Params) (*matrix.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	var (
		es = p.SmallExtinction
		el = p.LargeExtinction
		r  = p.Recolonization
		t  [NumStates][NumStates]float64
	)

	// Both: each patch survives or dies independently.
	t[Both][Both] = (1 - es) * (1 - el)
	t[Both][SmallOnly] = (1 - es) * el
	t[Both][LargeOnly] = es * (1 - el)
	t[Both][None] = es * el

	// SmallOnly: recolonize the large patch? does the small one die?
	t[SmallOnly][Both] = r * (1 - es)
	t[SmallOnly][SmallOnly] = (1 - r) * (1 - es)
	t[SmallOnly][LargeOnly] = r * es
	t[SmallOnly][None] = (1 - r) * es

	// LargeOnly mirrors SmallOnly with e_l.
	t[LargeOnly][Both] = r * (1 - el)
	t[LargeOnly][SmallOnly] = r * el
	t[LargeOnly][LargeOnly] = (1 - r) * (1 - el)
	t[LargeOnly][None] = (1 - r) * el

	t[None][None] = 1

	flat := make([]float64, 0, NumStates*NumStates)
	for _, row := range t {
		flat = append(flat, row[:]...)
	}
	m, err := matrix.NewDenseFrom(NumStates, NumStates, flat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	return m, nil
}
