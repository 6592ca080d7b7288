// SPDX-License-Identifier: MIT

// Package markov models two-patch metapopulation persistence as a
// discrete-time absorbing Markov chain.
//
// 🚀 What is modelled?
//
//	Two habitat patches (small and large) are each occupied or empty.
//	Every year a local population may go extinct (e_s for the small patch,
//	e_l for the large one) and an empty patch may be recolonized from the
//	occupied one (r). The four occupancy states form a chain:
//
//	    Both ──► SmallOnly ──► None
//	     ▲  ╲      ▲  │        ▲
//	     │   ╲     │  ▼        │
//	     └──── LargeOnly ──────┘
//
//	None (global extinction) is absorbing: once entered it is never left.
//
// ✨ Pipeline:
//
//	Build              – derive the 4×4 row-stochastic transition matrix.
//	ValidateStochastic – assert every row sums to 1 within tolerance.
//	Propagate          – evolve a distribution with state_{k+1} = state_k · P.
//	PropagateSquaring  – same result through P^T by repeated squaring.
//
// ⚙️ Usage:
//
//	params, err := markov.NewParams(0.13, 0.03, 0.02)
//	chain, err := markov.NewChain(params, markov.WithTolerance(1e-9))
//	dist, err := chain.Distribution(50)
//	fmt.Println(dist.Extinct())
//
// Errors are ErrInvalidParameter (bad inputs, detected before any matrix is
// built) and ErrStochasticityViolation (a malformed matrix; never
// propagated). Both are matched with errors.Is.
package markov
