// Package metapop models a species living on two habitat patches, one small
// and one large, as an absorbing Markov chain over four occupancy states.
//
// 🚀 What is metapop?
//
//	A small, dependency-light toolkit that brings together:
//		• matrix/  — dense matrices: Mul, MatVec, VecMul, Pow, RowSums
//		• markov/  — Builder, Validator and Propagator of the two-patch chain
//		• report/  — text and YAML rendering of the extinction probability
//		• cmd/metapop — a cobra CLI over the whole pipeline
//
// Each year either patch may go locally extinct (e_s for the small one, e_l
// for the large one) and an empty patch may be recolonized from the occupied
// one with probability r. Once both patches are empty nothing can recolonize
// them, so None is absorbing and P(None at year T) is the probability that
// the species is permanently lost by year T.
//
//	           ┌────────── Both ──────────┐
//	           ▼                          ▼
//	     SmallOnly ◄──────────────► LargeOnly
//	           │                          │
//	           └────────► None ◄──────────┘
//
// Pipeline:
//
//	Params ─► Build ─► ValidateStochastic ─► Propagate(T) ─► Report
//
// Quick start:
//
//	params, _ := markov.NewParams(0.13, 0.03, 0.02)
//	chain, _ := markov.NewChain(params)
//	dist, _ := chain.Distribution(50)
//	fmt.Println(report.New(dist, 50).Line())
//
//	go install github.com/katalvlaran/metapop/cmd/metapop@latest
package metapop
