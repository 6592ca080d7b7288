// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra core used by the
// metapop chain: a row-major Dense type, canonical validators, and the
// kernels needed to evolve probability vectors.
//
// What the package offers:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateMulCompatible. Kernels never duplicate guard logic.
//   - Kernels: Mul (A×B), MatVec (A·x), VecMul (xᵀ·A for row vectors) and
//     Pow (Aᵏ by repeated squaring).
//   - Facades: NewIdentity, RowSums, PermuteSymmetric, AllClose.
//
// Determinism:
//
//	All loops run in a fixed i→k→j order, so identical inputs always
//	produce bit-identical outputs.
//
// Errors:
//
//	Every failure is a package sentinel (ErrInvalidDimensions,
//	ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix, ErrNaNInf) wrapped
//	with the operation name. Match with errors.Is.
//
// Quick example:
//
//	P, _ := matrix.NewDenseFrom(2, 2, []float64{0.9, 0.1, 0, 1})
//	next, _ := matrix.VecMul([]float64{1, 0}, P) // [0.9 0.1]
package matrix
