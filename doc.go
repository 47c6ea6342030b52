// SPDX-License-Identifier: MIT

// Package ratmath is an exact-arithmetic linear-algebra library: vectors
// and matrices over exact rational numbers, for contexts where
// floating-point rounding is unacceptable (symbolic computation,
// teaching, verification).
//
// What ratmath provides:
//
//   - vector/ — fixed-length sequences of exact rationals with
//     elementwise arithmetic, dot and cross products, zero/leading-zero
//     analysis, and Euclidean norm.
//   - matrix/ — rectangular grids of rationals built on vector rows:
//     factories and literal construction, structural predicates,
//     elementary row operations, row-echelon and reduced-echelon
//     transforms, determinant, rank, inverse, cofactor expansion,
//     adjugate, and unpivoted Doolittle LU decomposition.
//
// Every element is a math/big Rat, so results are exact: no epsilon, no
// drift, and a denominator survives every elimination step in lowest
// terms. Conversion to float happens only at the Norm boundary.
//
// Values never share mutable storage. Pure operations return fresh
// values; the documented in-place mutators (elementary row operations,
// the echelon transforms, expand) act only on their receiver and return
// it for call chaining. The library is purely synchronous — concurrent
// callers must synchronize access to a shared value externally, as with
// any plain value type.
//
// Contract violations (shape mismatches, out-of-range indices, empty
// operands, zero LU pivots) abort with a panic carrying the package
// sentinel error: they are programmer errors, not recoverable
// conditions. The one expected degenerate outcome — a matrix with no
// inverse — is reported through an ordinary comma-ok return.
//
// Quick example:
//
//	a := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
//	inv, ok := a.Inv() // ok: [[-2 1] [3/2 -1/2]] exactly
//	fmt.Println(ok, matrix.Mul(a, inv).Equal(matrix.Identity(2)))
package ratmath
