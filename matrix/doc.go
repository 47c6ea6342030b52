// SPDX-License-Identifier: MIT

// Package matrix implements rectangular matrices of exact rational
// numbers as ordered sequences of vector rows, and hosts the classical
// elimination-based algorithms.
//
// The matrix package provides:
//
//   - Factories (Zeros, Ones, Identity, Create) and literal
//     construction (FromInts, FromRats, FromRows); ragged input aborts.
//   - Structural predicates (IsSymmetric, IsUpper, IsLower,
//     IsDiagonal), Trace and Transpose.
//   - Elementary row operations as chaining mutators, plus Split/Expand
//     by rows or columns.
//   - The elimination engine: row-echelon and reduced-echelon
//     transforms with the canonical stable-sort-by-leading-zeros
//     ordering, and the algorithms built on it — Det, Rank, Inv.
//   - Cofactor expansion: Submatrix, Minor, Cofactor, Adj, preserving
//     A·Adj(A) = Det(A)·I.
//   - Unpivoted Doolittle LU decomposition.
//
// Elimination here never swaps rows to repair a zero pivot — the
// canonical ordering is a stable sort of rows by ascending leading-zero
// count after forward elimination, and Det, Rank, Inv and the test
// expectations all depend on that exact unpivoted behavior. The same
// goes for LU: a zero pivot aborts rather than pivoting.
//
// Elimination-based algorithms are O(n³); the cofactor-expansion family
// (Minor, Cofactor, Adj) is O(n⁵) — a deliberate
// simplicity-over-performance tradeoff for small matrices.
//
// Pure operations return new matrices; the documented in-place mutators
// (ERowSwap, EScalarMultiplication, ERowSum, TransformRowEchelon,
// TransformRowCanonical, ExpandRow, ExpandCol) mutate the receiver and
// return it for chaining. Contract violations abort with a panic
// carrying a sentinel from errors.go; a matrix with no inverse is an
// ordinary comma-ok result, not a failure.
package matrix
