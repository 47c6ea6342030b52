// SPDX-License-Identifier: MIT

// Package vector implements an ordered, fixed-length sequence of exact
// rational numbers (math/big Rat) with value semantics.
//
// The vector package provides:
//
//   - Constructors for empty, uniform-fill, integer-literal and
//     rational-literal vectors.
//   - Elementwise arithmetic (Add, Sub, Scale) returning fresh vectors.
//   - Dot and cross products, orthogonality and parallelism tests.
//   - Zero analysis (IsZero, CountLeadingZeros) — the pivot-scan
//     primitive behind Gaussian elimination in the matrix package.
//   - Euclidean norm, the single place where exact values are lossily
//     converted to float64.
//
// No two Vectors ever share a Rat: constructors and Set clone their
// inputs, At clones its output, and every derivation allocates fresh
// elements. Mutating a Rat you passed in (or got back) therefore never
// disturbs a Vector.
//
// Shape violations — empty operands where a nonempty one is required,
// length mismatches, out-of-range indices, cross products outside sizes
// 2 and 3 — are programmer errors and abort with a panic carrying the
// matching sentinel from errors.go. No operation returns a partial
// result.
package vector
