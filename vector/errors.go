// SPDX-License-Identifier: MIT

// Package vector: sentinel error set.
// Guard helpers panic with these sentinels on contract violations; they
// are never returned. Tests match them via assert.PanicsWithValue or
// errors.Is on the recovered value.

package vector

import "errors"

var (
	// ErrEmptyOperand signals an empty vector where a nonempty one is
	// required (Norm, CountLeadingZeros, Dot and friends).
	ErrEmptyOperand = errors.New("vector: empty operand")

	// ErrDimensionMismatch signals two operands of different lengths in
	// an elementwise or product operation.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIncompatibleDims signals a cross product on a size other than
	// 2 or 3, the only sizes for which it is defined.
	ErrIncompatibleDims = errors.New("vector: incompatible dimensions for cross product")

	// ErrOutOfRange signals an index or length outside valid bounds.
	ErrOutOfRange = errors.New("vector: index out of range")
)
