// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Guard helpers (validators.go) panic with these sentinels on contract
// violations; they are never returned. Tests match them via
// assert.PanicsWithValue or errors.Is on the recovered value. The one
// expected degenerate outcome — no inverse — is a comma-ok result and
// has no sentinel.

package matrix

import "errors"

var (
	// ErrDimensionMismatch signals incompatible dimensions between
	// operands: Add/Sub on different shapes, Mul with inner-dimension
	// disagreement, Expand with a non-matching row or column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals a non-square operand where squareness is
	// required (predicates, Trace, Det, Inv, Minor, LU).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange signals a row/column index, split point or
	// dimension outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows signals literal construction from rows of unequal
	// length; matrices are rectangular by invariant.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrZeroPivot signals an exactly-zero pivot during unpivoted LU
	// decomposition. No row exchange is attempted — intentional, for
	// determinism and simplicity.
	ErrZeroPivot = errors.New("matrix: zero pivot in LU decomposition")
)
