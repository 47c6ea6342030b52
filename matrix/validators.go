// SPDX-License-Identifier: MIT

// Package matrix: centralized fail-fast guards.
// Every entry point delegates its shape/bounds checks here so the guard
// logic stays in one place. Guards panic with the plain sentinel from
// errors.go — contract violations are programmer errors with no retry
// semantics, so nothing is wrapped or returned.

package matrix

// mustSquare aborts with ErrNonSquare unless RowSize == ColSize.
// Complexity: O(1).
func (m *Matrix) mustSquare() {
	if m.RowSize() != m.ColSize() {
		panic(ErrNonSquare)
	}
}

// mustRowIndex aborts with ErrOutOfRange unless 0 <= i < RowSize.
func (m *Matrix) mustRowIndex(i int) {
	if i < 0 || i >= m.RowSize() {
		panic(ErrOutOfRange)
	}
}

// mustColIndex aborts with ErrOutOfRange unless 0 <= j < ColSize.
func (m *Matrix) mustColIndex(j int) {
	if j < 0 || j >= m.ColSize() {
		panic(ErrOutOfRange)
	}
}

// mustSameShape aborts with ErrDimensionMismatch unless both matrices
// have identical row and column counts.
func mustSameShape(a, b *Matrix) {
	if a.RowSize() != b.RowSize() || a.ColSize() != b.ColSize() {
		panic(ErrDimensionMismatch)
	}
}

// mustSize aborts with ErrDimensionMismatch unless got equals want.
// Used for Expand and Mul compatibility checks.
func mustSize(want, got int) {
	if want != got {
		panic(ErrDimensionMismatch)
	}
}

// mustSplitPoint aborts with ErrOutOfRange unless 0 <= n <= size.
// A split at 0 or at size is valid and yields one empty part.
func mustSplitPoint(n, size int) {
	if n < 0 || n > size {
		panic(ErrOutOfRange)
	}
}

// mustNonNegative aborts with ErrOutOfRange on a negative dimension.
func mustNonNegative(n int) {
	if n < 0 {
		panic(ErrOutOfRange)
	}
}
