// SPDX-License-Identifier: MIT

// Package matrix: elementary row operations, splitting and expansion.
// The elementary operations and Expand are the documented in-place
// mutators: they act on the receiver and return it for call chaining.
// Split is pure and deep-copies both parts.

package matrix

import (
	"math/big"

	"github.com/ratmath/ratmath/vector"
)

// ERowSwap swaps rows i and j in place and returns the receiver.
// Aborts with ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Matrix) ERowSwap(i, j int) *Matrix {
	m.mustRowIndex(i)
	m.mustRowIndex(j)

	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return m
}

// EScalarMultiplication scales row i by k in place and returns the
// receiver. Aborts with ErrOutOfRange on an invalid index.
// Complexity: O(c).
func (m *Matrix) EScalarMultiplication(i int, k *big.Rat) *Matrix {
	m.mustRowIndex(i)

	m.rows[i] = m.rows[i].Scale(k)

	return m
}

// ERowSum adds k·(row j) to row i in place and returns the receiver.
// Row j is read at its pre-update values, so i == j is well defined.
// Aborts with ErrOutOfRange on an invalid index.
// Complexity: O(c).
func (m *Matrix) ERowSum(i, j int, k *big.Rat) *Matrix {
	m.mustRowIndex(i)
	m.mustRowIndex(j)

	// Scale allocates a fresh vector, so rows[j]'s pre-update state is
	// what gets added even when i == j.
	m.rows[i] = m.rows[i].Add(m.rows[j].Scale(k))

	return m
}

// SplitRow partitions the matrix at row boundary n into two
// complementary, non-overlapping matrices: the first n rows and the
// remainder. Both parts are deep copies. Aborts with ErrOutOfRange
// unless 0 <= n <= RowSize.
// Complexity: O(r·c).
func (m *Matrix) SplitRow(n int) (*Matrix, *Matrix) {
	mustSplitPoint(n, m.RowSize())

	first := &Matrix{rows: make([]*vector.Vector, 0, n)}
	second := &Matrix{rows: make([]*vector.Vector, 0, m.RowSize()-n)}
	for i, r := range m.rows {
		if i < n {
			first.rows = append(first.rows, r.Clone())
		} else {
			second.rows = append(second.rows, r.Clone())
		}
	}

	return first, second
}

// SplitCol partitions the matrix at column boundary n into two
// complementary, non-overlapping matrices: the first n columns and the
// remainder. Both parts are deep copies. Aborts with ErrOutOfRange
// unless 0 <= n <= ColSize.
// Complexity: O(r·c).
func (m *Matrix) SplitCol(n int) (*Matrix, *Matrix) {
	mustSplitPoint(n, m.ColSize())

	rows, cols := m.RowSize(), m.ColSize()
	first := Zeros(rows, n)
	second := Zeros(rows, cols-n)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j < n {
				first.rows[i].Set(j, m.rows[i].At(j))
			} else {
				second.rows[i].Set(j-n, m.rows[i].At(j))
			}
		}
	}

	return first, second
}

// ExpandRow appends other's rows to the receiver and returns the
// receiver. The argument's storage is consumed: other is emptied and
// must not be used afterwards. Aborts with ErrDimensionMismatch unless
// column counts match; an empty side is always compatible, so a
// SplitRow at any valid boundary — including 0 and RowSize — can be
// recombined.
// Complexity: O(rows(other)).
func (m *Matrix) ExpandRow(other *Matrix) *Matrix {
	if m.RowSize() > 0 && other.RowSize() > 0 {
		mustSize(m.ColSize(), other.ColSize())
	}

	m.rows = append(m.rows, other.rows...)
	other.rows = nil

	return m
}

// ExpandCol appends other's columns to the receiver row by row and
// returns the receiver. The argument's storage is consumed: other is
// emptied and must not be used afterwards. Aborts with
// ErrDimensionMismatch unless row counts match.
// Complexity: O(r·c).
func (m *Matrix) ExpandCol(other *Matrix) *Matrix {
	mustSize(m.RowSize(), other.RowSize())

	for i := range m.rows {
		m.rows[i] = m.rows[i].Concat(other.rows[i])
	}
	other.rows = nil

	return m
}
