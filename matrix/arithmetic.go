// SPDX-License-Identifier: MIT

// Package matrix: elementwise and product arithmetic.
// All operations here are pure: operands are never mutated and results
// share no storage with them.

package matrix

import (
	"math/big"

	"github.com/ratmath/ratmath/vector"
)

// Add returns the elementwise sum m + other as a new matrix.
// Aborts with ErrDimensionMismatch unless shapes are identical.
// Complexity: O(r·c).
func (m *Matrix) Add(other *Matrix) *Matrix {
	mustSameShape(m, other)

	rows := make([]*vector.Vector, len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Add(other.rows[i])
	}

	return &Matrix{rows: rows}
}

// Sub returns the elementwise difference m - other as a new matrix.
// Aborts with ErrDimensionMismatch unless shapes are identical.
// Complexity: O(r·c).
func (m *Matrix) Sub(other *Matrix) *Matrix {
	mustSameShape(m, other)

	rows := make([]*vector.Vector, len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Sub(other.rows[i])
	}

	return &Matrix{rows: rows}
}

// ScalarMul returns k·m as a new matrix. Always defined.
// Complexity: O(r·c).
func (m *Matrix) ScalarMul(k *big.Rat) *Matrix {
	rows := make([]*vector.Vector, len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Scale(k)
	}

	return &Matrix{rows: rows}
}

// Mul returns the matrix product A×B: result[r][c] is the dot product
// of A's row r with B's column c, shaped RowSize(A) × ColSize(B).
// Aborts with ErrDimensionMismatch unless ColSize(A) == RowSize(B).
// Complexity: O(r·n·c) time.
func Mul(a, b *Matrix) *Matrix {
	mustSize(a.ColSize(), b.RowSize())

	result := Zeros(a.RowSize(), b.ColSize())
	if a.ColSize() == 0 {
		// inner dimension 0: the product is the zero matrix
		return result
	}

	bt := b.Transpose() // columns of B as rows, one dot per cell
	for r := 0; r < a.RowSize(); r++ {
		for c := 0; c < bt.RowSize(); c++ {
			result.rows[r].Set(c, vector.Dot(a.rows[r], bt.rows[c]))
		}
	}

	return result
}
