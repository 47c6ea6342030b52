// SPDX-License-Identifier: MIT

// Package matrix: structural predicates, trace and transpose.
// All square-only predicates abort with ErrNonSquare on a rectangular
// receiver and are vacuously true for 0×0 and 1×1 matrices.

package matrix

import "math/big"

// IsSymmetric reports whether m equals its transpose, scanning the
// strict lower triangle against the upper one.
// Aborts with ErrNonSquare on a rectangular matrix.
// Complexity: O(n²).
func (m *Matrix) IsSymmetric() bool {
	m.mustSquare()

	for r := 1; r < m.RowSize(); r++ {
		for c := 0; c < r; c++ {
			if m.rows[r].At(c).Cmp(m.rows[c].At(r)) != 0 {
				return false
			}
		}
	}

	return true
}

// IsUpper reports whether every element strictly below the diagonal is
// zero. Aborts with ErrNonSquare on a rectangular matrix.
// Complexity: O(n²).
func (m *Matrix) IsUpper() bool {
	m.mustSquare()

	for r := 1; r < m.RowSize(); r++ {
		for c := 0; c < r; c++ {
			if m.rows[r].At(c).Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// IsLower reports whether every element strictly above the diagonal is
// zero. Aborts with ErrNonSquare on a rectangular matrix.
// Complexity: O(n²).
func (m *Matrix) IsLower() bool {
	m.mustSquare()

	for r := 0; r < m.RowSize(); r++ {
		for c := r + 1; c < m.ColSize(); c++ {
			if m.rows[r].At(c).Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether m is both upper and lower triangular.
func (m *Matrix) IsDiagonal() bool {
	return m.IsUpper() && m.IsLower()
}

// Trace returns the sum of the diagonal; zero for an empty matrix.
// Aborts with ErrNonSquare on a rectangular matrix.
// Complexity: O(n).
func (m *Matrix) Trace() *big.Rat {
	m.mustSquare()

	sum := new(big.Rat)
	for i := 0; i < m.RowSize(); i++ {
		sum.Add(sum, m.rows[i].At(i))
	}

	return sum
}

// Transpose returns a new matrix with result[j][i] = m[i][j].
// Complexity: O(r·c).
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.RowSize(), m.ColSize()
	result := Zeros(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.rows[j].Set(i, m.rows[i].At(j))
		}
	}

	return result
}
