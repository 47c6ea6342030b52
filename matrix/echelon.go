// SPDX-License-Identifier: MIT

// Package matrix: the elimination engine.
//
// Algorithm outline (TransformRowEchelon):
//  1. Forward elimination, top-down. For row i, let j be the index of
//     its first nonzero element (j = ColSize for an all-zero row). For
//     every row k > i with element[k][j] nonzero and j < ColSize,
//     replace row k with row k − (row k[j]/row i[j])·row i. The pivot
//     is row i's current state when row k is processed; no row is ever
//     swapped in to repair a zero pivot.
//  2. Canonical ordering: stable-sort rows by ascending leading-zero
//     count, sinking all-zero rows to the bottom. A structural
//     reordering step, not arithmetic — Det relies on elimination never
//     swapping rows during step 1.
//
// Because every element is an exact rational, the elimination is exact:
// rank, determinant and inverse built on it carry no rounding error.

package matrix

import (
	"math/big"
	"sort"
)

// TransformRowEchelon transforms the receiver to row echelon form in
// place and returns it for chaining.
// Complexity: O(r²·c) time.
func (m *Matrix) TransformRowEchelon() *Matrix {
	rows, cols := m.RowSize(), m.ColSize()
	if rows == 0 || cols == 0 {
		return m
	}

	// step 1: unpivoted Gaussian elimination
	for i := 0; i < rows; i++ {
		j := m.rows[i].CountLeadingZeros()
		if j == cols {
			continue // all-zero row: nothing to eliminate with
		}
		pivot := m.rows[i].At(j)
		for k := i + 1; k < rows; k++ {
			target := m.rows[k].At(j)
			if target.Sign() == 0 {
				continue
			}
			factor := target.Quo(target, pivot)
			factor.Neg(factor)
			m.rows[k] = m.rows[k].Add(m.rows[i].Scale(factor))
		}
	}

	// step 2: canonical ordering by staircase shape
	sort.SliceStable(m.rows, func(a, b int) bool {
		return m.rows[a].CountLeadingZeros() < m.rows[b].CountLeadingZeros()
	})

	return m
}

// RowEchelonForm returns the row echelon form of m as a new matrix,
// leaving the receiver untouched.
func (m *Matrix) RowEchelonForm() *Matrix {
	return m.Clone().TransformRowEchelon()
}

// TransformRowCanonical transforms the receiver to reduced row echelon
// form in place and returns it for chaining: starting from the echelon
// form, for each column c < min(rows, cols) with a nonzero diagonal it
// eliminates the entries above, then scales every row with a nonzero
// diagonal to a leading 1. Rows whose assumed diagonal pivot is zero
// are left unnormalized, reflecting rank deficiency.
// Complexity: O(r²·c) time.
func (m *Matrix) TransformRowCanonical() *Matrix {
	m.TransformRowEchelon()

	n := min(m.RowSize(), m.ColSize())

	// eliminate above each nonzero diagonal pivot
	for c := 0; c < n; c++ {
		pivot := m.rows[c].At(c)
		if pivot.Sign() == 0 {
			continue
		}
		for r := 0; r < c; r++ {
			target := m.rows[r].At(c)
			if target.Sign() == 0 {
				continue
			}
			factor := target.Quo(target, pivot)
			factor.Neg(factor)
			m.rows[r] = m.rows[r].Add(m.rows[c].Scale(factor))
		}
	}

	// normalize nonzero diagonals to 1
	for r := 0; r < n; r++ {
		d := m.rows[r].At(r)
		if d.Sign() == 0 {
			continue
		}
		m.rows[r] = m.rows[r].Scale(d.Inv(d))
	}

	return m
}

// RowCanonicalForm returns the reduced row echelon form of m as a new
// matrix, leaving the receiver untouched. Idempotent:
// RowCanonicalForm applied to its own result is a fixed point.
func (m *Matrix) RowCanonicalForm() *Matrix {
	return m.Clone().TransformRowCanonical()
}

// Rank returns the rank: the number of rows minus the count of all-zero
// rows in the row echelon form.
// Complexity: O(r²·c) time.
func (m *Matrix) Rank() int {
	cols := m.ColSize()
	if cols == 0 {
		return 0
	}

	ref := m.RowEchelonForm()
	zeros := 0
	for _, r := range ref.rows {
		if r.CountLeadingZeros() == cols {
			zeros++
		}
	}

	return m.RowSize() - zeros
}

// Det returns the determinant: the product of the diagonal of the row
// echelon form, exactly 1 for the 0×0 matrix. Elimination only ever
// adds a multiple of one row to another and never swaps rows during
// the arithmetic step, so the diagonal product needs no sign
// correction. Aborts with ErrNonSquare on a rectangular matrix.
// Complexity: O(n³) time.
func (m *Matrix) Det() *big.Rat {
	m.mustSquare()

	det := big.NewRat(1, 1)
	if m.RowSize() == 0 {
		return det
	}

	ref := m.RowEchelonForm()
	for i := 0; i < ref.RowSize(); i++ {
		det.Mul(det, ref.rows[i].At(i))
	}

	return det
}
