// SPDX-License-Identifier: MIT

// Package matrix: inverse, cofactor expansion and LU decomposition.
// Inv rides on the elimination engine (augment, reduce, split); the
// Minor/Cofactor/Adj family uses determinant expansion instead —
// O(n⁵) for n×n, accepted for small matrices.

package matrix

import (
	"math/big"

	"github.com/ratmath/ratmath/vector"
)

// Inv returns the inverse of m and true, or (nil, false) when no
// inverse exists — an expected degenerate result, not a failure. The
// inverse of the 0×0 matrix is the 0×0 matrix. Internally the matrix
// is augmented with the identity, reduced to canonical form and split:
// [A | I] → [I | A⁻¹]. Aborts with ErrNonSquare on a rectangular
// matrix.
// Complexity: O(n³) time.
func (m *Matrix) Inv() (*Matrix, bool) {
	m.mustSquare()

	n := m.RowSize()
	if n == 0 {
		return New(), true
	}
	if m.Rank() != n {
		return nil, false
	}

	augmented := m.Clone().ExpandCol(Identity(n))
	augmented.TransformRowCanonical()
	_, inverse := augmented.SplitCol(n)

	return inverse, true
}

// Submatrix returns a new matrix with row i and column j dropped.
// Aborts with ErrOutOfRange on an invalid index.
// Complexity: O(r·c).
func (m *Matrix) Submatrix(i, j int) *Matrix {
	m.mustRowIndex(i)
	m.mustColIndex(j)

	rows := make([]*vector.Vector, 0, m.RowSize()-1)
	for r := 0; r < m.RowSize(); r++ {
		if r == i {
			continue
		}
		kept := make([]*big.Rat, 0, m.ColSize()-1)
		for c := 0; c < m.ColSize(); c++ {
			if c == j {
				continue
			}
			kept = append(kept, m.rows[r].At(c))
		}
		rows = append(rows, vector.FromRats(kept...))
	}

	return &Matrix{rows: rows}
}

// Minor returns the matrix of minors: result[r][c] is the determinant
// of the submatrix obtained by dropping row r and column c. Aborts
// with ErrNonSquare on a rectangular matrix.
// Complexity: O(n⁵) time — one O(n³) determinant per entry.
func (m *Matrix) Minor() *Matrix {
	m.mustSquare()

	n := m.RowSize()
	result := Zeros(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			result.rows[r].Set(c, m.Submatrix(r, c).Det())
		}
	}

	return result
}

// Cofactor returns the matrix of cofactors: the minors with the
// entrywise sign (−1)^(r+c) applied. Aborts with ErrNonSquare on a
// rectangular matrix.
// Complexity: O(n⁵) time.
func (m *Matrix) Cofactor() *Matrix {
	result := m.Minor()
	for r := 0; r < result.RowSize(); r++ {
		for c := 0; c < result.ColSize(); c++ {
			if (r+c)%2 == 1 {
				e := result.rows[r].At(c)
				result.rows[r].Set(c, e.Neg(e))
			}
		}
	}

	return result
}

// Adj returns the adjugate: the transpose of the cofactor matrix.
// Satisfies A·Adj(A) = Det(A)·I. Aborts with ErrNonSquare on a
// rectangular matrix.
// Complexity: O(n⁵) time.
func (m *Matrix) Adj() *Matrix {
	return m.Cofactor().Transpose()
}

// LU returns the Doolittle decomposition A = L·U with L unit lower
// triangular and U upper triangular, computed without pivoting.
//
// Two shapes are special-cased to avoid dividing by a zero pivot: an
// already-upper-triangular input yields (Identity, A) and an
// already-lower-triangular input yields (A, Zeros). The general case
// builds, column by column,
//
//	U[j][i] = A[j][i] − Σ_{k<j} L[j][k]·U[k][i]   for j ≤ i
//	L[j][i] = (A[j][i] − Σ_{k<i} L[j][k]·U[k][i]) / U[i][i]   for j > i
//
// and aborts with ErrZeroPivot when a division would hit an exactly
// zero U[i][i]. No row exchange is attempted, so a full-rank matrix
// whose leading principal minor vanishes still aborts — a documented
// limitation of the unpivoted scheme. Aborts with ErrNonSquare on a
// rectangular matrix.
// Complexity: O(n³) time.
func (m *Matrix) LU() (*Matrix, *Matrix) {
	m.mustSquare()

	n := m.RowSize()
	if m.IsUpper() {
		return Identity(n), m.Clone()
	}
	if m.IsLower() {
		return m.Clone(), Zeros(n, n)
	}

	l := Identity(n)
	u := Zeros(n, n)
	for i := 0; i < n; i++ {
		// row i of U up to column i fixes U's column i for j <= i
		for j := 0; j <= i; j++ {
			sum := new(big.Rat)
			term := new(big.Rat)
			for k := 0; k < j; k++ {
				sum.Add(sum, term.Mul(l.rows[j].At(k), u.rows[k].At(i)))
			}
			u.rows[j].Set(i, sum.Sub(m.rows[j].At(i), sum))
		}

		// multipliers below the diagonal divide by U[i][i]
		if i+1 < n {
			pivot := u.rows[i].At(i)
			if pivot.Sign() == 0 {
				panic(ErrZeroPivot)
			}
			for j := i + 1; j < n; j++ {
				sum := new(big.Rat)
				term := new(big.Rat)
				for k := 0; k < i; k++ {
					sum.Add(sum, term.Mul(l.rows[j].At(k), u.rows[k].At(i)))
				}
				sum.Sub(m.rows[j].At(i), sum)
				l.rows[j].Set(i, sum.Quo(sum, pivot))
			}
		}
	}

	return l, u
}
