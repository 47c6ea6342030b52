// SPDX-License-Identifier: MIT

// Package matrix: the Matrix value type — storage, factories, literal
// construction, accessors and rendering.

package matrix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ratmath/ratmath/vector"
)

// Matrix is an ordered sequence of equal-length vector rows.
// Invariant: every row has identical length (rectangularity); zero rows
// imply zero columns by convention. A Matrix owns its rows exclusively
// and never holds a reference into another Matrix or Vector.
type Matrix struct {
	rows []*vector.Vector
}

// New constructs an empty (0×0) matrix.
// Complexity: O(1).
func New() *Matrix {
	return &Matrix{}
}

// Create constructs an r×c matrix filled with clones of value.
// Negative dimensions abort with ErrOutOfRange.
// Complexity: O(r·c).
func Create(r, c int, value *big.Rat) *Matrix {
	mustNonNegative(r)
	mustNonNegative(c)

	rows := make([]*vector.Vector, r)
	for i := range rows {
		rows[i] = vector.Create(c, value)
	}

	return &Matrix{rows: rows}
}

// Zeros constructs an r×c matrix of zeros.
func Zeros(r, c int) *Matrix {
	return Create(r, c, new(big.Rat))
}

// Ones constructs an r×c matrix of ones.
func Ones(r, c int) *Matrix {
	return Create(r, c, big.NewRat(1, 1))
}

// Identity constructs the n×n matrix with ones on the diagonal and
// zeros elsewhere.
func Identity(n int) *Matrix {
	m := Zeros(n, n)
	one := big.NewRat(1, 1)
	for i := 0; i < n; i++ {
		m.rows[i].Set(i, one)
	}

	return m
}

// FromInts constructs a matrix from a rectangular grid of integer
// literals. Ragged input aborts with ErrRaggedRows.
// Complexity: O(r·c).
func FromInts(grid [][]int64) *Matrix {
	rows := make([]*vector.Vector, len(grid))
	for i, r := range grid {
		if len(r) != len(grid[0]) {
			panic(ErrRaggedRows)
		}
		rows[i] = vector.FromInts(r...)
	}

	return &Matrix{rows: rows}
}

// FromRats constructs a matrix from a rectangular grid of rational
// literals, cloning every element. Ragged input aborts with
// ErrRaggedRows.
// Complexity: O(r·c).
func FromRats(grid [][]*big.Rat) *Matrix {
	rows := make([]*vector.Vector, len(grid))
	for i, r := range grid {
		if len(r) != len(grid[0]) {
			panic(ErrRaggedRows)
		}
		rows[i] = vector.FromRats(r...)
	}

	return &Matrix{rows: rows}
}

// FromRows constructs a matrix from literal row vectors, cloning each.
// Rows of unequal length abort with ErrRaggedRows.
func FromRows(rows ...*vector.Vector) *Matrix {
	cloned := make([]*vector.Vector, len(rows))
	for i, r := range rows {
		if r.Size() != rows[0].Size() {
			panic(ErrRaggedRows)
		}
		cloned[i] = r.Clone()
	}

	return &Matrix{rows: cloned}
}

// RowSize returns the number of rows. Complexity: O(1).
func (m *Matrix) RowSize() int {
	return len(m.rows)
}

// ColSize returns the number of columns: the first row's length, or 0
// when there are no rows. Complexity: O(1).
func (m *Matrix) ColSize() int {
	if len(m.rows) == 0 {
		return 0
	}

	return m.rows[0].Size()
}

// IsEmpty reports whether the matrix has no rows. Complexity: O(1).
func (m *Matrix) IsEmpty() bool {
	return len(m.rows) == 0
}

// At returns a clone of the element at row r, column c.
// Aborts with ErrOutOfRange on an invalid index.
func (m *Matrix) At(r, c int) *big.Rat {
	m.mustRowIndex(r)
	m.mustColIndex(c)

	return m.rows[r].At(c)
}

// Set stores a clone of value at row r, column c.
// Aborts with ErrOutOfRange on an invalid index.
func (m *Matrix) Set(r, c int, value *big.Rat) {
	m.mustRowIndex(r)
	m.mustColIndex(c)
	m.rows[r].Set(c, value)
}

// Row returns a clone of row i.
// Aborts with ErrOutOfRange on an invalid index.
func (m *Matrix) Row(i int) *vector.Vector {
	m.mustRowIndex(i)

	return m.rows[i].Clone()
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(r·c).
func (m *Matrix) Clone() *Matrix {
	rows := make([]*vector.Vector, len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix{rows: rows}
}

// Equal reports row-wise structural equality. Matrices of different
// shapes are unequal, never an error.
// Complexity: O(r·c).
func (m *Matrix) Equal(other *Matrix) bool {
	if m.RowSize() != other.RowSize() {
		return false
	}
	for i, r := range m.rows {
		if !r.Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// String renders the matrix as a bracketed block, one row per line,
// columns right-aligned to the widest rendered element across the whole
// matrix and space-separated:
//
//	[
//	-11/6   5/6
//	  5/3  -2/3
//	]
//
// An empty matrix renders as "[" newline "]". The output is informal
// and not meant for round-trip parsing.
func (m *Matrix) String() string {
	rows, cols := m.RowSize(), m.ColSize()

	// Render every element once; alignment is matrix-wide.
	fields := make([][]string, rows)
	width := 0
	for i := 0; i < rows; i++ {
		fields[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			fields[i][j] = m.rows[i].At(j).RatString()
			if len(fields[i][j]) > width {
				width = len(fields[i][j])
			}
		}
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, fields[i][j])
		}
		b.WriteByte('\n')
	}
	b.WriteByte(']')

	return b.String()
}
