// SPDX-License-Identifier: MIT

// Package vector: the Vector value type — storage, constructors,
// accessors and rendering. Arithmetic and analysis live in ops.go.

package vector

import (
	"fmt"
	"math/big"
	"strings"
)

// Vector is an ordered, fixed-length sequence of exact rationals.
// The zero value is unusable; construct via New, Create, FromInts or
// FromRats. A Vector owns its elements exclusively: nothing handed in
// or out is retained by reference.
type Vector struct {
	elements []*big.Rat
}

// New constructs an empty vector (size 0).
// Complexity: O(1).
func New() *Vector {
	return &Vector{}
}

// Create constructs a vector of n copies of value. n = 0 yields an
// empty vector; n < 0 aborts with ErrOutOfRange.
// Complexity: O(n).
func Create(n int, value *big.Rat) *Vector {
	if n < 0 {
		panic(ErrOutOfRange)
	}
	elements := make([]*big.Rat, n)
	for i := range elements {
		elements[i] = new(big.Rat).Set(value)
	}

	return &Vector{elements: elements}
}

// FromInts constructs a vector from integer literals.
// Complexity: O(n).
func FromInts(values ...int64) *Vector {
	elements := make([]*big.Rat, len(values))
	for i, v := range values {
		elements[i] = new(big.Rat).SetInt64(v)
	}

	return &Vector{elements: elements}
}

// FromRats constructs a vector from rational literals, cloning each so
// the caller keeps ownership of its Rats.
// Complexity: O(n).
func FromRats(values ...*big.Rat) *Vector {
	elements := make([]*big.Rat, len(values))
	for i, v := range values {
		elements[i] = new(big.Rat).Set(v)
	}

	return &Vector{elements: elements}
}

// Size returns the number of elements. Complexity: O(1).
func (v *Vector) Size() int {
	return len(v.elements)
}

// IsEmpty reports whether the vector has no elements. Complexity: O(1).
func (v *Vector) IsEmpty() bool {
	return len(v.elements) == 0
}

// At returns a clone of the element at index i.
// Aborts with ErrOutOfRange on an invalid index.
// Complexity: O(1) plus the clone.
func (v *Vector) At(i int) *big.Rat {
	v.mustIndex(i)

	return new(big.Rat).Set(v.elements[i])
}

// Set stores a clone of value at index i.
// Aborts with ErrOutOfRange on an invalid index.
func (v *Vector) Set(i int, value *big.Rat) {
	v.mustIndex(i)
	v.elements[i] = new(big.Rat).Set(value)
}

// Clone returns a deep copy; the result shares no storage with v.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	elements := make([]*big.Rat, len(v.elements))
	for i, e := range v.elements {
		elements[i] = new(big.Rat).Set(e)
	}

	return &Vector{elements: elements}
}

// Equal reports elementwise equality of two vectors of the same size;
// vectors of different sizes are unequal, never an error.
// Complexity: O(n).
func (v *Vector) Equal(other *Vector) bool {
	if v.Size() != other.Size() {
		return false
	}
	for i, e := range v.elements {
		if e.Cmp(other.elements[i]) != 0 {
			return false
		}
	}

	return true
}

// Concat returns a new vector holding v's elements followed by other's.
// Both operands are left untouched.
// Complexity: O(n+m).
func (v *Vector) Concat(other *Vector) *Vector {
	elements := make([]*big.Rat, 0, len(v.elements)+len(other.elements))
	for _, e := range v.elements {
		elements = append(elements, new(big.Rat).Set(e))
	}
	for _, e := range other.elements {
		elements = append(elements, new(big.Rat).Set(e))
	}

	return &Vector{elements: elements}
}

// String renders the vector as a single bracketed line, elements
// right-aligned to the widest rendered element and space-separated,
// e.g. "[-3/4    0  5/6]". An empty vector renders as "[]". The output
// is informal and not meant for round-trip parsing.
func (v *Vector) String() string {
	fields := make([]string, len(v.elements))
	width := 0
	for i, e := range v.elements {
		fields[i] = e.RatString()
		if len(fields[i]) > width {
			width = len(fields[i])
		}
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%*s", width, f)
	}
	b.WriteByte(']')

	return b.String()
}

// mustIndex aborts with ErrOutOfRange unless 0 <= i < Size.
func (v *Vector) mustIndex(i int) {
	if i < 0 || i >= len(v.elements) {
		panic(ErrOutOfRange)
	}
}

// mustNonEmpty aborts with ErrEmptyOperand on a size-0 vector.
func (v *Vector) mustNonEmpty() {
	if len(v.elements) == 0 {
		panic(ErrEmptyOperand)
	}
}

// mustSameSize aborts with ErrDimensionMismatch unless both vectors
// have equal length.
func mustSameSize(a, b *Vector) {
	if a.Size() != b.Size() {
		panic(ErrDimensionMismatch)
	}
}
