// SPDX-License-Identifier: MIT

// Package vector: arithmetic and analysis on Vector values.
// Every operation here is pure — operands are never mutated and results
// share no storage with them. Guards abort on contract violations.

package vector

import (
	"math"
	"math/big"
)

// Add returns the elementwise sum v + other as a new vector.
// Aborts with ErrDimensionMismatch on a length mismatch.
// Complexity: O(n).
func (v *Vector) Add(other *Vector) *Vector {
	mustSameSize(v, other)

	elements := make([]*big.Rat, len(v.elements))
	for i, e := range v.elements {
		elements[i] = new(big.Rat).Add(e, other.elements[i])
	}

	return &Vector{elements: elements}
}

// Sub returns the elementwise difference v - other as a new vector.
// Aborts with ErrDimensionMismatch on a length mismatch.
// Complexity: O(n).
func (v *Vector) Sub(other *Vector) *Vector {
	mustSameSize(v, other)

	elements := make([]*big.Rat, len(v.elements))
	for i, e := range v.elements {
		elements[i] = new(big.Rat).Sub(e, other.elements[i])
	}

	return &Vector{elements: elements}
}

// Scale returns k·v as a new vector. Always defined.
// Complexity: O(n).
func (v *Vector) Scale(k *big.Rat) *Vector {
	elements := make([]*big.Rat, len(v.elements))
	for i, e := range v.elements {
		elements[i] = new(big.Rat).Mul(e, k)
	}

	return &Vector{elements: elements}
}

// Dot returns the sum of elementwise products of a and b.
// Aborts with ErrEmptyOperand on size 0 and ErrDimensionMismatch on a
// length mismatch.
// Complexity: O(n).
func Dot(a, b *Vector) *big.Rat {
	a.mustNonEmpty()
	b.mustNonEmpty()
	mustSameSize(a, b)

	sum := new(big.Rat)
	product := new(big.Rat)
	for i, e := range a.elements {
		sum.Add(sum, product.Mul(e, b.elements[i]))
	}

	return sum
}

// Cross returns the cross product of a and b. For size 2 the result is
// the one-element pseudo-scalar a0·b1 - a1·b0; for size 3 it is the
// standard cross product. Any other size aborts with
// ErrIncompatibleDims; a length mismatch aborts with
// ErrDimensionMismatch.
func Cross(a, b *Vector) *Vector {
	mustSameSize(a, b)

	switch a.Size() {
	case 2:
		z := new(big.Rat).Mul(a.elements[0], b.elements[1])
		z.Sub(z, new(big.Rat).Mul(a.elements[1], b.elements[0]))

		return &Vector{elements: []*big.Rat{z}}
	case 3:
		x := new(big.Rat).Mul(a.elements[1], b.elements[2])
		x.Sub(x, new(big.Rat).Mul(a.elements[2], b.elements[1]))
		y := new(big.Rat).Mul(a.elements[2], b.elements[0])
		y.Sub(y, new(big.Rat).Mul(a.elements[0], b.elements[2]))
		z := new(big.Rat).Mul(a.elements[0], b.elements[1])
		z.Sub(z, new(big.Rat).Mul(a.elements[1], b.elements[0]))

		return &Vector{elements: []*big.Rat{x, y, z}}
	default:
		panic(ErrIncompatibleDims)
	}
}

// Norm returns the Euclidean norm sqrt(Σ eᵢ²). The sum of squares is
// accumulated exactly; conversion to float64 happens only at this
// boundary. Aborts with ErrEmptyOperand on size 0.
// Complexity: O(n).
func (v *Vector) Norm() float64 {
	v.mustNonEmpty()

	sum := new(big.Rat)
	square := new(big.Rat)
	for _, e := range v.elements {
		sum.Add(sum, square.Mul(e, e))
	}
	f, _ := sum.Float64()

	return math.Sqrt(f)
}

// CountLeadingZeros returns the number of zero elements before the
// first nonzero one, scanning from index 0; an all-zero vector counts
// its full size. Aborts with ErrEmptyOperand on size 0.
// Complexity: O(n).
func (v *Vector) CountLeadingZeros() int {
	v.mustNonEmpty()

	return v.leadingZeros()
}

// IsZero reports whether every element is zero.
// Aborts with ErrEmptyOperand on size 0.
func (v *Vector) IsZero() bool {
	return v.CountLeadingZeros() == v.Size()
}

// IsOrthogonal reports whether Dot(v, other) is zero.
// Aborts on a length mismatch or empty operand, like Dot.
func (v *Vector) IsOrthogonal(other *Vector) bool {
	return Dot(v, other).Sign() == 0
}

// IsParallel reports whether v and other are parallel. A zero vector
// is parallel to every vector of matching size — a deliberate
// convention. Otherwise, with i the first nonzero index of v and
// scale = other[i]/v[i], the vectors are parallel iff scale·v equals
// other elementwise. Aborts on a length mismatch or empty operand.
// Complexity: O(n).
func (v *Vector) IsParallel(other *Vector) bool {
	v.mustNonEmpty()
	other.mustNonEmpty()
	mustSameSize(v, other)

	i := v.leadingZeros()
	if i == v.Size() {
		// zero vector: parallel to everything of this size
		return true
	}
	scale := new(big.Rat).Quo(other.elements[i], v.elements[i])

	return v.Scale(scale).Equal(other)
}

// leadingZeros is CountLeadingZeros without the nonempty guard; an
// empty vector yields 0.
func (v *Vector) leadingZeros() int {
	n := 0
	for _, e := range v.elements {
		if e.Sign() != 0 {
			break
		}
		n++
	}

	return n
}
