package vector_test

import (
	"fmt"

	"github.com/ratmath/ratmath/vector"
)

// ExampleDot demonstrates the exact dot product of two integer vectors.
func ExampleDot() {
	a := vector.FromInts(1, 2, 3)
	b := vector.FromInts(4, 5, 6)

	fmt.Println(vector.Dot(a, b).RatString())
	// Output:
	// 32
}

// ExampleCross demonstrates the 3-dimensional cross product; the
// result is orthogonal to both operands.
func ExampleCross() {
	a := vector.FromInts(1, 2, 3)
	b := vector.FromInts(4, 5, 6)

	c := vector.Cross(a, b)
	fmt.Println(c)
	fmt.Println(c.IsOrthogonal(a), c.IsOrthogonal(b))
	// Output:
	// [-3  6 -3]
	// true true
}

// ExampleVector_Norm demonstrates the single float boundary of the
// package: squares accumulate exactly, the square root is taken last.
func ExampleVector_Norm() {
	v := vector.FromInts(3, 4)

	fmt.Println(v.Norm())
	// Output:
	// 5
}
