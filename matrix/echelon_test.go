package matrix_test

import (
	"math/big"
	"testing"

	"github.com/ratmath/ratmath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix_RowEchelonForm verifies forward elimination with the
// canonical row ordering and that the pure variant leaves the receiver
// untouched.
func TestMatrix_RowEchelonForm(t *testing.T) {
	m := matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}})
	ref := m.RowEchelonForm()
	assert.True(t, ref.Equal(matrix.FromInts([][]int64{{1, 2, 3}, {0, -3, -6}})))
	assert.True(t, m.Equal(matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}})), "pure variant must not mutate")

	// dependent rows collapse to zero and sink to the bottom
	ref = matrix.Ones(2, 2).RowEchelonForm()
	assert.True(t, ref.Equal(matrix.FromInts([][]int64{{1, 1}, {0, 0}})))

	// in-place variant returns the receiver
	m = matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}})
	assert.Same(t, m, m.TransformRowEchelon())

	assert.True(t, matrix.New().RowEchelonForm().IsEmpty())
}

// TestMatrix_RowCanonicalForm verifies reduced row echelon form on the
// full set of shapes: square, wide, tall and rank-deficient.
func TestMatrix_RowCanonicalForm(t *testing.T) {
	cases := []struct {
		name  string
		input [][]int64
		want  [][]int64
	}{
		{"rank-deficient square", [][]int64{{1, 1}, {1, 1}}, [][]int64{{1, 1}, {0, 0}}},
		{"wide 2x3", [][]int64{{1, 2, 3}, {4, 5, 6}}, [][]int64{{1, 0, -1}, {0, 1, 2}}},
		{"tall 3x2", [][]int64{{1, 2}, {3, 4}, {5, 6}}, [][]int64{{1, 0}, {0, 1}, {0, 0}}},
		{"tall 4x2", [][]int64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}, [][]int64{{1, 0}, {0, 1}, {0, 0}, {0, 0}}},
		{"wide 2x4", [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}}, [][]int64{{1, 0, -1, -2}, {0, 1, 2, 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := matrix.FromInts(tc.input).RowCanonicalForm()
			assert.True(t, got.Equal(matrix.FromInts(tc.want)), "got\n%v", got)

			// reduced form is a fixed point
			assert.True(t, got.RowCanonicalForm().Equal(got))
		})
	}
}

// TestMatrix_Rank verifies the rank across square, wide, tall and
// degenerate shapes.
func TestMatrix_Rank(t *testing.T) {
	assert.Equal(t, 0, matrix.New().Rank())
	assert.Equal(t, 0, matrix.Zeros(2, 2).Rank())
	assert.Equal(t, 1, matrix.Ones(2, 2).Rank())
	assert.Equal(t, 2, some().Rank())
	assert.Equal(t, 2, matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}}).Rank())
	assert.Equal(t, 2, matrix.FromInts([][]int64{{1, 2}, {3, 4}, {5, 6}}).Rank())
	assert.Equal(t, 3, matrix.FromInts([][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 0},
	}).Rank())
	assert.Equal(t, 3, matrix.Identity(3).Rank())
}

// TestMatrix_Det verifies the determinant as the diagonal product of
// the echelon form, including the 0×0 convention and the non-square
// abort.
func TestMatrix_Det(t *testing.T) {
	assert.Zero(t, matrix.New().Det().Cmp(big.NewRat(1, 1)))
	assert.Zero(t, matrix.FromInts([][]int64{{5}}).Det().Cmp(big.NewRat(5, 1)))
	assert.Zero(t, some().Det().Sign())
	assert.Zero(t, matrix.FromInts([][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 0},
	}).Det().Cmp(big.NewRat(27, 1)))
	assert.Zero(t, matrix.Identity(4).Det().Cmp(big.NewRat(1, 1)))
	assert.Zero(t, matrix.Zeros(3, 3).Det().Sign())

	// the determinant scales linearly in each row
	scaled := matrix.FromInts([][]int64{
		{2, 4, 6},
		{4, 5, 6},
		{7, 8, 0},
	})
	assert.Zero(t, scaled.Det().Cmp(big.NewRat(54, 1)))

	assert.PanicsWithValue(t, matrix.ErrNonSquare, func() {
		matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}}).Det()
	})
}

// TestMatrix_Det_Fractional verifies exactness of the pipeline: the
// determinant of a rational matrix comes out as an exact fraction.
func TestMatrix_Det_Fractional(t *testing.T) {
	m := matrix.FromRats([][]*big.Rat{
		{big.NewRat(1, 2), big.NewRat(1, 3)},
		{big.NewRat(1, 4), big.NewRat(1, 5)},
	})
	// 1/2·1/5 − 1/3·1/4 = 1/10 − 1/12 = 1/60
	require.Zero(t, m.Det().Cmp(big.NewRat(1, 60)))
}
