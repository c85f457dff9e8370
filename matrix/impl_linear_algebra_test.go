// SPDX-License-Identifier: MIT
// Package matrix_test: tests for the algebraic operators.
//
// Coverage:
//   - Equal across numeric representations and shapes.
//   - Transpose (values, degenerate shapes, involution).
//   - Add/Sub (values, additive identity/inverse, error kinds).
//   - Mul/MulVec/Multiply (values, conformability, operand kinds).
//   - Every failing call leaves its operands unchanged.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vector"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	m := sampleMatrix(t)

	equal := []*matrix.Matrix{
		m,
		mustMatrix(t, [][]int{{1, -2}, {3, 4}, {15, 6}}),
		mustMatrix(t, [][]float64{{1, -2}, {3, 4}, {15, 6.0}}),
	}
	for _, other := range equal {
		eq, err := m.Equal(other)
		require.NoError(t, err)
		require.True(t, eq)
	}

	different := []*matrix.Matrix{
		mustMatrix(t, [][]int{}),
		mustMatrix(t, [][]int{{1, -2}, {3, 4}}),
		mustMatrix(t, [][]float64{{1, -2}, {3, 4}, {15, 6.1}}),
		mustMatrix(t, [][]int{{1, -2}, {3, 4}, {15, 7}}),
		mustMatrix(t, [][]int{{1, -2, 3}, {4, 15, 6}}),
	}
	for _, other := range different {
		eq, err := m.Equal(other)
		require.NoError(t, err)
		require.False(t, eq)
	}

	_, err := m.Equal(nil)
	require.ErrorIs(t, err, matrix.ErrNotComparable)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestTranspose(t *testing.T) {
	m := sampleMatrix(t)
	mt := m.Transpose()
	require.Equal(t, [][]float64{{1, 3, 15}, {-2, 4, 6}}, mt.ToRows())
	require.Equal(t, m.ToRows(), mt.Columns())
	require.NotSame(t, m, mt)

	requireEqualMatrix(t, m, m.Transpose().Transpose())

	// degenerate shapes map to their duals
	z, err := matrix.Zeros(0, 3)
	require.NoError(t, err)
	require.Equal(t, "3 × 0", z.Transpose().Size())
	z, err = matrix.Zeros(2, 0)
	require.NoError(t, err)
	require.Equal(t, "0 × 2", z.Transpose().Size())
	requireEqualMatrix(t, z, z.Transpose().Transpose())
}

func TestAdd(t *testing.T) {
	m := sampleMatrix(t)
	sum, err := m.Add(m)
	require.NoError(t, err)
	require.NotSame(t, m, sum)
	require.Equal(t, [][]float64{{2, -4}, {6, 8}, {30, 12}}, sum.ToRows())
	require.Equal(t, m.Size(), sum.Size())

	// additive inverse: M + (-M) == 0
	zero, err := matrix.Zeros(3, 2)
	require.NoError(t, err)
	inv, err := m.Add(m.Negate())
	require.NoError(t, err)
	requireEqualMatrix(t, zero, inv)
}

func TestSub(t *testing.T) {
	m := sampleMatrix(t)
	ones := mustMatrix(t, [][]int{{1, 1}, {1, 1}, {1, 1}})

	diff, err := m.Sub(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, diff.ToRows())

	diff, err = m.Sub(ones)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, -3}, {2, 3}, {14, 5}}, diff.ToRows())

	// facades agree with methods
	viaDiff, err := matrix.Diff(m, ones)
	require.NoError(t, err)
	requireEqualMatrix(t, diff, viaDiff)
	viaSum, err := matrix.Sum(diff, ones)
	require.NoError(t, err)
	requireEqualMatrix(t, m, viaSum)
}

func TestAddSub_Errors(t *testing.T) {
	m := sampleMatrix(t)
	small := mustMatrix(t, [][]int{{1, -2}, {3, 4}})
	mSnap, smallSnap := m.ToRows(), small.ToRows()

	_, err := m.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNotAddable)
	_, err = m.Add(small)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)

	_, err = m.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNotSubtractable)
	_, err = m.Sub(small)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.Sum(nil, m)
	require.ErrorIs(t, err, matrix.ErrNotAddable)
	_, err = matrix.Diff(nil, m)
	require.ErrorIs(t, err, matrix.ErrNotSubtractable)

	requireUnchanged(t, m, mSnap)
	requireUnchanged(t, small, smallSnap)
}

func TestMul(t *testing.T) {
	m := sampleMatrix(t)
	ones := mustMatrix(t, [][]int{{1, 1, 1}, {1, 1, 1}})

	cases := []struct {
		name string
		a, b *matrix.Matrix
		want [][]float64
	}{
		{"m × mᵀ", m, m.Transpose(), [][]float64{{5, -5, 3}, {-5, 25, 69}, {3, 69, 261}}},
		{"mᵀ × m", m.Transpose(), m, [][]float64{{235, 100}, {100, 56}}},
		{"m × ones", m, ones, [][]float64{{-1, -1, -1}, {7, 7, 7}, {21, 21, 21}}},
		{"ones × m", ones, m, [][]float64{{19, 8}, {19, 8}}},
		{"m × zero column", m, mustMatrix(t, [][]int{{0}, {0}}), [][]float64{{0}, {0}, {0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Mul(tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.ToRows())

			viaProduct, err := matrix.Product(tc.a, tc.b)
			require.NoError(t, err)
			requireEqualMatrix(t, got, viaProduct)
		})
	}
}

func TestMul_Identity(t *testing.T) {
	m := sampleMatrix(t)
	i2, err := matrix.Identity(2)
	require.NoError(t, err)
	i3, err := matrix.Identity(3)
	require.NoError(t, err)

	right, err := m.Mul(i2)
	require.NoError(t, err)
	requireEqualMatrix(t, m, right)
	left, err := i3.Mul(m)
	require.NoError(t, err)
	requireEqualMatrix(t, m, left)
}

// TestMul_EmptyInner checks that an inner dimension of 0 gives a zero matrix.
func TestMul_EmptyInner(t *testing.T) {
	a, err := matrix.Zeros(3, 0)
	require.NoError(t, err)
	b, err := matrix.Zeros(0, 2)
	require.NoError(t, err)

	got, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, got.ToRows())
}

func TestMul_Errors(t *testing.T) {
	m := sampleMatrix(t)
	square := mustMatrix(t, [][]int{{1, -2}, {3, 4}, {5, 6}})
	mSnap, sqSnap := m.ToRows(), square.ToRows()

	_, err := m.Mul(square)
	require.ErrorIs(t, err, matrix.ErrNotConformable)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = m.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrNotMultipliable)
	_, err = matrix.Product(nil, m)
	require.ErrorIs(t, err, matrix.ErrNotMultipliable)

	requireUnchanged(t, m, mSnap)
	requireUnchanged(t, square, sqSnap)
}

func TestMulVec(t *testing.T) {
	m := sampleMatrix(t)

	got, err := m.MulVec(vector.New(1, 2))
	require.NoError(t, err)
	require.True(t, got.Equal(vector.New(-3, 11, 27)), got.String())

	got, err = m.MulVec(vector.New(0, 0))
	require.NoError(t, err)
	require.True(t, got.Equal(vector.New(0, 0, 0)))

	// fractional entries are carried into the column unchanged
	got, err = m.MulVec(vector.New(0.5, -0.25))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0.5, 6}, got.Elements())

	got, err = matrix.MatVecMul(m, vector.New(1, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{-3, 11, 27}, got.Elements())

	// a row-less matrix times an empty vector is an empty vector
	empty := mustMatrix(t, [][]int{})
	got, err = empty.MulVec(vector.New[int]())
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
}

func TestMulVec_Errors(t *testing.T) {
	m := sampleMatrix(t)
	v := vector.New(-3, 11, 27)
	snap := m.ToRows()

	_, err := m.MulVec(v)
	require.ErrorIs(t, err, matrix.ErrVectorNotConformable)
	_, err = m.MulVec(vector.New(0))
	require.ErrorIs(t, err, matrix.ErrVectorNotConformable)
	_, err = m.MulVec(nil)
	require.ErrorIs(t, err, matrix.ErrNotMultipliable)
	_, err = matrix.MatVecMul(nil, v)
	require.ErrorIs(t, err, matrix.ErrNotMultipliable)

	requireUnchanged(t, m, snap)
	require.Equal(t, []float64{-3, 11, 27}, v.Elements())
}

func TestMultiply_Dispatch(t *testing.T) {
	m := sampleMatrix(t)

	res, err := m.Multiply(m.Transpose())
	require.NoError(t, err)
	prod, ok := res.(*matrix.Matrix)
	require.True(t, ok)
	require.Equal(t, "3 × 3", prod.Size())

	res, err = m.Multiply(vector.New(1, 2))
	require.NoError(t, err)
	vec, ok := res.(*vector.Vector)
	require.True(t, ok)
	require.Equal(t, []float64{-3, 11, 27}, vec.Elements())

	// conformability errors surface unchanged
	res, err = m.Multiply(m)
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrNotConformable)
	res, err = m.Multiply(vector.New(1, 2, 3))
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrVectorNotConformable)

	for _, bad := range []any{1, "string", [][]float64{{1, -2}, {3, 4}}, nil, (*matrix.Matrix)(nil), (*vector.Vector)(nil)} {
		res, err = m.Multiply(bad)
		require.Nil(t, res)
		require.ErrorIs(t, err, matrix.ErrNotMultipliable)
	}
}

func TestMapNegateScale(t *testing.T) {
	m := sampleMatrix(t)
	snap := m.ToRows()

	require.Equal(t, [][]float64{{2, -4}, {6, 8}, {30, 12}}, m.Map(func(v float64) float64 { return v * 2 }).ToRows())
	require.Equal(t, [][]float64{{-1, 2}, {-3, -4}, {-15, -6}}, m.Negate().ToRows())
	require.Equal(t, [][]float64{{0.5, -1}, {1.5, 2}, {7.5, 3}}, m.Scale(0.5).ToRows())
	requireEqualMatrix(t, m, m.Negate().Negate())

	requireUnchanged(t, m, snap)
}

// TestSubSelfIsZero is the additive identity for several shapes.
func TestSubSelfIsZero(t *testing.T) {
	for _, rows := range [][][]float64{
		{{1, -2}, {3, 4}, {15, 6}},
		{{0.1, 0.2, 0.3}},
		{{-7}},
		{},
	} {
		m := mustMatrix(t, rows)
		zero, err := matrix.Zeros(m.Dims())
		require.NoError(t, err)
		diff, err := m.Sub(m)
		require.NoError(t, err)
		requireEqualMatrix(t, zero, diff)
	}
}

func TestT(t *testing.T) {
	m := sampleMatrix(t)
	requireEqualMatrix(t, m.Transpose(), matrix.T(m))
}
