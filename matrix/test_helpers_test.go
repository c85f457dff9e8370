// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the kernel tests.
//   - Keep all data finite and rectangular unless a test says otherwise.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/number"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a Matrix from rows or fails the test.
func mustMatrix[T number.Number](tb testing.TB, rows [][]T) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows)
	require.NoError(tb, err)

	return m
}

// sampleMatrix is the 3×2 fixture used across the suite:
//
//	 1 -2
//	 3  4
//	15  6
func sampleMatrix(tb testing.TB) *matrix.Matrix {
	tb.Helper()

	return mustMatrix(tb, [][]int{{1, -2}, {3, 4}, {15, 6}})
}

// sampleMultipleMinMax has tied minima (-2) and maxima (15).
func sampleMultipleMinMax(tb testing.TB) *matrix.Matrix {
	tb.Helper()

	return mustMatrix(tb, [][]int{{15, -2}, {-2, 15}, {15, 6}})
}

// requireEqualMatrix asserts exact equality via Matrix.Equal.
func requireEqualMatrix(tb testing.TB, want, got *matrix.Matrix) {
	tb.Helper()
	require.NotNil(tb, got)
	eq, err := want.Equal(got)
	require.NoError(tb, err)
	require.Truef(tb, eq, "want:\n%sgot:\n%s", want, got)
}

// requireUnchanged asserts that m still holds exactly the snapshot rows.
func requireUnchanged(tb testing.TB, m *matrix.Matrix, snapshot [][]float64) {
	tb.Helper()
	require.Equal(tb, snapshot, m.ToRows())
}
