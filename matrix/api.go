// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin package-level entry points mirroring the methods, for call
//     sites that read better as functions (pipelines, benchmarks, the CLI).
//   - Avoid any logic duplication; each facade delegates to the method.

package matrix

import "github.com/katalvlaran/lvlinalg/vector"

// Sum is an alias for a.Add(b).
func Sum(a, b *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opAdd, ErrNotAddable)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b).
func Diff(a, b *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opSub, ErrNotSubtractable)
	}

	return a.Sub(b)
}

// Product is an alias for a.Mul(b).
func Product(a, b *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opMul, ErrNotMultipliable)
	}

	return a.Mul(b)
}

// MatVecMul is an alias for m.MulVec(v).
func MatVecMul(m *Matrix, v *vector.Vector) (*vector.Vector, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNotMultipliable)
	}

	return m.MulVec(v)
}

// T is an alias for m.Transpose().
func T(m *Matrix) *Matrix { return m.Transpose() }
