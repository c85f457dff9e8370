// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic operators of Matrix: equality,
// transpose, addition, subtraction, matrix-matrix and matrix-vector products,
// negation, scaling and elementwise mapping. All of them perform fail-fast
// validation and return a fresh Matrix; operands are never mutated.
//
// Notes:
//   - Kernels use central validators and wrap sentinels via matrixErrorf(op*, err).
//   - Loop orders are fixed (row-major), so results are bitwise reproducible.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/vector"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opEqual    = "Equal"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opMultiply = "Multiply"
)

// Equal reports whether m and other have the same shape and numerically equal
// elements. Integer and floating inputs were both stored as float64, so a matrix
// built from 6 equals one built from 6.0.
//
// Errors:
//   - ErrNotComparable when other is nil.
func (m *Matrix) Equal(other *Matrix) (bool, error) {
	if err := validateOperand(other, ErrNotComparable); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if m.r != other.r || m.c != other.c {
		return false, nil
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false, nil
		}
	}

	return true, nil
}

// Transpose returns mᵀ: column j of m becomes row j of the result.
// An r×c matrix yields a c×r one; 0×c and r×0 shapes map to their duals.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Transpose() *Matrix {
	res := newMatrix(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j] // (i,j) -> (j,i)
		}
	}

	return res
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Implementation:
//   - Stage 1: validate other is non-nil, then identical shapes.
//   - Stage 2: single flat loop over both row-major buffers.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for the result.
//
// Errors:
//   - ErrNotAddable (nil operand), ErrSizeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := validateOperand(other, ErrNotAddable); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := validateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opAdd, fmt.Errorf("%s vs %s: %w", m.Size(), other.Size(), err))
	}

	res := newMatrix(m.r, m.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = m.data[idx] + other.data[idx]
	}

	return res, nil
}

// Sub computes C = A - B as A + (-B), so the shape check and its
// ErrSizeMismatch come from Add.
//
// Errors:
//   - ErrNotSubtractable (nil operand), ErrSizeMismatch (shape mismatch).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := validateOperand(other, ErrNotSubtractable); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := m.Add(other.Negate())
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate B (non-nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loops over row-major strides, accumulating
//     C[i,j] += A[i,k]*B[k,j]; each C[i,j] is the scalar product of row i of A
//     and column j of B, summed in increasing k.
//
// Behavior highlights:
//   - Deterministic triple loop; no temporary tiles; one allocation for C.
//   - Inner dimension 0 yields an all-zero r×c result.
//
// Inputs:
//   - other: right matrix with shape (n × c) when m is (r × n).
//
// Returns:
//   - *Matrix: new C with shape (r × c).
//
// Errors:
//   - ErrNotMultipliable (nil operand), ErrNotConformable (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - For a vector right operand use MulVec; Multiply dispatches on the dynamic type.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := validateOperand(other, ErrNotMultipliable); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("%s × %s: %w", m.Size(), other.Size(), err))
	}

	aRows, aCols, bCols := m.r, m.c, other.c
	res := newMatrix(aRows, bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * other.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m · v. The vector is copied into an n×1 column matrix,
// multiplied with Mul, and the only column of the product is returned as a
// Vector of length m.Rows().
//
// Errors:
//   - ErrNotMultipliable (nil vector), ErrVectorNotConformable (m.Cols() != v.Len()).
func (m *Matrix) MulVec(v *vector.Vector) (*vector.Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opMulVec, ErrNotMultipliable)
	}
	if err := validateVecLen(m, v); err != nil {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("%s × %d: %w", m.Size(), v.Len(), err))
	}

	col := newMatrix(v.Len(), 1)
	copy(col.data, v.Elements())
	prod, err := m.Mul(col)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return vector.New(prod.column(0)...), nil
}

// Multiply dispatches on the dynamic type of operand:
//   - *Matrix        -> Mul, result *Matrix;
//   - *vector.Vector -> MulVec, result *vector.Vector;
//   - anything else (including typed nils) -> ErrNotMultipliable.
//
// Prefer Mul/MulVec when the operand type is known statically.
func (m *Matrix) Multiply(operand any) (any, error) {
	switch x := operand.(type) {
	case *Matrix:
		if x == nil {
			break
		}
		res, err := m.Mul(x)
		if err != nil {
			return nil, err // untyped nil, never a typed-nil *Matrix
		}
		return res, nil
	case *vector.Vector:
		if x == nil {
			break
		}
		res, err := m.MulVec(x)
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	return nil, matrixErrorf(opMultiply, fmt.Errorf("operand of type %T: %w", operand, ErrNotMultipliable))
}

// Map returns a new matrix of the same shape with fn applied to every element
// in row-major order. fn should be pure.
func (m *Matrix) Map(fn func(v float64) float64) *Matrix {
	res := newMatrix(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = fn(v)
	}

	return res
}

// Negate returns -m.
func (m *Matrix) Negate() *Matrix {
	return m.Map(func(v float64) float64 { return -v })
}

// Scale returns alpha*m.
func (m *Matrix) Scale(alpha float64) *Matrix {
	return m.Map(func(v float64) float64 { return alpha * v })
}
