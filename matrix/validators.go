// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for operand checks.
//   - Keep kernels minimal by delegating nil/shape/length checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly
//     with their operation tag.
//
// Note:
//   - All checks are pure, O(1) and allocate nothing.
//   - Each check names the sentinel it returns; the operand-kind sentinel is
//     supplied by the caller because its message is operation specific.

package matrix

import (
	"github.com/katalvlaran/lvlinalg/number"
	"github.com/katalvlaran/lvlinalg/vector"
)

// validateOperand returns kindErr when the right operand is nil.
func validateOperand(other *Matrix, kindErr error) error {
	if other == nil {
		return kindErr
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions (ErrSizeMismatch).
// Assumes both are non-nil.
func validateSameShape(a, b *Matrix) error {
	if a.r != b.r || a.c != b.c {
		return ErrSizeMismatch
	}

	return nil
}

// validateMulCompatible ensures a.Cols() == b.Rows() (ErrNotConformable).
// Assumes both are non-nil.
func validateMulCompatible(a, b *Matrix) error {
	if a.c != b.r {
		return ErrNotConformable
	}

	return nil
}

// validateVecLen ensures the vector length matches m.Cols() (ErrVectorNotConformable).
// Assumes both are non-nil.
func validateVecLen(m *Matrix, v *vector.Vector) error {
	if v.Len() != m.c {
		return ErrVectorNotConformable
	}

	return nil
}

// validateTolerance rejects NaN/±Inf tolerances (ErrNaNInf).
func validateTolerance(tol float64) error {
	if !number.IsFinite(tol) {
		return ErrNaNInf
	}

	return nil
}
