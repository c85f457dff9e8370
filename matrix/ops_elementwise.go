// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Approximate comparison of two matrices for callers that cannot rely on
//     exact float equality (Equal): results of products, norms round-trips.
//
// Determinism & Performance:
//   - Single flat pass 0..n-1, early exit on the first violation, no allocations.

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close to anything; +Inf is close to +Inf only.
//
// Policy:
//   - other must be non-nil and have the same shape as m.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNotComparable (nil operand), ErrSizeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) AllClose(other *Matrix, rtol, atol float64) (bool, error) {
	if err := validateTolerance(rtol); err != nil {
		return false, matrixErrorf(opAllClose, fmt.Errorf("rtol: %w", err))
	}
	if err := validateTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, fmt.Errorf("atol: %w", err))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := validateOperand(other, ErrNotComparable); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := validateSameShape(m, other); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var a, b float64
	for idx := range m.data {
		a, b = m.data[idx], other.data[idx]
		if a == b {
			continue // covers equal infinities
		}
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			return false, nil // an infinity is close only to itself
		}
		if !(math.Abs(a-b) <= atol+rtol*math.Abs(b)) { // NaN fails here
			return false, nil
		}
	}

	return true, nil
}
