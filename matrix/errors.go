// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure surfaced by the package is one of the sentinels below, possibly
// wrapped with an operation tag ("Add: ...") by matrixErrorf. Tests and callers
// match them via errors.Is. No exported function panics on user input.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/vector"
)

// ErrInvalidArgument is the single error kind of the library. It is the same
// value as vector.ErrInvalidArgument, so one errors.Is check covers both packages.
var ErrInvalidArgument = vector.ErrInvalidArgument

// ERROR PRIORITY (construction, enforced in tests):
// not rows -> row not array -> ragged rows -> non-numeric element.

var (
	// ErrNotRows is returned when FromValues receives something other than a sequence of rows.
	ErrNotRows = fmt.Errorf("matrix: we expect an array of arrays (rows) as an argument: %w", ErrInvalidArgument)

	// ErrRowNotArray is returned when one of the rows is not itself a sequence.
	ErrRowNotArray = fmt.Errorf("matrix: each row should be an array: %w", ErrInvalidArgument)

	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = fmt.Errorf("matrix: all the rows should have the same length: %w", ErrInvalidArgument)

	// ErrNonNumeric is returned when an element is not a number.
	ErrNonNumeric = fmt.Errorf("matrix: all the elements should be numeric: %w", ErrInvalidArgument)

	// ErrNotComparable is returned by Equal for a nil operand.
	ErrNotComparable = fmt.Errorf("matrix: matrix can be compared only with a matrix: %w", ErrInvalidArgument)

	// ErrNotAddable is returned by Add for a nil operand.
	ErrNotAddable = fmt.Errorf("matrix: matrix can be added only with a matrix: %w", ErrInvalidArgument)

	// ErrNotSubtractable is returned by Sub for a nil operand.
	ErrNotSubtractable = fmt.Errorf("matrix: matrix can be subtracted only with a matrix: %w", ErrInvalidArgument)

	// ErrNotMultipliable is returned when the right operand of a product is neither
	// a matrix nor a vector (or is nil).
	ErrNotMultipliable = fmt.Errorf("matrix: matrix can be multiplied only with a matrix or vector: %w", ErrInvalidArgument)

	// ErrSizeMismatch indicates operands of different shapes in Add/Sub/AllClose.
	ErrSizeMismatch = fmt.Errorf("matrix: matrices should be of the same size: %w", ErrInvalidArgument)

	// ErrNotConformable indicates a.Cols() != b.Rows() in a matrix product.
	ErrNotConformable = fmt.Errorf("matrix: matrices should be conformable for multiplication "+
		"(number of columns of the left matrix is the same as the number of rows of the right matrix): %w", ErrInvalidArgument)

	// ErrVectorNotConformable indicates m.Cols() != v.Len() in a matrix-vector product.
	ErrVectorNotConformable = fmt.Errorf("matrix: matrix and vector should be conformable for multiplication "+
		"(number of columns of the matrix is the same as the number of rows of the vector): %w", ErrInvalidArgument)

	// ErrNormKind is returned by Norm for an unknown or missing NormKind.
	ErrNormKind = fmt.Errorf("matrix: type should be Frobenius, infinity or one: %w", ErrInvalidArgument)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", ErrInvalidArgument)

	// ErrInvalidDimensions indicates negative requested dimensions.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be >= 0: %w", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf where a finite value is required (tolerances).
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", ErrInvalidArgument)
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
