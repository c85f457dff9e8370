// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind shared by the vector and matrix
// packages. Every other sentinel wraps it, so errors.Is(err, ErrInvalidArgument)
// holds for any validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrNonNumeric is returned by FromValues when an element is not a number.
	ErrNonNumeric = fmt.Errorf("vector: all the elements should be numeric: %w", ErrInvalidArgument)

	// ErrNotVector is returned when the other operand of ScalarProduct is nil.
	ErrNotVector = fmt.Errorf("vector: vector can be multiplied only with a vector: %w", ErrInvalidArgument)

	// ErrSizeMismatch is returned when two vectors of different lengths are combined.
	ErrSizeMismatch = fmt.Errorf("vector: vectors should be of the same size: %w", ErrInvalidArgument)

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = fmt.Errorf("vector: index out of range: %w", ErrInvalidArgument)
)
