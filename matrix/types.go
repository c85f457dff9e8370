// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the Matrix value type and the plain aggregates returned
// by structural queries. Errors, options and kernels live in dedicated files.
package matrix

import "fmt"

// Matrix is an immutable, row-major, rectangular array of float64 values.
//   - r,c hold dimensions; either may be zero (0×0, 0×c and r×0 are all legal).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Every operation returns a freshly allocated Matrix; receivers and operands are
// never mutated, so a *Matrix may be shared between goroutines without locking.
type Matrix struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c), owned
}

// Compile-time assertion for fmt.Stringer conformance (Display).
var _ fmt.Stringer = (*Matrix)(nil)

// Position is a (row, column) coordinate pair, zero-based.
type Position struct {
	Row int
	Col int
}

// Extremum is the result of MinElements/MaxElements: the extremal value and
// every position holding it, in row-major order.
type Extremum struct {
	Value   float64
	Indexes []Position
}

// SaddlePoint is one cell that is both a row extremum and the opposite column
// extremum.
type SaddlePoint struct {
	Value    float64
	Position Position
}
