// SPDX-License-Identifier: MIT

// Package vector provides an immutable, fixed-length sequence of real numbers
// with a scalar (dot) product.
//
// A Vector owns its elements: constructors copy their input and accessors
// return copies, so a value may be shared freely between goroutines.
//
// Construction:
//
//	v := vector.New(1, 2, 3)            // variadic
//	w := vector.New([]int{4, 5, 6}...)  // from a typed slice
//	u, err := vector.FromValues(raw...) // from untyped data (YAML/JSON trees)
//
// Scalar product:
//
//	dot, err := v.ScalarProduct(w) // 1*4 + 2*5 + 3*6 = 32
//
// Errors are package sentinels that all wrap ErrInvalidArgument; match them with
// errors.Is.
package vector
