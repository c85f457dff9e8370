// SPDX-License-Identifier: MIT

// Package number defines the scalar constraint shared by the vector and matrix
// packages, together with the conversions used at their construction boundary.
//
// All numeric kinds (signed, unsigned, floating) are treated uniformly as real
// numbers: constructors convert them to float64 once, and every kernel works on
// float64 afterwards.
package number

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ToFloat64s converts xs into a freshly allocated []float64.
// A nil input yields an empty, non-nil slice.
func ToFloat64s[T Number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

// FromAny converts a dynamically typed scalar into float64.
// The boolean is false when v is not a Go numeric kind; values decoded from
// YAML/JSON (int, int64, uint64, float64) are all accepted.
func FromAny(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
