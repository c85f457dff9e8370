// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlinalg/number"
)

const (
	opScalarProduct = "ScalarProduct"
	opAt            = "At"
	opFromValues    = "FromValues"

	typeName = "Vector"
)

// Vector is an immutable ordered sequence of float64 values.
// The zero value is an empty vector.
type Vector struct {
	elems []float64 // owned storage, never shared with callers
}

var _ fmt.Stringer = (*Vector)(nil)

// New builds a Vector from any numeric scalars. Integer and floating inputs are
// converted to float64; the input slice is copied.
//
// New() with no arguments returns an empty vector; pass an explicit type
// parameter in that case (vector.New[float64]()).
func New[T number.Number](elems ...T) *Vector {
	return &Vector{elems: number.ToFloat64s(elems)}
}

// FromValues builds a Vector from dynamically typed values. Every argument is
// either a numeric scalar or a slice/array of scalars; slices are flattened one
// level, so FromValues(1, 2, 3) and FromValues([]any{1, 2, 3}) are equivalent.
// Anything else (strings, maps, nil, slices nested two levels deep) fails with
// ErrNonNumeric.
func FromValues(values ...any) (*Vector, error) {
	elems := make([]float64, 0, len(values))
	for _, v := range values {
		rv := reflect.ValueOf(v)
		if v != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			// one level of flattening only
			for i := 0; i < rv.Len(); i++ {
				f, ok := number.FromAny(rv.Index(i).Interface())
				if !ok {
					return nil, fmt.Errorf("%s: element %v: %w", opFromValues, rv.Index(i).Interface(), ErrNonNumeric)
				}
				elems = append(elems, f)
			}
			continue
		}
		f, ok := number.FromAny(v)
		if !ok {
			return nil, fmt.Errorf("%s: element %v: %w", opFromValues, v, ErrNonNumeric)
		}
		elems = append(elems, f)
	}

	return &Vector{elems: elems}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.elems) }

// At returns the element at index i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elems) {
		return 0, fmt.Errorf("%s(%d): %w", opAt, i, ErrOutOfRange)
	}

	return v.elems[i], nil
}

// Elements returns a copy of the elements in order.
func (v *Vector) Elements() []float64 {
	out := make([]float64, len(v.elems))
	copy(out, v.elems)

	return out
}

// Equal reports whether v and other have the same length and equal elements.
// A nil other is never equal to a non-nil receiver.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil {
		return false
	}
	if len(v.elems) != len(other.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != other.elems[i] {
			return false
		}
	}

	return true
}

// ScalarProduct returns Σ v[i]*other[i]. Empty vectors yield 0.
//
// Errors:
//   - ErrNotVector when other is nil.
//   - ErrSizeMismatch when the lengths differ.
func (v *Vector) ScalarProduct(other *Vector) (float64, error) {
	if other == nil {
		return 0, fmt.Errorf("%s: %w", opScalarProduct, ErrNotVector)
	}
	if len(other.elems) != len(v.elems) {
		return 0, fmt.Errorf("%s: %d vs %d: %w", opScalarProduct, len(v.elems), len(other.elems), ErrSizeMismatch)
	}

	return dot(v.elems, other.elems), nil
}

// String renders the vector as "Vector [e0 e1 ...]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(typeName)
	b.WriteString(" [")
	for i, e := range v.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(e, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}

// dot assumes len(x) == len(y).
func dot(x, y []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum
}
