// SPDX-License-Identifier: MIT

// Package matrix - construction & read-only accessors.
//
// Purpose:
//   - Build a Matrix from statically typed rows (New), from untyped trees (FromValues),
//     or with an explicit shape (Zeros, Identity).
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep algorithmic determinism (fixed row-major loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/FromValues: O(r*c); At: O(1); ToRows/Columns: O(r*c) copy.

package matrix

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvlinalg/number"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxNew        = "New"
	ctxFromValues = "FromValues"
	ctxZeros      = "Zeros"
	ctxIdentity   = "Identity"
)

// newMatrix allocates an r×c zero matrix. Callers guarantee r, c >= 0.
func newMatrix(r, c int) *Matrix {
	return &Matrix{r: r, c: c, data: make([]float64, r*c)}
}

// New builds a Matrix from rows of any numeric type. The rows are copied and
// converted to float64.
//
// Implementation:
//   - Stage 1: take the column count from the first row (0 for zero rows).
//   - Stage 2: verify every row has that length; copy in row-major order.
//
// Errors:
//   - ErrRaggedRows when rows differ in length.
//
// Notes:
//   - Element types are enforced by the compiler, so the only runtime check left
//     is the rectangular shape. Use FromValues for data whose types are unknown
//     until runtime.
//   - New([][]float64{{}, {}}) is a legal 2×0 matrix.
func New[T number.Number](rows [][]T) (*Matrix, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxNew, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
	}

	m := newMatrix(r, c)
	for i, row := range rows {
		base := i * c
		for j, v := range row {
			m.data[base+j] = float64(v)
		}
	}

	return m, nil
}

// FromValues builds a Matrix from a dynamically typed value such as a decoded
// YAML/JSON document ([]any of []any of numbers).
//
// Implementation (first failing stage wins):
//   - Stage 1: raw must be a slice or array; else ErrNotRows.
//   - Stage 2: every row must be a slice or array; else ErrRowNotArray.
//   - Stage 3: every row must have the length of the first; else ErrRaggedRows.
//   - Stage 4: every element must be a Go numeric kind; else ErrNonNumeric.
//
// Behavior highlights:
//   - Each stage scans all rows before the next stage starts, so a non-array row
//     is reported even when an earlier row is ragged or non-numeric.
//   - Typed slices ([][]int, [][]float64, []any{[]int{...}}) are accepted as well.
//
// Errors:
//   - ErrNotRows, ErrRowNotArray, ErrRaggedRows, ErrNonNumeric (all wrap
//     ErrInvalidArgument), tagged with "FromValues".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromValues(raw any) (*Matrix, error) {
	// Stage 1: the outer value is a sequence.
	outer := reflect.ValueOf(raw)
	if !isSequence(outer) {
		return nil, matrixErrorf(ctxFromValues, ErrNotRows)
	}
	r := outer.Len()

	// Stage 2: every row is a sequence.
	rows := make([]reflect.Value, r)
	for i := 0; i < r; i++ {
		rows[i] = reflect.ValueOf(outer.Index(i).Interface()) // unwrap interface elements
		if !isSequence(rows[i]) {
			return nil, matrixErrorf(ctxFromValues, fmt.Errorf("row %d: %w", i, ErrRowNotArray))
		}
	}

	// Stage 3: rectangular shape.
	c := 0
	if r > 0 {
		c = rows[0].Len()
	}
	for i := 1; i < r; i++ {
		if rows[i].Len() != c {
			return nil, matrixErrorf(ctxFromValues, fmt.Errorf("row %d has %d elements, want %d: %w", i, rows[i].Len(), c, ErrRaggedRows))
		}
	}

	// Stage 4: numeric elements, copied in row-major order.
	m := newMatrix(r, c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			el := rows[i].Index(j).Interface()
			v, ok := number.FromAny(el)
			if !ok {
				return nil, matrixErrorf(ctxFromValues, fmt.Errorf("element (%d,%d) %v: %w", i, j, el, ErrNonNumeric))
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// isSequence reports whether v holds a slice or an array.
func isSequence(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// Zeros returns a rows×cols matrix of zeros.
// Errors: ErrInvalidDimensions for negative sizes.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxZeros, ErrInvalidDimensions)
	}

	return newMatrix(rows, cols), nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for negative n.
func Identity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxIdentity, ErrInvalidDimensions)
	}
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Dims packs Rows() and Cols() into a single call.
func (m *Matrix) Dims() (rows, cols int) { return m.r, m.c }

// Size returns the human-readable "R × C" descriptor.
func (m *Matrix) Size() string {
	return fmt.Sprintf("%d × %d", m.r, m.c)
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(ctxAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return m.data[row*m.c+col], nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// It stops early when f returns false. Read-only; no allocations.
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// ToRows returns the elements as a slice of rows. The result is a fresh copy;
// writing to it does not affect m.
func (m *Matrix) ToRows() [][]float64 {
	rows := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = make([]float64, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}

// Columns returns the column-major view: c columns of r elements each, row
// order preserved within a column. It is the rows of mᵀ, recomputed on every
// call.
func (m *Matrix) Columns() [][]float64 {
	return m.Transpose().ToRows()
}

// column copies column j. Callers guarantee 0 <= j < c.
func (m *Matrix) column(j int) []float64 {
	col := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return col
}
