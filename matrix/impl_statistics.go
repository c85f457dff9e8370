// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural queries over the elements of a Matrix: global extrema with every
//     position that attains them, and saddle points.
//
// Exposed API:
//   - MinElements()  -> Extremum     // global minimum + positions (row-major)
//   - MaxElements()  -> Extremum     // global maximum + positions (row-major)
//   - SaddlePoints() -> []SaddlePoint
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; results are emitted in row-major order.
//   - Exact float comparison: ties are detected with ==, no tolerance.

package matrix

import "math"

// MinElements scans all elements and returns the global minimum together with
// every position holding it, in row-major order.
//
// Behavior highlights:
//   - Empty matrix: Value is +Inf and Indexes is empty. Treat it as undefined.
//   - Indexes is always a fresh, non-nil slice.
//
// Complexity:
//   - Time O(r*c), Space O(k) for k tied positions.
func (m *Matrix) MinElements() Extremum {
	res := Extremum{Value: math.Inf(1), Indexes: []Position{}}
	m.Do(func(i, j int, v float64) bool {
		switch {
		case v < res.Value:
			res.Value = v
			res.Indexes = append(res.Indexes[:0], Position{Row: i, Col: j}) // restart the tie list
		case v == res.Value:
			res.Indexes = append(res.Indexes, Position{Row: i, Col: j})
		}
		return true
	})

	return res
}

// MaxElements returns the global maximum and its positions. It is computed as
// MinElements of -m with the value sign-flipped back; negation keeps every
// element in place, so the positions come out in the same row-major order as a
// direct maximum scan would produce.
//
// Empty matrix: Value is -Inf and Indexes is empty.
func (m *Matrix) MaxElements() Extremum {
	res := m.Negate().MinElements()
	res.Value = -res.Value

	return res
}

// SaddlePoints returns every cell that is
//
//	(the minimum of its row AND the maximum of its column) OR
//	(the maximum of its row AND the minimum of its column),
//
// in row-major order, each cell at most once.
//
// Implementation:
//   - Stage 1: if the global minimum equals the global maximum (all elements
//     identical), return an empty slice: no cell is a meaningful saddle point.
//   - Stage 2: per row compute its min/max once; per cell derive the column
//     min/max from the column itself and test the condition.
//
// Returns:
//   - []SaddlePoint: fresh, non-nil; empty when there are none.
//
// Complexity:
//   - Time O(r*c*(c+r)) worst case, Space O(r) per column scan.
//
// Notes:
//   - Column extrema are recomputed for each cell rather than cached, which keeps
//     the query a pure function of the current storage.
func (m *Matrix) SaddlePoints() []SaddlePoint {
	points := []SaddlePoint{}
	if m.MinElements().Value == m.MaxElements().Value {
		return points
	}

	var i, j, base int
	var v, rowMin, rowMax, colMin, colMax float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		rowMin, rowMax = extrema(m.data[base : base+m.c])
		for j = 0; j < m.c; j++ {
			v = m.data[base+j]
			if v != rowMin && v != rowMax {
				continue // cannot qualify; skip the column scan
			}
			colMin, colMax = extrema(m.column(j))
			if (v == rowMin && v == colMax) || (v == rowMax && v == colMin) {
				points = append(points, SaddlePoint{Value: v, Position: Position{Row: i, Col: j}})
			}
		}
	}

	return points
}

// extrema returns (min, max) of xs; (+Inf, -Inf) for an empty slice.
func extrema(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	return lo, hi
}
