// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const opNorm = "Norm"

// NormKind selects the matrix norm computed by Norm.
// The zero value NormUnspecified is rejected, modelling a call with no kind.
type NormKind int

const (
	// NormUnspecified is the zero value; Norm rejects it with ErrNormKind.
	NormUnspecified NormKind = iota
	// NormFrobenius is √(Σ a[i,j]²).
	NormFrobenius
	// NormInfinity is the maximum absolute row sum.
	NormInfinity
	// NormOne is the maximum absolute column sum.
	NormOne
)

// String returns the canonical name of k.
func (k NormKind) String() string {
	switch k {
	case NormFrobenius:
		return "Frobenius"
	case NormInfinity:
		return "infinity"
	case NormOne:
		return "one"
	case NormUnspecified:
		return "unspecified"
	default:
		return fmt.Sprintf("NormKind(%d)", int(k))
	}
}

// ParseNormKind maps a textual name to a NormKind, case-insensitively:
// "frobenius"/"fro", "infinity"/"inf", "one"/"1".
// Errors: ErrNormKind for anything else, including "".
func ParseNormKind(s string) (NormKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "frobenius", "fro":
		return NormFrobenius, nil
	case "infinity", "inf":
		return NormInfinity, nil
	case "one", "1":
		return NormOne, nil
	default:
		return NormUnspecified, matrixErrorf(opNorm, fmt.Errorf("%q: %w", s, ErrNormKind))
	}
}

// Norm returns the requested norm of m.
//
// Implementation:
//   - NormFrobenius: square root of the sum of squares of all elements.
//   - NormInfinity : max over rows of Σ_j |a[i,j]|.
//   - NormOne      : max over columns of Σ_i |a[i,j]|.
//
// Behavior highlights:
//   - Empty matrices (no rows or no columns) have norm 0 for every kind.
//
// Errors:
//   - ErrNormKind for NormUnspecified or any value outside the three kinds.
//
// Complexity:
//   - Time O(r*c), Space O(c) for NormOne, O(1) otherwise.
func (m *Matrix) Norm(kind NormKind) (float64, error) {
	switch kind {
	case NormFrobenius:
		return m.frobenius(), nil
	case NormInfinity:
		return m.maxAbsRowSum(), nil
	case NormOne:
		return m.maxAbsColSum(), nil
	default:
		return 0, matrixErrorf(opNorm, fmt.Errorf("%v: %w", kind, ErrNormKind))
	}
}

func (m *Matrix) frobenius() float64 {
	sum := ZeroSum
	for _, v := range m.data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

func (m *Matrix) maxAbsRowSum() float64 {
	best := ZeroSum
	var i, j, base int
	var sum float64
	for i = 0; i < m.r; i++ {
		sum = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sum += math.Abs(m.data[base+j])
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

func (m *Matrix) maxAbsColSum() float64 {
	sums := make([]float64, m.c)
	m.Do(func(_, j int, v float64) bool {
		sums[j] += math.Abs(v)
		return true
	})
	best := ZeroSum
	for _, s := range sums {
		if s > best {
			best = s
		}
	}

	return best
}
