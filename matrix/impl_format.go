// SPDX-License-Identifier: MIT

// Package matrix - text rendering (Display).
//
// Format (default options):
//
//	Matrix <rows> × <cols>:
//	<row 0 cells>
//	<row 1 cells>
//
// Every cell is right-aligned to DefaultCellWidth characters, cells on a row are
// concatenated with no delimiter, and every row, the last included, ends with
// a newline. Values print as integers ("15", "-2"); fractional values are
// truncated toward zero ("-6.5" prints as "-6") unless WithPrecision asks for
// decimals.
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxIntegral bounds the values printed in plain integer notation.
const maxIntegral = 1e21

// String renders m with the default options. See Render.
func (m *Matrix) String() string { return m.Render() }

// Render renders m as a header line followed by one line per row.
// Without options the output is the canonical Display format, e.g. for
// [[1,-2],[3,4],[15,6]]:
//
//	Matrix 3 × 2:
//	  1 -2
//	  3  4
//	 15  6
//
// Complexity: Time O(r*c), Space O(r*c*w).
func (m *Matrix) Render(opts ...RenderOption) string {
	o := gatherRenderOptions(opts...)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s:\n", o.typeName, m.Size())
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%*s", o.cellWidth, formatCell(m.data[base+j], o.precision))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// formatCell prints integral values without a fractional part. Other values
// are truncated toward zero for precision -1, or printed with precision
// decimals. NaN, ±Inf and magnitudes >= maxIntegral use the 'g' form.
func formatCell(v float64, precision int) string {
	if math.IsNaN(v) || math.Abs(v) >= maxIntegral {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == math.Trunc(v) || precision < 0 {
		t := math.Trunc(v)
		if t == 0 {
			t = 0 // drop the sign of -0 and of truncated (-1, 0) values
		}
		return strconv.FormatFloat(t, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}
