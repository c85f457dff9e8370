// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering (Render/String).
// This file defines:
//   - RenderOption / renderOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - The zero configuration reproduces the canonical Display format exactly.
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellWidth is the minimum width of every rendered cell; values are
	// right-aligned and cells are concatenated without a separator.
	DefaultCellWidth = 3

	// DefaultPrecision (-1) truncates fractional values toward zero, so every
	// cell stays an integer.
	DefaultPrecision = -1

	// DefaultTypeName heads the rendering: "<TypeName> <rows> × <cols>:".
	DefaultTypeName = "Matrix"
)

// RenderOption mutates render options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type RenderOption func(*renderOptions)

type renderOptions struct {
	cellWidth int
	precision int
	typeName  string
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		cellWidth: DefaultCellWidth,
		precision: DefaultPrecision,
		typeName:  DefaultTypeName,
	}
}

// gatherRenderOptions applies opts over the defaults in order.
func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithCellWidth sets the minimum cell width. Panics if w < 1.
func WithCellWidth(w int) RenderOption {
	if w < 1 {
		panic(fmt.Sprintf("matrix: WithCellWidth(%d): width must be >= 1", w))
	}

	return func(o *renderOptions) { o.cellWidth = w }
}

// WithPrecision fixes the number of digits after the decimal point for
// non-integral values; -1 restores truncation toward zero. Panics if p < -1.
func WithPrecision(p int) RenderOption {
	if p < -1 {
		panic(fmt.Sprintf("matrix: WithPrecision(%d): precision must be >= -1", p))
	}

	return func(o *renderOptions) { o.precision = p }
}

// WithTypeName replaces the header type name. Panics on an empty name.
func WithTypeName(name string) RenderOption {
	if name == "" {
		panic("matrix: WithTypeName: empty name")
	}

	return func(o *renderOptions) { o.typeName = name }
}
