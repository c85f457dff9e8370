// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vector"
	"github.com/urfave/cli/v2"
)

// logger writes progress to the error stream when --verbose is set.
func logger(c *cli.Context) *log.Logger {
	if !c.Bool("verbose") {
		return log.New(io.Discard, "", 0)
	}

	return log.New(c.App.ErrWriter, "lvlinalg: ", log.LstdFlags)
}

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return fmt.Errorf("%s: expected %d file argument(s), got %d", c.Command.Name, n, c.NArg())
	}

	return nil
}

// renderOptions maps the --width/--precision flags to matrix render options.
func renderOptions(c *cli.Context) ([]matrix.RenderOption, error) {
	width, precision := c.Int("width"), c.Int("precision")
	if width < 1 {
		return nil, fmt.Errorf("--width must be >= 1, got %d", width)
	}
	if precision < -1 {
		return nil, fmt.Errorf("--precision must be >= -1, got %d", precision)
	}

	return []matrix.RenderOption{matrix.WithCellWidth(width), matrix.WithPrecision(precision)}, nil
}

// printResult writes a matrix with the render flags applied, or any other
// value with its default formatting.
func printResult(c *cli.Context, res any) error {
	w := c.App.Writer
	if m, ok := res.(*matrix.Matrix); ok {
		opts, err := renderOptions(c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, m.Render(opts...))
		return err
	}
	_, err := fmt.Fprintln(w, res)

	return err
}

func showAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	logger(c).Println("reading", c.Args().First())
	x, err := loadOperand(c.Args().First())
	if err != nil {
		return err
	}

	return printResult(c, x)
}

func transposeAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	m, err := loadMatrix(c.Args().First())
	if err != nil {
		return err
	}

	return printResult(c, m.Transpose())
}

// binaryMatrixAction builds an action for a matrix op matrix command.
func binaryMatrixAction(op func(a, b *matrix.Matrix) (*matrix.Matrix, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := requireArgs(c, 2); err != nil {
			return err
		}
		lg := logger(c)
		lg.Println("reading", c.Args().Get(0))
		a, err := loadMatrix(c.Args().Get(0))
		if err != nil {
			return err
		}
		lg.Println("reading", c.Args().Get(1))
		b, err := loadMatrix(c.Args().Get(1))
		if err != nil {
			return err
		}
		res, err := op(a, b)
		if err != nil {
			return err
		}

		return printResult(c, res)
	}
}

func mulAction(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	a, err := loadMatrix(c.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := loadOperand(c.Args().Get(1))
	if err != nil {
		return err
	}
	logger(c).Printf("multiplying %s by %T", a.Size(), b)
	res, err := a.Multiply(b)
	if err != nil {
		return err
	}

	return printResult(c, res)
}

func dotAction(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	a, err := loadVector(c.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := loadVector(c.Args().Get(1))
	if err != nil {
		return err
	}
	p, err := a.ScalarProduct(b)
	if err != nil {
		return err
	}

	return printResult(c, p)
}

func normAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	kind, err := matrix.ParseNormKind(c.String("kind"))
	if err != nil {
		return err
	}
	m, err := loadMatrix(c.Args().First())
	if err != nil {
		return err
	}
	n, err := m.Norm(kind)
	if err != nil {
		return err
	}

	return printResult(c, n)
}

func formatExtremum(label string, e matrix.Extremum) string {
	s := fmt.Sprintf("%s %g at", label, e.Value)
	for _, p := range e.Indexes {
		s += fmt.Sprintf(" (%d,%d)", p.Row, p.Col)
	}

	return s
}

func extremaAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	m, err := loadMatrix(c.Args().First())
	if err != nil {
		return err
	}
	if err := printResult(c, formatExtremum("min", m.MinElements())); err != nil {
		return err
	}

	return printResult(c, formatExtremum("max", m.MaxElements()))
}

func saddleAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	m, err := loadMatrix(c.Args().First())
	if err != nil {
		return err
	}
	points := m.SaddlePoints()
	logger(c).Printf("%d saddle point(s)", len(points))
	for _, p := range points {
		if err := printResult(c, fmt.Sprintf("%g at (%d,%d)", p.Value, p.Position.Row, p.Position.Col)); err != nil {
			return err
		}
	}

	return nil
}

// equalAction compares exactly unless a tolerance is given, then uses AllClose.
func equalAction(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	a, err := loadOperand(c.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := loadOperand(c.Args().Get(1))
	if err != nil {
		return err
	}

	if va, ok := a.(*vector.Vector); ok {
		vb, _ := b.(*vector.Vector)
		return printResult(c, va.Equal(vb))
	}
	ma := a.(*matrix.Matrix)
	mb, ok := b.(*matrix.Matrix)
	if !ok {
		return printResult(c, false)
	}

	rtol, atol := c.Float64("rtol"), c.Float64("atol")
	var eq bool
	if rtol == 0 && atol == 0 {
		eq, err = ma.Equal(mb)
	} else {
		eq, err = ma.AllClose(mb, rtol, atol)
	}
	if err != nil {
		return err
	}

	return printResult(c, eq)
}
