// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/urfave/cli/v2"
)

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Value: matrix.DefaultCellWidth,
			Usage: "minimum width of a matrix cell",
		},
		&cli.IntFlag{
			Name:  "precision",
			Value: matrix.DefaultPrecision,
			Usage: "digits after the decimal point for fractional values (-1: truncate toward zero)",
		},
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "lvlinalg",
		HelpName:  "lvlinalg",
		Usage:     "dense matrix and vector operations on YAML/JSON files",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log progress to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "print a matrix or vector",
				ArgsUsage: "FILE",
				Action:    showAction,
				Flags:     renderFlags(),
			},
			{
				Name:      "transpose",
				Usage:     "print the transpose of a matrix",
				ArgsUsage: "FILE",
				Action:    transposeAction,
				Flags:     renderFlags(),
			},
			{
				Name:      "add",
				Usage:     "add two matrices",
				ArgsUsage: "A B",
				Action:    binaryMatrixAction(matrix.Sum),
				Flags:     renderFlags(),
			},
			{
				Name:      "sub",
				Usage:     "subtract matrix B from matrix A",
				ArgsUsage: "A B",
				Action:    binaryMatrixAction(matrix.Diff),
				Flags:     renderFlags(),
			},
			{
				Name:      "mul",
				Usage:     "multiply matrix A by a matrix or vector B",
				ArgsUsage: "A B",
				Action:    mulAction,
				Flags:     renderFlags(),
			},
			{
				Name:      "dot",
				Usage:     "scalar product of two vectors",
				ArgsUsage: "U V",
				Action:    dotAction,
			},
			{
				Name:      "norm",
				Usage:     "matrix norm",
				ArgsUsage: "FILE",
				Action:    normAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kind",
						Value: "frobenius",
						Usage: "norm kind: frobenius, infinity or one",
					},
				},
			},
			{
				Name:      "extrema",
				Usage:     "minimum and maximum elements with their positions",
				ArgsUsage: "FILE",
				Action:    extremaAction,
			},
			{
				Name:      "saddle",
				Usage:     "saddle points of a matrix",
				ArgsUsage: "FILE",
				Action:    saddleAction,
			},
			{
				Name:      "equal",
				Usage:     "compare two matrices or vectors",
				ArgsUsage: "A B",
				Action:    equalAction,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "rtol",
						Usage: "relative tolerance (matrices only)",
					},
					&cli.Float64Flag{
						Name:  "atol",
						Usage: "absolute tolerance (matrices only)",
					},
				},
			},
		},
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
