// Package lvlinalg is a small dense linear-algebra toolkit: immutable matrices
// and vectors of real numbers with the classic operators and a few structural
// queries on top.
//
// 🚀 What is lvlinalg?
//
//	A pure-Go library that brings together:
//		• Vectors: construction from any numeric type, indexing, scalar product
//		• Matrices: validated construction, equality, transpose, sum, difference
//		• Products: matrix × matrix and matrix × vector behind one entry point
//		• Queries: extrema with every tied position, saddle points
//		• Norms: Frobenius, infinity (max row sum) and one (max column sum)
//		• Display: a fixed-width text rendering with tunable options
//
// ✨ Why choose lvlinalg?
//
//   - Immutable values: every operation returns a new matrix or vector
//   - Fail fast: shape and element checks happen once, at construction
//   - One error kind: every failure matches ErrInvalidArgument via errors.Is
//
// Under the hood, everything is organized under these packages:
//
//	number/         the Number constraint and numeric conversions
//	vector/         Vector and the scalar product
//	matrix/         Matrix, its operators, queries, norms and rendering
//	cmd/lvlinalg/   command-line front end over YAML/JSON files
//
// Quick example:
//
//	m, _ := matrix.New([][]int{{1, -2}, {3, 4}, {15, 6}})
//	fmt.Print(m)
//
//	Matrix 3 × 2:
//	  1 -2
//	  3  4
//	 15  6
//
//	go get github.com/katalvlaran/lvlinalg/matrix
package lvlinalg
