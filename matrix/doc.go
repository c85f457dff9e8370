// Package matrix offers an immutable dense Matrix of real numbers with matrix
// semantics.
//
// The matrix package provides:
//
//   - Validated construction: New for statically typed rows ([][]int,
//     [][]float64, ...), FromValues for untyped trees such as decoded YAML/JSON,
//     Zeros and Identity for explicit shapes.
//   - Algebra: Equal, Transpose, Add, Sub, Mul (matrix × matrix), MulVec
//     (matrix × vector.Vector), Multiply (dynamic dispatch), Negate, Scale, Map.
//   - Structural queries: MinElements/MaxElements with every tied position,
//     SaddlePoints, and the Frobenius, infinity and one norms.
//   - Helpers: Columns, ToRows, Size, and the Display rendering (String/Render).
//
// Every operation returns a new value; receivers and operands are never
// mutated, and no failed call leaves a partial result behind. All errors wrap
// ErrInvalidArgument and are matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
