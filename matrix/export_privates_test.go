// SPDX-License-Identifier: MIT

package matrix

// Test bridge for the unexported validators and render helpers.
//
// Purpose:
//   - Expose private checks to matrix_test ONLY; the file compiles with the
//     package's tests and never widens the production API.
//   - Keep all bridges co-located here so a signature change is mirrored once.

var (
	ValidateOperand_TestOnly       = validateOperand
	ValidateSameShape_TestOnly     = validateSameShape
	ValidateMulCompatible_TestOnly = validateMulCompatible
	ValidateVecLen_TestOnly        = validateVecLen
	ValidateTolerance_TestOnly     = validateTolerance
	FormatCell_TestOnly            = formatCell
)
