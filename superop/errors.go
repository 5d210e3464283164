// SPDX-License-Identifier: MIT

package superop

import "errors"

var (
	// ErrNilOperand indicates a nil operator or superoperator argument.
	ErrNilOperand = errors.New("superop: nil operand")

	// ErrNotSquare indicates an operator that is not square.
	ErrNotSquare = errors.New("superop: operator is not square")

	// ErrDimensionMismatch indicates operands acting on different Hilbert spaces.
	ErrDimensionMismatch = errors.New("superop: dimension mismatch")

	// ErrNotVectorized indicates a matrix that is not a d²-sized column or a
	// d²×d² superoperator.
	ErrNotVectorized = errors.New("superop: not a vectorized operator")
)
