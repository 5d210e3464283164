// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Validator tags prefixed to every error returned from this file.
const (
	tagNotNil     = "ValidateNotNil"
	tagSameShape  = "ValidateSameShape"
	tagSquare     = "ValidateSquare"
	tagBinary     = "ValidateBinarySameShape"
	tagSquareNN   = "ValidateSquareNonNil"
	tagMulCompat  = "ValidateMulCompatible"
	shapeMismatch = "%s: %d×%d vs %d×%d: %w"
)

func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil rejects a nil interface or a typed nil *Dense among ms.
// The error names the position of the first offending operand.
func ValidateNotNil(ms ...Matrix) error {
	for i, m := range ms {
		if isNil(m) {
			return fmt.Errorf("%s: operand %d: %w", tagNotNil, i, ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b have equal
// dimensions. Both must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf(shapeMismatch, tagSameShape, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare reports ErrNonSquare unless m is square. m must be non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("%s: %d×%d: %w", tagSquare, m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape runs ValidateNotNil then ValidateSameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a, b); err != nil {
		return fmt.Errorf("%s: %w", tagBinary, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return fmt.Errorf("%s: %w", tagBinary, err)
	}

	return nil
}

// ValidateSquareNonNil runs ValidateNotNil then ValidateSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", tagSquareNN, err)
	}
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", tagSquareNN, err)
	}

	return nil
}

// ValidateMulCompatible checks that a·b is defined: both non-nil and
// a.Cols() == b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a, b); err != nil {
		return fmt.Errorf("%s: %w", tagMulCompat, err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf(shapeMismatch, tagMulCompat, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// asDense returns m itself when it is a *Dense and a flat copy read through
// At otherwise. m must be non-nil.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		for j := range cols {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
