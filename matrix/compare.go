// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/cmplxs"

// DefaultTolerance is the absolute/relative tolerance used by callers that
// compare converted operators against reference values.
const DefaultTolerance = 1e-12

// AllClose reports whether a and b have the same shape and every element pair
// agrees within tol (absolute or relative), as cmplxs.EqualApprox defines it.
// Nil operands are never close to anything.
func AllClose(a, b Matrix, tol float64) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}

	return cmplxs.EqualApprox(da.data, db.data, tol)
}

// Equal reports exact element-wise equality of two matrices of the same shape.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}

	return cmplxs.Equal(da.data, db.data)
}
