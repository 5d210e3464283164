// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Kron computes the Kronecker (tensor) product A ⊗ B.
//
// MAIN DESCRIPTION:
//   - For A (p×q) and B (r×s) the result is (p·r)×(q·s) with
//     (A⊗B)[i·r+k, j·s+l] = A[i,j]·B[k,l].
//
// Implementation:
//   - Stage 1: validate both operands non-nil; materialize as *Dense.
//   - Stage 2: allocate the result; for each non-zero A[i,j] write the scaled
//     block of B into rows i·r.., cols j·s.. with direct offset math.
//
// Behavior highlights:
//   - Zero entries of A are skipped (the result is already zero-filled), which
//     matters for Pauli factors where half the entries vanish.
//   - Order matters: A is the most-significant factor.
//
// Errors:
//   - ErrNilMatrix (nil operand).
//
// Complexity:
//   - Time O(p·q·r·s), Space O(p·q·r·s).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	rows, cols := da.r*db.r, da.c*db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	var i, j, k, l int
	var av complex128
	var dstRow, srcRow int
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			av = da.data[i*da.c+j]
			if av == 0 {
				continue
			}
			for k = 0; k < db.r; k++ {
				dstRow = (i*db.r+k)*cols + j*db.c
				srcRow = k * db.c
				for l = 0; l < db.c; l++ {
					res.data[dstRow+l] = av * db.data[srcRow+l]
				}
			}
		}
	}

	return res, nil
}

// KronAll folds Kron left to right: ms[0] ⊗ ms[1] ⊗ … ⊗ ms[len-1].
// The first factor is the most-significant one. An empty list yields the
// 1×1 identity, the neutral element of ⊗.
//
// Complexity:
//   - Dominated by the last fold: O(Π rows · Π cols).
func KronAll(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return Identity(1)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opKron, fmt.Errorf("factor 0: %w", err))
	}
	acc, err := asDense(ms[0])
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if len(ms) == 1 {
		return acc.clone(), nil
	}
	for idx := 1; idx < len(ms); idx++ {
		if acc, err = Kron(acc, ms[idx]); err != nil {
			return nil, fmt.Errorf("factor %d: %w", idx, err)
		}
	}

	return acc, nil
}
