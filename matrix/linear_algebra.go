// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix products and
// (conjugate) transposition. All functions validate fail-fast and return
// clear errors on dimension mismatches.
//
// Notes:
//   - Products go through gonum's cblas128.Gemm on the flat row-major buffers.
//   - Element-wise kernels use gonum's cmplxs slice routines.
//   - Every kernel allocates its result; operands are never mutated.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opAddScaled = "AddScaled"
	opMul       = "Mul"
	opDaggerMul = "DaggerMul"
	opTranspose = "Transpose"
	opConj      = "Conj"
	opDagger    = "Dagger"
	opKron      = "Kron"
	opIdentity  = "Identity"
	opZeros     = "Zeros"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// general exposes a *Dense as a cblas128.General sharing the same buffer.
func (m *Dense) general() cblas128.General {
	return cblas128.General{Rows: m.r, Cols: m.c, Stride: m.c, Data: m.data}
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize both operands as *Dense (no copy when already Dense).
//   - Stage 3: clone a and apply cmplxs.Add / cmplxs.Sub on the flat buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func addSub(a, b Matrix, sign int, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := da.clone()
	if sign < 0 {
		cmplxs.Sub(res.data, db.data)
	} else {
		cmplxs.Add(res.data, db.data)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := dm.clone()
	cmplxs.Scale(alpha, res.data)

	return res, nil
}

// AddScaled accumulates m += alpha * x in place.
//
// Implementation:
//   - Stage 1: validate x and the shapes.
//   - Stage 2: compute into a scratch copy; enforce the numeric policy.
//   - Stage 3: commit the scratch buffer.
//
// Behavior highlights:
//   - All-or-nothing: on error the receiver is left untouched.
//   - This is the accumulation primitive of weighted operator sums.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the scratch buffer.
func (m *Dense) AddScaled(alpha complex128, x Matrix) error {
	if m == nil {
		return matrixErrorf(opAddScaled, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(m, x); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	dx, err := asDense(x)
	if err != nil {
		return matrixErrorf(opAddScaled, err)
	}

	scratch := make([]complex128, len(m.data))
	cmplxs.AddScaledTo(scratch, m.data, alpha, dx.data)
	if m.validateNaNInf {
		for idx, v := range scratch {
			if !isFinite(v) {
				return matrixErrorf(opAddScaled, denseErrorf(ctxSet, idx/m.c, idx%m.c, ErrNaNInf))
			}
		}
	}
	copy(m.data, scratch)

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: allocate C (A.Rows × B.Cols).
//   - Stage 3: cblas128.Gemm(NoTrans, NoTrans, 1, A, B, 0, C).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return gemm(opMul, blas.NoTrans, a, b, a.Rows())
}

// DaggerMul computes C = A† × B without materializing A†.
// A must have as many rows as B; the result is A.Cols × B.Cols.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (A.Rows != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - This is the X = A_m†·A_n product of the Lindblad anticommutator term.
func DaggerMul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDaggerMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opDaggerMul, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opDaggerMul, ErrDimensionMismatch)
	}

	return gemm(opDaggerMul, blas.ConjTrans, a, b, a.Cols())
}

// gemm runs C = op(A)·B where rows is the row count of op(A).
// Operands are validated by the caller.
func gemm(tag string, tA blas.Transpose, a, b Matrix, rows int) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := NewDense(rows, db.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	cblas128.Gemm(tA, blas.NoTrans, 1, da.general(), db.general(), 0, res.general())

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	return transpose(opTranspose, m, false)
}

// Dagger returns the conjugate transpose m† (Hermitian adjoint).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Dagger(m Matrix) (*Dense, error) {
	return transpose(opDagger, m, true)
}

// Conj returns the element-wise complex conjugate of m.
func Conj(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConj, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opConj, err)
	}

	res := dm.clone()
	for idx, v := range res.data {
		res.data[idx] = complex(real(v), -imag(v))
	}

	return res, nil
}

// transpose is the shared body of Transpose and Dagger.
// data[i*cols + j] → res.data[j*rows + i], conjugated when conj is set.
func transpose(tag string, m Matrix, conj bool) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res.validateNaNInf = dm.validateNaNInf

	var i, j, baseSrc int
	var v complex128
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			v = dm.data[baseSrc+j]
			if conj {
				v = complex(real(v), -imag(v))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
