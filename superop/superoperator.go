// SPDX-License-Identifier: MIT

package superop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinqobj/matrix"
)

// Operation tags for error wrapping.
const (
	opSpre     = "Spre"
	opSpost    = "Spost"
	opSprepost = "Sprepost"
	opFrom     = "FromMatrix"
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opApply    = "Apply"
	opVec      = "Vec"
	opUnvec    = "Unvec"
)

func superopErrorf(tag string, err error) error {
	return fmt.Errorf("superop.%s: %w", tag, err)
}

// Superoperator is a d²×d² matrix acting on column-stacked d×d operators.
// The zero value is not usable; build one with Spre, Spost, Sprepost or
// FromMatrix.
type Superoperator struct {
	m   *matrix.Dense
	dim int // Hilbert-space dimension d
}

// Dim returns the dimension d of the Hilbert space the superoperator acts on.
func (s *Superoperator) Dim() int { return s.dim }

// Size returns d², the row (and column) count of the superoperator matrix.
func (s *Superoperator) Size() int { return s.dim * s.dim }

// Matrix returns the underlying d²×d² matrix. The caller owns it together
// with the superoperator.
func (s *Superoperator) Matrix() *matrix.Dense { return s.m }

// String renders the superoperator matrix row by row.
func (s *Superoperator) String() string { return s.m.String() }

// FromMatrix wraps a copy of a d²×d² matrix as a Superoperator.
// Returns ErrNotVectorized when the size is not a perfect square.
func FromMatrix(m matrix.Matrix) (*Superoperator, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, superopErrorf(opFrom, err)
	}
	dim, ok := isqrt(m.Rows())
	if !ok {
		return nil, superopErrorf(opFrom, ErrNotVectorized)
	}
	cp, err := matrix.Scale(m, 1)
	if err != nil {
		return nil, superopErrorf(opFrom, err)
	}

	return &Superoperator{m: cp, dim: dim}, nil
}

// Spre returns the superoperator ρ ↦ A·ρ, i.e. I ⊗ A.
//
// Errors:
//   - ErrNilOperand, ErrNotSquare.
//
// Complexity:
//   - Time O(d⁴), Space O(d⁴).
func Spre(a matrix.Matrix) (*Superoperator, error) {
	dim, err := operatorDim(a)
	if err != nil {
		return nil, superopErrorf(opSpre, err)
	}
	eye, err := matrix.Identity(dim)
	if err != nil {
		return nil, superopErrorf(opSpre, err)
	}
	m, err := matrix.Kron(eye, a)
	if err != nil {
		return nil, superopErrorf(opSpre, err)
	}

	return &Superoperator{m: m, dim: dim}, nil
}

// Spost returns the superoperator ρ ↦ ρ·B, i.e. Bᵀ ⊗ I.
//
// Errors:
//   - ErrNilOperand, ErrNotSquare.
//
// Complexity:
//   - Time O(d⁴), Space O(d⁴).
func Spost(b matrix.Matrix) (*Superoperator, error) {
	dim, err := operatorDim(b)
	if err != nil {
		return nil, superopErrorf(opSpost, err)
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, superopErrorf(opSpost, err)
	}
	eye, err := matrix.Identity(dim)
	if err != nil {
		return nil, superopErrorf(opSpost, err)
	}
	m, err := matrix.Kron(bt, eye)
	if err != nil {
		return nil, superopErrorf(opSpost, err)
	}

	return &Superoperator{m: m, dim: dim}, nil
}

// Sprepost returns the superoperator ρ ↦ A·ρ·B, i.e. Bᵀ ⊗ A.
// A and B must act on the same Hilbert space.
//
// Errors:
//   - ErrNilOperand, ErrNotSquare, ErrDimensionMismatch.
func Sprepost(a, b matrix.Matrix) (*Superoperator, error) {
	dimA, err := operatorDim(a)
	if err != nil {
		return nil, superopErrorf(opSprepost, err)
	}
	dimB, err := operatorDim(b)
	if err != nil {
		return nil, superopErrorf(opSprepost, err)
	}
	if dimA != dimB {
		return nil, superopErrorf(opSprepost, fmt.Errorf("%d vs %d: %w", dimA, dimB, ErrDimensionMismatch))
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, superopErrorf(opSprepost, err)
	}
	m, err := matrix.Kron(bt, a)
	if err != nil {
		return nil, superopErrorf(opSprepost, err)
	}

	return &Superoperator{m: m, dim: dimA}, nil
}

// Add returns a + b.
func Add(a, b *Superoperator) (*Superoperator, error) {
	if err := sameSpace(a, b); err != nil {
		return nil, superopErrorf(opAdd, err)
	}
	m, err := matrix.Add(a.m, b.m)
	if err != nil {
		return nil, superopErrorf(opAdd, err)
	}

	return &Superoperator{m: m, dim: a.dim}, nil
}

// Sub returns a - b.
func Sub(a, b *Superoperator) (*Superoperator, error) {
	if err := sameSpace(a, b); err != nil {
		return nil, superopErrorf(opSub, err)
	}
	m, err := matrix.Sub(a.m, b.m)
	if err != nil {
		return nil, superopErrorf(opSub, err)
	}

	return &Superoperator{m: m, dim: a.dim}, nil
}

// Scale returns alpha · s.
func Scale(s *Superoperator, alpha complex128) (*Superoperator, error) {
	if s == nil {
		return nil, superopErrorf(opScale, ErrNilOperand)
	}
	m, err := matrix.Scale(s.m, alpha)
	if err != nil {
		return nil, superopErrorf(opScale, err)
	}

	return &Superoperator{m: m, dim: s.dim}, nil
}

// AddScaled accumulates s += alpha · x in place (all-or-nothing).
func (s *Superoperator) AddScaled(alpha complex128, x *Superoperator) error {
	if err := sameSpace(s, x); err != nil {
		return superopErrorf(opAdd, err)
	}

	return s.m.AddScaled(alpha, x.m)
}

// Apply evaluates the superoperator on a d×d operator ρ and returns the
// resulting d×d operator: unvec(S · vec(ρ)).
func (s *Superoperator) Apply(rho matrix.Matrix) (*matrix.Dense, error) {
	if s == nil {
		return nil, superopErrorf(opApply, ErrNilOperand)
	}
	v, err := Vec(rho)
	if err != nil {
		return nil, superopErrorf(opApply, err)
	}
	if v.Rows() != s.Size() {
		return nil, superopErrorf(opApply, ErrDimensionMismatch)
	}
	out, err := matrix.Mul(s.m, v)
	if err != nil {
		return nil, superopErrorf(opApply, err)
	}

	return Unvec(out)
}

// AllClose reports whether two superoperators act on the same space and agree
// element-wise within tol.
func AllClose(a, b *Superoperator, tol float64) bool {
	if sameSpace(a, b) != nil {
		return false
	}

	return matrix.AllClose(a.m, b.m, tol)
}

// Vec column-stacks a d×d operator into a d²×1 column.
func Vec(rho matrix.Matrix) (*matrix.Dense, error) {
	dim, err := operatorDim(rho)
	if err != nil {
		return nil, superopErrorf(opVec, err)
	}
	out, err := matrix.NewDense(dim*dim, 1)
	if err != nil {
		return nil, superopErrorf(opVec, err)
	}
	var i, j int
	var v complex128
	for j = 0; j < dim; j++ {
		for i = 0; i < dim; i++ {
			if v, err = rho.At(i, j); err != nil {
				return nil, superopErrorf(opVec, err)
			}
			if err = out.Set(i+j*dim, 0, v); err != nil {
				return nil, superopErrorf(opVec, err)
			}
		}
	}

	return out, nil
}

// Unvec reshapes a d²×1 column back into the d×d operator it stacks.
func Unvec(v matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(v); err != nil {
		return nil, superopErrorf(opUnvec, err)
	}
	if v.Cols() != 1 {
		return nil, superopErrorf(opUnvec, ErrNotVectorized)
	}
	dim, ok := isqrt(v.Rows())
	if !ok {
		return nil, superopErrorf(opUnvec, ErrNotVectorized)
	}
	out, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, superopErrorf(opUnvec, err)
	}
	var i, j int
	var x complex128
	for j = 0; j < dim; j++ {
		for i = 0; i < dim; i++ {
			if x, err = v.At(i+j*dim, 0); err != nil {
				return nil, superopErrorf(opUnvec, err)
			}
			if err = out.Set(i, j, x); err != nil {
				return nil, superopErrorf(opUnvec, err)
			}
		}
	}

	return out, nil
}

// operatorDim validates a square, non-nil operator and returns its dimension.
func operatorDim(a matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNilOperand, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotSquare, err)
	}

	return a.Rows(), nil
}

func sameSpace(a, b *Superoperator) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	if a.dim != b.dim {
		return fmt.Errorf("%d vs %d: %w", a.dim, b.dim, ErrDimensionMismatch)
	}

	return nil
}

// isqrt returns the integer square root of n and whether n is a perfect square.
func isqrt(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r, r*r == n
}
