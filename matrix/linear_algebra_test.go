// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]complex128{{1, 2i}, {3, 4 - 1i}})
	b := MustRows(t, [][]complex128{{1i, 1}, {-3, 2}})

	sumFast, err := matrix.Add(a, b)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	want := MustRows(t, [][]complex128{{1 + 1i, 1 + 2i}, {0, 6 - 1i}})
	require.True(t, matrix.Equal(want, sumFast))
	require.True(t, matrix.Equal(want, sumSlow))

	diff, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)
	want = MustRows(t, [][]complex128{{1 - 1i, -1 + 2i}, {6, 2 - 1i}})
	require.True(t, matrix.Equal(want, diff))

	// Operands untouched.
	require.Equal(t, complex128(1), MustAt(t, a, 0, 0))
}

func TestAddSub_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Add(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	t.Parallel()

	a := MustRows(t, sigmaY)
	got, err := matrix.Scale(a, 1i)
	require.NoError(t, err)
	// i·σy = [[0,1],[-1,0]]
	require.True(t, matrix.Equal(MustRows(t, [][]complex128{{0, 1}, {-1, 0}}), got))

	zero, err := matrix.Scale(hide{a}, 0)
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddScaled_AccumulatesInPlace(t *testing.T) {
	t.Parallel()

	acc := MustDense(t, 2, 2)
	require.NoError(t, acc.AddScaled(2, MustRows(t, sigmaX)))
	require.NoError(t, acc.AddScaled(4, hide{MustRows(t, sigmaZ)}))

	want := MustRows(t, [][]complex128{{4, 2}, {2, -4}})
	require.True(t, matrix.Equal(want, acc))
}

func TestAddScaled_AllOrNothing(t *testing.T) {
	t.Parallel()

	acc := MustRows(t, [][]complex128{{1, 1}, {1, 1}})
	require.ErrorIs(t, acc.AddScaled(cmplx.Inf(), MustRows(t, eye2)), matrix.ErrNaNInf)
	require.True(t, matrix.Equal(MustRows(t, [][]complex128{{1, 1}, {1, 1}}), acc))

	require.ErrorIs(t, acc.AddScaled(1, MustDense(t, 1, 2)), matrix.ErrDimensionMismatch)

	var nilAcc *matrix.Dense
	require.ErrorIs(t, nilAcc.AddScaled(1, acc), matrix.ErrNilMatrix)
}

func TestMul_PauliAlgebra(t *testing.T) {
	t.Parallel()

	x, y, z := MustRows(t, sigmaX), MustRows(t, sigmaY), MustRows(t, sigmaZ)

	// σx·σy = iσz
	xy, err := matrix.Mul(x, y)
	require.NoError(t, err)
	iz, err := matrix.Scale(z, 1i)
	require.NoError(t, err)
	require.True(t, matrix.AllClose(iz, xy, matrix.DefaultTolerance))

	// σz·σz = I through the fallback path.
	zz, err := matrix.Mul(hide{z}, hide{z})
	require.NoError(t, err)
	require.True(t, matrix.AllClose(MustRows(t, eye2), zz, matrix.DefaultTolerance))
}

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]complex128{{1, 2, 3}})
	b := MustRows(t, [][]complex128{{1}, {1i}, {-1}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, got.Rows())
	require.Equal(t, 1, got.Cols())
	require.InDelta(t, -2, real(MustAt(t, got, 0, 0)), 1e-15)
	require.InDelta(t, 2, imag(MustAt(t, got, 0, 0)), 1e-15)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDaggerMul_MatchesExplicitDagger(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]complex128{{1 + 1i, 2}, {0, 3i}})
	b := MustRows(t, [][]complex128{{2, -1i}, {1, 1}})

	ad, err := matrix.Dagger(a)
	require.NoError(t, err)
	want, err := matrix.Mul(ad, b)
	require.NoError(t, err)

	got, err := matrix.DaggerMul(a, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.AllClose(want, got, matrix.DefaultTolerance))

	_, err = matrix.DaggerMul(a, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeConjDagger(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]complex128{{1, 2i, 3}, {4, 5, -6i}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustRows(t, [][]complex128{{1, 4}, {2i, 5}, {3, -6i}}), tr))

	cj, err := matrix.Conj(hide{a})
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustRows(t, [][]complex128{{1, -2i, 3}, {4, 5, 6i}}), cj))

	dg, err := matrix.Dagger(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustRows(t, [][]complex128{{1, 4}, {-2i, 5}, {3, 6i}}), dg))

	// Pauli matrices are Hermitian.
	for _, p := range [][][]complex128{sigmaX, sigmaY, sigmaZ} {
		m := MustRows(t, p)
		d, err := matrix.Dagger(m)
		require.NoError(t, err)
		require.True(t, matrix.Equal(m, d))
	}

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIdentityZeros(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			require.Equal(t, want, MustAt(t, id, i, j))
		}
	}

	z, err := matrix.Zeros(2, 5)
	require.NoError(t, err)
	require.True(t, z.IsZero())

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]complex128{{1, 1i}})
	b := MustRows(t, [][]complex128{{1 + 1e-14, 1i}})
	require.True(t, matrix.AllClose(a, b, 1e-12))
	require.False(t, matrix.Equal(a, b))
	require.False(t, matrix.AllClose(a, MustDense(t, 2, 1), 1))
	require.False(t, matrix.AllClose(nil, a, 1))
}
