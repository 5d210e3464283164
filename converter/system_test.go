// SPDX-License-Identifier: MIT

package converter_test

import (
	"testing"

	"github.com/katalvlaran/spinqobj/converter"
	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/katalvlaran/spinqobj/spins"
	"github.com/stretchr/testify/require"
)

func TestSystemToMatrix_Linear(t *testing.T) {
	t.Parallel()

	p1 := spins.MustPauliProduct("0X1Y")
	p2 := spins.MustPauliProduct("1Z")
	c1, c2 := complex(0.5, -1), complex(2, 0)

	s := spins.NewOperatorSystem()
	require.NoError(t, s.Set(p1, c1))
	require.NoError(t, s.Set(p2, c2))

	for _, e := range []converter.Endianness{converter.Little, converter.Big} {
		got, err := converter.SystemToMatrix(s, converter.WithEndianness(e))
		require.NoError(t, err)

		m1, err := converter.PauliProductToMatrix(p1, 2, converter.WithEndianness(e))
		require.NoError(t, err)
		m2, err := converter.PauliProductToMatrix(p2, 2, converter.WithEndianness(e))
		require.NoError(t, err)
		want, err := matrix.Scale(m1, c1)
		require.NoError(t, err)
		require.NoError(t, want.AddScaled(c2, m2))

		require.True(t, matrix.AllClose(want, got, tol), "%s", e)
	}
}

func TestSystemToMatrix_Explicit(t *testing.T) {
	t.Parallel()

	h, err := spins.NewHamiltonianSystemWithSpins(2)
	require.NoError(t, err)
	require.NoError(t, h.Set(spins.MustPauliProduct("0X"), 2))
	require.NoError(t, h.Set(spins.MustPauliProduct("0Z"), 4))

	little, err := converter.SystemToMatrix(h)
	require.NoError(t, err)
	require.True(t, matrix.Equal(mustRows(t, [][]complex128{
		{4, 2, 0, 0},
		{2, -4, 0, 0},
		{0, 0, 4, 2},
		{0, 0, 2, -4},
	}), little))

	big, err := converter.SystemToMatrix(h, converter.WithEndianness(converter.Big))
	require.NoError(t, err)
	require.True(t, matrix.Equal(mustRows(t, [][]complex128{
		{4, 0, 2, 0},
		{0, 4, 0, 2},
		{2, 0, -4, 0},
		{0, 2, 0, -4},
	}), big))
}

func TestSystemToMatrix_Empty(t *testing.T) {
	t.Parallel()

	got, err := converter.SystemToMatrix(spins.NewOperatorSystem())
	require.NoError(t, err)
	require.Equal(t, 1, got.Rows())
	require.Equal(t, 1, got.Cols())
	require.True(t, got.IsZero())

	got, err = converter.SystemToMatrix(spins.NewOperatorSystem(), converter.WithNumberSpins(2))
	require.NoError(t, err)
	require.Equal(t, 4, got.Rows())
	require.True(t, got.IsZero())

	fixed, err := spins.NewOperatorSystemWithSpins(3)
	require.NoError(t, err)
	got, err = converter.SystemToMatrix(fixed)
	require.NoError(t, err)
	require.Equal(t, 8, got.Rows())
	require.True(t, got.IsZero())
}

func TestSystemToMatrix_NumberSpinsOverride(t *testing.T) {
	t.Parallel()

	s := spins.NewOperatorSystem()
	require.NoError(t, s.Set(spins.MustPauliProduct("1Z"), 1))

	got, err := converter.SystemToMatrix(s, converter.WithNumberSpins(3))
	require.NoError(t, err)
	want := mustKron(t, mustRows(t, eye2), mustRows(t, sigmaZ), mustRows(t, eye2))
	require.True(t, matrix.Equal(want, got))

	_, err = converter.SystemToMatrix(s, converter.WithNumberSpins(1))
	require.ErrorIs(t, err, converter.ErrSpinOutOfRange)
	require.Contains(t, err.Error(), "qubit 1")

	_, err = converter.SystemToMatrix(s, converter.WithNumberSpins(-2))
	require.ErrorIs(t, err, converter.ErrInvalidSpinCount)
}

func TestSystemToMatrix_OverrideBelowDeclaredSpins(t *testing.T) {
	t.Parallel()

	fixed, err := spins.NewOperatorSystemWithSpins(3)
	require.NoError(t, err)
	require.NoError(t, fixed.Set(spins.MustPauliProduct("0X"), 1))

	// no term touches qubit 2, so the error must not blame it
	_, err = converter.SystemToMatrix(fixed, converter.WithNumberSpins(2))
	require.ErrorIs(t, err, converter.ErrSpinOutOfRange)
	require.Contains(t, err.Error(), "override of 2 spins below the 3 declared")
	require.NotContains(t, err.Error(), "qubit 2")

	require.NoError(t, fixed.Set(spins.MustPauliProduct("1Z"), 1))
	_, err = converter.SystemToMatrix(fixed, converter.WithNumberSpins(1))
	require.ErrorIs(t, err, converter.ErrSpinOutOfRange)
	require.Contains(t, err.Error(), "qubit 1 with 1 spins")
}

func TestSystemToMatrix_TooManySpins(t *testing.T) {
	t.Parallel()

	s := spins.NewOperatorSystem()
	require.NoError(t, s.Set(spins.MustPauliProduct("12Z"), 1))
	got, err := converter.SystemToMatrix(s)
	require.ErrorIs(t, err, converter.ErrTooManySpins)
	require.Nil(t, got)

	_, err = converter.SystemToMatrix(spins.NewOperatorSystem(), converter.WithNumberSpins(converter.MaxSpins+1))
	require.ErrorIs(t, err, converter.ErrTooManySpins)
}

func TestSpinBoundsFitElementBudget(t *testing.T) {
	t.Parallel()

	// 2ⁿ×2ⁿ matrices hold 4ⁿ values, 4ⁿ×4ⁿ superoperators 16ⁿ.
	require.LessOrEqual(t, 1<<(2*converter.MaxSpins), matrix.MaxElements)
	require.Greater(t, 1<<(2*(converter.MaxSpins+1)), matrix.MaxElements)
	require.LessOrEqual(t, 1<<(4*converter.MaxOpenSpins), matrix.MaxElements)
	require.Greater(t, 1<<(4*(converter.MaxOpenSpins+1)), matrix.MaxElements)
}

func TestSystemToMatrix_Errors(t *testing.T) {
	t.Parallel()

	_, err := converter.SystemToMatrix(nil)
	require.ErrorIs(t, err, converter.ErrNilSystem)

	s := spins.NewOperatorSystem()
	require.NoError(t, s.Set(spins.MustPauliProduct("0X"), 1))
	got, err := converter.SystemToMatrix(s, converter.WithEndianness(converter.Endianness(3)))
	require.ErrorIs(t, err, converter.ErrInvalidEndianness)
	require.Nil(t, got, "no partial result on error")
}
