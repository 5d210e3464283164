// SPDX-License-Identifier: MIT

package converter_test

import (
	"testing"

	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/katalvlaran/spinqobj/superop"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const tol = 1e-12

var (
	eye2   = [][]complex128{{1, 0}, {0, 1}}
	sigmaX = [][]complex128{{0, 1}, {1, 0}}
	sigmaY = [][]complex128{{0, -1i}, {1i, 0}}
	sigmaZ = [][]complex128{{1, 0}, {0, -1}}
	iSigY  = [][]complex128{{0, 1}, {-1, 0}}
)

func mustRows(t *testing.T, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func mustKron(t *testing.T, ms ...matrix.Matrix) *matrix.Dense {
	t.Helper()
	m, err := matrix.KronAll(ms...)
	require.NoError(t, err)

	return m
}

func mustMul(t *testing.T, ms ...matrix.Matrix) *matrix.Dense {
	t.Helper()
	acc, err := matrix.Scale(ms[0], 1)
	require.NoError(t, err)
	for _, m := range ms[1:] {
		acc, err = matrix.Mul(acc, m)
		require.NoError(t, err)
	}

	return acc
}

func mustDagger(t *testing.T, m matrix.Matrix) *matrix.Dense {
	t.Helper()
	d, err := matrix.Dagger(m)
	require.NoError(t, err)

	return d
}

// lindblad evaluates c·(A ρ B† − ½ B†A ρ − ½ ρ B†A) directly on ρ.
func lindblad(t *testing.T, c complex128, a, b, rho matrix.Matrix) *matrix.Dense {
	t.Helper()
	bDag := mustDagger(t, b)
	x := mustMul(t, bDag, a)

	out := mustMul(t, a, rho, bDag)
	require.NoError(t, out.AddScaled(-0.5, mustMul(t, x, rho)))
	require.NoError(t, out.AddScaled(-0.5, mustMul(t, rho, x)))
	scaled, err := matrix.Scale(out, c)
	require.NoError(t, err)

	return scaled
}

// dissipator builds c·(sprepost(A, B†) − ½spre(B†A) − ½spost(B†A)) from the
// superoperator primitives.
func dissipator(t *testing.T, c complex128, a, b matrix.Matrix) *superop.Superoperator {
	t.Helper()
	bDag := mustDagger(t, b)
	x := mustMul(t, bDag, a)
	d, err := superop.Sprepost(a, bDag)
	require.NoError(t, err)
	pre, err := superop.Spre(x)
	require.NoError(t, err)
	post, err := superop.Spost(x)
	require.NoError(t, err)
	require.NoError(t, d.AddScaled(-0.5, pre))
	require.NoError(t, d.AddScaled(-0.5, post))
	out, err := superop.Scale(d, c)
	require.NoError(t, err)

	return out
}

// hamiltonianSuperop builds −i(I ⊗ H − Hᵀ ⊗ I).
func hamiltonianSuperop(t *testing.T, h *matrix.Dense) *matrix.Dense {
	t.Helper()
	eye, err := matrix.Identity(h.Rows())
	require.NoError(t, err)
	hT, err := matrix.Transpose(h)
	require.NoError(t, err)
	diff, err := matrix.Sub(mustKron(t, eye, h), mustKron(t, hT, eye))
	require.NoError(t, err)
	out, err := matrix.Scale(diff, -1i)
	require.NoError(t, err)

	return out
}

// commutator evaluates −i(Hρ − ρH) directly on ρ.
func commutator(t *testing.T, h, rho matrix.Matrix) *matrix.Dense {
	t.Helper()
	diff, err := matrix.Sub(mustMul(t, h, rho), mustMul(t, rho, h))
	require.NoError(t, err)
	out, err := matrix.Scale(diff, -1i)
	require.NoError(t, err)

	return out
}

// rho4 is a generic (non-Hermitian) 4×4 test operator.
func rho4(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustRows(t, [][]complex128{
		{0.4, 0.1 - 0.2i, 0.05i, 0.3},
		{0.1 + 0.2i, 0.3, -0.1, 0.2 + 0.1i},
		{-0.05i, 0.7, 0.2, 0.15},
		{0.3, 0.2 - 0.1i, 0.15, 0.1 + 0.9i},
	})
}
