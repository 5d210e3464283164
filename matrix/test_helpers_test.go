// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spinqobj/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the At/Set path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// Pauli fixtures shared by the kernel tests.
var (
	sigmaX = [][]complex128{{0, 1}, {1, 0}}
	sigmaY = [][]complex128{{0, -1i}, {1i, 0}}
	sigmaZ = [][]complex128{{1, 0}, {0, -1}}
	eye2   = [][]complex128{{1, 0}, {0, 1}}
)
