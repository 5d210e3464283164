// SPDX-License-Identifier: MIT

// Package lattice builds spin Hamiltonians on simple qubit lattices.
//
// A Lattice is a number of sites (qubits 0..n-1) plus a list of
// nearest-neighbour bonds emitted in a stable, documented order:
//
//	Chain(n)        0-1, 1-2, ..., (n-2)-(n-1)
//	Ring(n)         Chain(n) plus (n-1)-0
//	Grid(rows,cols) row-major sites r*cols+c; per site Right then Bottom
//	Star(n)         0-1, 0-2, ..., 0-(n-1)
//	Complete(n)     every pair i<j, lexicographic
//
// Couplings are functional terms applied in order by Build:
//
//	h, err := lattice.Build(chain, lattice.Ising(1), lattice.TransverseField(0.5))
//
// The result is a Hamiltonian spins.OperatorSystem fixed to the lattice size,
// ready for converter.SystemToMatrix or an open system.
package lattice
