// SPDX-License-Identifier: MIT

package lattice

import "fmt"

const (
	methodChain    = "Chain"
	methodRing     = "Ring"
	methodGrid     = "Grid"
	methodStar     = "Star"
	methodComplete = "Complete"

	minChainSites    = 1
	minRingSites     = 3
	minGridDim       = 1
	minStarSites     = 2
	minCompleteSites = 1
)

// Bond couples two sites; I < J always holds.
type Bond struct {
	I, J int
}

// String returns "i-j".
func (b Bond) String() string { return fmt.Sprintf("%d-%d", b.I, b.J) }

// Lattice is an immutable set of sites with nearest-neighbour bonds.
type Lattice struct {
	name  string
	sites int
	bonds []Bond
}

// Name returns the topology tag, e.g. "Ring(4)".
func (l Lattice) Name() string { return l.name }

// Sites returns the number of qubits.
func (l Lattice) Sites() int { return l.sites }

// Bonds returns a copy of the bonds in emission order.
func (l Lattice) Bonds() []Bond {
	out := make([]Bond, len(l.bonds))
	copy(out, l.bonds)

	return out
}

func bond(u, v int) Bond {
	if u > v {
		u, v = v, u
	}

	return Bond{I: u, J: v}
}

func tooFew(method string, got, lower int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, lower, ErrTooFewSites)
}

// Chain returns the open path 0-1-...-(n-1) (n >= 1).
func Chain(n int) (Lattice, error) {
	if n < minChainSites {
		return Lattice{}, tooFew(methodChain, n, minChainSites)
	}
	bonds := make([]Bond, 0, n-1)
	for i := 0; i+1 < n; i++ {
		bonds = append(bonds, bond(i, i+1))
	}

	return Lattice{name: fmt.Sprintf("%s(%d)", methodChain, n), sites: n, bonds: bonds}, nil
}

// Ring returns the periodic chain (n >= 3); the closing bond comes last.
func Ring(n int) (Lattice, error) {
	if n < minRingSites {
		return Lattice{}, tooFew(methodRing, n, minRingSites)
	}
	bonds := make([]Bond, 0, n)
	for i := 0; i < n; i++ {
		bonds = append(bonds, bond(i, (i+1)%n))
	}

	return Lattice{name: fmt.Sprintf("%s(%d)", methodRing, n), sites: n, bonds: bonds}, nil
}

// Grid returns a rows×cols open square lattice with 4-neighbourhood.
// Site (r, c) is qubit r*cols + c.
func Grid(rows, cols int) (Lattice, error) {
	if rows < minGridDim || cols < minGridDim {
		return Lattice{}, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewSites)
	}
	site := func(r, c int) int { return r*cols + c }
	bonds := make([]Bond, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				bonds = append(bonds, bond(site(r, c), site(r, c+1)))
			}
			if r+1 < rows {
				bonds = append(bonds, bond(site(r, c), site(r+1, c)))
			}
		}
	}

	return Lattice{name: fmt.Sprintf("%s(%d,%d)", methodGrid, rows, cols), sites: rows * cols, bonds: bonds}, nil
}

// Star returns site 0 bonded to every other site (n >= 2).
func Star(n int) (Lattice, error) {
	if n < minStarSites {
		return Lattice{}, tooFew(methodStar, n, minStarSites)
	}
	bonds := make([]Bond, 0, n-1)
	for i := 1; i < n; i++ {
		bonds = append(bonds, bond(0, i))
	}

	return Lattice{name: fmt.Sprintf("%s(%d)", methodStar, n), sites: n, bonds: bonds}, nil
}

// Complete returns the all-to-all lattice (n >= 1).
func Complete(n int) (Lattice, error) {
	if n < minCompleteSites {
		return Lattice{}, tooFew(methodComplete, n, minCompleteSites)
	}
	bonds := make([]Bond, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bonds = append(bonds, bond(i, j))
		}
	}

	return Lattice{name: fmt.Sprintf("%s(%d)", methodComplete, n), sites: n, bonds: bonds}, nil
}
