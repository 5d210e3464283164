// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads "<kind>:<size>" where kind is chain, ring, star or complete
// and size is a site count, or "grid:<rows>x<cols>". Case-insensitive.
func Parse(s string) (Lattice, error) {
	kind, size, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	if !ok {
		return Lattice{}, fmt.Errorf("%q: want <kind>:<size>: %w", s, ErrUnknownLattice)
	}
	if kind == "grid" {
		rs, cs, ok := strings.Cut(size, "x")
		if !ok {
			return Lattice{}, fmt.Errorf("%q: want grid:<rows>x<cols>: %w", s, ErrUnknownLattice)
		}
		rows, err := strconv.Atoi(rs)
		if err != nil {
			return Lattice{}, fmt.Errorf("%q: rows: %w", s, ErrUnknownLattice)
		}
		cols, err := strconv.Atoi(cs)
		if err != nil {
			return Lattice{}, fmt.Errorf("%q: cols: %w", s, ErrUnknownLattice)
		}

		return Grid(rows, cols)
	}

	n, err := strconv.Atoi(size)
	if err != nil {
		return Lattice{}, fmt.Errorf("%q: size: %w", s, ErrUnknownLattice)
	}
	switch kind {
	case "chain":
		return Chain(n)
	case "ring":
		return Ring(n)
	case "star":
		return Star(n)
	case "complete":
		return Complete(n)
	default:
		return Lattice{}, fmt.Errorf("%q: kind %q: %w", s, kind, ErrUnknownLattice)
	}
}
