// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrTooFewSites indicates a lattice dimension below its constructor minimum.
	ErrTooFewSites = errors.New("lattice: parameter too small")

	// ErrNilCoupling indicates a nil Coupling passed to Build.
	ErrNilCoupling = errors.New("lattice: nil coupling")
)

// ErrUnknownLattice indicates a lattice description Parse cannot read.
var ErrUnknownLattice = errors.New("lattice: unknown lattice")
