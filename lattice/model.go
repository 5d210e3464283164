// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/spinqobj/spins"
)

// Coupling adds one family of terms for l to h. Couplings accumulate, so
// two couplings touching the same product sum their coefficients.
type Coupling func(l Lattice, h *spins.OperatorSystem) error

// Build returns the Hamiltonian on l.Sites() spins obtained by applying
// every coupling in order. The first failing coupling aborts the build.
func Build(l Lattice, couplings ...Coupling) (*spins.OperatorSystem, error) {
	h, err := spins.NewHamiltonianSystemWithSpins(l.sites)
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", l.name, err)
	}
	for i, c := range couplings {
		if c == nil {
			return nil, fmt.Errorf("Build(%s): coupling %d: %w", l.name, i, ErrNilCoupling)
		}
		if err = c(l, h); err != nil {
			return nil, fmt.Errorf("Build(%s): %w", l.name, err)
		}
	}

	return h, nil
}

func pair(b Bond, a spins.PauliLabel) (spins.PauliProduct, error) {
	p, err := spins.NewPauliProduct().Set(b.I, a)
	if err != nil {
		return p, err
	}

	return p.Set(b.J, a)
}

// bondTerm adds j·σᵃ_i σᵃ_j on every bond for each axis a.
func bondTerm(name string, j float64, axes ...spins.PauliLabel) Coupling {
	return func(l Lattice, h *spins.OperatorSystem) error {
		for _, b := range l.bonds {
			for _, a := range axes {
				p, err := pair(b, a)
				if err != nil {
					return fmt.Errorf("%s: bond %s: %w", name, b, err)
				}
				if err = h.Add(p, complex(j, 0)); err != nil {
					return fmt.Errorf("%s: bond %s: %w", name, b, err)
				}
			}
		}

		return nil
	}
}

// fieldTerm adds f·σᵃ_i on every site.
func fieldTerm(name string, f float64, a spins.PauliLabel) Coupling {
	return func(l Lattice, h *spins.OperatorSystem) error {
		for i := 0; i < l.sites; i++ {
			p, err := spins.NewPauliProduct().Set(i, a)
			if err != nil {
				return fmt.Errorf("%s: site %d: %w", name, i, err)
			}
			if err = h.Add(p, complex(f, 0)); err != nil {
				return fmt.Errorf("%s: site %d: %w", name, i, err)
			}
		}

		return nil
	}
}

// Ising adds j·Z_i Z_j on every bond.
func Ising(j float64) Coupling { return bondTerm("Ising", j, spins.PauliZ) }

// XY adds j·(X_i X_j + Y_i Y_j) on every bond.
func XY(j float64) Coupling { return bondTerm("XY", j, spins.PauliX, spins.PauliY) }

// Heisenberg adds j·(X_i X_j + Y_i Y_j + Z_i Z_j) on every bond.
func Heisenberg(j float64) Coupling {
	return bondTerm("Heisenberg", j, spins.PauliX, spins.PauliY, spins.PauliZ)
}

// TransverseField adds g·X_i on every site.
func TransverseField(g float64) Coupling { return fieldTerm("TransverseField", g, spins.PauliX) }

// LongitudinalField adds g·Z_i on every site.
func LongitudinalField(g float64) Coupling { return fieldTerm("LongitudinalField", g, spins.PauliZ) }

// Dephasing returns a noise system with rate γ·Z_i Z_i on every site of l,
// the usual local pure-dephasing channel.
func Dephasing(l Lattice, gamma float64) (*spins.NoiseSystem, error) {
	noise, err := spins.NewNoiseSystemWithSpins(l.sites)
	if err != nil {
		return nil, fmt.Errorf("Dephasing(%s): %w", l.name, err)
	}
	for i := 0; i < l.sites; i++ {
		z, err := spins.NewDecoherenceProduct().Set(i, spins.DecoherenceZ)
		if err != nil {
			return nil, fmt.Errorf("Dephasing(%s): site %d: %w", l.name, i, err)
		}
		if err = noise.Set(z, z, complex(gamma, 0)); err != nil {
			return nil, fmt.Errorf("Dephasing(%s): site %d: %w", l.name, i, err)
		}
	}

	return noise, nil
}
