// SPDX-License-Identifier: MIT

package spins

// OpenSystem groups a coherent part (OperatorSystem) with a Lindblad noise
// part (NoiseSystem). Both parts are always present; an absent part is an
// empty system. Grouping copies its inputs, so later mutations of the
// originals do not leak into the open system.
type OpenSystem struct {
	system *OperatorSystem
	noise  *NoiseSystem
}

// NewOpenSystem returns an open system with both parts empty.
func NewOpenSystem() *OpenSystem {
	return &OpenSystem{system: NewOperatorSystem(), noise: NewNoiseSystem()}
}

// Group builds an open system from its two parts. A nil part is taken as empty.
func Group(system *OperatorSystem, noise *NoiseSystem) *OpenSystem {
	o := NewOpenSystem()
	if system != nil {
		o.system = system.Clone()
	}
	if noise != nil {
		o.noise = noise.Clone()
	}

	return o
}

// FromSystem returns an open system with only a coherent part.
func FromSystem(system *OperatorSystem) *OpenSystem { return Group(system, nil) }

// FromNoise returns an open system with only a noise part.
func FromNoise(noise *NoiseSystem) *OpenSystem { return Group(nil, noise) }

// System returns the coherent part. Mutating it mutates o.
func (o *OpenSystem) System() *OperatorSystem { return o.system }

// Noise returns the noise part. Mutating it mutates o.
func (o *OpenSystem) Noise() *NoiseSystem { return o.noise }

// NumberSpins returns the larger spin count of the two parts.
func (o *OpenSystem) NumberSpins() int {
	return max(o.system.NumberSpins(), o.noise.NumberSpins())
}

// MaxIndex returns the highest qubit touched by either part, -1 when none is.
func (o *OpenSystem) MaxIndex() int {
	return max(o.system.MaxIndex(), o.noise.MaxIndex())
}

// IsEmpty reports whether both parts are empty.
func (o *OpenSystem) IsEmpty() bool { return o.system.IsEmpty() && o.noise.IsEmpty() }

// String renders both parts.
func (o *OpenSystem) String() string {
	return "system: " + o.system.String() + "; noise: " + o.noise.String()
}
