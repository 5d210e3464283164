// SPDX-License-Identifier: MIT

package spins

import "fmt"

// PauliLabel is a single-qubit Pauli operator.
// The zero value is Identity, so an absent qubit reads as Identity.
type PauliLabel uint8

// Pauli labels.
const (
	Identity PauliLabel = iota // I
	PauliX                     // σx
	PauliY                     // σy
	PauliZ                     // σz
)

var pauliNames = [...]string{Identity: "I", PauliX: "X", PauliY: "Y", PauliZ: "Z"}

// String returns the one-letter name used in product strings.
func (l PauliLabel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("PauliLabel(%d)", uint8(l))
	}

	return pauliNames[l]
}

// Valid reports whether l is one of the four Pauli labels.
func (l PauliLabel) Valid() bool { return l <= PauliZ }

func (l PauliLabel) isIdentity() bool { return l == Identity }

// ParsePauliLabel maps "I", "X", "Y", "Z" to their labels.
func ParsePauliLabel(s string) (PauliLabel, error) {
	for l, name := range pauliNames {
		if name == s {
			return PauliLabel(l), nil
		}
	}

	return Identity, fmt.Errorf("%q: %w", s, ErrInvalidLabel)
}

// DecoherenceLabel is a single-qubit operator of the decoherence basis
// {I, σx, iσy, σz}. Using iσy instead of σy keeps every basis matrix real.
type DecoherenceLabel uint8

// Decoherence labels.
const (
	DecoherenceIdentity DecoherenceLabel = iota // I
	DecoherenceX                                // σx
	DecoherenceIY                               // iσy
	DecoherenceZ                                // σz
)

var decoherenceNames = [...]string{
	DecoherenceIdentity: "I",
	DecoherenceX:        "X",
	DecoherenceIY:       "iY",
	DecoherenceZ:        "Z",
}

// String returns the name used in product strings ("iY" for iσy).
func (l DecoherenceLabel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("DecoherenceLabel(%d)", uint8(l))
	}

	return decoherenceNames[l]
}

// Valid reports whether l is one of the four decoherence labels.
func (l DecoherenceLabel) Valid() bool { return l <= DecoherenceZ }

func (l DecoherenceLabel) isIdentity() bool { return l == DecoherenceIdentity }

// ParseDecoherenceLabel maps "I", "X", "iY", "Z" to their labels.
func ParseDecoherenceLabel(s string) (DecoherenceLabel, error) {
	for l, name := range decoherenceNames {
		if name == s {
			return DecoherenceLabel(l), nil
		}
	}

	return DecoherenceIdentity, fmt.Errorf("%q: %w", s, ErrInvalidLabel)
}
