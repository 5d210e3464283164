// SPDX-License-Identifier: MIT

package converter

import "fmt"

// Endianness selects the order of the tensor factors of a product.
type Endianness uint8

const (
	// Little puts qubit 0 rightmost: M_{n−1} ⊗ … ⊗ M_0.
	Little Endianness = iota
	// Big puts qubit 0 leftmost: M_0 ⊗ … ⊗ M_{n−1}.
	Big
)

// DefaultEndianness is the endianness used when no option overrides it.
const DefaultEndianness = Little

// String returns "little" or "big".
func (e Endianness) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("Endianness(%d)", uint8(e))
	}
}

// Valid reports whether e is Little or Big.
func (e Endianness) Valid() bool { return e == Little || e == Big }

// ParseEndianness accepts exactly "little" or "big". Any other spelling,
// including case or whitespace variants, is ErrInvalidEndianness.
func ParseEndianness(s string) (Endianness, error) {
	switch s {
	case "little":
		return Little, nil
	case "big":
		return Big, nil
	default:
		return DefaultEndianness, fmt.Errorf("%q: %w", s, ErrInvalidEndianness)
	}
}
