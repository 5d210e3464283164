// SPDX-License-Identifier: MIT

package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEndianness indicates an endianness other than Little or Big.
	ErrInvalidEndianness = errors.New("converter: invalid endianness")

	// ErrInvalidSpinCount indicates a negative number of spins.
	ErrInvalidSpinCount = errors.New("converter: number of spins must be >= 0")

	// ErrSpinOutOfRange indicates a term acting on a qubit at or beyond the
	// requested number of spins. The wrapped message names the qubit.
	ErrSpinOutOfRange = errors.New("converter: qubit index out of range")

	// ErrTooManySpins indicates a spin count whose matrices cannot be indexed.
	ErrTooManySpins = errors.New("converter: too many spins")

	// ErrNilSystem indicates a nil system argument.
	ErrNilSystem = errors.New("converter: nil system")
)

// Operation tags for error wrapping.
const (
	opPauli       = "PauliProductToMatrix"
	opDecoherence = "DecoherenceProductToMatrix"
	opSystem      = "SystemToMatrix"
	opOpen        = "OpenSystemToSuperoperators"
	opNoise       = "NoiseSystemToSuperoperators"
)

func converterErrorf(tag string, err error) error {
	return fmt.Errorf("converter.%s: %w", tag, err)
}
