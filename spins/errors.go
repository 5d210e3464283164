// SPDX-License-Identifier: MIT

package spins

import "errors"

var (
	// ErrNegativeIndex indicates a qubit index below zero.
	ErrNegativeIndex = errors.New("spins: negative qubit index")

	// ErrInvalidLabel indicates an unknown single-qubit label.
	ErrInvalidLabel = errors.New("spins: invalid label")

	// ErrDuplicateIndex indicates two labels for the same qubit in one product string.
	ErrDuplicateIndex = errors.New("spins: duplicate qubit index")

	// ErrMalformedProduct indicates a product string that does not follow "<index><label>..." form.
	ErrMalformedProduct = errors.New("spins: malformed product string")

	// ErrSpinOutOfRange indicates a term acting on a qubit at or beyond the
	// fixed number of spins of its system.
	ErrSpinOutOfRange = errors.New("spins: qubit index out of range")

	// ErrInvalidSpinCount indicates a negative fixed number of spins.
	ErrInvalidSpinCount = errors.New("spins: number of spins must be >= 0")

	// ErrNonHermitian indicates a complex coefficient in a Hamiltonian system.
	ErrNonHermitian = errors.New("spins: Hamiltonian coefficients must be real")

	// ErrNonFinite indicates a NaN or infinite coefficient.
	ErrNonFinite = errors.New("spins: coefficient is NaN or Inf")

	// ErrNilSystem indicates a nil system argument.
	ErrNilSystem = errors.New("spins: nil system")
)
