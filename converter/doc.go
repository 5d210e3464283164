// SPDX-License-Identifier: MIT

// Package converter materializes sparse spin operators as dense matrices
// and Lindblad superoperators.
//
// What & Why:
//
//	The spins package describes operators algebraically: a Pauli product is
//	a sparse map from qubit index to {I, X, Y, Z}, a system is a weighted sum
//	of products. converter turns those descriptions into exact dense
//	matrices (2ⁿ×2ⁿ) and, for open systems, into the coherent commutator
//	superoperator and the aggregate dissipator (4ⁿ×4ⁿ).
//
// Entry points:
//
//   - PauliProductToMatrix, DecoherenceProductToMatrix: one tensor product.
//   - SystemToMatrix: Σ c_P · matrix(P) over an OperatorSystem.
//   - OpenSystemToSuperoperators: (−i[H, ·], Σ c·D[L, R]) as two Slots.
//   - NoiseSystemToSuperoperators: the dissipative half alone.
//
// Endianness:
//
//	Little (default) places qubit 0 in the least significant position of the
//	basis index, so the product is M_{n−1} ⊗ … ⊗ M_0. Big reverses the order:
//	M_0 ⊗ … ⊗ M_{n−1}.
//
// Zero sentinels:
//
//	An empty coherent or noise part yields a zero Slot rather than a
//	dimensioned zero superoperator. An empty system with zero spins yields
//	the 1×1 zero matrix.
//
// Options:
//
//	WithEndianness, WithNumberSpins, WithWorkers, WithLogger.
//
// Complexity:
//
//	A single product costs O(4ⁿ) through successive Kronecker products. A
//	system with T terms costs O(T·4ⁿ). Each dissipator term costs O(16ⁿ),
//	which dominates open-system conversion.
//
// Errors (sentinel):
//
//   - ErrInvalidEndianness, ErrInvalidSpinCount, ErrSpinOutOfRange,
//     ErrTooManySpins, ErrNilSystem.
package converter
