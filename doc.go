// Package spinqobj converts sparse spin-operator descriptions into dense
// matrices and Lindblad superoperators.
//
// Packages:
//
//	spins      Pauli and decoherence products, operator, noise and open systems
//	converter  tensor builder, system accumulator, open-system assembler
//	matrix     dense complex128 matrices (Kronecker, adjoint, products)
//	superop    column-stacking superoperators: spre, spost, sprepost
//	lattice    nearest-neighbour spin models on chains, rings and grids
//
// Qubit order follows converter.Endianness: Little puts qubit 0 in the last
// tensor factor, Big in the first. A part of an open system with no terms
// converts to converter.ZeroSlot rather than a matrix of zeros.
//
// The spinqobj command (cmd/spinqobj) exposes the same conversions over YAML
// descriptions with text, JSON and msgpack output.
package spinqobj
