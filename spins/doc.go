// Package spins models sparse spin-operator algebra: Pauli products,
// decoherence products, weighted operator systems, Lindblad noise systems
// and open systems that group the two.
//
// Products are immutable and store only their non-identity support, so a
// product is uniquely determined by that support. Their canonical string
// form lists "<index><label>" pairs in ascending index order:
//
//	"0X1Z"   σx on qubit 0, σz on qubit 1 (PauliProduct)
//	"1iY"    iσy on qubit 1             (DecoherenceProduct)
//	"I"      the identity (empty support)
//
// Systems are maps from products to complex128 coefficients. Iteration order
// never affects results; Terms() still returns a sorted slice so that
// downstream floating-point sums are reproducible.
package spins
