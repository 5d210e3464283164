// SPDX-License-Identifier: MIT

package spins

// PauliProduct is a tensor product of Pauli operators given by its
// non-identity support. Qubits absent from the support act as Identity.
// The zero value is the identity product. PauliProduct is immutable.
type PauliProduct struct {
	p product[PauliLabel]
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// ParsePauliProduct parses the canonical form, e.g. "0X1Z" or "I".
func ParsePauliProduct(s string) (PauliProduct, error) {
	p, err := parseProduct(s, ParsePauliLabel)
	if err != nil {
		return PauliProduct{}, err
	}

	return PauliProduct{p: p}, nil
}

// MustPauliProduct is like ParsePauliProduct but panics on error.
// Intended for literals in tests and examples.
func MustPauliProduct(s string) PauliProduct {
	p, err := ParsePauliProduct(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Set returns a copy with label l on qubit index. Setting Identity removes
// the qubit from the support.
func (pp PauliProduct) Set(index int, l PauliLabel) (PauliProduct, error) {
	p, err := pp.p.with(index, l)
	if err != nil {
		return PauliProduct{}, err
	}

	return PauliProduct{p: p}, nil
}

// Get returns the label on qubit index (Identity when absent).
func (pp PauliProduct) Get(index int) PauliLabel { return pp.p.get(index) }

// Len returns the size of the non-identity support.
func (pp PauliProduct) Len() int { return len(pp.p.entries) }

// IsIdentity reports whether the support is empty.
func (pp PauliProduct) IsIdentity() bool { return len(pp.p.entries) == 0 }

// MaxIndex returns the highest qubit index in the support, -1 for the identity.
func (pp PauliProduct) MaxIndex() int { return pp.p.maxIndex() }

// Indices returns the support in ascending order.
func (pp PauliProduct) Indices() []int { return pp.p.indices() }

// Equal reports whether both products have the same support and labels.
func (pp PauliProduct) Equal(other PauliProduct) bool { return pp.p.equal(other.p) }

// String returns the canonical form.
func (pp PauliProduct) String() string { return pp.p.format() }

// Key returns the canonical string, used to index system terms.
func (pp PauliProduct) Key() string { return pp.p.format() }
