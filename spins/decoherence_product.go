// SPDX-License-Identifier: MIT

package spins

// DecoherenceProduct is a tensor product over the decoherence basis
// {I, X, iY, Z}, used for Lindblad jump operators. The zero value is the
// identity product. DecoherenceProduct is immutable.
type DecoherenceProduct struct {
	p product[DecoherenceLabel]
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// ParseDecoherenceProduct parses the canonical form, e.g. "0Z1iY".
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	p, err := parseProduct(s, ParseDecoherenceLabel)
	if err != nil {
		return DecoherenceProduct{}, err
	}

	return DecoherenceProduct{p: p}, nil
}

// MustDecoherenceProduct is like ParseDecoherenceProduct but panics on error.
func MustDecoherenceProduct(s string) DecoherenceProduct {
	d, err := ParseDecoherenceProduct(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Set returns a copy with label l on qubit index.
func (dp DecoherenceProduct) Set(index int, l DecoherenceLabel) (DecoherenceProduct, error) {
	p, err := dp.p.with(index, l)
	if err != nil {
		return DecoherenceProduct{}, err
	}

	return DecoherenceProduct{p: p}, nil
}

// Get returns the label on qubit index (DecoherenceIdentity when absent).
func (dp DecoherenceProduct) Get(index int) DecoherenceLabel { return dp.p.get(index) }

// Len returns the size of the non-identity support.
func (dp DecoherenceProduct) Len() int { return len(dp.p.entries) }

// IsIdentity reports whether the support is empty.
func (dp DecoherenceProduct) IsIdentity() bool { return len(dp.p.entries) == 0 }

// MaxIndex returns the highest qubit index in the support, -1 for the identity.
func (dp DecoherenceProduct) MaxIndex() int { return dp.p.maxIndex() }

// Indices returns the support in ascending order.
func (dp DecoherenceProduct) Indices() []int { return dp.p.indices() }

// Equal reports whether both products have the same support and labels.
func (dp DecoherenceProduct) Equal(other DecoherenceProduct) bool { return dp.p.equal(other.p) }

// String returns the canonical form.
func (dp DecoherenceProduct) String() string { return dp.p.format() }

// Key returns the canonical string, used to index noise terms.
func (dp DecoherenceProduct) Key() string { return dp.p.format() }
