// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"math/cmplx"
	"slices"
	"strings"
)

// OperatorTerm is one weighted Pauli product of an OperatorSystem.
type OperatorTerm struct {
	Product     PauliProduct
	Coefficient complex128
}

// OperatorSystem is a sparse weighted sum of Pauli products,
//
//	O = Σ c_P · P.
//
// The number of spins is either fixed at construction or inferred as
// MaxIndex+1 over the stored terms. A Hamiltonian system additionally
// restricts coefficients to real values.
//
// The zero value is an empty, non-Hamiltonian system with inferred spins.
// An OperatorSystem is not safe for concurrent mutation.
type OperatorSystem struct {
	terms     map[string]OperatorTerm
	spins     int
	fixed     bool
	hermitian bool
}

// NewOperatorSystem returns an empty system whose spin count is inferred.
func NewOperatorSystem() *OperatorSystem {
	return &OperatorSystem{terms: make(map[string]OperatorTerm)}
}

// NewOperatorSystemWithSpins returns an empty system fixed to n spins.
// Terms acting on qubit n or beyond are rejected.
func NewOperatorSystemWithSpins(n int) (*OperatorSystem, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewOperatorSystemWithSpins: %d: %w", n, ErrInvalidSpinCount)
	}

	return &OperatorSystem{terms: make(map[string]OperatorTerm), spins: n, fixed: true}, nil
}

// NewHamiltonianSystem returns an empty Hamiltonian system (real coefficients only).
func NewHamiltonianSystem() *OperatorSystem {
	s := NewOperatorSystem()
	s.hermitian = true

	return s
}

// NewHamiltonianSystemWithSpins returns an empty Hamiltonian system fixed to n spins.
func NewHamiltonianSystemWithSpins(n int) (*OperatorSystem, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewHamiltonianSystemWithSpins: %d: %w", n, ErrInvalidSpinCount)
	}
	s, _ := NewOperatorSystemWithSpins(n)
	s.hermitian = true

	return s, nil
}

// validate checks that a term fits the system before it is stored.
func (s *OperatorSystem) validate(op string, p PauliProduct, c complex128) error {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return fmt.Errorf("%s: %s: %v: %w", op, p, c, ErrNonFinite)
	}
	if s.hermitian && imag(c) != 0 {
		return fmt.Errorf("%s: %s: %v: %w", op, p, c, ErrNonHermitian)
	}

	return checkSupport(op, p.MaxIndex(), s.spins, s.fixed)
}

// checkSupport rejects a support reaching qubit spins or beyond for fixed systems.
func checkSupport(op string, maxIndex, spins int, fixed bool) error {
	if fixed && maxIndex >= spins {
		return fmt.Errorf("%s: qubit %d with %d spins: %w", op, maxIndex, spins, ErrSpinOutOfRange)
	}

	return nil
}

// Set stores coefficient c for product p, replacing any previous value.
// A zero coefficient removes the term.
func (s *OperatorSystem) Set(p PauliProduct, c complex128) error {
	if err := s.validate("OperatorSystem.Set", p, c); err != nil {
		return err
	}
	if s.terms == nil {
		s.terms = make(map[string]OperatorTerm)
	}
	if c == 0 {
		delete(s.terms, p.Key())

		return nil
	}
	s.terms[p.Key()] = OperatorTerm{Product: p, Coefficient: c}

	return nil
}

// Add accumulates c onto the coefficient of p. Terms that cancel to exactly
// zero are dropped.
func (s *OperatorSystem) Add(p PauliProduct, c complex128) error {
	if err := s.validate("OperatorSystem.Add", p, c); err != nil {
		return err
	}

	return s.Set(p, s.Get(p)+c)
}

// Get returns the coefficient of p, zero when absent.
func (s *OperatorSystem) Get(p PauliProduct) complex128 {
	return s.terms[p.Key()].Coefficient
}

// Remove deletes the term of p, if any.
func (s *OperatorSystem) Remove(p PauliProduct) { delete(s.terms, p.Key()) }

// Len returns the number of stored (non-zero) terms.
func (s *OperatorSystem) Len() int { return len(s.terms) }

// IsEmpty reports whether the system has no terms.
func (s *OperatorSystem) IsEmpty() bool { return len(s.terms) == 0 }

// IsHamiltonian reports whether the system only accepts real coefficients.
func (s *OperatorSystem) IsHamiltonian() bool { return s.hermitian }

// FixedSpins returns the fixed spin count and true, or 0 and false when inferred.
func (s *OperatorSystem) FixedSpins() (int, bool) { return s.spins, s.fixed }

// NumberSpins returns the fixed spin count, otherwise MaxIndex+1 over all
// terms (0 for an empty system).
func (s *OperatorSystem) NumberSpins() int {
	if s.fixed {
		return s.spins
	}

	return s.MaxIndex() + 1
}

// MaxIndex returns the highest qubit touched by any term, -1 when none is.
// Unlike NumberSpins it ignores a fixed spin count.
func (s *OperatorSystem) MaxIndex() int {
	m := -1
	for _, t := range s.terms {
		m = max(m, t.Product.MaxIndex())
	}

	return m
}

// Terms returns the stored terms sorted by canonical product key.
func (s *OperatorSystem) Terms() []OperatorTerm {
	out := make([]OperatorTerm, 0, len(s.terms))
	for _, t := range s.terms {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b OperatorTerm) int {
		return strings.Compare(a.Product.Key(), b.Product.Key())
	})

	return out
}

// Clone returns a deep copy of s.
func (s *OperatorSystem) Clone() *OperatorSystem {
	out := &OperatorSystem{
		terms:     make(map[string]OperatorTerm, len(s.terms)),
		spins:     s.spins,
		fixed:     s.fixed,
		hermitian: s.hermitian,
	}
	for k, t := range s.terms {
		out.terms[k] = t
	}

	return out
}

// String renders the terms as "(c)*P + ..." in sorted order; "0" when empty.
func (s *OperatorSystem) String() string {
	if s.IsEmpty() {
		return "0"
	}
	var b strings.Builder
	for i, t := range s.Terms() {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%v*%s", t.Coefficient, t.Product)
	}

	return b.String()
}
