// SPDX-License-Identifier: MIT

package spins

import (
	"cmp"
	"fmt"
	"math/cmplx"
	"slices"
	"strings"
)

// NoiseTerm is one Lindblad rate c for the ordered pair (Left, Right):
//
//	c · (A_L ρ A_R† − ½{A_R† A_L, ρ}).
type NoiseTerm struct {
	Left        DecoherenceProduct
	Right       DecoherenceProduct
	Coefficient complex128
}

type noiseKey struct {
	left, right string
}

func (k noiseKey) compare(o noiseKey) int {
	return cmp.Or(strings.Compare(k.left, o.left), strings.Compare(k.right, o.right))
}

// NoiseSystem is a sparse Lindblad noise operator keyed by ordered pairs of
// decoherence products. The spin count is fixed or inferred over both sides.
// The zero value is an empty system with inferred spins.
type NoiseSystem struct {
	terms map[noiseKey]NoiseTerm
	spins int
	fixed bool
}

// NewNoiseSystem returns an empty noise system whose spin count is inferred.
func NewNoiseSystem() *NoiseSystem {
	return &NoiseSystem{terms: make(map[noiseKey]NoiseTerm)}
}

// NewNoiseSystemWithSpins returns an empty noise system fixed to n spins.
func NewNoiseSystemWithSpins(n int) (*NoiseSystem, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewNoiseSystemWithSpins: %d: %w", n, ErrInvalidSpinCount)
	}

	return &NoiseSystem{terms: make(map[noiseKey]NoiseTerm), spins: n, fixed: true}, nil
}

func (s *NoiseSystem) validate(op string, l, r DecoherenceProduct, c complex128) error {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return fmt.Errorf("%s: (%s, %s): %v: %w", op, l, r, c, ErrNonFinite)
	}

	return checkSupport(op, max(l.MaxIndex(), r.MaxIndex()), s.spins, s.fixed)
}

// Set stores rate c for the pair (l, r). A zero rate removes the term.
func (s *NoiseSystem) Set(l, r DecoherenceProduct, c complex128) error {
	if err := s.validate("NoiseSystem.Set", l, r, c); err != nil {
		return err
	}
	if s.terms == nil {
		s.terms = make(map[noiseKey]NoiseTerm)
	}
	k := noiseKey{left: l.Key(), right: r.Key()}
	if c == 0 {
		delete(s.terms, k)

		return nil
	}
	s.terms[k] = NoiseTerm{Left: l, Right: r, Coefficient: c}

	return nil
}

// Add accumulates c onto the rate of (l, r), dropping exact cancellations.
func (s *NoiseSystem) Add(l, r DecoherenceProduct, c complex128) error {
	if err := s.validate("NoiseSystem.Add", l, r, c); err != nil {
		return err
	}

	return s.Set(l, r, s.Get(l, r)+c)
}

// Get returns the rate of (l, r), zero when absent.
func (s *NoiseSystem) Get(l, r DecoherenceProduct) complex128 {
	return s.terms[noiseKey{left: l.Key(), right: r.Key()}].Coefficient
}

// Remove deletes the term of (l, r), if any.
func (s *NoiseSystem) Remove(l, r DecoherenceProduct) {
	delete(s.terms, noiseKey{left: l.Key(), right: r.Key()})
}

// Len returns the number of stored terms.
func (s *NoiseSystem) Len() int { return len(s.terms) }

// IsEmpty reports whether the system has no terms.
func (s *NoiseSystem) IsEmpty() bool { return len(s.terms) == 0 }

// FixedSpins returns the fixed spin count and true, or 0 and false when inferred.
func (s *NoiseSystem) FixedSpins() (int, bool) { return s.spins, s.fixed }

// NumberSpins returns the fixed spin count, otherwise MaxIndex+1 over both
// sides of every term.
func (s *NoiseSystem) NumberSpins() int {
	if s.fixed {
		return s.spins
	}

	return s.MaxIndex() + 1
}

// MaxIndex returns the highest qubit touched on either side of any term,
// -1 when none is. A fixed spin count is ignored.
func (s *NoiseSystem) MaxIndex() int {
	m := -1
	for _, t := range s.terms {
		m = max(m, t.Left.MaxIndex(), t.Right.MaxIndex())
	}

	return m
}

// Terms returns the stored terms sorted by (left, right) canonical keys.
func (s *NoiseSystem) Terms() []NoiseTerm {
	keys := make([]noiseKey, 0, len(s.terms))
	for k := range s.terms {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, noiseKey.compare)

	out := make([]NoiseTerm, len(keys))
	for i, k := range keys {
		out[i] = s.terms[k]
	}

	return out
}

// Clone returns a deep copy of s.
func (s *NoiseSystem) Clone() *NoiseSystem {
	out := &NoiseSystem{terms: make(map[noiseKey]NoiseTerm, len(s.terms)), spins: s.spins, fixed: s.fixed}
	for k, t := range s.terms {
		out.terms[k] = t
	}

	return out
}

// String renders the terms as "(c)*(L, R) + ..."; "0" when empty.
func (s *NoiseSystem) String() string {
	if s.IsEmpty() {
		return "0"
	}
	var b strings.Builder
	for i, t := range s.Terms() {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%v*(%s, %s)", t.Coefficient, t.Left, t.Right)
	}

	return b.String()
}
