// SPDX-License-Identifier: MIT

package converter

import (
	"fmt"

	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/katalvlaran/spinqobj/spins"
)

// SystemToMatrix returns Σ c_P · matrix(P) over the terms of s.
//
// Implementation:
//   - Stage 1: resolve n from s.NumberSpins() or WithNumberSpins.
//   - Stage 2: allocate a zero 2ⁿ×2ⁿ accumulator.
//   - Stage 3: for every term in sorted order, acc += c · matrix(P).
//
// Behavior highlights:
//   - An empty system on zero spins yields the 1×1 zero matrix.
//   - An empty system on n > 0 spins yields the 2ⁿ×2ⁿ zero matrix.
//   - No normalization, no truncation of small entries.
//   - On error no partial result is returned.
//
// Errors:
//   - ErrNilSystem, ErrInvalidEndianness, ErrInvalidSpinCount,
//     ErrTooManySpins (n > MaxSpins), ErrSpinOutOfRange (override below the
//     required count; names the qubit when a term reaches past it).
//
// Complexity:
//   - Time O(T·4ⁿ) for T terms, Space O(4ⁿ).
func SystemToMatrix(s *spins.OperatorSystem, opts ...Option) (*matrix.Dense, error) {
	if s == nil {
		return nil, converterErrorf(opSystem, ErrNilSystem)
	}
	o := gatherOptions(opts...)
	n, err := o.resolveSpins(s.NumberSpins(), s.MaxIndex(), MaxSpins)
	if err != nil {
		return nil, converterErrorf(opSystem, err)
	}
	m, err := systemMatrix(s, n, o)
	if err != nil {
		return nil, converterErrorf(opSystem, err)
	}

	return m, nil
}

// systemMatrix accumulates s on an already resolved number of spins.
func systemMatrix(s *spins.OperatorSystem, n int, o Options) (*matrix.Dense, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	dim := 1 << n
	acc, err := matrix.Zeros(dim, dim)
	if err != nil {
		return nil, err
	}

	terms := s.Terms()
	for _, t := range terms {
		m, err := pauliMatrix(t.Product, n, o)
		if err != nil {
			return nil, fmt.Errorf("term %s: %w", t.Product, err)
		}
		if err = acc.AddScaled(t.Coefficient, m); err != nil {
			return nil, fmt.Errorf("term %s: %w", t.Product, err)
		}
	}
	o.log.Debug().
		Int("spins", n).
		Int("terms", len(terms)).
		Stringer("endianness", o.endianness).
		Msg("operator system materialized")

	return acc, nil
}
