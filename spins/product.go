// SPDX-License-Identifier: MIT

package spins

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// identityString is the canonical form of a product with empty support.
const identityString = "I"

// label is the constraint shared by PauliLabel and DecoherenceLabel.
type label interface {
	~uint8
	fmt.Stringer
	Valid() bool
	isIdentity() bool
}

type entry[L label] struct {
	index int
	label L
}

// product is the sparse support shared by both product kinds.
// Invariant: entries sorted by index, unique indices, no identity labels.
type product[L label] struct {
	entries []entry[L]
}

func compareEntry[L label](e entry[L], index int) int { return cmp.Compare(e.index, index) }

// get returns the label at index; the zero label (identity) when absent.
func (p product[L]) get(index int) L {
	if i, ok := slices.BinarySearchFunc(p.entries, index, compareEntry[L]); ok {
		return p.entries[i].label
	}
	var identity L

	return identity
}

// with returns a copy of p with label l at index. Identity removes the entry.
// Complexity: O(len) for the copy.
func (p product[L]) with(index int, l L) (product[L], error) {
	if index < 0 {
		return product[L]{}, fmt.Errorf("index %d: %w", index, ErrNegativeIndex)
	}
	if !l.Valid() {
		return product[L]{}, fmt.Errorf("%v: %w", l, ErrInvalidLabel)
	}

	out := slices.Clone(p.entries)
	i, found := slices.BinarySearchFunc(out, index, compareEntry[L])
	switch {
	case l.isIdentity() && found:
		out = slices.Delete(out, i, i+1)
	case l.isIdentity():
		// nothing to remove
	case found:
		out[i].label = l
	default:
		out = slices.Insert(out, i, entry[L]{index: index, label: l})
	}

	return product[L]{entries: out}, nil
}

// maxIndex returns the highest qubit index in the support, -1 when empty.
func (p product[L]) maxIndex() int {
	if len(p.entries) == 0 {
		return -1
	}

	return p.entries[len(p.entries)-1].index
}

func (p product[L]) indices() []int {
	out := make([]int, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.index
	}

	return out
}

func (p product[L]) equal(q product[L]) bool {
	return slices.EqualFunc(p.entries, q.entries, func(a, b entry[L]) bool {
		return a.index == b.index && a.label == b.label
	})
}

// format renders the canonical "<index><label>..." string.
func (p product[L]) format() string {
	if len(p.entries) == 0 {
		return identityString
	}
	var b strings.Builder
	for _, e := range p.entries {
		b.WriteString(strconv.Itoa(e.index))
		b.WriteString(e.label.String())
	}

	return b.String()
}

// parseProduct reads "<index><label>..." pairs. Indices may appear in any
// order but only once; identity labels are accepted and dropped.
//
// Implementation:
//   - Stage 1: "" and "I" are the identity product.
//   - Stage 2: alternate a digit run (index) and a letter run (label token).
//   - Stage 3: insert each pair through with(), enforcing the invariant.
func parseProduct[L label](s string, parse func(string) (L, error)) (product[L], error) {
	s = strings.TrimSpace(s)
	if s == "" || s == identityString {
		return product[L]{}, nil
	}

	var (
		p    product[L]
		seen = make(map[int]struct{})
		pos  int
	)
	for pos < len(s) {
		start := pos
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		if pos == start {
			return product[L]{}, fmt.Errorf("%q at offset %d: expected qubit index: %w", s, start, ErrMalformedProduct)
		}
		index, err := strconv.Atoi(s[start:pos])
		if err != nil {
			return product[L]{}, fmt.Errorf("%q: %w: %w", s, ErrMalformedProduct, err)
		}

		start = pos
		for pos < len(s) && unicode.IsLetter(rune(s[pos])) {
			pos++
		}
		if pos == start {
			return product[L]{}, fmt.Errorf("%q at offset %d: expected label: %w", s, start, ErrMalformedProduct)
		}
		l, err := parse(s[start:pos])
		if err != nil {
			return product[L]{}, fmt.Errorf("%q: %w", s, err)
		}

		if _, dup := seen[index]; dup {
			return product[L]{}, fmt.Errorf("%q: index %d: %w", s, index, ErrDuplicateIndex)
		}
		seen[index] = struct{}{}
		if p, err = p.with(index, l); err != nil {
			return product[L]{}, fmt.Errorf("%q: %w", s, err)
		}
	}

	return p, nil
}
