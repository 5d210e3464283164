// SPDX-License-Identifier: MIT

package converter

import (
	"fmt"

	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/katalvlaran/spinqobj/spins"
)

// block is a single-qubit 2×2 operator in row-major order.
type block [4]complex128

// Exhaustive lookup tables; indices are the label values.
var (
	pauliBlocks = [...]block{
		spins.Identity: {1, 0, 0, 1},
		spins.PauliX:   {0, 1, 1, 0},
		spins.PauliY:   {0, -1i, 1i, 0},
		spins.PauliZ:   {1, 0, 0, -1},
	}

	decoherenceBlocks = [...]block{
		spins.DecoherenceIdentity: {1, 0, 0, 1},
		spins.DecoherenceX:        {0, 1, 1, 0},
		spins.DecoherenceIY:       {0, 1, -1, 0},
		spins.DecoherenceZ:        {1, 0, 0, -1},
	}
)

func outOfRangeErr(index, n int) error {
	return fmt.Errorf("qubit %d with %d spins: %w", index, n, ErrSpinOutOfRange)
}

func spinCountErr(n, limit int) error {
	return fmt.Errorf("%d spins (max %d): %w", n, limit, ErrTooManySpins)
}

// PauliProductToMatrix returns the dense 2ⁿ×2ⁿ matrix of p on n qubits.
// Qubits outside the support of p contribute the 2×2 identity.
//
// Implementation:
//   - Stage 1: validate endianness, n and the support of p.
//   - Stage 2: look up the 2×2 block of every qubit.
//   - Stage 3: Kronecker-fold the blocks in endianness order.
//
// Behavior highlights:
//   - n == 0 yields the 1×1 identity [[1]].
//   - Little: M_{n−1} ⊗ … ⊗ M_0. Big: M_0 ⊗ … ⊗ M_{n−1}.
//
// Errors:
//   - ErrInvalidEndianness, ErrInvalidSpinCount (n < 0), ErrTooManySpins,
//     ErrSpinOutOfRange (a qubit of p is >= n; the message names it).
//
// Complexity:
//   - Time O(4ⁿ), Space O(4ⁿ).
//
// WithNumberSpins is ignored here: n is explicit.
func PauliProductToMatrix(p spins.PauliProduct, n int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	m, err := pauliMatrix(p, n, o)
	if err != nil {
		return nil, converterErrorf(opPauli, err)
	}

	return m, nil
}

// DecoherenceProductToMatrix is PauliProductToMatrix over the decoherence
// basis {I, σx, iσy, σz}.
func DecoherenceProductToMatrix(d spins.DecoherenceProduct, n int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	m, err := decoherenceMatrix(d, n, o)
	if err != nil {
		return nil, converterErrorf(opDecoherence, err)
	}

	return m, nil
}

func pauliMatrix(p spins.PauliProduct, n int, o Options) (*matrix.Dense, error) {
	return tensor(p.MaxIndex(), func(q int) block { return pauliBlocks[p.Get(q)] }, n, o)
}

func decoherenceMatrix(d spins.DecoherenceProduct, n int, o Options) (*matrix.Dense, error) {
	return tensor(d.MaxIndex(), func(q int) block { return decoherenceBlocks[d.Get(q)] }, n, o)
}

// tensor is the shared builder: factor(q) yields the block of qubit q and
// maxIndex is the highest qubit in the support (-1 when empty).
func tensor(maxIndex int, factor func(q int) block, n int, o Options) (*matrix.Dense, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	switch {
	case n < 0:
		return nil, fmt.Errorf("%d: %w", n, ErrInvalidSpinCount)
	case n > MaxSpins:
		return nil, spinCountErr(n, MaxSpins)
	case maxIndex >= n:
		return nil, outOfRangeErr(maxIndex, n)
	}

	factors := make([]matrix.Matrix, n)
	for q := 0; q < n; q++ {
		b := factor(q)
		m, err := matrix.NewDenseFrom(2, 2, b[:])
		if err != nil {
			return nil, err
		}
		pos := n - 1 - q // little: qubit 0 is the last factor
		if o.endianness == Big {
			pos = q
		}
		factors[pos] = m
	}

	return matrix.KronAll(factors...)
}
