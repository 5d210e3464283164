// SPDX-License-Identifier: MIT

// Dense: row-major complex128 storage.
//
// Element (i, j) lives at data[i*cols + j]. Accessors return errors instead of
// panicking, loops run in row-major order, and Set rejects NaN/Inf components
// unless the numeric guard is switched off.
//
// Costs: NewDense O(r*c); At and Set O(1); Clone O(r*c).

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"

	rowOpen  = "["
	rowClose = "]\n"
	valueSep = ", "
)

// MaxElements caps rows*cols of any Dense: 2²⁴ complex128 values, 256 MiB.
// Larger shapes fail with ErrTooLarge before anything is allocated.
const MaxElements = 1 << 24

// DefaultValidateNaNInf toggles finite-value validation in Set and AddScaled.
const DefaultValidateNaNInf = true

// denseErrorf tags err with the Dense method and the offending indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major complex matrix with at least one row and one column.
type Dense struct {
	r, c           int
	data           []complex128 // len == r*c
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns an r×c zero matrix, or ErrInvalidDimensions unless both
// sizes are positive. The smallest legal matrix is 1×1, which is also how
// scalar (zero-qubit) operators are represented. Shapes above MaxElements
// return ErrTooLarge; the check divides, so rows*cols never overflows.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rows > MaxElements/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrTooLarge)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom wraps a copy of data (row-major, len == rows*cols) into a Dense.
// Returns ErrInvalidDimensions for non-positive shapes, ErrDataLength when the
// slice length does not match and ErrNaNInf for non-finite components.
func NewDenseFrom(rows, cols int, data []complex128) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: %d values for %dx%d: %w", len(data), rows, cols, ErrDataLength)
	}
	for idx, v := range data {
		if !isFinite(v) {
			return nil, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Public methods wrap the plain sentinel with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when either component of v is not
//     finite and the numeric policy is on.
func (m *Dense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy with the same numeric guard.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense) Data() []complex128 {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return cp
}

// IsZero reports whether every element is exactly zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// Do calls f for every element in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v complex128) bool) {
	for off, v := range m.data {
		if !f(off/m.c, off%m.c, v) {
			return
		}
	}
}

// String prints one "[a, b, ...]" line per row.
func (m *Dense) String() string {
	var b strings.Builder
	for i := range m.r {
		b.WriteString(rowOpen)
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(valueSep)
			}
			b.WriteString(formatComplex(v))
		}
		b.WriteString(rowClose)
	}

	return b.String()
}

// formatComplex prints real values without the imaginary part so that the
// common Pauli matrices stay readable. Signed zeros print as "0".
func formatComplex(v complex128) string {
	if v == 0 {
		return "0"
	}
	if imag(v) == 0 {
		return fmt.Sprintf("%g", real(v))
	}

	return fmt.Sprintf("%g", v)
}

// isFinite reports whether both components of v are finite.
func isFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}
