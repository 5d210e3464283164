// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Identity returns the n×n identity matrix.
// Returns ErrInvalidDimensions for n <= 0.
func Identity(n int) (*Dense, error) {
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1
	}

	return res, nil
}

// Zeros returns an r×c zero matrix.
func Zeros(rows, cols int) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return res, nil
}

// FromRows builds a Dense from a rectangular slice of rows.
// Returns ErrInvalidDimensions for an empty input and ErrDimensionMismatch
// for ragged rows.
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	flat := make([]complex128, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDenseFrom(r, c, flat)
}
