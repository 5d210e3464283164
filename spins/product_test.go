// SPDX-License-Identifier: MIT

package spins_test

import (
	"testing"

	"github.com/katalvlaran/spinqobj/spins"
	"github.com/stretchr/testify/require"
)

func TestParsePauliProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		maxIdx  int
		wantErr error
	}{
		{name: "identity empty", in: "", want: "I", maxIdx: -1},
		{name: "identity letter", in: "I", want: "I", maxIdx: -1},
		{name: "single", in: "0X", want: "0X", maxIdx: 0},
		{name: "sorted on parse", in: "3Z0Y", want: "0Y3Z", maxIdx: 3},
		{name: "identity dropped", in: "0X1I2Z", want: "0X2Z", maxIdx: 2},
		{name: "multi digit", in: "12Y", want: "12Y", maxIdx: 12},
		{name: "spaces trimmed", in: "  1Z ", want: "1Z", maxIdx: 1},
		{name: "duplicate", in: "0X0Z", wantErr: spins.ErrDuplicateIndex},
		{name: "unknown label", in: "0W", wantErr: spins.ErrInvalidLabel},
		{name: "missing label", in: "01", wantErr: spins.ErrMalformedProduct},
		{name: "missing index", in: "X", wantErr: spins.ErrMalformedProduct},
		{name: "negative", in: "-1X", wantErr: spins.ErrMalformedProduct},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := spins.ParsePauliProduct(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, p.String())
			require.Equal(t, tc.maxIdx, p.MaxIndex())

			again, err := spins.ParsePauliProduct(p.String())
			require.NoError(t, err)
			require.True(t, p.Equal(again))
		})
	}
}

// The decoherence token "iY" is not a Pauli label.
func TestParsePauliProduct_RejectsIY(t *testing.T) {
	t.Parallel()

	_, err := spins.ParsePauliProduct("1iY")
	require.ErrorIs(t, err, spins.ErrInvalidLabel)
}

func TestPauliProduct_Set(t *testing.T) {
	t.Parallel()

	p := spins.NewPauliProduct()
	require.True(t, p.IsIdentity())

	q, err := p.Set(2, spins.PauliZ)
	require.NoError(t, err)
	q, err = q.Set(0, spins.PauliX)
	require.NoError(t, err)
	require.Equal(t, "0X2Z", q.String())
	require.Equal(t, []int{0, 2}, q.Indices())
	require.Equal(t, spins.Identity, q.Get(1))
	require.Equal(t, spins.PauliZ, q.Get(2))
	require.True(t, p.IsIdentity(), "Set must not mutate the receiver")

	r, err := q.Set(2, spins.Identity)
	require.NoError(t, err)
	require.Equal(t, "0X", r.Key())
	require.Equal(t, 1, r.Len())

	_, err = q.Set(-1, spins.PauliX)
	require.ErrorIs(t, err, spins.ErrNegativeIndex)
	_, err = q.Set(0, spins.PauliLabel(9))
	require.ErrorIs(t, err, spins.ErrInvalidLabel)
}

func TestParseDecoherenceProduct(t *testing.T) {
	t.Parallel()

	d, err := spins.ParseDecoherenceProduct("1iY0Z")
	require.NoError(t, err)
	require.Equal(t, "0Z1iY", d.String())
	require.Equal(t, spins.DecoherenceIY, d.Get(1))
	require.Equal(t, spins.DecoherenceZ, d.Get(0))
	require.Equal(t, 1, d.MaxIndex())

	_, err = spins.ParseDecoherenceProduct("0Y")
	require.ErrorIs(t, err, spins.ErrInvalidLabel)

	id := spins.MustDecoherenceProduct("I")
	require.True(t, id.IsIdentity())
	require.Equal(t, -1, id.MaxIndex())
}

func TestMustPauliProduct_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { spins.MustPauliProduct("0X0X") })
	require.NotPanics(t, func() { spins.MustPauliProduct("0X1Y") })
}

func TestLabels_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Y", spins.PauliY.String())
	require.Equal(t, "PauliLabel(7)", spins.PauliLabel(7).String())
	require.Equal(t, "iY", spins.DecoherenceIY.String())
	require.False(t, spins.DecoherenceLabel(4).Valid())

	l, err := spins.ParseDecoherenceLabel("iY")
	require.NoError(t, err)
	require.Equal(t, spins.DecoherenceIY, l)
}
