package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/spinqobj/converter"
	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/stretchr/testify/require"
)

func sigmaY(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows([][]complex128{{0, -1i}, {1i, 0}})
	require.NoError(t, err)

	return m
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	require.Equal(t, JSON, f)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFromMatrix(t *testing.T) {
	t.Parallel()

	p := FromMatrix("y", sigmaY(t))
	want := Payload{Name: "y", Rows: 2, Cols: 2, Real: []float64{0, 0, 0, 0}, Imag: []float64{0, -1, 1, 0}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	zero := FromSlot("coherent", converter.ZeroSlot())
	require.True(t, zero.Zero)
	m, err := zero.Matrix()
	require.NoError(t, err)
	require.True(t, m.IsZero())

	bad := Payload{Name: "bad", Rows: 2, Cols: 2, Real: []float64{1}}
	_, err = bad.Matrix()
	require.ErrorIs(t, err, matrix.ErrDataLength)
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, FromMatrix("y", sigmaY(t)), Payload{Name: "dissipative", Zero: true}))
	require.Equal(t, "# y (2×2)\n[0, (0-1i)]\n[(0+1i), 0]\n# dissipative: 0\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, FromMatrix("y", sigmaY(t))))

	var got []Payload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, []float64{0, -1, 1, 0}, got[0].Imag)
}

func TestWrite_MsgPackRoundTrip(t *testing.T) {
	t.Parallel()

	in := []Payload{FromMatrix("y", sigmaY(t)), {Name: "zero", Zero: true}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, MsgPack, in...))

	out, err := ReadMsgPack(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	m, err := out[0].Matrix()
	require.NoError(t, err)
	require.True(t, matrix.Equal(sigmaY(t), m))

	require.ErrorIs(t, Write(&buf, Format("xml")), ErrUnknownFormat)
}
