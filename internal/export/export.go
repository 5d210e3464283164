// Package export encodes converted matrices for the CLI: a readable text
// form, JSON and MessagePack. Complex entries are split into parallel real
// and imaginary row-major slices, which every target format can carry.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spinqobj/converter"
	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/cmplxs"
)

// Format selects the output encoding.
type Format string

// Output formats.
const (
	Text    Format = "text"
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// ErrUnknownFormat indicates a format name other than text, json or msgpack.
var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, MsgPack:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Payload is the serialized form of one named matrix or zero sentinel.
type Payload struct {
	Name string    `json:"name" msgpack:"name"`
	Zero bool      `json:"zero,omitempty" msgpack:"zero,omitempty"`
	Rows int       `json:"rows" msgpack:"rows"`
	Cols int       `json:"cols" msgpack:"cols"`
	Real []float64 `json:"real,omitempty" msgpack:"real,omitempty"`
	Imag []float64 `json:"imag,omitempty" msgpack:"imag,omitempty"`
}

// FromMatrix captures m under name.
func FromMatrix(name string, m *matrix.Dense) Payload {
	data := m.Data()
	p := Payload{
		Name: name,
		Rows: m.Rows(),
		Cols: m.Cols(),
		Real: make([]float64, len(data)),
		Imag: make([]float64, len(data)),
	}
	cmplxs.Real(p.Real, data)
	cmplxs.Imag(p.Imag, data)

	return p
}

// FromSlot captures a converter slot; the zero sentinel has no entries.
func FromSlot(name string, sl converter.Slot) Payload {
	if sl.IsZero() {
		return Payload{Name: name, Zero: true}
	}

	return FromMatrix(name, sl.Matrix())
}

// Matrix rebuilds the dense matrix. The zero sentinel yields the 1×1 zero.
func (p Payload) Matrix() (*matrix.Dense, error) {
	if p.Zero {
		return matrix.Zeros(1, 1)
	}
	if len(p.Real) != p.Rows*p.Cols || len(p.Imag) != len(p.Real) {
		return nil, fmt.Errorf("export: payload %q: %w", p.Name, matrix.ErrDataLength)
	}
	data := make([]complex128, len(p.Real))
	for i := range data {
		data[i] = complex(p.Real[i], p.Imag[i])
	}

	return matrix.NewDenseFrom(p.Rows, p.Cols, data)
}

// Write encodes payloads to w in format f.
func Write(w io.Writer, f Format, payloads ...Payload) error {
	switch f {
	case Text:
		return writeText(w, payloads)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(payloads)
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(payloads)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// ReadMsgPack decodes what Write produced in MsgPack format.
func ReadMsgPack(r io.Reader) ([]Payload, error) {
	var out []Payload
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("export: decode msgpack: %w", err)
	}

	return out, nil
}

func writeText(w io.Writer, payloads []Payload) error {
	for _, p := range payloads {
		if p.Zero {
			if _, err := fmt.Fprintf(w, "# %s: 0\n", p.Name); err != nil {
				return err
			}
			continue
		}
		m, err := p.Matrix()
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "# %s (%d×%d)\n%s", p.Name, p.Rows, p.Cols, m); err != nil {
			return err
		}
	}

	return nil
}
