// Package document reads YAML descriptions of spin systems.
//
// A document describes an optional coherent part and an optional noise part:
//
//	spins: 2          # optional; inferred from the terms when omitted
//	hamiltonian: true # optional; rejects complex system coefficients
//	system:
//	  - product: 0X
//	    coefficient: 2
//	  - product: 0Z1Z
//	    coefficient: 1+0.5i
//	noise:
//	  - left: 0Z
//	    right: 1iY
//	    coefficient: 3
//
// Repeated products accumulate.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/spinqobj/spins"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument wraps every structural or value error of a document.
var ErrInvalidDocument = errors.New("document: invalid document")

// Coefficient is a complex128 that decodes from YAML numbers ("2", "-0.5")
// and complex literals ("1+2i", "(0-1i)", "3i").
type Coefficient complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coefficient) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coefficient must be a scalar", node.Line)
	}
	v, err := strconv.ParseComplex(strings.ReplaceAll(node.Value, " ", ""), 128)
	if err != nil {
		return fmt.Errorf("line %d: coefficient %q: %w", node.Line, node.Value, err)
	}
	*c = Coefficient(v)

	return nil
}

// Term is one weighted Pauli product.
type Term struct {
	Product     string      `yaml:"product"`
	Coefficient Coefficient `yaml:"coefficient"`
}

// NoiseTerm is one Lindblad rate for an ordered pair of decoherence products.
type NoiseTerm struct {
	Left        string      `yaml:"left"`
	Right       string      `yaml:"right"`
	Coefficient Coefficient `yaml:"coefficient"`
}

// Document is the decoded YAML form.
type Document struct {
	Spins       *int        `yaml:"spins,omitempty"`
	Hamiltonian bool        `yaml:"hamiltonian,omitempty"`
	System      []Term      `yaml:"system,omitempty"`
	Noise       []NoiseTerm `yaml:"noise,omitempty"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a single YAML document. Unknown fields are rejected and an
// empty input is the empty document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: multiple YAML documents are not supported", ErrInvalidDocument)
	}
	if doc.Spins != nil && *doc.Spins < 0 {
		return nil, fmt.Errorf("%w: spins %d: %w", ErrInvalidDocument, *doc.Spins, spins.ErrInvalidSpinCount)
	}

	return &doc, nil
}

// OperatorSystem builds the coherent part.
func (d *Document) OperatorSystem() (*spins.OperatorSystem, error) {
	s, err := d.newOperatorSystem()
	if err != nil {
		return nil, err
	}
	for i, t := range d.System {
		p, err := spins.ParsePauliProduct(t.Product)
		if err != nil {
			return nil, fmt.Errorf("%w: system[%d]: %w", ErrInvalidDocument, i, err)
		}
		if err = s.Add(p, complex128(t.Coefficient)); err != nil {
			return nil, fmt.Errorf("%w: system[%d]: %w", ErrInvalidDocument, i, err)
		}
	}

	return s, nil
}

func (d *Document) newOperatorSystem() (*spins.OperatorSystem, error) {
	switch {
	case d.Spins == nil && d.Hamiltonian:
		return spins.NewHamiltonianSystem(), nil
	case d.Spins == nil:
		return spins.NewOperatorSystem(), nil
	case d.Hamiltonian:
		return spins.NewHamiltonianSystemWithSpins(*d.Spins)
	default:
		return spins.NewOperatorSystemWithSpins(*d.Spins)
	}
}

// NoiseSystem builds the noise part.
func (d *Document) NoiseSystem() (*spins.NoiseSystem, error) {
	n := spins.NewNoiseSystem()
	if d.Spins != nil {
		var err error
		if n, err = spins.NewNoiseSystemWithSpins(*d.Spins); err != nil {
			return nil, err
		}
	}
	for i, t := range d.Noise {
		l, err := spins.ParseDecoherenceProduct(t.Left)
		if err != nil {
			return nil, fmt.Errorf("%w: noise[%d].left: %w", ErrInvalidDocument, i, err)
		}
		r, err := spins.ParseDecoherenceProduct(t.Right)
		if err != nil {
			return nil, fmt.Errorf("%w: noise[%d].right: %w", ErrInvalidDocument, i, err)
		}
		if err = n.Add(l, r, complex128(t.Coefficient)); err != nil {
			return nil, fmt.Errorf("%w: noise[%d]: %w", ErrInvalidDocument, i, err)
		}
	}

	return n, nil
}

// OpenSystem groups both parts.
func (d *Document) OpenSystem() (*spins.OpenSystem, error) {
	s, err := d.OperatorSystem()
	if err != nil {
		return nil, err
	}
	n, err := d.NoiseSystem()
	if err != nil {
		return nil, err
	}

	return spins.Group(s, n), nil
}
