// SPDX-License-Identifier: MIT

package converter

import (
	"fmt"

	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/katalvlaran/spinqobj/spins"
	"github.com/katalvlaran/spinqobj/superop"
	"golang.org/x/sync/errgroup"
)

// Slot holds one half of an open-system conversion: either a superoperator
// or the zero sentinel used for an empty part. The zero value is the sentinel.
type Slot struct {
	s *superop.Superoperator
}

// ZeroSlot returns the zero sentinel.
func ZeroSlot() Slot { return Slot{} }

// IsZero reports whether the slot is the zero sentinel.
func (sl Slot) IsZero() bool { return sl.s == nil }

// Superoperator returns the superoperator, nil for the zero sentinel.
func (sl Slot) Superoperator() *superop.Superoperator { return sl.s }

// Matrix returns the 4ⁿ×4ⁿ matrix, nil for the zero sentinel.
func (sl Slot) Matrix() *matrix.Dense {
	if sl.s == nil {
		return nil
	}

	return sl.s.Matrix()
}

// String returns "0" for the zero sentinel, the matrix otherwise.
func (sl Slot) String() string {
	if sl.s == nil {
		return "0"
	}

	return sl.s.String()
}

// OpenSystemToSuperoperators returns the coherent part −i(spre(H) − spost(H))
// and the dissipative part Σ c·D[L, R] of o, both on the same number of spins.
//
// Implementation:
//   - Stage 1: resolve n from o.NumberSpins() (max over both parts) or
//     WithNumberSpins.
//   - Stage 2: coherent slot; zero sentinel when the system is empty.
//   - Stage 3: dissipative slot; zero sentinel when the noise is empty.
//
// Behavior highlights:
//   - For each noise term ((L, R), c) with A_n = matrix(L), A_m = matrix(R):
//     D += c · (sprepost(A_n, A_m†) − ½ spre(A_m†A_n) − ½ spost(A_m†A_n)).
//   - Terms are summed in sorted order regardless of WithWorkers, so serial
//     and parallel runs agree bit for bit.
//   - An empty open system yields (zero, zero).
//
// Errors:
//   - ErrNilSystem, ErrInvalidEndianness, ErrInvalidSpinCount,
//     ErrTooManySpins (n > MaxOpenSpins), ErrSpinOutOfRange.
//
// Complexity:
//   - Time O(16ⁿ) per noise term, Space O(16ⁿ) per worker.
func OpenSystemToSuperoperators(o *spins.OpenSystem, opts ...Option) (coherent, dissipative Slot, err error) {
	if o == nil {
		return Slot{}, Slot{}, converterErrorf(opOpen, ErrNilSystem)
	}
	opt := gatherOptions(opts...)
	if err = opt.validate(); err != nil {
		return Slot{}, Slot{}, converterErrorf(opOpen, err)
	}
	n, err := opt.resolveSpins(o.NumberSpins(), o.MaxIndex(), MaxOpenSpins)
	if err != nil {
		return Slot{}, Slot{}, converterErrorf(opOpen, err)
	}

	if coherent, err = coherentSlot(o.System(), n, opt); err != nil {
		return Slot{}, Slot{}, converterErrorf(opOpen, err)
	}
	if dissipative, err = noiseSlot(o.Noise(), n, opt); err != nil {
		return Slot{}, Slot{}, converterErrorf(opOpen, err)
	}

	return coherent, dissipative, nil
}

// NoiseSystemToSuperoperators returns the aggregate dissipator of noise
// alone; the zero sentinel when noise is empty.
func NoiseSystemToSuperoperators(noise *spins.NoiseSystem, opts ...Option) (Slot, error) {
	if noise == nil {
		return Slot{}, converterErrorf(opNoise, ErrNilSystem)
	}
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return Slot{}, converterErrorf(opNoise, err)
	}
	n, err := o.resolveSpins(noise.NumberSpins(), noise.MaxIndex(), MaxOpenSpins)
	if err != nil {
		return Slot{}, converterErrorf(opNoise, err)
	}
	sl, err := noiseSlot(noise, n, o)
	if err != nil {
		return Slot{}, converterErrorf(opNoise, err)
	}

	return sl, nil
}

// coherentSlot builds −i(spre(H) − spost(H)).
func coherentSlot(s *spins.OperatorSystem, n int, o Options) (Slot, error) {
	if s.IsEmpty() {
		return Slot{}, nil
	}
	h, err := systemMatrix(s, n, o)
	if err != nil {
		return Slot{}, err
	}
	pre, err := superop.Spre(h)
	if err != nil {
		return Slot{}, err
	}
	post, err := superop.Spost(h)
	if err != nil {
		return Slot{}, err
	}
	comm, err := superop.Sub(pre, post)
	if err != nil {
		return Slot{}, err
	}
	l, err := superop.Scale(comm, -1i)
	if err != nil {
		return Slot{}, err
	}

	return Slot{s: l}, nil
}

// noiseSlot sums the dissipator terms of noise on n spins.
//
// Implementation:
//   - Stage 1: build every term D[L, R], serially or on a bounded errgroup.
//   - Stage 2: reduce acc += c · D[L, R] in sorted term order.
func noiseSlot(noise *spins.NoiseSystem, n int, o Options) (Slot, error) {
	if noise.IsEmpty() {
		return Slot{}, nil
	}
	terms := noise.Terms()
	dim := 1 << n
	zero, err := matrix.Zeros(dim*dim, dim*dim)
	if err != nil {
		return Slot{}, err
	}
	acc, err := superop.FromMatrix(zero)
	if err != nil {
		return Slot{}, err
	}

	if o.workers <= 1 {
		for _, t := range terms {
			d, err := dissipatorTerm(t, n, o)
			if err != nil {
				return Slot{}, err
			}
			if err = acc.AddScaled(t.Coefficient, d); err != nil {
				return Slot{}, err
			}
		}
	} else {
		built := make([]*superop.Superoperator, len(terms))
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i, t := range terms {
			g.Go(func() error {
				d, err := dissipatorTerm(t, n, o)
				if err != nil {
					return err
				}
				built[i] = d

				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return Slot{}, err
		}
		for i, t := range terms {
			if err = acc.AddScaled(t.Coefficient, built[i]); err != nil {
				return Slot{}, err
			}
		}
	}
	o.log.Debug().
		Int("spins", n).
		Int("terms", len(terms)).
		Int("workers", o.workers).
		Msg("dissipator materialized")

	return Slot{s: acc}, nil
}

// dissipatorTerm builds the unit-rate Lindblad term
//
//	sprepost(A_n, A_m†) − ½ spre(A_m†A_n) − ½ spost(A_m†A_n).
func dissipatorTerm(t spins.NoiseTerm, n int, o Options) (*superop.Superoperator, error) {
	an, err := decoherenceMatrix(t.Left, n, o)
	if err != nil {
		return nil, fmt.Errorf("left %s: %w", t.Left, err)
	}
	am, err := decoherenceMatrix(t.Right, n, o)
	if err != nil {
		return nil, fmt.Errorf("right %s: %w", t.Right, err)
	}
	amDag, err := matrix.Dagger(am)
	if err != nil {
		return nil, err
	}
	x, err := matrix.DaggerMul(am, an)
	if err != nil {
		return nil, err
	}

	d, err := superop.Sprepost(an, amDag)
	if err != nil {
		return nil, err
	}
	pre, err := superop.Spre(x)
	if err != nil {
		return nil, err
	}
	post, err := superop.Spost(x)
	if err != nil {
		return nil, err
	}
	if err = d.AddScaled(-0.5, pre); err != nil {
		return nil, err
	}
	if err = d.AddScaled(-0.5, post); err != nil {
		return nil, err
	}

	return d, nil
}
