// SPDX-License-Identifier: MIT

package converter

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of dissipator terms built concurrently.
	// 1 builds them serially on the calling goroutine.
	DefaultWorkers = 1

	// MaxSpins bounds products and operator systems: a 2ⁿ×2ⁿ matrix holds
	// 4ⁿ values, which must not exceed matrix.MaxElements.
	MaxSpins = 12

	// MaxOpenSpins bounds open and noise systems: a 4ⁿ×4ⁿ superoperator
	// holds 16ⁿ values, which must not exceed matrix.MaxElements.
	MaxOpenSpins = 6
)

const panicWorkersInvalid = "converter: WithWorkers: k must be >= 1"

// Option mutates the conversion options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	endianness Endianness
	spins      int
	spinsSet   bool
	workers    int
	log        zerolog.Logger
}

// WithEndianness selects the tensor factor order. An invalid value is
// reported by the converters as ErrInvalidEndianness.
func WithEndianness(e Endianness) Option {
	return func(o *Options) { o.endianness = e }
}

// WithNumberSpins overrides the inferred number of spins. The value must be
// at least the number of spins the converted object requires, otherwise the
// converters return ErrSpinOutOfRange.
func WithNumberSpins(n int) Option {
	return func(o *Options) {
		o.spins = n
		o.spinsSet = true
	}
}

// WithWorkers sets how many dissipator terms are built concurrently.
// Results do not depend on k: terms are always summed in sorted order.
// Panics when k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// WithLogger sets the logger used for debug tracing. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		endianness: DefaultEndianness,
		workers:    DefaultWorkers,
		log:        zerolog.Nop(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// resolveSpins returns the spin count to materialize with. required is the
// count the object declares or infers, highest the largest qubit any of its
// terms touches (-1 for none) and limit the size bound of the result.
// Nothing is allocated before this check passes.
func (o Options) resolveSpins(required, highest, limit int) (int, error) {
	n := required
	if o.spinsSet {
		n = o.spins
	}
	switch {
	case n < 0:
		return 0, ErrInvalidSpinCount
	case n > limit:
		return 0, spinCountErr(n, limit)
	case highest >= n:
		return 0, outOfRangeErr(highest, n)
	case n < required:
		return 0, fmt.Errorf("override of %d spins below the %d declared: %w", n, required, ErrSpinOutOfRange)
	}

	return n, nil
}

// validate checks the options that can only be judged at conversion time.
func (o Options) validate() error {
	if !o.endianness.Valid() {
		return ErrInvalidEndianness
	}

	return nil
}
