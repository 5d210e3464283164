package main

import (
	"errors"

	"github.com/katalvlaran/spinqobj/converter"
	"github.com/katalvlaran/spinqobj/internal/document"
	"github.com/katalvlaran/spinqobj/internal/export"
	"github.com/katalvlaran/spinqobj/lattice"
	"github.com/katalvlaran/spinqobj/matrix"
	"github.com/katalvlaran/spinqobj/spins"
	"github.com/spf13/cobra"
)

var errNoFile = errors.New("a description file is required (-f)")

func newPauliCmd(a *app) *cobra.Command {
	var (
		n           int
		decoherence bool
	)
	cmd := &cobra.Command{
		Use:   "pauli PRODUCT",
		Short: "Print the matrix of one Pauli (or decoherence) product",
		Long: `Materializes a single product such as "0X1Z" on the given number of spins.
Without --spins the product's highest qubit index + 1 is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				m   *matrix.Dense
				err error
			)
			if decoherence {
				m, err = productMatrix(args[0], n, a, spins.ParseDecoherenceProduct, converter.DecoherenceProductToMatrix)
			} else {
				m, err = productMatrix(args[0], n, a, spins.ParsePauliProduct, converter.PauliProductToMatrix)
			}
			if err != nil {
				return err
			}

			return a.write(export.FromMatrix(args[0], m))
		},
	}
	cmd.Flags().IntVarP(&n, "spins", "n", -1, "number of spins (default: inferred)")
	cmd.Flags().BoolVar(&decoherence, "decoherence", false, "parse PRODUCT over the decoherence basis {I, X, iY, Z}")

	return cmd
}

// productMatrix parses a product string and materializes it. n < 0 infers
// the spin count from the product support.
func productMatrix[P interface{ MaxIndex() int }](
	s string,
	n int,
	a *app,
	parse func(string) (P, error),
	build func(P, int, ...converter.Option) (*matrix.Dense, error),
) (*matrix.Dense, error) {
	p, err := parse(s)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = p.MaxIndex() + 1
	}
	a.log.Debug().Str("product", s).Int("spins", n).Msg("building product")

	return build(p, n, a.options(-1)...)
}

func newSystemCmd(a *app) *cobra.Command {
	var (
		file string
		n    int
	)
	cmd := &cobra.Command{
		Use:   "system -f FILE",
		Short: "Print the matrix of the coherent part of a YAML description",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if file == "" {
				return errNoFile
			}
			doc, err := document.Load(file)
			if err != nil {
				return err
			}
			s, err := doc.OperatorSystem()
			if err != nil {
				return err
			}
			m, err := converter.SystemToMatrix(s, a.options(n)...)
			if err != nil {
				return err
			}
			a.log.Info().Str("file", file).Int("terms", s.Len()).Int("dim", m.Rows()).Msg("system converted")

			return a.write(export.FromMatrix("system", m))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML description file")
	cmd.Flags().IntVarP(&n, "spins", "n", -1, "number of spins (default: from the file)")

	return cmd
}

func newOpenCmd(a *app) *cobra.Command {
	var (
		file string
		n    int
	)
	cmd := &cobra.Command{
		Use:   "open -f FILE",
		Short: "Print the coherent and dissipative superoperators of a YAML description",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if file == "" {
				return errNoFile
			}
			doc, err := document.Load(file)
			if err != nil {
				return err
			}
			o, err := doc.OpenSystem()
			if err != nil {
				return err
			}
			coherent, dissipative, err := converter.OpenSystemToSuperoperators(o, a.options(n)...)
			if err != nil {
				return err
			}
			a.log.Info().
				Str("file", file).
				Bool("coherent_zero", coherent.IsZero()).
				Bool("dissipative_zero", dissipative.IsZero()).
				Msg("open system converted")

			return a.write(export.FromSlot("coherent", coherent), export.FromSlot("dissipative", dissipative))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML description file")
	cmd.Flags().IntVarP(&n, "spins", "n", -1, "number of spins (default: from the file)")

	return cmd
}

func newModelCmd(a *app) *cobra.Command {
	var (
		geometry                 string
		ising, xy, heisenberg    float64
		transverse, longitudinal float64
		dephasing                float64
	)
	cmd := &cobra.Command{
		Use:   "model --lattice KIND:SIZE",
		Short: "Build a lattice spin model and print its superoperators",
		Long: `Builds H from nearest-neighbour couplings on a lattice such as chain:4,
ring:6 or grid:2x3, adds local dephasing when --dephasing is non-zero, and
prints the coherent and dissipative superoperators.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			l, err := lattice.Parse(geometry)
			if err != nil {
				return err
			}
			var couplings []lattice.Coupling
			for _, c := range []struct {
				v  float64
				fn func(float64) lattice.Coupling
			}{
				{ising, lattice.Ising},
				{xy, lattice.XY},
				{heisenberg, lattice.Heisenberg},
				{transverse, lattice.TransverseField},
				{longitudinal, lattice.LongitudinalField},
			} {
				if c.v != 0 {
					couplings = append(couplings, c.fn(c.v))
				}
			}
			h, err := lattice.Build(l, couplings...)
			if err != nil {
				return err
			}
			noise := spins.NewNoiseSystem()
			if dephasing != 0 {
				if noise, err = lattice.Dephasing(l, dephasing); err != nil {
					return err
				}
			}

			coherent, dissipative, err := converter.OpenSystemToSuperoperators(spins.Group(h, noise), a.options(l.Sites())...)
			if err != nil {
				return err
			}
			a.log.Info().
				Str("lattice", l.Name()).
				Int("bonds", len(l.Bonds())).
				Int("terms", h.Len()).
				Msg("model converted")

			return a.write(export.FromSlot("coherent", coherent), export.FromSlot("dissipative", dissipative))
		},
	}
	f := cmd.Flags()
	f.StringVar(&geometry, "lattice", "chain:2", "lattice: chain:N, ring:N, star:N, complete:N or grid:RxC")
	f.Float64Var(&ising, "ising", 0, "ZZ coupling per bond")
	f.Float64Var(&xy, "xy", 0, "XX+YY coupling per bond")
	f.Float64Var(&heisenberg, "heisenberg", 0, "XX+YY+ZZ coupling per bond")
	f.Float64Var(&transverse, "transverse", 0, "X field per site")
	f.Float64Var(&longitudinal, "longitudinal", 0, "Z field per site")
	f.Float64Var(&dephasing, "dephasing", 0, "Z dephasing rate per site")

	return cmd
}
