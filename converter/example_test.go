package converter_test

import (
	"fmt"

	"github.com/katalvlaran/spinqobj/converter"
	"github.com/katalvlaran/spinqobj/spins"
)

// ExamplePauliProductToMatrix shows how endianness orders the tensor factors
// of σx on qubit 0 and σz on qubit 1.
func ExamplePauliProductToMatrix() {
	p := spins.MustPauliProduct("0X1Z")

	little, _ := converter.PauliProductToMatrix(p, 2)
	big, _ := converter.PauliProductToMatrix(p, 2, converter.WithEndianness(converter.Big))
	fmt.Print("little (σz ⊗ σx):\n", little)
	fmt.Print("big (σx ⊗ σz):\n", big)

	// Output:
	// little (σz ⊗ σx):
	// [0, 1, 0, 0]
	// [1, 0, 0, 0]
	// [0, 0, 0, -1]
	// [0, 0, -1, 0]
	// big (σx ⊗ σz):
	// [0, 0, 1, 0]
	// [0, 0, 0, -1]
	// [1, 0, 0, 0]
	// [0, -1, 0, 0]
}

// ExampleSystemToMatrix materializes H = 0.5·σz on a single qubit.
func ExampleSystemToMatrix() {
	h := spins.NewHamiltonianSystem()
	if err := h.Set(spins.MustPauliProduct("0Z"), 0.5); err != nil {
		fmt.Println(err)
		return
	}

	m, err := converter.SystemToMatrix(h)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)

	// Output:
	// [0.5, 0]
	// [0, -0.5]
}

// ExampleOpenSystemToSuperoperators converts a noise-only open system: the
// coherent slot is the zero sentinel.
func ExampleOpenSystemToSuperoperators() {
	noise := spins.NewNoiseSystem()
	z := spins.MustDecoherenceProduct("0Z")
	if err := noise.Set(z, z, 1); err != nil {
		fmt.Println(err)
		return
	}

	coherent, dissipative, err := converter.OpenSystemToSuperoperators(spins.FromNoise(noise))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("coherent:", coherent)
	fmt.Print("dissipative:\n", dissipative)

	// Output:
	// coherent: 0
	// dissipative:
	// [0, 0, 0, 0]
	// [0, -2, 0, 0]
	// [0, 0, -2, 0]
	// [0, 0, 0, 0]
}
