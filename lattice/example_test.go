package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/spinqobj/lattice"
)

// ExampleBuild assembles a transverse-field Ising ring.
func ExampleBuild() {
	ring, err := lattice.Ring(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	h, err := lattice.Build(ring, lattice.Ising(-1), lattice.TransverseField(0.5))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ring.Bonds())
	fmt.Println(h)

	// Output:
	// [0-1 1-2 0-2]
	// (0.5+0i)*0X + (-1+0i)*0Z1Z + (-1+0i)*0Z2Z + (0.5+0i)*1X + (-1+0i)*1Z2Z + (0.5+0i)*2X
}
