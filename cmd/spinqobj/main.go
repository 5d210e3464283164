// Command spinqobj materializes spin systems as dense matrices and
// Lindblad superoperators.
//
// Usage:
//
//	spinqobj pauli 0X1Z --spins 2 --endianness big
//	spinqobj pauli 0Z1iY --decoherence
//	spinqobj system -f hamiltonian.yaml --format json
//	spinqobj open -f open.yaml --format msgpack --workers 4
//	spinqobj model --lattice ring:4 --ising -1 --transverse 0.5 --dephasing 0.1
//
// Defaults come from SPINQOBJ_* environment variables and an optional .env
// file; flags override both.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
