// Package matrix provides dense complex matrices and the small set of
// linear-algebra kernels needed to materialize spin operators.
//
// What & Why:
//
//	Dense is a row-major buffer of complex128 values. All kernels allocate a
//	fresh result and never mutate their operands, so a converted operator is
//	owned exclusively by its caller. The Matrix interface keeps the kernels
//	usable with any implementation; *Dense operands take a flat fast path.
//
// Kernels:
//
//   - Add, Sub, Scale, (*Dense).AddScaled: element-wise arithmetic.
//   - Mul: C = A·B through gonum's cblas128.Gemm.
//   - Kron, KronAll: tensor (Kronecker) products.
//   - Transpose, Conj, Dagger: (conjugate) transposition.
//   - Identity, Zeros, NewDenseFrom, FromRows: constructors.
//   - AllClose, Equal: comparisons with an explicit tolerance.
//
// Complexity:
//
//	At/Set are O(1). Element-wise kernels are O(r·c). Mul is O(r·k·c) and
//	Kron is O(r₁·c₁·r₂·c₂), which dominates operator construction.
package matrix
