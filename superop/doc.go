// Package superop builds superoperators: linear maps acting on density
// matrices, represented as dense matrices on vectorized operators.
//
// Vectorization is column-stacking: vec(ρ)[i + j·d] = ρ[i,j] for a d×d ρ.
// Under that convention
//
//	vec(A·ρ)   = (I ⊗ A)  · vec(ρ)   → Spre(A)
//	vec(ρ·B)   = (Bᵀ ⊗ I) · vec(ρ)   → Spost(B)
//	vec(A·ρ·B) = (Bᵀ ⊗ A) · vec(ρ)   → Sprepost(A, B)
//
// so a superoperator over a d-dimensional Hilbert space is a d²×d² matrix;
// for n qubits that is 4ⁿ×4ⁿ.
package superop
