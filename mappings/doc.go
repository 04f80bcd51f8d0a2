// Package mappings converts between spin and fermion operators with the
// Jordan-Wigner transform.
//
// Spin to fermion, with S_j = Π_{k<j}(I − 2N_k):
//
//	Z_j  ↦ I − 2N_j
//	X_j  ↦ S_j (C_j + A_j)
//	Y_j  ↦ i S_j (C_j − A_j)
//	iY_j ↦ S_j (A_j − C_j)
//
// Fermion to spin:
//
//	C_j ↦ Π_{k<j} Z_k · (X_j − iY_j)/2
//	A_j ↦ Π_{k<j} Z_k · (X_j + iY_j)/2
//	N_j ↦ (I − Z_j)/2
//
// Products map to the ordered product of their per-index images, composed with
// core.Mul. Results keep mode indices, so a spin operator and its fermionic image
// yield the same sparse matrix. Product images are unbounded; operator images keep
// the bound of a bounded input.
package mappings
