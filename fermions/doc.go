// Package fermions implements fermionic product kinds and their operator containers.
//
// A FermionProduct assigns one symbol per mode, C (c†), A (c) or N (c†c), and denotes
// the ordered product over ascending mode indices: "0C2A" = c†₀ c₂.
//
// Multiplication rules:
//
//   - Symbols on different modes anticommute when both are C or A. p·q picks up
//     (−1)^k, k = number of (odd left, odd right) pairs with left index > right index.
//   - Same mode: c†c† = cc = 0, c†c = N, cc† = I − N, cN = c, Nc† = c†, c†N = Nc = 0,
//     NN = N. A vanishing same-mode product drops the whole term; it is not an error.
//
// Conjugate swaps C and A and applies (−1)^(m(m−1)/2), m = number of C and A symbols.
//
// HermitianFermionProduct picks the smaller of P and P† as Hamiltonian key; a key that
// is not all N implies "+ h.c.".
//
// Containers:
//
//	FermionOperator      = core.Operator[FermionProduct]
//	FermionHamiltonian   = core.HermitianOperator[HermitianFermionProduct]
//	FermionNoiseOperator = core.NoiseOperator[FermionProduct]
//
// FermionProduct.ApplyToBasis acts on occupation states with Jordan-Wigner signs, so
// fermionic and spin matrices agree under the mappings package.
package fermions
