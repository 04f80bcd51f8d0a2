// Package bosons implements bosonic product kinds and their operator containers.
//
// Every mode carries a normal-ordered monomial BosonMode{Creators: m, Annihilators: n},
// b†^m b^n, written "C"×m followed by "A"×n: "0CCA1A" = b†₀² b₀ b₁. Products on
// different modes commute; on the same mode they are normal-ordered with
//
//	b†^a b^b · b†^c b^d = Σ_k C(b,k)·C(c,k)·k! · b†^(a+c−k) b^(b+d−k)
//
// so b·b† = b†b + I. Conjugate swaps creators and annihilators without a sign.
//
// HermitianBosonProduct picks the smaller of P and P† as Hamiltonian key; it is
// self-adjoint when every mode has m = n.
//
// Boson products have no finite computational basis and are not accepted by the
// sparse matrix conversion.
package bosons
