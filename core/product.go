package core

// IndexedSymbol is one (mode index, symbol tag) pair of a product, the unit of the
// compact encoding. Tags are the readable symbol letters ("X", "iY", "C", "CCA", …).
type IndexedSymbol struct {
	Index int    `json:"index" yaml:"index" msgpack:"index"`
	Tag   string `json:"tag" yaml:"tag" msgpack:"tag"`
}

// Product is the capability set every canonical product key provides.
//
// Implementations are immutable value types. Two products are equal iff their
// String tokens are equal, and Compare must agree with that equality.
type Product[P any] interface {
	// String returns the canonical readable token (e.g. "0X1Z"); it doubles as map key.
	String() string

	// Compare orders products totally: lexicographic on (index, symbol) pairs,
	// a proper prefix sorts first. Returns -1, 0 or +1.
	Compare(other P) int

	// Conjugate returns the Hermitian conjugate as a canonical product and the phase
	// that was factored out while restoring canonical order.
	Conjugate() (P, Phase)

	// CurrentNumberModes returns max index + 1, or 0 for the identity product.
	CurrentNumberModes() int

	// NumberIndices returns how many distinct mode indices the product touches.
	NumberIndices() int

	// Symbols returns the (index, tag) pairs in ascending index order.
	Symbols() []IndexedSymbol
}

// Scaled is a product with an exact scalar factor: a phase, a fermionic sign or a
// bosonic normal-ordering weight.
type Scaled[P any] struct {
	Product P
	Factor  complex128
}

// Multiplicative products can be multiplied with each other. The result is a sum of
// canonical products; an empty slice means the product vanishes (e.g. c†·c† on one mode).
type Multiplicative[P any] interface {
	Product[P]
	MulTerms(other P) []Scaled[P]
}

// HermitianProduct is a Hamiltonian-class key: the key stands for itself plus its
// Hermitian conjugate unless IsSelfAdjoint reports true.
type HermitianProduct[P any] interface {
	Product[P]
	IsSelfAdjoint() bool
}

// maxModes returns the largest CurrentNumberModes among products.
func maxModes[P Product[P]](ps ...P) int {
	n := 0
	for _, p := range ps {
		if m := p.CurrentNumberModes(); m > n {
			n = m
		}
	}

	return n
}
