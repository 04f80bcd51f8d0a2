package serialize

import (
	"fmt"

	"github.com/katalvlaran/qop/core"
)

// CompactSymbol is an (index, tag) pair encoded as a two-element array.
type CompactSymbol struct {
	_msgpack struct{} `msgpack:",as_array"`
	Index    int
	Tag      string
}

// Compact is the machine-oriented document of an operator or Hamiltonian.
type Compact struct {
	Items   []CompactItem `msgpack:"items"`
	Version Version       `msgpack:"_struqture_version"`
}

// CompactItem is one [[symbols], re, im] row.
type CompactItem struct {
	_msgpack struct{} `msgpack:",as_array"`
	Product  []CompactSymbol
	Re, Im   CompactFloat
}

// CompactNoise is the machine-oriented document of a noise operator.
type CompactNoise struct {
	Items   []CompactNoiseItem `msgpack:"items"`
	Version Version            `msgpack:"_struqture_version"`
}

// CompactNoiseItem is one [[left symbols], [right symbols], re, im] row.
type CompactNoiseItem struct {
	_msgpack    struct{} `msgpack:",as_array"`
	Left, Right []CompactSymbol
	Re, Im      CompactFloat
}

func compactSymbols[P core.Product[P]](p P) []CompactSymbol {
	syms := p.Symbols()
	out := make([]CompactSymbol, len(syms))
	for i, s := range syms {
		out[i] = CompactSymbol{Index: s.Index, Tag: s.Tag}
	}

	return out
}

// parseCompact rebuilds the canonical token and hands it to parse, so compact input goes
// through the same validation as readable input.
func parseCompact[P any](syms []CompactSymbol, parse Parser[P]) (P, error) {
	pairs := make([]core.IndexedSymbol, len(syms))
	for i, s := range syms {
		pairs[i] = core.IndexedSymbol{Index: s.Index, Tag: s.Tag}
	}

	return parse(core.JoinToken(pairs))
}

func compactItems[P core.Product[P]](items []core.Item[P]) []CompactItem {
	out := make([]CompactItem, len(items))
	for i, it := range items {
		out[i] = CompactItem{
			Product: compactSymbols(it.Product),
			Re:      toCompactFloat(it.Value.Real()),
			Im:      toCompactFloat(it.Value.Imag()),
		}
	}

	return out
}

func parseCompactItems[P core.Product[P]](c Compact, parse Parser[P]) ([]core.Item[P], error) {
	if err := c.Version.Check(); err != nil {
		return nil, err
	}
	items := make([]core.Item[P], len(c.Items))
	for i, it := range c.Items {
		p, err := parseCompact(it.Product, parse)
		if err != nil {
			return nil, err
		}
		re, err := it.Re.toFloat()
		if err != nil {
			return nil, err
		}
		im, err := it.Im.toFloat()
		if err != nil {
			return nil, err
		}
		items[i] = core.Item[P]{Product: p, Value: join(Value{F: re}, Value{F: im})}
	}

	return items, nil
}

// ToCompact exports op in sorted key order, stamped with the current version.
func ToCompact[P core.Product[P]](op *core.Operator[P]) Compact {
	return Compact{Items: compactItems(op.Items()), Version: CurrentVersion()}
}

// FromCompact rebuilds an operator.
func FromCompact[P core.Product[P]](c Compact, parse Parser[P], opts ...core.Option) (*core.Operator[P], error) {
	items, err := parseCompactItems(c, parse)
	if err != nil {
		return nil, fmt.Errorf("FromCompact: %w", err)
	}
	op, err := core.FromItems(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromCompact: %w", err)
	}

	return op, nil
}

// ToCompactHermitian exports the stored canonical keys of h.
func ToCompactHermitian[P core.HermitianProduct[P]](h *core.HermitianOperator[P]) Compact {
	return Compact{Items: compactItems(h.Items()), Version: CurrentVersion()}
}

// FromCompactHermitian rebuilds a Hermitian operator.
func FromCompactHermitian[P core.HermitianProduct[P]](c Compact, parse Parser[P], opts ...core.Option) (*core.HermitianOperator[P], error) {
	items, err := parseCompactItems(c, parse)
	if err != nil {
		return nil, fmt.Errorf("FromCompactHermitian: %w", err)
	}
	h, err := core.HermitianFromItems(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromCompactHermitian: %w", err)
	}

	return h, nil
}

// ToCompactNoise exports n ordered by left, then right product.
func ToCompactNoise[P core.Product[P]](n *core.NoiseOperator[P]) CompactNoise {
	src := n.Items()
	items := make([]CompactNoiseItem, len(src))
	for i, it := range src {
		items[i] = CompactNoiseItem{
			Left:  compactSymbols(it.Left),
			Right: compactSymbols(it.Right),
			Re:    toCompactFloat(it.Value.Real()),
			Im:    toCompactFloat(it.Value.Imag()),
		}
	}

	return CompactNoise{Items: items, Version: CurrentVersion()}
}

// FromCompactNoise rebuilds a noise operator.
func FromCompactNoise[P core.Product[P]](c CompactNoise, parse Parser[P], opts ...core.Option) (*core.NoiseOperator[P], error) {
	if err := c.Version.Check(); err != nil {
		return nil, fmt.Errorf("FromCompactNoise: %w", err)
	}
	items := make([]core.NoiseItem[P], len(c.Items))
	for i, it := range c.Items {
		left, err := parseCompact(it.Left, parse)
		if err != nil {
			return nil, fmt.Errorf("FromCompactNoise: %w", err)
		}
		right, err := parseCompact(it.Right, parse)
		if err != nil {
			return nil, fmt.Errorf("FromCompactNoise: %w", err)
		}
		re, err := it.Re.toFloat()
		if err != nil {
			return nil, fmt.Errorf("FromCompactNoise: %w", err)
		}
		im, err := it.Im.toFloat()
		if err != nil {
			return nil, fmt.Errorf("FromCompactNoise: %w", err)
		}
		items[i] = core.NoiseItem[P]{Left: left, Right: right, Value: join(Value{F: re}, Value{F: im})}
	}
	n, err := core.NoiseFromItems(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromCompactNoise: %w", err)
	}

	return n, nil
}
