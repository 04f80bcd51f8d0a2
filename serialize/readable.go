package serialize

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
)

// Parser turns a readable token into a product of kind P.
type Parser[P any] func(token string) (P, error)

// Readable is the human-readable document of an operator or Hamiltonian.
type Readable struct {
	Items   []ReadableItem `json:"items" yaml:"items"`
	Version Version        `json:"_struqture_version" yaml:"_struqture_version"`
}

// ReadableItem is one [token, re, im] row.
type ReadableItem struct {
	Token  string
	Re, Im Value
}

// ReadableNoise is the human-readable document of a noise operator.
type ReadableNoise struct {
	Items   []ReadableNoiseItem `json:"items" yaml:"items"`
	Version Version             `json:"_struqture_version" yaml:"_struqture_version"`
}

// ReadableNoiseItem is one [left, right, re, im] row.
type ReadableNoiseItem struct {
	Left, Right string
	Re, Im      Value
}

// MarshalJSON implements json.Marshaler.
func (it ReadableItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{it.Token, it.Re, it.Im})
}

// UnmarshalJSON implements json.Unmarshaler.
func (it *ReadableItem) UnmarshalJSON(data []byte) error {
	tokens, re, im, err := unmarshalRowJSON(data, 1)
	if err != nil {
		return err
	}
	it.Token, it.Re, it.Im = tokens[0], re, im

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (it ReadableItem) MarshalYAML() (any, error) { return []any{it.Token, it.Re, it.Im}, nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (it *ReadableItem) UnmarshalYAML(node *yaml.Node) error {
	tokens, re, im, err := unmarshalRowYAML(node, 1)
	if err != nil {
		return err
	}
	it.Token, it.Re, it.Im = tokens[0], re, im

	return nil
}

// MarshalJSON implements json.Marshaler.
func (it ReadableNoiseItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{it.Left, it.Right, it.Re, it.Im})
}

// UnmarshalJSON implements json.Unmarshaler.
func (it *ReadableNoiseItem) UnmarshalJSON(data []byte) error {
	tokens, re, im, err := unmarshalRowJSON(data, 2)
	if err != nil {
		return err
	}
	it.Left, it.Right, it.Re, it.Im = tokens[0], tokens[1], re, im

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (it ReadableNoiseItem) MarshalYAML() (any, error) {
	return []any{it.Left, it.Right, it.Re, it.Im}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (it *ReadableNoiseItem) UnmarshalYAML(node *yaml.Node) error {
	tokens, re, im, err := unmarshalRowYAML(node, 2)
	if err != nil {
		return err
	}
	it.Left, it.Right, it.Re, it.Im = tokens[0], tokens[1], re, im

	return nil
}

// unmarshalRowJSON decodes [token × n, re, im].
func unmarshalRowJSON(data []byte, n int) (tokens []string, re, im Value, err error) {
	var raw []json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, re, im, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw) != n+2 {
		return nil, re, im, fmt.Errorf("%w: row has %d fields, want %d", ErrMalformed, len(raw), n+2)
	}
	tokens = make([]string, n)
	for i := range tokens {
		if err = json.Unmarshal(raw[i], &tokens[i]); err != nil {
			return nil, re, im, fmt.Errorf("%w: token %s is not a string", ErrMalformed, raw[i])
		}
	}
	if err = re.UnmarshalJSON(raw[n]); err != nil {
		return nil, re, im, err
	}
	if err = im.UnmarshalJSON(raw[n+1]); err != nil {
		return nil, re, im, err
	}

	return tokens, re, im, nil
}

// unmarshalRowYAML decodes a sequence node [token × n, re, im].
func unmarshalRowYAML(node *yaml.Node, n int) (tokens []string, re, im Value, err error) {
	if node.Kind != yaml.SequenceNode {
		return nil, re, im, fmt.Errorf("%w: row at line %d is not a sequence", ErrMalformed, node.Line)
	}
	if len(node.Content) != n+2 {
		return nil, re, im, fmt.Errorf("%w: row at line %d has %d fields, want %d",
			ErrMalformed, node.Line, len(node.Content), n+2)
	}
	tokens = make([]string, n)
	for i := range tokens {
		if err = node.Content[i].Decode(&tokens[i]); err != nil {
			return nil, re, im, fmt.Errorf("%w: token at line %d: %v", ErrMalformed, node.Line, err)
		}
	}
	if err = re.UnmarshalYAML(node.Content[n]); err != nil {
		return nil, re, im, err
	}
	if err = im.UnmarshalYAML(node.Content[n+1]); err != nil {
		return nil, re, im, err
	}

	return tokens, re, im, nil
}

func split(c calc.Complex) (re, im Value) { return Value{F: c.Real()}, Value{F: c.Imag()} }

func join(re, im Value) calc.Complex { return calc.FromParts(re.F, im.F) }

func readableItems[P core.Product[P]](items []core.Item[P]) []ReadableItem {
	out := make([]ReadableItem, len(items))
	for i, it := range items {
		re, im := split(it.Value)
		out[i] = ReadableItem{Token: it.Product.String(), Re: re, Im: im}
	}

	return out
}

func parseReadable[P core.Product[P]](r Readable, parse Parser[P]) ([]core.Item[P], error) {
	if err := r.Version.Check(); err != nil {
		return nil, err
	}
	items := make([]core.Item[P], len(r.Items))
	for i, it := range r.Items {
		p, err := parse(it.Token)
		if err != nil {
			return nil, err
		}
		items[i] = core.Item[P]{Product: p, Value: join(it.Re, it.Im)}
	}

	return items, nil
}

// ToReadable exports op in sorted key order, stamped with the current version.
func ToReadable[P core.Product[P]](op *core.Operator[P]) Readable {
	return Readable{Items: readableItems(op.Items()), Version: CurrentVersion()}
}

// FromReadable rebuilds an operator. Repeated tokens are merge-added.
func FromReadable[P core.Product[P]](r Readable, parse Parser[P], opts ...core.Option) (*core.Operator[P], error) {
	items, err := parseReadable(r, parse)
	if err != nil {
		return nil, fmt.Errorf("FromReadable: %w", err)
	}
	op, err := core.FromItems(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromReadable: %w", err)
	}

	return op, nil
}

// ToReadableHermitian exports the stored canonical keys of h.
func ToReadableHermitian[P core.HermitianProduct[P]](h *core.HermitianOperator[P]) Readable {
	return Readable{Items: readableItems(h.Items()), Version: CurrentVersion()}
}

// FromReadableHermitian rebuilds a Hermitian operator; tokens must be canonical keys.
func FromReadableHermitian[P core.HermitianProduct[P]](r Readable, parse Parser[P], opts ...core.Option) (*core.HermitianOperator[P], error) {
	items, err := parseReadable(r, parse)
	if err != nil {
		return nil, fmt.Errorf("FromReadableHermitian: %w", err)
	}
	h, err := core.HermitianFromItems(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromReadableHermitian: %w", err)
	}

	return h, nil
}

// ToReadableNoise exports n ordered by left, then right product.
func ToReadableNoise[P core.Product[P]](n *core.NoiseOperator[P]) ReadableNoise {
	src := n.Items()
	items := make([]ReadableNoiseItem, len(src))
	for i, it := range src {
		re, im := split(it.Value)
		items[i] = ReadableNoiseItem{Left: it.Left.String(), Right: it.Right.String(), Re: re, Im: im}
	}

	return ReadableNoise{Items: items, Version: CurrentVersion()}
}

// FromReadableNoise rebuilds a noise operator.
func FromReadableNoise[P core.Product[P]](r ReadableNoise, parse Parser[P], opts ...core.Option) (*core.NoiseOperator[P], error) {
	if err := r.Version.Check(); err != nil {
		return nil, fmt.Errorf("FromReadableNoise: %w", err)
	}
	items := make([]core.NoiseItem[P], len(r.Items))
	for i, it := range r.Items {
		left, err := parse(it.Left)
		if err != nil {
			return nil, fmt.Errorf("FromReadableNoise: %w", err)
		}
		right, err := parse(it.Right)
		if err != nil {
			return nil, fmt.Errorf("FromReadableNoise: %w", err)
		}
		items[i] = core.NoiseItem[P]{Left: left, Right: right, Value: join(it.Re, it.Im)}
	}
	n, err := core.NoiseFromItems(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromReadableNoise: %w", err)
	}

	return n, nil
}
