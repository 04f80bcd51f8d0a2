package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qop/calc"
)

// Value is a readable real coefficient: a JSON/YAML number, or a string for symbolic
// expressions and non-finite numbers.
type Value struct {
	F calc.Float
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if f, ok := v.number(); ok {
		return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
	}

	return json.Marshal(v.text())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.F = fromText(s)

		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("%w: coefficient %s", ErrMalformed, data)
	}
	v.F = calc.NewFloat(f)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	if f, ok := v.number(); ok {
		return f, nil
	}

	return v.text(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: coefficient at line %d is not a scalar", ErrMalformed, node.Line)
	}
	if node.Tag == "!!str" {
		v.F = fromText(node.Value)

		return nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("%w: coefficient %q: %v", ErrMalformed, node.Value, err)
	}
	v.F = calc.NewFloat(f)

	return nil
}

// number returns the finite numeric value, if any.
func (v Value) number() (float64, bool) {
	f, err := v.F.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// fromText reads the string form of a coefficient: the non-finite spellings text
// writes, otherwise calc.Symbol.
func fromText(s string) calc.Float {
	switch s {
	case "+Inf":
		return calc.NewFloat(math.Inf(1))
	case "-Inf":
		return calc.NewFloat(math.Inf(-1))
	case "NaN":
		return calc.NewFloat(math.NaN())
	}

	return calc.Symbol(s)
}

func (v Value) text() string {
	if v.F.IsSymbolic() {
		return v.F.Expr()
	}
	f, _ := v.F.Float64()

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// CompactFloat is the tagged compact coefficient: exactly one of Float and Str is set.
type CompactFloat struct {
	Float *float64 `json:"Float,omitempty" msgpack:"Float,omitempty"`
	Str   *string  `json:"Str,omitempty" msgpack:"Str,omitempty"`
}

func toCompactFloat(f calc.Float) CompactFloat {
	if f.IsSymbolic() {
		s := f.Expr()

		return CompactFloat{Str: &s}
	}
	x, _ := f.Float64()

	return CompactFloat{Float: &x}
}

func (c CompactFloat) toFloat() (calc.Float, error) {
	switch {
	case c.Float != nil && c.Str == nil:
		return calc.NewFloat(*c.Float), nil
	case c.Str != nil && c.Float == nil:
		return fromText(*c.Str), nil
	default:
		return calc.Float{}, fmt.Errorf("%w: compact coefficient needs exactly one of Float, Str", ErrMalformed)
	}
}
