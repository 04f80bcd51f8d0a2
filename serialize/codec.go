package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qop/core"
	"github.com/katalvlaran/qop/logger"
)

// Format selects the wire encoding. JSON and YAML carry the readable document,
// Msgpack carries the compact one.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
	FormatMsgpack
)

var formatNames = [...]string{"json", "yaml", "msgpack"}

// String returns the lower-case format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat maps "json", "yaml"/"yml" and "msgpack" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack":
		return FormatMsgpack, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func marshal(f Format, readable, compact func() any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.Marshal(readable())
	case FormatYAML:
		data, err = yaml.Marshal(readable())
	case FormatMsgpack:
		data, err = msgpack.Marshal(compact())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, err
	}
	logger.Get().Debug().Stringer("format", f).Int("bytes", len(data)).Msg("encoded operator")

	return data, nil
}

func unmarshal(f Format, data []byte, readable, compact any) error {
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, readable)
	case FormatYAML:
		err = yaml.Unmarshal(data, readable)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, compact)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, f, err)
	}

	return nil
}

// Encode serializes op in format f.
func Encode[P core.Product[P]](op *core.Operator[P], f Format) ([]byte, error) {
	data, err := marshal(f,
		func() any { return ToReadable(op) },
		func() any { return ToCompact(op) })
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return data, nil
}

// Decode parses data written by Encode. opts configure the resulting operator.
func Decode[P core.Product[P]](data []byte, f Format, parse Parser[P], opts ...core.Option) (*core.Operator[P], error) {
	var (
		r Readable
		c Compact
	)
	if err := unmarshal(f, data, &r, &c); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if f == FormatMsgpack {
		return FromCompact(c, parse, opts...)
	}

	return FromReadable(r, parse, opts...)
}

// EncodeHermitian serializes h in format f.
func EncodeHermitian[P core.HermitianProduct[P]](h *core.HermitianOperator[P], f Format) ([]byte, error) {
	data, err := marshal(f,
		func() any { return ToReadableHermitian(h) },
		func() any { return ToCompactHermitian(h) })
	if err != nil {
		return nil, fmt.Errorf("EncodeHermitian: %w", err)
	}

	return data, nil
}

// DecodeHermitian parses data written by EncodeHermitian.
func DecodeHermitian[P core.HermitianProduct[P]](data []byte, f Format, parse Parser[P], opts ...core.Option) (*core.HermitianOperator[P], error) {
	var (
		r Readable
		c Compact
	)
	if err := unmarshal(f, data, &r, &c); err != nil {
		return nil, fmt.Errorf("DecodeHermitian: %w", err)
	}
	if f == FormatMsgpack {
		return FromCompactHermitian(c, parse, opts...)
	}

	return FromReadableHermitian(r, parse, opts...)
}

// EncodeNoise serializes n in format f.
func EncodeNoise[P core.Product[P]](n *core.NoiseOperator[P], f Format) ([]byte, error) {
	data, err := marshal(f,
		func() any { return ToReadableNoise(n) },
		func() any { return ToCompactNoise(n) })
	if err != nil {
		return nil, fmt.Errorf("EncodeNoise: %w", err)
	}

	return data, nil
}

// DecodeNoise parses data written by EncodeNoise.
func DecodeNoise[P core.Product[P]](data []byte, f Format, parse Parser[P], opts ...core.Option) (*core.NoiseOperator[P], error) {
	var (
		r ReadableNoise
		c CompactNoise
	)
	if err := unmarshal(f, data, &r, &c); err != nil {
		return nil, fmt.Errorf("DecodeNoise: %w", err)
	}
	if f == FormatMsgpack {
		return FromCompactNoise(c, parse, opts...)
	}

	return FromReadableNoise(r, parse, opts...)
}
