package serialize

import "errors"

var (
	// ErrUnsupportedVersion is returned when data carries a major version newer than
	// the configured schema. Nothing is decoded.
	ErrUnsupportedVersion = errors.New("serialize: unsupported schema version")

	// ErrMalformed signals a structurally invalid document (wrong arity, wrong types).
	ErrMalformed = errors.New("serialize: malformed document")

	// ErrUnknownFormat is returned for a Format value outside the defined set.
	ErrUnknownFormat = errors.New("serialize: unknown format")
)
