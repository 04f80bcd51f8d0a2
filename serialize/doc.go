// Package serialize stores operators, Hamiltonians and noise operators as versioned
// documents.
//
// The readable document lists rows of [token, re, im] (noise: [left, right, re, im])
// next to a "_struqture_version" stamp and is written as JSON or YAML:
//
//	{"items":[["0X1Z",1,0]],"_struqture_version":{"major_version":2,"minor_version":0}}
//
// The compact document replaces tokens with arrays of [index, tag] pairs and tags each
// coefficient part as {"Float": x} or {"Str": expr}; it is written as msgpack.
//
// Numeric parts are plain numbers; symbolic parts and non-finite numbers are strings.
// Decoding checks the version stamp first and fails with ErrUnsupportedVersion when the
// major version is newer than the configured schema. Tokens are validated by the
// product kind's parser, so malformed input fails with core.ErrMalformedToken.
package serialize
