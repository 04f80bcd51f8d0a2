// SPDX-License-Identifier: MIT
// Package core: functional configuration for operator containers.
//
// Design:
//   - Option mutates an unexported settings struct; constructors resolve them via gatherOptions.
//   - WithX constructors panic only on nonsensical arguments (programmer error).
//   - Defaults: unbounded, no capacity hint, generic wrapper name.

package core

// DefaultName is the wrapper name String uses when WithName was not given.
const DefaultName = "Operator"

const (
	panicCapacityNegative = "core: WithCapacity: capacity must be non-negative"
	panicBoundNegative    = "core: WithBound: number of modes must be non-negative"
	panicNameEmpty        = "core: WithName: name must be non-empty"
)

// Option configures a container at construction time.
type Option func(*settings)

// settings stores the effective configuration after applying Option setters.
type settings struct {
	capacity int    // map size hint
	bound    int    // number of modes when bounded
	bounded  bool   // System variant
	name     string // display wrapper
}

// WithCapacity pre-sizes the term map for n entries.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(s *settings) { s.capacity = n }
}

// WithBound turns the container into a bounded System of n modes (or spins).
// Products touching an index ≥ n are rejected with ErrCapacityViolation.
func WithBound(n int) Option {
	if n < 0 {
		panic(panicBoundNegative)
	}

	return func(s *settings) {
		s.bound = n
		s.bounded = true
	}
}

// withBoundOf copies an optional bound; used when results inherit operand bounds.
func withBoundOf(n int, bounded bool) Option {
	return func(s *settings) {
		s.bound = n
		s.bounded = bounded
	}
}

// WithName sets the wrapper name printed by String, e.g. "DecoherenceOperator".
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(s *settings) { s.name = name }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) settings {
	s := settings{name: DefaultName}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// combineBounds returns the bound of a binary result: the larger bound when both
// operands are bounded, unbounded otherwise.
func combineBounds(aBound int, aBounded bool, bBound int, bBounded bool) (int, bool) {
	if !aBounded || !bBounded {
		return 0, false
	}
	if bBound > aBound {
		return bBound, true
	}

	return aBound, true
}
