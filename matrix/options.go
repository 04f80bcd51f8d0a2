// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for operator → sparse matrix conversion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: entries are emitted in row-major order.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - The mode limit defaults to the process configuration (config.Get).
package matrix

import (
	"math"

	"github.com/katalvlaran/qop/config"
)

// ---------- Defaults ----------

const (
	// DefaultEpsilon drops only exact zeros when finalizing a matrix.
	DefaultEpsilon = 0.0

	// MaxSupportedModes is the hard ceiling: 4^31 super-operator rows still index in int64.
	MaxSupportedModes = 31
)

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxModesInvalid = "matrix: WithMaxModes: n must be in [0, 31]"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps      float64 // entries with |v| ≤ eps are dropped; DefaultEpsilon
	maxModes int     // largest accepted mode count; config Matrix.MaxModes
}

// WithEpsilon drops entries whose magnitude is ≤ eps from conversion results.
// Panics on a negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxModes overrides the configured mode limit for one conversion.
func WithMaxModes(n int) Option {
	if n < 0 || n > MaxSupportedModes {
		panic(panicMaxModesInvalid)
	}

	return func(o *Options) { o.maxModes = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, maxModes: config.Get().Matrix.MaxModes}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
