// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; context is added at the outer boundary
// with matrixErrorf(tag, ErrX) and callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// mode count -> operator bound -> product range -> symbolic coefficients.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: operands of different
	// shapes, a mode count outside [0, MaxModes], or a product acting on a mode ≥ n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf coefficient.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf prefixes err with a call-site tag, keeping it matchable.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
