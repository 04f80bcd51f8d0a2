// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by the product kinds and containers.
// Callers wrap these with method context (fmt.Errorf("Operator.Set: %w", ErrX));
// tests and users match them with errors.Is.

package core

import "errors"

var (
	// ErrCapacityViolation is returned when a product references a mode index that is
	// not below the bound of a bounded container. The container is left unchanged.
	ErrCapacityViolation = errors.New("core: product exceeds the number of modes of the system")

	// ErrIncompatibleOperands signals operands that cannot be combined, e.g. a bounded
	// operator converted for fewer modes than its bound.
	ErrIncompatibleOperands = errors.New("core: incompatible operands")

	// ErrMalformedToken indicates a readable product token that does not follow the grammar
	// <index><symbol> repeated in strictly ascending index order.
	ErrMalformedToken = errors.New("core: malformed product token")

	// ErrNonHermitian is returned when a self-adjoint key of a HermitianOperator receives a
	// coefficient with non-zero imaginary part.
	ErrNonHermitian = errors.New("core: coefficient of a self-adjoint term must be real")

	// ErrInvalidLindbladTerm is returned when the identity product is used on either side
	// of a Lindblad dissipator.
	ErrInvalidLindbladTerm = errors.New("core: identity cannot be used as a Lindblad operator")
)
