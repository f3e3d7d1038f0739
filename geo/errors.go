// SPDX-License-Identifier: MIT
// Package geo: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the geo
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package geo

import "errors"

var (
	// ErrBadShape is returned when a requested matrix size is negative.
	// Zero is a legal size (a 0×0 matrix of an empty point set).
	ErrBadShape = errors.New("geo: invalid matrix shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("geo: index out of range")
)
