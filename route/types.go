// SPDX-License-Identifier: MIT
// Package route: sentinel error set, result and options types.
// This file defines ONLY package-level sentinels, the Result record, and the
// Options knobs shared by the constructor/optimizer. All operations MUST
// return these sentinels and tests MUST check them via errors.Is; nothing in
// this package panics on user input.

package route

import (
	"errors"
	"time"
)

var (
	// ErrNonSquare signals that the distance matrix is not square.
	ErrNonSquare = errors.New("route: distance matrix is not square")

	// ErrStartOutOfRange signals a start index outside [0, n).
	ErrStartOutOfRange = errors.New("route: start index out of range")

	// ErrDimensionMismatch signals ill-shaped input: a nil matrix, a path
	// whose length or content does not form a permutation of the matrix
	// indices, an out-of-range path entry, or a NaN weight.
	ErrDimensionMismatch = errors.New("route: dimension mismatch")

	// ErrNegativeWeight signals a negative distance entry (forbidden).
	ErrNegativeWeight = errors.New("route: negative weight")

	// ErrIncompleteMatrix signals that a required edge is missing (+Inf),
	// so no full visiting order can be built.
	ErrIncompleteMatrix = errors.New("route: incomplete distance matrix")

	// ErrBadOption signals an invalid Options value (negative Eps,
	// MaxMoves or TimeLimit).
	ErrBadOption = errors.New("route: invalid option value")

	// ErrTimeLimit signals that the optimizer exhausted its soft wall-clock
	// budget before reaching a local optimum.
	ErrTimeLimit = errors.New("route: time limit exceeded")
)

// Result holds the outcome of Solve.
type Result struct {
	// Path is the visiting order as indices into the caller's point
	// sequence. Open form has length n; when Solve is asked to close the
	// loop, the start index is repeated at position n (length n+1).
	Path []int

	// Length is the total distance of Path in kilometers, summed over the
	// full returned sequence (the closing edge is included when present).
	Length float64
}

// Options configures the 2-opt optimizer. The zero value of every field
// reproduces the reference behavior exactly; budgets are strictly opt-in.
//
// Eps       – acceptance tolerance: a move is taken when Δ < −Eps. Zero keeps
//             the strict "first strictly shorter" rule.
// MaxMoves  – cap on accepted moves; 0 means unlimited (run to local optimum).
// TimeLimit – soft wall-clock budget checked sparsely inside the scan;
//             0 means unlimited. Exceeding it returns ErrTimeLimit.
type Options struct {
	Eps       float64       // improvement tolerance, must be ≥ 0
	MaxMoves  int           // accepted-move cap, must be ≥ 0
	TimeLimit time.Duration // soft deadline, must be ≥ 0
}

// Option is a functional option for configuring the optimizer.
type Option func(*Options)

// WithEps sets the improvement tolerance (Δ < −eps acceptance rule).
func WithEps(eps float64) Option {
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithMaxMoves caps the number of accepted 2-opt moves.
func WithMaxMoves(n int) Option {
	return func(o *Options) {
		o.MaxMoves = n
	}
}

// WithTimeLimit sets a soft wall-clock budget for the optimizer.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// DefaultOptions returns Options reproducing the reference behavior:
// strict improvement, no move cap, no deadline. Apply functional overrides
// on top of it:
//
//	opts := route.DefaultOptions(route.WithTimeLimit(2 * time.Second))
func DefaultOptions(overrides ...Option) Options {
	o := Options{}
	for _, apply := range overrides {
		apply(&o)
	}

	return o
}

// validateOptions rejects option combinations that would invert or
// destabilize the acceptance rule.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// A negative epsilon would turn "strictly improving" into "strictly
	// worsening"; negative budgets are undefined.
	if opts.Eps < 0 || opts.MaxMoves < 0 || opts.TimeLimit < 0 {
		return ErrBadOption
	}

	return nil
}
