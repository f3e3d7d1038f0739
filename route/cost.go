// Package route — cost utilities shared by the constructor and the optimizer.
//
// PathCost sums consecutive edge distances of a visiting order. It is
// intentionally minimal and side-effect free.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive checks (NaN/Inf/negative) even when callers validated earlier.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity: O(n) time for a path of length n, O(1) extra space.
package route

import (
	"math"

	"github.com/katalvlaran/georoute/geo"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// PathCost sums dist[path[i]][path[i+1]] for consecutive positions.
//
// The sum covers exactly the edges present in the sequence: no closing edge
// back to the start is added unless the path already repeats the start at
// its end (that inclusion is the caller's choice, not this function's).
// Empty and single-element paths cost 0.
//
// Checks performed per edge:
//   - indices in range (⇒ ErrDimensionMismatch),
//   - weight is a number (NaN ⇒ ErrDimensionMismatch),
//   - weight is present (±Inf ⇒ ErrIncompleteMatrix),
//   - weight is non-negative (⇒ ErrNegativeWeight).
//
// Complexity: O(n).
func PathCost(dist geo.Matrix, path []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return 0, ErrNonSquare
	}
	if len(path) < 2 {
		return 0, nil
	}

	// Main accumulation.
	var (
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
		n   = nr
		L   = len(path) - 1 // number of edges in the sequence
	)
	for i = 0; i < L; i++ {
		u = path[i]
		v = path[i+1]

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}

		w, err = dist.At(u, v)
		if err != nil {
			// At should only fail on OOB; map to the shape sentinel.
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteMatrix
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}
