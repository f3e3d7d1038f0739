// Package route — greedy nearest-neighbor path construction.
//
// NearestNeighbor builds the initial visiting order consumed by TwoOpt.
// It is a non-backtracking heuristic: once an index is appended the choice is
// never revisited, so long edges can accumulate late in construction — that
// is the optimizer's job to repair, not this function's.
//
// Design:
//   - Deterministic: candidates are scanned in ascending index order and the
//     running minimum is compared with strict <, so exact ties always resolve
//     to the smallest index.
//   - Strict sentinels only; no panics, no logging.
//
// Complexity: O(n²) time, O(n) space.
package route

import (
	"math"

	"github.com/katalvlaran/georoute/geo"
)

// NearestNeighbor returns a path over all matrix indices, starting at start
// and repeatedly appending the nearest not-yet-visited index.
//
// Contracts:
//   - dist must be non-nil and square (⇒ ErrDimensionMismatch / ErrNonSquare).
//   - start must lie in [0, n) (⇒ ErrStartOutOfRange); exception: an empty
//     matrix returns an empty path regardless of start.
//   - NaN weights ⇒ ErrDimensionMismatch; negative ⇒ ErrNegativeWeight;
//     if only +Inf candidates remain ⇒ ErrIncompleteMatrix.
//
// Post-condition: the result is a permutation of {0..n-1} of length n with
// result[0] == start (see ValidatePath).
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist geo.Matrix, start int) ([]int, error) {
	if dist == nil {
		return nil, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return nil, ErrNonSquare
	}
	n := nr
	if n == 0 {
		// Trivial-input tolerance: nothing to visit, nothing to validate.
		return []int{}, nil
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		visited = make([]bool, n)   // marker per index
		path    = make([]int, 1, n) // result, seeded with start
		current = start             // tail of the path under construction
	)
	path[0] = start
	visited[start] = true

	var (
		step int     // how many indices are appended so far
		cand int     // candidate index under inspection
		best int     // nearest unvisited candidate this round
		w    float64 // weight of current→cand
		min  float64 // running minimum for this round
		err  error
	)
	for step = 1; step < n; step++ {
		best = -1
		min = math.Inf(1)

		// Ascending scan + strict < ⇒ ties go to the smallest index.
		for cand = 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			w, err = dist.At(current, cand)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			if math.IsNaN(w) {
				return nil, ErrDimensionMismatch
			}
			if w < 0 {
				return nil, ErrNegativeWeight
			}
			if w < min {
				best = cand
				min = w
			}
		}

		if best == -1 {
			// Every remaining candidate sits behind a missing (+Inf) edge.
			return nil, ErrIncompleteMatrix
		}

		path = append(path, best)
		visited[best] = true
		current = best
	}

	return path, nil
}
