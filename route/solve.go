// Package route — the canonical entry point composing construction and
// local search.
//
// Solve runs the full pipeline on a distance matrix:
//
//	NearestNeighbor(start) → TwoOpt → optional closing edge
//
// Design principles:
//   - Deterministic: both stages have fixed tie-breaks and scan orders.
//   - Strict sentinels: only errors from types.go.
//   - The optional closing index is appended strictly after optimization and
//     is never treated as a movable 2-opt position; Result.Length always
//     covers the full returned sequence, closing edge included.
package route

import "github.com/katalvlaran/georoute/geo"

// Solve builds a greedy initial order, refines it to a 2-opt local optimum,
// and optionally closes the loop back to start.
//
// Contracts:
//   - dist non-nil and square; start ∈ [0, n) (empty matrices are tolerated
//     and yield an empty Result).
//   - closeLoop=true appends start at the end: len(Path) == n+1,
//     Path[0] == Path[n] == start, and Length includes the closing edge.
//
// Errors: those of NearestNeighbor and TwoOpt; Solve adds none of its own.
//
// Complexity: O(n²) construction + O(iter·n²) local search.
func Solve(dist geo.Matrix, start int, closeLoop bool, opts Options) (Result, error) {
	path, err := NearestNeighbor(dist, start)
	if err != nil {
		return Result{}, err
	}
	if len(path) == 0 {
		// Nothing to optimize and nothing to close.
		return Result{Path: path, Length: 0}, nil
	}

	best, length, err := TwoOpt(dist, path, opts)
	if err != nil {
		return Result{}, err
	}

	if closeLoop {
		best = append(best, start)
		// Recompute over the closed sequence so the closing edge is part of
		// the reported length (PathCost sums exactly the edges present).
		length, err = PathCost(dist, best)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{Path: best, Length: length}, nil
}
