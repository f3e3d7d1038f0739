// Package route — 2-opt local search engine for open paths.
//
// TwoOpt performs deterministic first-improvement 2-opt on an open visiting
// order: the segment [i..j] is reversed when doing so shortens the path,
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d),
//	with a=P[i−1], b=P[i], c=P[j], d=P[j+1].
//
// The first and last positions of the path are held fixed — this is an
// open-path formulation, not a closed cycle, so candidate cuts range over
// 1 ≤ i < j ≤ n−2 only. Solve appends the optional closing edge *after*
// optimization; the closing index is never a movable position.
//
// Design:
//   - Deterministic scanning order (ascending i, then ascending j); the scan
//     restarts from the beginning after every accepted move. This
//     restart-from-scratch policy is a deliberate quality/performance
//     trade-off inherited from the reference behavior; a continued-scan
//     variant would change which local optimum is reached.
//   - Two-state loop: Scanning transitions to itself on an accepted move and
//     to Converged when a full pass yields none; Converged is terminal.
//   - Strict sentinel errors only (see types.go).
//   - Allocation-conscious: O(1) per candidate check via incremental deltas;
//     O(j−i) only on accepted moves (in-place reversal). The incremental
//     delta is exactly the length difference of the reversed path, so the
//     externally observed result matches a full recomputation.
//   - Soft time budget via sparse deadline checks.
//
// Contracts:
//   - dist is n×n; path is an open permutation of {0..n-1} (ValidatePath).
//   - The input path is copied, never mutated.
//
// Complexity:
//   - One pass: O(n²) candidate checks; first-improvement restarts after each
//     accepted move.
//   - Overall: O(iter·n²) time typical; O(n²) space for the weight prefetch.
//   - Termination: every accepted move strictly decreases a total length
//     bounded below by 0, so the accepted-move count is finite.
package route

import (
	"math"
	"time"

	"github.com/katalvlaran/georoute/geo"
)

// TwoOpt runs deterministic first-improvement 2-opt starting from path.
// Returns the improved path (same endpoints) and its stabilized length.
func TwoOpt(dist geo.Matrix, path []int, opts Options) ([]int, float64, error) {
	if err := validateOptions(opts); err != nil {
		return nil, 0, err
	}
	if dist == nil {
		return nil, 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return nil, 0, ErrNonSquare
	}
	n := nr
	if err := ValidatePath(path, n); err != nil {
		return nil, 0, err
	}
	if len(path) != n {
		// Closed paths are Solve's post-processing product, not an optimizer input.
		return nil, 0, ErrDimensionMismatch
	}

	// Current working path (copy to keep the input immutable).
	cur := CopyPath(path)
	if cur == nil {
		cur = []int{}
	}

	// Fewer than four positions admit no candidate pair (1 ≤ i < j ≤ n−2).
	if n < 4 {
		cost, err := PathCost(dist, cur)
		if err != nil {
			return nil, 0, err
		}
		return cur, cost, nil
	}

	// Prefetch weights into a dense 1D buffer w[u*n + v] to remove interface
	// indirection from the hot loop, enforcing sentinel semantics on the way:
	//   - NaN          → ErrDimensionMismatch (ill-posed input),
	//   - negative     → ErrNegativeWeight    (forbidden),
	//   - +Inf allowed → candidate moves relying on +Inf are rejected.
	w := make([]float64, n*n)
	{
		var (
			u, v int     // matrix indices
			x    float64 // temporary holder for At(u,v)
			err  error
		)
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				x, err = dist.At(u, v)
				if err != nil {
					return nil, 0, ErrDimensionMismatch
				}
				if math.IsNaN(x) {
					return nil, 0, ErrDimensionMismatch
				}
				if x < 0 {
					return nil, 0, ErrNegativeWeight
				}
				w[u*n+v] = x
			}
		}
	}
	at := func(u, v int) float64 { return w[u*n+v] } // zero-allocation accessor

	// Baseline length with strict checks (rejects +Inf on existing edges).
	cost, err := PathCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	eps := opts.Eps
	maxMoves := opts.MaxMoves // 0 ⇒ unlimited (until local optimum)

	// Soft deadline (checked sparsely to keep overhead negligible).
	var (
		useDeadline bool
		deadline    time.Time
		step        int // candidate counter throttling deadline checks
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	checkDeadline := func() bool {
		step++
		if !useDeadline || (step&1023) != 0 {
			return false
		}

		return time.Now().After(deadline)
	}

	// Main first-improvement loop: Scanning restarts after every accepted
	// move; a full pass without one reaches Converged.
	accepted := 0
	for {
		improved := false

		var (
			a, b, c, d         int     // boundary endpoints around (i, j)
			wab, wcd, wac, wbd float64 // old / new edge weights
			delta              float64 // candidate improvement (negative is good)
			i, j               int     // candidate cut indices, 1 ≤ i < j ≤ n−2
		)

		for i = 1; i <= n-3; i++ {
			for j = i + 1; j <= n-2; j++ {
				if checkDeadline() {
					return nil, 0, ErrTimeLimit
				}

				// a=P[i−1], b=P[i], c=P[j], d=P[j+1]
				a = cur[i-1]
				b = cur[i]
				c = cur[j]
				d = cur[j+1]

				wab = at(a, b)
				wcd = at(c, d)
				wac = at(a, c)
				wbd = at(b, d)

				// A replacement edge that does not exist disqualifies the move.
				if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
					continue
				}

				// Δ = new − old; accept strictly improving (beyond tolerance).
				delta = (wac + wbd) - (wab + wcd)
				if delta >= -eps {
					continue
				}

				// Apply by in-place reversal of [i..j] (O(j−i+1)).
				reverseInPlace(cur, i, j)
				cost += delta
				accepted++
				improved = true

				if maxMoves > 0 && accepted >= maxMoves {
					return cur, round1e9(cost), nil
				}

				// First-improvement policy: restart scanning from the beginning.
				break
			}
			if improved {
				break
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighborhood; Converged.
			break
		}
	}

	// Keep invariants tight and explicit before returning.
	if verr := ValidatePath(cur, n); verr != nil {
		return nil, 0, verr
	}

	return cur, round1e9(cost), nil
}
