// Package route provides the optimization core of georoute: construction and
// local-search refinement of visiting orders over a distance matrix.
//
// It includes three operations on a geo.Matrix (n×n kilometers):
//
//   - NearestNeighbor — greedy initial path from a chosen start index.
//
//   - Complexity: O(n²)
//
//   - Deterministic: ties resolve to the smallest candidate index.
//
//   - TwoOpt — deterministic first-improvement 2-opt on an open path.
//
//   - Complexity: O(iter·n²) candidate checks, O(n) per accepted move.
//
//   - The first and last positions are held fixed; the scan restarts from
//     the beginning after every accepted move and terminates when a full
//     pass yields no strictly improving reversal (a 2-opt local optimum,
//     not a global one).
//
//   - Solve — NearestNeighbor followed by TwoOpt, optionally closing the
//     loop by appending the start index (the closing index is never part of
//     the 2-opt neighborhood).
//
// The greedy constructor never backtracks, so it tends to leave one long
// "closing" edge late in the path; TwoOpt exists specifically to repair that.
//
// All functions are synchronous, single-threaded, and deterministic. Failure
// modes are strict sentinel errors (see types.go) matched via errors.Is; the
// optimization loop itself has no failure path beyond the optional time
// budget — given a valid path and matrix it always terminates with a valid
// permutation, because every accepted move strictly decreases a length that
// is bounded below by zero.
package route
