// Package route — path utilities shared by the constructor and the optimizer.
//
// This file contains compact, allocation-conscious helpers that operate
// purely on path structure (index sequences), independent of any distances:
//   - ValidatePath: verify a permutation of {0..n-1}, open or closed form.
//   - ReverseSegment: fresh-copy segment reversal (the public 2-opt move).
//   - reverseInPlace: in-place segment reversal (the optimizer's hot form).
//   - CopyPath: independent shallow copy of a path slice.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper; in-place mutation where the hot loop needs it.
package route

// ValidatePath checks that path visits every index of {0..n-1} exactly once.
// Two shapes are accepted:
//
//	open:   len(path) == n, a plain permutation;
//	closed: len(path) == n+1 with path[n] == path[0] (a loop returned by
//	        Solve with closeLoop). The closing repeat is exempt from the
//	        no-duplicates rule.
//
// n == 0 accepts only an empty path.
//
// Complexity: O(n) time, O(n) space.
func ValidatePath(path []int, n int) error {
	if n < 0 {
		return ErrDimensionMismatch
	}
	if n == 0 {
		if len(path) != 0 {
			return ErrDimensionMismatch
		}
		return nil
	}

	switch len(path) {
	case n:
		// open form
	case n + 1:
		if path[n] != path[0] {
			return ErrDimensionMismatch
		}
	default:
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = path[i]
		// Out-of-range or repeated entries violate the permutation contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ReverseSegment returns a new path equal to the input with the inclusive
// segment [i..j] reversed. This is the fundamental 2-opt move: it removes
// edges (path[i-1], path[i]) and (path[j], path[j+1]) and replaces them with
// (path[i-1], path[j]) and (path[i], path[j+1]).
//
// The operation is a self-inverse: applying it twice with the same (i, j)
// restores the original order.
//
// Contracts:
//   - 0 ≤ i < j < len(path); anything else is ErrDimensionMismatch.
//   - The input slice is never mutated.
//
// Complexity: O(n) time, O(n) space.
func ReverseSegment(path []int, i, j int) ([]int, error) {
	if i < 0 || j >= len(path) || i >= j {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, len(path))
	copy(out, path)
	for i < j {
		out[i], out[j] = out[j], out[i]
		i++
		j--
	}

	return out, nil
}

// reverseInPlace reverses the inclusive segment path[i..j] in place.
// The optimizer uses this form on its private working copy to keep accepted
// moves allocation-free; bounds were already established by the scan ranges.
//
// Complexity: O(j-i) time, O(1) space.
func reverseInPlace(path []int, i, j int) {
	for i < j {
		path[i], path[j] = path[j], path[i]
		i++
		j--
	}
}

// CopyPath returns an independent copy of the input path slice.
//
// Complexity: O(n) time, O(n) space.
func CopyPath(path []int) []int {
	if path == nil {
		return nil
	}
	out := make([]int, len(path))
	copy(out, path)

	return out
}
