// Package route_test — shared helpers for the route test suite.
//
// Policy:
//   - Deterministic geometry only (equator lines, unit squares, rippled
//     circles); no RNG anywhere.
//   - A tiny local geo.Matrix implementation (rawMatrix) lets tests craft
//     arbitrary instances, including non-square and NaN/negative ones,
//     without going through BuildMatrix.
package route_test

import (
	"testing"

	"github.com/katalvlaran/georoute/geo"
)

// rawMatrix is a minimal geo.Matrix over [][]float64 with bound checks.
// Rows need not equal Cols, which lets tests exercise ErrNonSquare.
type rawMatrix struct{ a [][]float64 }

// Ensure interface compliance at compile time.
var _ geo.Matrix = rawMatrix{}

func (m rawMatrix) Rows() int { return len(m.a) }

func (m rawMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}
	return len(m.a[0])
}

func (m rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, geo.ErrOutOfRange
	}
	return m.a[i][j], nil
}

// equatorLine returns n points on the equator at integer longitudes 0..n-1.
// At latitude 0 the haversine collapses to R·Δλ, so pairwise distances are
// exact multiples of the adjacent-point unit — handy for hand-checked moves.
func equatorLine(n int) []geo.Point {
	pts := make([]geo.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = geo.Point{Name: string(rune('a' + i)), Lon: float64(i)}
	}
	return pts
}

// unitSquare returns the four corners of a 1°×1° square in lat/lon, indexed
// counter-clockwise from (0,0): sw, se, ne, nw.
func unitSquare() []geo.Point {
	return []geo.Point{
		{Name: "sw", Lat: 0, Lon: 0},
		{Name: "se", Lat: 0, Lon: 1},
		{Name: "ne", Lat: 1, Lon: 1},
		{Name: "nw", Lat: 1, Lon: 0},
	}
}

// equalPaths fails the test when two index sequences differ.
func equalPaths(t *testing.T, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("path length mismatch:\n got:  %v\n want: %v", got, want)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("path mismatch at %d:\n got:  %v\n want: %v", i, got, want)
		}
	}
}
