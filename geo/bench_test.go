// Package geo_test — benchmarks for the geographic primitives.
// Policy:
//   - Deterministic inputs (rippled circle of coordinates, no RNG).
//   - Inputs are built outside the timer; only the primitive is measured.
package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/georoute/geo"
)

// circlePts places n points on a slightly rippled circle around (48°, 16°).
// The ripple avoids degenerate equal distances without randomness.
func circlePts(n int) []geo.Point {
	pts := make([]geo.Point, n)
	var (
		i  int
		th float64 // angle
		r  float64 // radius in degrees, with deterministic ripple
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 0.5 + 0.01*float64((i*5)%7)
		pts[i] = geo.Point{Lat: 48 + r*math.Sin(th), Lon: 16 + r*math.Cos(th)}
	}

	return pts
}

var benchSink float64 // prevents dead-code elimination of the measured call

func BenchmarkHaversine(b *testing.B) {
	a := geo.Point{Lat: 48.2082, Lon: 16.3738}
	c := geo.Point{Lat: 50.4501, Lon: 30.5234}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = geo.Haversine(a, c)
	}
}

func BenchmarkBuildMatrix_n64(b *testing.B) {
	pts := circlePts(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := geo.BuildMatrix(pts)
		benchSink = float64(m.Rows())
	}
}

func BenchmarkBuildMatrix_n256(b *testing.B) {
	pts := circlePts(256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := geo.BuildMatrix(pts)
		benchSink = float64(m.Rows())
	}
}
