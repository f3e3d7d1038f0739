// Package geo — Point and the haversine great-circle distance.
//
// Design:
//   - Point is a plain immutable value type; no constructors, no methods that
//     mutate. Name uniqueness is a caller concern (start-point lookup).
//   - Haversine is side-effect free and never fails: the single numeric guard
//     clamps the intermediate into [0,1] so floating-point overshoot at
//     antipodal or coincident points cannot feed Asin an out-of-domain value.
//
// Complexity: O(1) per distance.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// degToRad converts decimal degrees to radians.
const degToRad = math.Pi / 180.0

// Point is a named geographic location in decimal degrees.
// Lat is expected in [-90, 90] and Lon in [-180, 180]; values outside those
// ranges are not rejected and propagate into distances as-is.
type Point struct {
	Name string  // user-facing identifier; need not be unique
	Lat  float64 // latitude, decimal degrees
	Lon  float64 // longitude, decimal degrees
}

// Haversine returns the great-circle distance between a and b in kilometers.
//
// Properties (see geo tests):
//   - Haversine(a, b) == Haversine(b, a) to floating-point precision,
//   - Haversine(a, a) == 0,
//   - for finite inputs the result is finite and within [0, π·EarthRadiusKm].
//
// Complexity: O(1), no allocations.
func Haversine(a, b Point) float64 {
	var (
		lat1 = a.Lat * degToRad // φ1
		lat2 = b.Lat * degToRad // φ2
		dLat = (b.Lat - a.Lat) * degToRad
		dLon = (b.Lon - a.Lon) * degToRad
	)

	// h = sin²(Δφ/2) + cos φ1 · cos φ2 · sin²(Δλ/2)
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Clamp against floating-point overshoot before the inverse sine.
	// Coincident points can yield h slightly below 0, antipodal points
	// slightly above 1; either would make Asin return NaN.
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}
