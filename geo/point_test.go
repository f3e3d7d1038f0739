// Package geo_test exercises Haversine through the public API.
// Focus: symmetry, identity, the Asin clamp at degenerate geometries, and the
// documented garbage-in-garbage-out behavior for out-of-range coordinates.
package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/geo"
)

// oneDegreeKm is the great-circle length of one degree of latitude on a
// sphere of radius EarthRadiusKm: π·R/180.
const oneDegreeKm = math.Pi * geo.EarthRadiusKm / 180.0

func TestHaversine_Identity(t *testing.T) {
	pts := []geo.Point{
		{Name: "origin", Lat: 0, Lon: 0},
		{Name: "mid", Lat: 48.8566, Lon: 2.3522},
		{Name: "south", Lat: -89.9, Lon: 179.9},
	}
	for _, p := range pts {
		assert.Zero(t, geo.Haversine(p, p), "distance of %q to itself", p.Name)
	}
}

func TestHaversine_Symmetry(t *testing.T) {
	a := geo.Point{Name: "vienna", Lat: 48.2082, Lon: 16.3738}
	b := geo.Point{Name: "kyiv", Lat: 50.4501, Lon: 30.5234}

	require.InDelta(t, geo.Haversine(a, b), geo.Haversine(b, a), 1e-12)
}

func TestHaversine_OneDegreeOfLatitude(t *testing.T) {
	a := geo.Point{Lat: 0, Lon: 0}
	b := geo.Point{Lat: 1, Lon: 0}

	assert.InDelta(t, oneDegreeKm, geo.Haversine(a, b), 1e-9)
}

func TestHaversine_Antipodal(t *testing.T) {
	// Poles are exactly antipodal; the clamp must keep Asin in-domain and the
	// result at half the sphere circumference.
	north := geo.Point{Name: "north", Lat: 90, Lon: 0}
	south := geo.Point{Name: "south", Lat: -90, Lon: 0}

	d := geo.Haversine(north, south)
	require.False(t, math.IsNaN(d), "clamp must prevent Asin domain error")
	assert.InDelta(t, math.Pi*geo.EarthRadiusKm, d, 1e-6)
}

func TestHaversine_IdenticalCoordinatesDistinctNames(t *testing.T) {
	a := geo.Point{Name: "first", Lat: 41.9028, Lon: 12.4964}
	b := geo.Point{Name: "second", Lat: 41.9028, Lon: 12.4964}

	assert.Zero(t, geo.Haversine(a, b))
}

func TestHaversine_OutOfRangeCoordinatesStayFinite(t *testing.T) {
	// Out-of-range lat/lon is not validated; the contract is only that the
	// result is finite and non-negative for finite inputs.
	a := geo.Point{Lat: 123.4, Lon: -512.0}
	b := geo.Point{Lat: -300.0, Lon: 999.9}

	d := geo.Haversine(a, b)
	require.False(t, math.IsNaN(d))
	require.False(t, math.IsInf(d, 0))
	assert.GreaterOrEqual(t, d, 0.0)
	assert.LessOrEqual(t, d, math.Pi*geo.EarthRadiusKm+1e-9)
}
