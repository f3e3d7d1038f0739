// Package places_test exercises the CSV record source and start lookup.
// Focus: silent-skip semantics for malformed rows, header tolerance, input
// order preservation, and the explicit miss result of FindIndex.
package places_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/geo"
	"github.com/katalvlaran/georoute/places"
)

func TestRead_ValidRows(t *testing.T) {
	in := strings.Join([]string{
		"Vienna,48.2082,16.3738",
		"Bratislava,48.1486,17.1077",
		"Budapest,47.4979,19.0402",
	}, "\n")

	pts, err := places.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, geo.Point{Name: "Vienna", Lat: 48.2082, Lon: 16.3738}, pts[0])
	assert.Equal(t, "Budapest", pts[2].Name, "input order must be preserved")
}

func TestRead_SkipsMalformedRows(t *testing.T) {
	in := strings.Join([]string{
		"name,lat,lon",         // header: non-numeric coordinates
		"Vienna,48.2082,16.37", // ok
		"TooFewFields,48.0",    // short row
		"BadLat,abc,16.0",      // non-numeric latitude
		"BadLon,48.0,xyz",      // non-numeric longitude
		"",                     // blank line
		"Graz,47.0707,15.4395,styria,extra", // extra fields are ignored
	}, "\n")

	pts, err := places.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, "Vienna", pts[0].Name)
	assert.Equal(t, "Graz", pts[1].Name)
}

func TestRead_EmptyInput(t *testing.T) {
	pts, err := places.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, pts, "zero records is not a read error; callers decide")
}

func TestFindIndex(t *testing.T) {
	pts := []geo.Point{
		{Name: "Vienna"},
		{Name: "Graz"},
		{Name: "Graz"}, // duplicate: first match wins
	}

	t.Run("hit", func(t *testing.T) {
		i, ok := places.FindIndex(pts, "Graz")
		require.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("miss", func(t *testing.T) {
		i, ok := places.FindIndex(pts, "Linz")
		require.False(t, ok)
		assert.Zero(t, i)
	})

	t.Run("exact match only", func(t *testing.T) {
		_, ok := places.FindIndex(pts, "graz")
		assert.False(t, ok, "lookup is case-sensitive and exact")
	})
}
