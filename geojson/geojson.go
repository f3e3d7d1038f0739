// Package geojson serializes a solved route as a GeoJSON LineString.
//
// The output follows the standard GeoJSON structure: one FeatureCollection
// holding a single Feature whose geometry is a LineString over the visited
// points in tour order. GeoJSON positions are [longitude, latitude] — the
// reverse of the Point field order — and that projection happens here, in
// exactly one place.
package geojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/georoute/geo"
)

// FeatureCollection is the top-level GeoJSON container.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single geographic feature with geometry and properties.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry holds a LineString: an ordered list of [lon, lat] positions.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Route projects pts along path into a one-feature LineString collection.
// Every index of path must address pts; the function neither validates the
// path as a permutation nor deduplicates a closing repeat — it draws the
// sequence it was given.
//
// Complexity: O(len(path)).
func Route(pts []geo.Point, path []int) FeatureCollection {
	coords := make([][]float64, 0, len(path))
	for _, idx := range path {
		p := pts[idx]
		coords = append(coords, []float64{p.Lon, p.Lat})
	}

	return FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{{
			Type:       "Feature",
			Properties: map[string]any{},
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: coords,
			},
		}},
	}
}

// Write encodes fc to w as 2-space indented JSON.
func Write(w io.Writer, fc FeatureCollection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("geojson: encode: %w", err)
	}

	return nil
}

// WriteFile writes fc to the file at path, creating or truncating it.
func WriteFile(path string, fc FeatureCollection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("geojson: create %s: %w", path, err)
	}
	defer f.Close()

	return Write(f, fc)
}
