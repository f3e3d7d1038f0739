// Package georoute plans short sightseeing-style routes over a handful of
// geographic points — great-circle distances in, an ordered visiting plan out.
//
// 🚀 What is georoute?
//
//	A small, deterministic route-planning toolkit that brings together:
//		• Geo primitives: named points, haversine distance, dense km matrices
//		• Construction: nearest-neighbor greedy tours from any start point
//		• Refinement: first-improvement 2-opt local search on open paths
//		• Export: GeoJSON LineString output for any mapping frontend
//		• Visualization: SVG route drawings with ordered, labeled markers
//
// ✨ Why choose georoute?
//
//   - Deterministic – identical inputs always yield identical tours
//   - Strict sentinels – every failure mode is an errors.Is-matchable value
//   - Honest heuristics – 2-opt local optima, clearly documented as such
//   - Small surface – a CLI and five focused packages, nothing hidden
//
// The repository is organized as flat, single-purpose packages:
//
//	geo/     — Point, Haversine, dense symmetric distance matrices
//	route/   — NearestNeighbor, TwoOpt, Solve (the optimization core)
//	places/  — CSV record source and start-point lookup
//	geojson/ — LineString export of a solved route
//	render/  — SVG visualization with optional raster background
//	cmd/     — the georoute command
//
// Quick example (four corners of a unit square, start at index 0):
//
//	pts := []geo.Point{
//		{Name: "a", Lat: 0, Lon: 0}, {Name: "b", Lat: 0, Lon: 1},
//		{Name: "c", Lat: 1, Lon: 1}, {Name: "d", Lat: 1, Lon: 0},
//	}
//	dist := geo.BuildMatrix(pts)
//	res, err := route.Solve(dist, 0, false, route.DefaultOptions())
//	// res.Path == [0 1 2 3] — the perimeter, no crossing diagonals.
//
// See each package's doc.go for contracts, invariants and complexity notes.
//
//	go get github.com/katalvlaran/georoute
package georoute
