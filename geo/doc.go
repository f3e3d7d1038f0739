// Package geo provides the geographic primitives of georoute.
//
// It includes three building blocks:
//
//   - Point — a named latitude/longitude pair in decimal degrees.
//
//   - Haversine — great-circle distance between two Points in kilometers,
//     Earth radius fixed at 6371 km.
//
//   - Complexity: O(1), no allocations.
//
//   - Dense / BuildMatrix — a row-major n×n distance matrix over an ordered
//     Point sequence, zero diagonal, symmetric by construction.
//
//   - Complexity: O(n²) build, O(1) access.
//
// Coordinate ranges are NOT validated anywhere in this package: latitudes
// outside [-90, 90] or longitudes outside [-180, 180] silently produce a
// (possibly meaningless) distance. The only numeric guard is a clamp of the
// haversine intermediate into [0, 1] before the inverse sine, so for any
// finite input the distance is finite and within [0, π·R].
//
// Use this package to turn a point list into the matrix consumed by
// package route.
package geo
