// Package places reads the point records consumed by the route pipeline.
//
// The input is delimited text (CSV), one record per line: name, latitude,
// longitude, in decimal degrees. The reader is deliberately forgiving:
//
//   - rows with fewer than three fields are skipped,
//   - rows whose latitude or longitude does not parse as a number are
//     skipped (header lines fall out of this rule naturally),
//   - extra trailing fields are ignored.
//
// Skipping is silent: data quality issues degrade, they do not fail the
// read. Whether "zero valid records" is an error is the caller's policy,
// not this package's.
//
// Start-point lookup is an explicit optional result (FindIndex) rather than
// a fallback baked into the scan: the caller decides what a miss means.
package places

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/georoute/geo"
)

// Read parses point records from r and returns them in input order.
// Only I/O-level failures surface as errors; malformed rows are skipped.
//
// Complexity: O(rows).
func Read(r io.Reader) ([]geo.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are handled below, not rejected here
	cr.TrimLeadingSpace = true

	var pts []geo.Point
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Structurally broken lines (e.g. a stray quote) are skipped
			// like any other malformed record; real I/O failures surface.
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}

			return nil, fmt.Errorf("places: read: %w", err)
		}
		if len(row) < 3 {
			continue
		}

		lat, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue
		}

		pts = append(pts, geo.Point{Name: row[0], Lat: lat, Lon: lon})
	}

	return pts, nil
}

// ReadFile reads point records from the file at path.
func ReadFile(path string) ([]geo.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("places: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// FindIndex returns the position of the first point whose Name exactly
// matches name, and whether any match was found. Fallback policy on a miss
// (commonly: default to index 0 with a warning) belongs to the caller.
//
// Complexity: O(n).
func FindIndex(pts []geo.Point, name string) (int, bool) {
	for i := range pts {
		if pts[i].Name == name {
			return i, true
		}
	}

	return 0, false
}
