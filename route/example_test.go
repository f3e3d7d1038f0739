// Package route_test provides runnable, deterministic examples with stable
// // Output: blocks. The geometry is chosen so tie-breaks and move order are
// unambiguous regardless of platform.
package route_test

import (
	"fmt"

	"github.com/katalvlaran/georoute/geo"
	"github.com/katalvlaran/georoute/route"
)

// ExampleSolve plans a loop over the four corners of a 1°×1° square.
// Nearest-neighbor already finds the perimeter here; 2-opt confirms it is a
// local optimum, and closeLoop appends the way home.
func ExampleSolve() {
	pts := []geo.Point{
		{Name: "sw", Lat: 0, Lon: 0},
		{Name: "se", Lat: 0, Lon: 1},
		{Name: "ne", Lat: 1, Lon: 1},
		{Name: "nw", Lat: 1, Lon: 0},
	}
	dist := geo.BuildMatrix(pts)

	res, err := route.Solve(dist, 0, true, route.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", res.Path)
	fmt.Printf("length: %.1f km\n", res.Length)
	// Output:
	// order: [0 1 2 3 0]
	// length: 444.8 km
}

// ExampleTwoOpt repairs a self-crossing order on the same square: the input
// walks both diagonals, the optimizer reverses one interior segment and the
// crossing disappears.
func ExampleTwoOpt() {
	pts := []geo.Point{
		{Name: "sw", Lat: 0, Lon: 0},
		{Name: "se", Lat: 0, Lon: 1},
		{Name: "ne", Lat: 1, Lon: 1},
		{Name: "nw", Lat: 1, Lon: 0},
	}
	dist := geo.BuildMatrix(pts)

	improved, _, err := route.TwoOpt(dist, []int{0, 2, 1, 3}, route.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("improved:", improved)
	// Output:
	// improved: [0 1 2 3]
}
