// Command georoute reads a CSV of named places, builds an approximate
// shortest visiting order (nearest-neighbor construction refined by 2-opt),
// prints the resulting tour, and exports it as GeoJSON. An SVG visualization
// with an optional raster background is produced on request.
//
// Usage:
//
//	georoute -csv places.csv [-start NAME] [-return] [-output route.geojson]
//	         [-visualize] [-map-image map.png] [-vis-output route.svg]
//
// Environment variables prefixed GEOROUTE_ supply defaults for logging,
// drawing geometry, and optimizer budgets; flags always win.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/georoute/config"
	"github.com/katalvlaran/georoute/geo"
	"github.com/katalvlaran/georoute/geojson"
	"github.com/katalvlaran/georoute/logging"
	"github.com/katalvlaran/georoute/places"
	"github.com/katalvlaran/georoute/render"
	"github.com/katalvlaran/georoute/route"
)

func main() {
	csvPath := flag.String("csv", "", "path to the input CSV (name,lat,lon per row; required)")
	startName := flag.String("start", "", "name of the starting place (defaults to the first row)")
	closeLoop := flag.Bool("return", false, "return to the starting place at the end of the tour")
	output := flag.String("output", "route.geojson", "path of the GeoJSON export")
	visualize := flag.Bool("visualize", false, "render the tour as an SVG image")
	mapImage := flag.String("map-image", "", "optional background map (file path, URL, or data URI)")
	visOutput := flag.String("vis-output", "route.svg", "path of the SVG visualization")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "georoute: -csv is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "georoute: load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "georoute: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *csvPath, *startName, *closeLoop, *output, *visualize, *mapImage, *visOutput); err != nil {
		logger.Error("georoute failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, csvPath, startName string, closeLoop bool, output string, visualize bool, mapImage, visOutput string) error {
	pts, err := places.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("read places from %q: %w", csvPath, err)
	}
	if len(pts) == 0 {
		return fmt.Errorf("no valid places in %q", csvPath)
	}
	logger.Info("places loaded", zap.String("csv", csvPath), zap.Int("count", len(pts)))

	start := 0
	if startName != "" {
		idx, ok := places.FindIndex(pts, startName)
		if !ok {
			logger.Warn("start place not found, using first row",
				zap.String("start", startName),
				zap.String("fallback", pts[0].Name))
		} else {
			start = idx
		}
	}

	dist := geo.BuildMatrix(pts)
	opts := route.DefaultOptions(
		route.WithEps(cfg.Solver.Eps),
		route.WithMaxMoves(cfg.Solver.MaxMoves),
		route.WithTimeLimit(cfg.Solver.TimeLimit),
	)
	result, err := route.Solve(dist, start, closeLoop, opts)
	if err != nil {
		return fmt.Errorf("solve tour: %w", err)
	}
	logger.Info("tour computed",
		zap.Int("stops", len(result.Path)),
		zap.Float64("lengthKm", result.Length))

	fmt.Println("Optimized route:")
	for i, idx := range result.Path {
		fmt.Printf("%d. %s\n", i+1, pts[idx].Name)
	}
	fmt.Printf("Total distance: %.1f km\n", result.Length)

	if err := geojson.WriteFile(output, geojson.Route(pts, result.Path)); err != nil {
		return fmt.Errorf("write GeoJSON to %q: %w", output, err)
	}
	logger.Info("GeoJSON written", zap.String("path", output))

	if !visualize {
		return nil
	}
	r := render.New(
		render.WithWidth(cfg.Render.Width),
		render.WithMarkerRadius(cfg.Render.MarkerRadius),
		render.WithLineWidth(cfg.Render.LineWidth),
		render.WithLogger(logger),
	)
	f, err := os.Create(visOutput)
	if err != nil {
		return fmt.Errorf("create %q: %w", visOutput, err)
	}
	defer f.Close()
	if err := r.Render(f, pts, result.Path, mapImage); err != nil {
		return fmt.Errorf("render SVG to %q: %w", visOutput, err)
	}
	logger.Info("visualization written", zap.String("path", visOutput))
	return nil
}
