// Package config loads environment-driven defaults for the georoute command.
//
// All knobs are optional and prefixed GEOROUTE_; unset variables resolve to
// defaults that reproduce the reference behavior exactly (no optimizer
// budget, standard drawing geometry). Command-line flags always win over the
// environment — config feeds defaults, it never overrides an explicit flag.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config aggregates the tunables of the georoute command.
type Config struct {
	Log    LogConfig
	Render RenderConfig
	Solver SolverConfig
}

// LogConfig selects the logger verbosity.
type LogConfig struct {
	Level string
}

// RenderConfig controls the SVG visualization geometry.
type RenderConfig struct {
	Width        int     // canvas width in pixels
	MarkerRadius int     // place marker radius in pixels
	LineWidth    float64 // route stroke width in pixels
}

// SolverConfig carries the optional 2-opt budgets (0 = unlimited, the
// reference behavior).
type SolverConfig struct {
	Eps       float64
	MaxMoves  int
	TimeLimit time.Duration
}

// Load reads GEOROUTE_* environment variables and applies defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GEOROUTE")
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RENDER_WIDTH", 1200)
	v.SetDefault("RENDER_MARKER_RADIUS", 8)
	v.SetDefault("RENDER_LINE_WIDTH", 2.0)
	v.SetDefault("SOLVER_EPS", 0.0)
	v.SetDefault("SOLVER_MAX_MOVES", 0)
	v.SetDefault("SOLVER_TIME_LIMIT", time.Duration(0))

	cfg := &Config{
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Render: RenderConfig{
			Width:        v.GetInt("RENDER_WIDTH"),
			MarkerRadius: v.GetInt("RENDER_MARKER_RADIUS"),
			LineWidth:    v.GetFloat64("RENDER_LINE_WIDTH"),
		},
		Solver: SolverConfig{
			Eps:       v.GetFloat64("SOLVER_EPS"),
			MaxMoves:  v.GetInt("SOLVER_MAX_MOVES"),
			TimeLimit: v.GetDuration("SOLVER_TIME_LIMIT"),
		},
	}

	return cfg, nil
}
