// Package render draws a solved route as an SVG document.
//
// The drawing mirrors the tour semantics, not map accuracy: a plate-carrée
// projection of the visited points onto a pixel canvas, tour edges in
// traversal order with midpoint direction arrows, and numbered, labeled
// markers per visited place. An optional raster background (local file or
// http(s) URL, PNG or JPEG) is embedded as a base64 data URI stretched over
// the padded geographic bounds.
//
// Failure policy: a background that cannot be loaded is a warning, never an
// error — the route still renders, only the backdrop is omitted. Real errors
// are reserved for an empty route and writer failures.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"go.uber.org/zap"

	"github.com/katalvlaran/georoute/geo"
)

// ErrNoRoute is returned when there is nothing to draw (no points or an
// empty path).
var ErrNoRoute = errors.New("render: nothing to draw")

// boundsPad is the degree padding applied around the visited points, the
// same margin the geographic bounds of the background are stretched to.
const boundsPad = 0.01

var (
	styleEdge   = []string{`stroke="crimson"`, `stroke-opacity="0.8"`, `stroke-linecap="round"`}
	styleArrow  = []string{`fill="steelblue"`}
	styleMarker = []string{`fill="gold"`, `stroke="black"`, `stroke-width="1px"`}
	styleLabel  = []string{`font-family="sans-serif"`, `font-size="12px"`, `text-anchor="middle"`, `paint-order="stroke"`, `stroke="white"`, `stroke-width="3px"`}
)

// Renderer draws routes with a fixed drawing geometry.
type Renderer struct {
	width        int     // canvas width in pixels; height follows the bounds
	markerRadius int     // place marker radius in pixels
	lineWidth    float64 // route stroke width in pixels
	logger       *zap.Logger
	loader       backgroundLoader
}

// Option is a functional option for configuring a Renderer.
type Option func(*Renderer)

// WithWidth sets the canvas width in pixels.
func WithWidth(px int) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.width = px
		}
	}
}

// WithMarkerRadius sets the place marker radius in pixels.
func WithMarkerRadius(px int) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.markerRadius = px
		}
	}
}

// WithLineWidth sets the route stroke width in pixels.
func WithLineWidth(px float64) Option {
	return func(r *Renderer) {
		if px > 0 {
			r.lineWidth = px
		}
	}
}

// WithLogger sets the logger used for degrade warnings.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Renderer with the default drawing geometry (1200px wide,
// 8px markers, 2px strokes, no-op logger) and the given overrides applied.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:        1200,
		markerRadius: 8,
		lineWidth:    2,
		logger:       zap.NewNop(),
		loader:       loadBackground,
	}
	for _, apply := range opts {
		apply(r)
	}

	return r
}

// Render draws pts along path into w. background may be empty (no backdrop),
// a local file path, or an http(s) URL; load failures only drop the backdrop.
//
// Contracts:
//   - every index of path must address pts (out-of-range is a programming
//     error upstream; Render reports ErrNoRoute only for empty input),
//   - a closing repeat at the end of path is drawn like any other edge.
//
// Complexity: O(len(path)) drawing operations.
func (r *Renderer) Render(w io.Writer, pts []geo.Point, path []int, background string) error {
	if len(pts) == 0 || len(path) == 0 {
		return ErrNoRoute
	}

	// Geographic bounds of the visited points, padded like the background.
	var (
		minLat, maxLat = math.Inf(1), math.Inf(-1)
		minLon, maxLon = math.Inf(1), math.Inf(-1)
	)
	for _, idx := range path {
		p := pts[idx]
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLon = math.Max(maxLon, p.Lon)
	}
	minLat -= boundsPad
	maxLat += boundsPad
	minLon -= boundsPad
	maxLon += boundsPad

	// Plate-carrée projection into pixel space; the pad guarantees both
	// spans are positive even for a single visited point.
	var (
		lonSpan = maxLon - minLon
		latSpan = maxLat - minLat
		width   = r.width
		height  = int(float64(width) * latSpan / lonSpan)
	)
	if height < 1 {
		height = 1
	}
	px := func(lon float64) int { return int(float64(width) * (lon - minLon) / lonSpan) }
	py := func(lat float64) int { return height - int(float64(height)*(lat-minLat)/latSpan) }

	canvas := svg.New(w)
	canvas.Start(width, height)

	if background != "" {
		if uri, err := r.loader(background); err != nil {
			r.logger.Warn("could not load background image, rendering without it",
				zap.String("background", background),
				zap.Error(err))
		} else {
			canvas.Image(0, 0, width, height, uri, `preserveAspectRatio="none"`, `opacity="0.7"`)
		}
	}

	// Edges in traversal order, each with a midpoint direction arrow.
	edgeStyle := append([]string{fmt.Sprintf(`stroke-width="%.1fpx"`, r.lineWidth)}, styleEdge...)
	for i := 0; i+1 < len(path); i++ {
		var (
			a, b           = pts[path[i]], pts[path[i+1]]
			x1, y1, x2, y2 = px(a.Lon), py(a.Lat), px(b.Lon), py(b.Lat)
		)
		canvas.Line(x1, y1, x2, y2, edgeStyle...)
		r.arrow(canvas, x1, y1, x2, y2)
	}

	// Markers and ordinal labels over the edges.
	for i, idx := range path {
		p := pts[idx]
		x, y := px(p.Lon), py(p.Lat)
		canvas.Circle(x, y, r.markerRadius, styleMarker...)
		canvas.Text(x, y-r.markerRadius-4, fmt.Sprintf("%d. %s", i+1, p.Name), styleLabel...)
	}

	canvas.End()

	return nil
}

// arrow draws a small triangular head at the midpoint of (x1,y1)→(x2,y2),
// oriented along the direction of traversal. Zero-length edges (duplicate
// coordinates) get no arrow.
func (r *Renderer) arrow(canvas *svg.SVG, x1, y1, x2, y2 int) {
	var (
		dx  = float64(x2 - x1)
		dy  = float64(y2 - y1)
		hyp = math.Hypot(dx, dy)
	)
	if hyp < 1 {
		return
	}

	// Unit direction and its normal, scaled to the marker geometry.
	var (
		ux, uy = dx / hyp, dy / hyp
		nx, ny = -uy, ux
		size   = float64(r.markerRadius)
		mx     = float64(x1+x2) / 2
		my     = float64(y1+y2) / 2
	)
	xs := []int{
		int(mx + ux*size),
		int(mx - ux*size/2 + nx*size/2),
		int(mx - ux*size/2 - nx*size/2),
	}
	ys := []int{
		int(my + uy*size),
		int(my - uy*size/2 + ny*size/2),
		int(my - uy*size/2 - ny*size/2),
	}
	canvas.Polygon(xs, ys, styleArrow...)
}
