package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-chrom/dsp/core"
)

// DefaultMarkerY is the height of boundary markers, just below a corrected
// baseline.
const DefaultMarkerY = -1.0

// ErrUnknownShape is returned by ParseShape.
var ErrUnknownShape = errors.New("layout: unknown marker shape")

// Shape is a boundary marker symbol.
type Shape string

const (
	ShapeNone     Shape = "none"
	ShapeTriangle Shape = "triangle"
	ShapeDiamond  Shape = "diamond"
	// ShapeAuto defers the choice to the configured AutoPolicy.
	ShapeAuto Shape = "auto"
)

// ParseShape maps a case-insensitive name to a Shape.
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case ShapeNone:
		return ShapeNone, nil
	case ShapeTriangle:
		return ShapeTriangle, nil
	case ShapeDiamond:
		return ShapeDiamond, nil
	case ShapeAuto:
		return ShapeAuto, nil
	}
	return ShapeNone, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Edge says which side of a peak a marker sits on.
type Edge string

const (
	EdgeStart Edge = "start"
	EdgeEnd   Edge = "end"
)

// Marker is one boundary symbol.
type Marker struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Shape       Shape   `json:"shape"`
	Edge        Edge    `json:"edge"`
	Color       string  `json:"color"`
	SeriesIndex int     `json:"seriesIndex"`
}

// Guide is a vertical line from the marker height up to the trace.
type Guide struct {
	X           float64 `json:"x"`
	Y0          float64 `json:"y0"`
	Y1          float64 `json:"y1"`
	Color       string  `json:"color"`
	SeriesIndex int     `json:"seriesIndex"`
}

// BoundaryContext describes one boundary for an AutoPolicy.
type BoundaryContext struct {
	Annotation Annotation
	Edge       Edge
	Index      int          // boundary sample index
	Others     []Annotation // other bounded annotations of the same series
}

// AutoPolicy picks a concrete shape for a boundary configured as ShapeAuto.
type AutoPolicy func(ctx BoundaryContext) Shape

// SharedBoundaryPolicy draws a diamond where the boundary coincides with,
// or falls inside, another peak of the same series, and a triangle
// otherwise.
func SharedBoundaryPolicy(ctx BoundaryContext) Shape {
	for _, o := range ctx.Others {
		if o.Bounds == nil {
			continue
		}
		if ctx.Index >= o.Bounds.StartIndex && ctx.Index <= o.Bounds.EndIndex {
			return ShapeDiamond
		}
	}
	return ShapeTriangle
}

// MarkerOptions configures Markers.
type MarkerOptions struct {
	Y            float64
	Start        Shape
	End          Shape
	Auto         AutoPolicy
	Palette      []string
	SeriesColors []string
}

// MarkerOption mutates MarkerOptions.
type MarkerOption func(*MarkerOptions)

// DefaultMarkerOptions returns triangles at starts and diamonds at ends.
func DefaultMarkerOptions() MarkerOptions {
	return MarkerOptions{
		Y:       DefaultMarkerY,
		Start:   ShapeTriangle,
		End:     ShapeDiamond,
		Auto:    SharedBoundaryPolicy,
		Palette: DefaultPalette(),
	}
}

// WithMarkerY sets the marker height. Non-finite values are ignored.
func WithMarkerY(y float64) MarkerOption {
	return func(o *MarkerOptions) {
		if core.IsFinite(y) {
			o.Y = y
		}
	}
}

// WithShapes sets the start and end shapes. Empty shapes keep the current
// value.
func WithShapes(start, end Shape) MarkerOption {
	return func(o *MarkerOptions) {
		if start != "" {
			o.Start = start
		}
		if end != "" {
			o.End = end
		}
	}
}

// WithAutoPolicy sets the policy used for ShapeAuto. nil is ignored.
func WithAutoPolicy(p AutoPolicy) MarkerOption {
	return func(o *MarkerOptions) {
		if p != nil {
			o.Auto = p
		}
	}
}

// WithMarkerColors sets the colors markers inherit from their series.
func WithMarkerColors(seriesColors, palette []string) MarkerOption {
	return func(o *MarkerOptions) {
		o.SeriesColors = append([]string(nil), seriesColors...)
		if len(palette) > 0 {
			o.Palette = append([]string(nil), palette...)
		}
	}
}

// ApplyMarkerOptions applies opts on top of DefaultMarkerOptions.
func ApplyMarkerOptions(opts ...MarkerOption) MarkerOptions {
	cfg := DefaultMarkerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Markers emits boundary markers for every annotation that has Bounds,
// start before end, in input order. lookup returns the samples of a
// series; annotations whose series has no samples are skipped.
func Markers(anns []Annotation, lookup func(seriesIndex int) (x, y []float64), opts ...MarkerOption) ([]Marker, []Guide) {
	cfg := ApplyMarkerOptions(opts...)

	var (
		markers []Marker
		guides  []Guide
	)
	for i, a := range anns {
		if a.Bounds == nil {
			continue
		}
		x, y := lookup(a.SeriesIndex)
		n := min(len(x), len(y))
		if n == 0 {
			continue
		}
		color := SeriesColor(a.SeriesIndex, cfg.SeriesColors, cfg.Palette)

		for _, edge := range [...]Edge{EdgeStart, EdgeEnd} {
			idx := a.Bounds.StartIndex
			shape := cfg.Start
			if edge == EdgeEnd {
				idx = a.Bounds.EndIndex
				shape = cfg.End
			}
			idx = core.ClampIndex(idx, n)

			auto := shape == ShapeAuto
			if auto {
				shape = cfg.Auto(BoundaryContext{
					Annotation: a,
					Edge:       edge,
					Index:      idx,
					Others:     siblings(anns, i),
				})
			}
			if shape == ShapeNone || shape == ShapeAuto || shape == "" {
				continue
			}

			markers = append(markers, Marker{
				X:           x[idx],
				Y:           cfg.Y,
				Shape:       shape,
				Edge:        edge,
				Color:       color,
				SeriesIndex: a.SeriesIndex,
			})
			if auto && shape == ShapeDiamond {
				guides = append(guides, Guide{
					X:           x[idx],
					Y0:          cfg.Y,
					Y1:          y[idx],
					Color:       color,
					SeriesIndex: a.SeriesIndex,
				})
			}
		}
	}
	return markers, guides
}

// siblings returns the bounded annotations sharing anns[self]'s series,
// excluding anns[self].
func siblings(anns []Annotation, self int) []Annotation {
	var out []Annotation
	for j, o := range anns {
		if j == self || o.Bounds == nil || o.SeriesIndex != anns[self].SeriesIndex {
			continue
		}
		out = append(out, o)
	}
	return out
}
