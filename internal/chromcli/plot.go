package chromcli

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cwbudde/algo-chrom/chrom/layout"
	"github.com/cwbudde/algo-chrom/chrom/pipeline"
)

// ErrNothingToPlot is returned when no series has at least two samples.
var ErrNothingToPlot = errors.New("chromcli: nothing to plot")

// PlotOptions sizes the rendered chart.
type PlotOptions struct {
	Width  int
	Height int
	Title  string
}

// RenderPNG draws the traces, boundary markers, guides and peak labels of
// res as a PNG image. Each label is drawn at its annotation point moved by
// the layout's pixel offset (AX, AY), converted to data units with the
// data range spread over the full image size.
func RenderPNG(w io.Writer, res pipeline.Result, opts PlotOptions) error {
	var ss []chart.Series
	for _, s := range res.Series {
		if len(s.X) < 2 {
			continue
		}
		ss = append(ss, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: hexColor(s.Color),
				StrokeWidth: 1.5,
			},
		})
	}
	if len(ss) == 0 {
		return ErrNothingToPlot
	}

	for _, g := range res.Guides {
		ss = append(ss, chart.ContinuousSeries{
			Name:    "guide",
			XValues: []float64{g.X, g.X},
			YValues: []float64{g.Y0, g.Y1},
			Style: chart.Style{
				StrokeColor:     hexColor(g.Color),
				StrokeWidth:     1,
				StrokeDashArray: []float64{3, 3},
			},
		})
	}
	ss = append(ss, markerSeries(res.Markers)...)

	if labels := annotationValues(res.Annotations, res.Series, opts); len(labels) > 0 {
		ss = append(ss, chart.AnnotationSeries{Annotations: labels})
	}

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 12, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: "Retention time"},
		YAxis:  chart.YAxis{Name: "Intensity"},
		Series: ss,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

// markerSeries groups markers into dot-only series, one per color and
// shape. Diamonds are drawn larger than triangles.
func markerSeries(markers []layout.Marker) []chart.Series {
	type key struct {
		color string
		shape layout.Shape
	}
	var order []key
	groups := map[key]*chart.ContinuousSeries{}

	for _, m := range markers {
		k := key{m.Color, m.Shape}
		g, ok := groups[k]
		if !ok {
			g = &chart.ContinuousSeries{
				Name:  string(m.Shape) + " markers",
				Style: pointStyle(hexColor(m.Color), dotWidth(m.Shape)),
			}
			groups[k] = g
			order = append(order, k)
		}
		g.XValues = append(g.XValues, m.X)
		g.YValues = append(g.YValues, m.Y)
	}

	out := make([]chart.Series, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out
}

func annotationValues(anns []layout.Placed, ss []pipeline.SeriesResult, opts PlotOptions) []chart.Value2 {
	var xPerPx, yPerPx float64
	if opts.Width > 0 && opts.Height > 0 {
		xr, yr := dataRange(ss)
		xPerPx = xr / float64(opts.Width)
		yPerPx = yr / float64(opts.Height)
	}

	var out []chart.Value2
	for _, a := range anns {
		if a.Text == "" {
			continue
		}
		// Pixel y grows downward.
		out = append(out, chart.Value2{
			XValue: a.X + a.AX*xPerPx,
			YValue: a.Y - a.AY*yPerPx,
			Label:  a.Text,
		})
	}
	return out
}

// dataRange returns the x and y extents over all plotted series.
func dataRange(ss []pipeline.SeriesResult) (xr, yr float64) {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, s := range ss {
		if len(s.X) < 2 {
			continue
		}
		for _, v := range s.X {
			xMin, xMax = math.Min(xMin, v), math.Max(xMax, v)
		}
		for _, v := range s.Y {
			yMin, yMax = math.Min(yMin, v), math.Max(yMax, v)
		}
	}
	if xMax > xMin {
		xr = xMax - xMin
	}
	if yMax > yMin {
		yr = yMax - yMin
	}
	return xr, yr
}

func pointStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    width,
		DotColor:    col,
	}
}

func dotWidth(s layout.Shape) float64 {
	if s == layout.ShapeDiamond {
		return 5
	}
	return 3.5
}

func hexColor(s string) drawing.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 3 && len(s) != 6 {
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(s)
}
