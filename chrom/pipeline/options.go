package pipeline

import (
	"math"

	"github.com/cwbudde/algo-chrom/chrom/baseline"
	"github.com/cwbudde/algo-chrom/chrom/layout"
	"github.com/cwbudde/algo-chrom/chrom/peak"
	"github.com/cwbudde/algo-chrom/chrom/smooth"
)

// Options configures Run.
type Options struct {
	Peak           []peak.Option
	Baseline       baseline.Mode
	BaselineWindow int

	// ShowAreas labels detected peaks with their area.
	ShowAreas        bool
	OverlapThreshold float64

	// BoundaryMarkers is "none", "triangle", "diamond" or "auto" and applies
	// to both edges. Empty keeps triangles at starts and diamonds at ends.
	BoundaryMarkers string
	MarkerY         float64

	Smoothing      smooth.Mode
	SmoothingWidth int

	// AlignTo is the index of the reference series, or -1 to disable
	// alignment.
	AlignTo int
	// Warp additionally fits a linear retention-time map through matched
	// apexes after the shift.
	Warp bool

	// OnPeaks, when set, receives each series' detected peaks.
	OnPeaks func(seriesIndex int, peaks []peak.Peak)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the standard pipeline settings.
func DefaultOptions() Options {
	return Options{
		Baseline:         baseline.None,
		BaselineWindow:   baseline.DefaultWindow,
		ShowAreas:        true,
		OverlapThreshold: layout.DefaultOverlapThreshold,
		MarkerY:          layout.DefaultMarkerY,
		Smoothing:        smooth.ModeNone,
		SmoothingWidth:   smooth.DefaultWidth,
		AlignTo:          -1,
	}
}

// WithPeakOptions appends detector options.
func WithPeakOptions(opts ...peak.Option) Option {
	return func(o *Options) {
		o.Peak = append(o.Peak, opts...)
	}
}

// WithBaseline selects the baseline correction. A window below 1 keeps the
// current one.
func WithBaseline(mode baseline.Mode, window int) Option {
	return func(o *Options) {
		o.Baseline = mode
		if window >= 1 {
			o.BaselineWindow = window
		}
	}
}

// WithShowAreas toggles area labels on detected peaks.
func WithShowAreas(show bool) Option {
	return func(o *Options) {
		o.ShowAreas = show
	}
}

// WithOverlapThreshold sets the label grouping distance. Non-positive
// values are ignored.
func WithOverlapThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold > 0 && !math.IsInf(threshold, 0) {
			o.OverlapThreshold = threshold
		}
	}
}

// WithBoundaryMarkers sets the marker shape for both edges.
func WithBoundaryMarkers(shape string) Option {
	return func(o *Options) {
		o.BoundaryMarkers = shape
	}
}

// WithMarkerY sets the marker height. Non-finite values are ignored.
func WithMarkerY(y float64) Option {
	return func(o *Options) {
		if !math.IsNaN(y) && !math.IsInf(y, 0) {
			o.MarkerY = y
		}
	}
}

// WithSmoothing enables smoothing before baseline correction.
func WithSmoothing(mode smooth.Mode, width int) Option {
	return func(o *Options) {
		o.Smoothing = mode
		if width >= 1 {
			o.SmoothingWidth = width
		}
	}
}

// WithAlignTo aligns every other series to series ref. Negative values
// disable alignment.
func WithAlignTo(ref int) Option {
	return func(o *Options) {
		o.AlignTo = max(ref, -1)
	}
}

// WithWarp toggles the linear warp refinement of alignment.
func WithWarp(warp bool) Option {
	return func(o *Options) {
		o.Warp = warp
	}
}

// WithOnPeaks registers a callback for detected peaks.
func WithOnPeaks(fn func(seriesIndex int, peaks []peak.Peak)) Option {
	return func(o *Options) {
		o.OnPeaks = fn
	}
}

// ApplyOptions applies opts on top of DefaultOptions.
func ApplyOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// markerShapes maps the BoundaryMarkers setting to per-edge shapes. Empty
// or unknown values keep the defaults.
func markerShapes(s string) (start, end layout.Shape) {
	if s == "" {
		return layout.ShapeTriangle, layout.ShapeDiamond
	}
	shape, err := layout.ParseShape(s)
	if err != nil {
		return layout.ShapeTriangle, layout.ShapeDiamond
	}
	return shape, shape
}
