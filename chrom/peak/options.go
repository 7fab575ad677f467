package peak

import "github.com/cwbudde/algo-chrom/dsp/core"

// Options configures [Detect].
type Options struct {
	// MinHeight is the minimum apex intensity, relative to the series
	// maximum when RelativeThreshold is set.
	MinHeight float64

	// MinDistance is the minimum index spacing between kept peaks. It also
	// sizes the prominence window (3*MinDistance on each side).
	MinDistance int

	// Prominence is the minimum local prominence, relative to the series
	// maximum when RelativeThreshold is set.
	Prominence float64

	// RelativeThreshold scales MinHeight and Prominence by max(y).
	RelativeThreshold bool
}

// DefaultOptions returns the detector defaults.
func DefaultOptions() Options {
	return Options{
		MinHeight:         0.05,
		MinDistance:       5,
		Prominence:        0.02,
		RelativeThreshold: true,
	}
}

// Option mutates Options. Invalid values are ignored.
type Option func(*Options)

// WithMinHeight sets the minimum peak height (>= 0, finite).
func WithMinHeight(h float64) Option {
	return func(o *Options) {
		if h >= 0 && core.IsFinite(h) {
			o.MinHeight = h
		}
	}
}

// WithMinDistance sets the minimum index spacing between peaks (>= 1).
func WithMinDistance(d int) Option {
	return func(o *Options) {
		if d >= 1 {
			o.MinDistance = d
		}
	}
}

// WithProminence sets the minimum local prominence (>= 0, finite).
func WithProminence(p float64) Option {
	return func(o *Options) {
		if p >= 0 && core.IsFinite(p) {
			o.Prominence = p
		}
	}
}

// WithRelativeThreshold selects relative (true) or absolute thresholds.
func WithRelativeThreshold(relative bool) Option {
	return func(o *Options) {
		o.RelativeThreshold = relative
	}
}

// WithOptions replaces every field with the valid fields of opts.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		WithMinHeight(opts.MinHeight)(o)
		WithMinDistance(opts.MinDistance)(o)
		WithProminence(opts.Prominence)(o)
		o.RelativeThreshold = opts.RelativeThreshold
	}
}

// ApplyOptions applies zero or more options to DefaultOptions.
func ApplyOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
