// Package series defines the retention-time/intensity trace and its
// sanitizer.
//
// Sanitize is the engine's only defense against malformed numeric input and
// runs before every other stage. It never fails: mismatched lengths are
// truncated and non-finite samples are replaced with zero.
package series

import (
	"maps"

	"github.com/cwbudde/algo-chrom/dsp/core"
)

// Series is an ordered sequence of (x, y) samples. X is the retention time
// and is assumed non-decreasing; this is not enforced.
type Series struct {
	Name     string
	Color    string // optional, empty selects the palette color
	X        []float64
	Y        []float64
	Metadata map[string]string
}

// Len returns the number of usable samples, min(len(X), len(Y)).
func (s Series) Len() int {
	return min(len(s.X), len(s.Y))
}

// Sanitized returns a copy of s with X and Y passed through [Sanitize].
func (s Series) Sanitized() Series {
	out := s
	out.X, out.Y = Sanitize(s.X, s.Y)
	if s.Metadata != nil {
		out.Metadata = maps.Clone(s.Metadata)
	}
	return out
}

// WithY returns a copy of s whose intensities are replaced by y.
// X is shared with s, not copied.
func (s Series) WithY(y []float64) Series {
	out := s
	out.Y = y
	return out
}

// Sanitize returns copies of x and y truncated to the shorter length with
// every NaN or infinity replaced by 0. The inputs are not modified.
func Sanitize(x, y []float64) (xs, ys []float64) {
	n := min(len(x), len(y))

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = core.FiniteOr(x[i], 0)
		ys[i] = core.FiniteOr(y[i], 0)
	}

	return xs, ys
}
