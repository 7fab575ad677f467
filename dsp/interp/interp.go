package interp

import (
	"sort"

	"github.com/cwbudde/algo-chrom/dsp/core"
)

// Linear2 interpolates from x0 to x1 at t in [0, 1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Uniform samples the piecewise-linear curve through (x, y) at n points
// x0, x0+dx, ... . x must be ascending. Points outside [x[0], x[last]]
// take the nearest end value. Returns nil when n <= 0 or the curve is
// empty.
func Uniform(x, y []float64, x0, dx float64, n int) []float64 {
	m := min(len(x), len(y))
	if n <= 0 || m == 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = at(x[:m], y[:m], x0+float64(i)*dx)
	}
	return out
}

func at(x, y []float64, t float64) float64 {
	last := len(x) - 1
	if t <= x[0] {
		return y[0]
	}
	if t >= x[last] {
		return y[last]
	}

	hi := sort.SearchFloat64s(x, t)
	lo := hi - 1
	span := x[hi] - x[lo]
	if span <= 0 {
		return y[hi]
	}
	return Linear2((t-x[lo])/span, y[lo], y[hi])
}

// ParabolicOffset returns the position, relative to the middle sample, of
// the vertex of the parabola through three equally spaced samples. The
// result is clamped to [-0.5, 0.5]; a flat or inverted triple yields 0.
func ParabolicOffset(ym1, y0, y1 float64) float64 {
	den := ym1 - 2*y0 + y1
	if den >= 0 {
		return 0
	}

	return core.Clamp(0.5*(ym1-y1)/den, -0.5, 0.5)
}
