package peak

import (
	"sort"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-chrom/dsp/core"
)

// Area integrates y - baseline over [start, end] with the trapezoidal rule,
// using the actual x spacing. The baseline is min(y[start], y[end]).
// Indices are clamped to the series and swapped if reversed; a range of a
// single sample has zero area.
func Area(x, y []float64, start, end int) float64 {
	n := min(len(x), len(y))
	if n < 2 {
		return 0
	}

	start = core.ClampIndex(start, n)
	end = core.ClampIndex(end, n)
	if start > end {
		start, end = end, start
	}
	if start == end {
		return 0
	}

	baseline := min(y[start], y[end])

	xs := x[start : end+1]
	f := make([]float64, len(xs))
	for j := range f {
		f[j] = y[start+j] - baseline
	}

	if sort.Float64sAreSorted(xs) {
		return integrate.Trapezoidal(xs, f)
	}

	// integrate.Trapezoidal rejects unsorted abscissae; keep the signed
	// spacing so decreasing runs integrate negatively.
	var area float64
	for j := 1; j < len(xs); j++ {
		area += 0.5 * (f[j-1] + f[j]) * (xs[j] - xs[j-1])
	}
	return area
}

// WidthAtHalfMax returns x[right] - x[left] where left and right are the
// first samples, scanning outward from idx toward start and end, whose
// intensity drops below (y[idx] + baseline) / 2. The boundary itself is used
// when no sample drops below half maximum.
func WidthAtHalfMax(x, y []float64, idx, start, end int) float64 {
	n := min(len(x), len(y))
	if n == 0 {
		return 0
	}

	idx = core.ClampIndex(idx, n)
	start = min(core.ClampIndex(start, n), idx)
	end = max(core.ClampIndex(end, n), idx)

	baseline := min(y[start], y[end])
	half := (y[idx] + baseline) / 2

	left := start
	for j := idx; j >= start; j-- {
		if y[j] < half {
			left = j
			break
		}
	}

	right := end
	for j := idx; j <= end; j++ {
		if y[j] < half {
			right = j
			break
		}
	}

	return x[right] - x[left]
}
