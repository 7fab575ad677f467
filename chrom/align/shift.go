package align

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-chrom/chrom/series"
	"github.com/cwbudde/algo-chrom/dsp/conv"
	"github.com/cwbudde/algo-chrom/dsp/interp"
	"gonum.org/v1/gonum/stat"
)

// maxGridPoints bounds the shared resampling grid.
const maxGridPoints = 1 << 20

var (
	// ErrEmptySeries is returned when a trace has fewer than two samples.
	ErrEmptySeries = errors.New("align: empty series")
	// ErrSpacing is returned when x is not increasing.
	ErrSpacing = errors.New("align: x must be increasing")
	// ErrGridTooLarge is returned when the shared grid would exceed
	// maxGridPoints samples.
	ErrGridTooLarge = errors.New("align: resampling grid too large")
)

// Shift is the offset of a target trace relative to a reference.
type Shift struct {
	// Lag is the integer part in reference samples.
	Lag int `json:"lag"`
	// Fraction refines Lag; it lies in [-0.5, 0.5].
	Fraction float64 `json:"fraction"`
	// X is the shift in retention-time units.
	X float64 `json:"x"`
}

// Spacing returns the median sample spacing of x.
func Spacing(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, ErrEmptySeries
	}

	d := make([]float64, len(x)-1)
	for i := range d {
		d[i] = x[i+1] - x[i]
	}
	sort.Float64s(d)

	dx := stat.Quantile(0.5, stat.Empirical, d, nil)
	if !(dx > 0) || math.IsInf(dx, 0) {
		return 0, fmt.Errorf("%w: median spacing %v", ErrSpacing, dx)
	}
	return dx, nil
}

// EstimateShift returns how far target lags ref. Both traces are sanitized,
// resampled at the reference spacing over their combined range and
// mean-centered before correlating.
func EstimateShift(ref, target series.Series) (Shift, error) {
	rx, ry := series.Sanitize(ref.X, ref.Y)
	tx, ty := series.Sanitize(target.X, target.Y)
	if len(rx) < 2 {
		return Shift{}, fmt.Errorf("%w: reference %q has %d samples", ErrEmptySeries, ref.Name, len(rx))
	}
	if len(tx) < 2 {
		return Shift{}, fmt.Errorf("%w: target %q has %d samples", ErrEmptySeries, target.Name, len(tx))
	}
	if !sort.Float64sAreSorted(rx) || !sort.Float64sAreSorted(tx) {
		return Shift{}, ErrSpacing
	}

	dx, err := Spacing(rx)
	if err != nil {
		return Shift{}, fmt.Errorf("reference %q: %w", ref.Name, err)
	}

	start := math.Min(rx[0], tx[0])
	stop := math.Max(rx[len(rx)-1], tx[len(tx)-1])
	n := int(math.Floor((stop-start)/dx)) + 1
	if n > maxGridPoints {
		return Shift{}, fmt.Errorf("%w: %d points", ErrGridTooLarge, n)
	}

	a := centered(interp.Uniform(tx, ty, start, dx, n))
	b := centered(interp.Uniform(rx, ry, start, dx, n))

	corr, err := conv.CorrelateFFT(a, b)
	if err != nil {
		return Shift{}, fmt.Errorf("align: correlate: %w", err)
	}

	idx, _ := conv.FindPeak(corr)
	s := Shift{Lag: conv.LagFromIndex(idx, len(b))}
	if idx > 0 && idx < len(corr)-1 {
		s.Fraction = interp.ParabolicOffset(corr[idx-1], corr[idx], corr[idx+1])
	}
	s.X = (float64(s.Lag) + s.Fraction) * dx
	return s, nil
}

// ShiftX returns x moved back by s so that the target lines up with the
// reference.
func ShiftX(x []float64, s Shift) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - s.X
	}
	return out
}

func centered(y []float64) []float64 {
	mean := stat.Mean(y, nil)
	for i := range y {
		y[i] -= mean
	}
	return y
}
