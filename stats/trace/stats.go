// Package trace computes summary statistics of a chromatogram trace.
package trace

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds intensity statistics of one trace.
type Stats struct {
	Length int     `json:"length"`
	Min    float64 `json:"min"`
	MinPos int     `json:"minPos"`
	Max    float64 `json:"max"`
	MaxPos int     `json:"maxPos"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"` // population
	RMS    float64 `json:"rms"`
	Range  float64 `json:"range"` // max - min
	// Noise estimates the white-noise level as the standard deviation of
	// first differences divided by sqrt(2). Slow drift and broad peaks
	// contribute little.
	Noise float64 `json:"noise"`
	// SNR is Range / Noise, or 0 when Noise is 0.
	SNR float64 `json:"snr"`
}

// Calculate returns the statistics of y. Empty input yields zero Stats with
// MinPos and MaxPos set to -1.
func Calculate(y []float64) Stats {
	n := len(y)
	if n == 0 {
		return Stats{MinPos: -1, MaxPos: -1}
	}

	maxPos := floats.MaxIdx(y)
	minPos := floats.MinIdx(y)
	mean, std := stat.PopMeanStdDev(y, nil)

	s := Stats{
		Length: n,
		Min:    y[minPos],
		MinPos: minPos,
		Max:    y[maxPos],
		MaxPos: maxPos,
		Mean:   mean,
		StdDev: std,
		RMS:    math.Sqrt(floats.Dot(y, y) / float64(n)),
		Range:  y[maxPos] - y[minPos],
		Noise:  Noise(y),
	}
	if s.Noise > 0 {
		s.SNR = s.Range / s.Noise
	}
	return s
}

// Noise returns the first-difference noise estimate of y, or 0 for fewer
// than three samples.
func Noise(y []float64) float64 {
	if len(y) < 3 {
		return 0
	}

	d := make([]float64, len(y)-1)
	floats.SubTo(d, y[1:], y[:len(y)-1])
	_, std := stat.PopMeanStdDev(d, nil)
	return std / math.Sqrt2
}
