package testutil

import (
	"math"
	"math/rand"
)

// GaussianPeak describes one synthetic chromatographic peak.
type GaussianPeak struct {
	Center float64 // retention time
	Height float64
	Sigma  float64
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Chromatogram evaluates the sum of the given Gaussian peaks at every x,
// plus a constant offset.
func Chromatogram(x []float64, offset float64, peaks ...GaussianPeak) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		v := offset
		for _, p := range peaks {
			d := (xi - p.Center) / p.Sigma
			v += p.Height * math.Exp(-0.5*d*d)
		}
		out[i] = v
	}
	return out
}

// Ramp returns intercept + slope*i for i in [0, n).
func Ramp(intercept, slope float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = intercept + slope*float64(i)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Add returns a[i] + b[i] over the shorter length.
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}
