package align

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-chrom/dsp/core"
)

var (
	// ErrTooFewAnchors is returned when fewer than two anchor pairs are given.
	ErrTooFewAnchors = errors.New("align: need at least two anchor pairs")
	// ErrDegenerateAnchors is returned when all anchors share one
	// retention time, leaving the scale undetermined.
	ErrDegenerateAnchors = errors.New("align: degenerate anchors")
)

// anchorEpsilon is the relative tolerance below which two anchor times
// count as the same.
const anchorEpsilon = 1e-9

// Warp is a linear retention-time map.
type Warp struct {
	Scale  float64 `json:"scale"`
	Offset float64 `json:"offset"`
	// Residual is the RMS error of the fit in retention-time units.
	Residual float64 `json:"residual"`
}

// Identity is the warp that leaves x unchanged.
var Identity = Warp{Scale: 1}

// Apply maps t through w.
func (w Warp) Apply(t float64) float64 {
	return w.Scale*t + w.Offset
}

// ApplyAll maps every element of x through w.
func (w Warp) ApplyAll(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = w.Apply(v)
	}
	return out
}

// Pair is a matched apex: From on the trace being warped, To on the
// reference.
type Pair struct {
	From float64
	To   float64
}

// MatchApexes pairs each target apex with the nearest reference apex within
// tol. Targets are taken in order and each reference apex is used at most
// once; equidistant candidates go to the earlier reference apex.
func MatchApexes(ref, target []float64, tol float64) []Pair {
	used := make([]bool, len(ref))
	var pairs []Pair
	for _, t := range target {
		best, bestDist := -1, tol
		for j, r := range ref {
			if used[j] {
				continue
			}
			if d := math.Abs(r - t); d <= bestDist {
				if best >= 0 && d == bestDist {
					continue
				}
				best, bestDist = j, d
			}
		}
		if best >= 0 {
			used[best] = true
			pairs = append(pairs, Pair{From: t, To: ref[best]})
		}
	}
	return pairs
}

// FitWarp solves To ≈ Scale*From + Offset over pairs by least squares.
func FitWarp(pairs []Pair) (Warp, error) {
	n := len(pairs)
	if n < 2 {
		return Identity, fmt.Errorf("%w: got %d", ErrTooFewAnchors, n)
	}

	distinct := false
	for _, p := range pairs[1:] {
		if !core.NearlyEqual(p.From, pairs[0].From, anchorEpsilon) {
			distinct = true
			break
		}
	}
	if !distinct {
		return Identity, ErrDegenerateAnchors
	}

	a := mat.NewDense(n, 2, nil)
	b := mat.NewVecDense(n, nil)
	for i, p := range pairs {
		a.Set(i, 0, p.From)
		a.Set(i, 1, 1)
		b.SetVec(i, p.To)
	}

	var qr mat.QR
	qr.Factorize(a)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, b); err != nil {
		return Identity, fmt.Errorf("align: fit warp: %w", err)
	}

	w := Warp{Scale: params.AtVec(0), Offset: params.AtVec(1)}
	if math.IsNaN(w.Scale) || math.IsInf(w.Scale, 0) || math.IsNaN(w.Offset) || math.IsInf(w.Offset, 0) {
		return Identity, fmt.Errorf("%w: non-finite fit", ErrDegenerateAnchors)
	}

	var sq float64
	for _, p := range pairs {
		r := w.Apply(p.From) - p.To
		sq += r * r
	}
	w.Residual = math.Sqrt(sq / float64(n))
	return w, nil
}
