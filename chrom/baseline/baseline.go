// Package baseline removes the background trend from a chromatogram.
//
// Only intensities are corrected; sample positions and length are unchanged,
// and the input slice is never modified.
package baseline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-chrom/internal/vecmath"
)

// DefaultWindow is the rolling-minimum window used when none is configured.
const DefaultWindow = 50

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("baseline: unknown mode")

// Mode selects the correction strategy.
type Mode int

const (
	// None leaves the signal unchanged.
	None Mode = iota
	// Linear subtracts the straight line through the first and last samples.
	Linear
	// Rolling subtracts the minimum of a symmetric window around each sample.
	Rolling
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Linear:
		return "linear"
	case Rolling:
		return "rolling"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "none", "linear" or "rolling" (case-insensitive, empty
// meaning none) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "linear":
		return Linear, nil
	case "rolling":
		return Rolling, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Correct returns a baseline-corrected copy of y. window is only used by
// Rolling; values < 1 fall back to DefaultWindow. Unknown modes behave like
// None.
func Correct(y []float64, mode Mode, window int) []float64 {
	switch mode {
	case Linear:
		return LinearCorrect(y)
	case Rolling:
		if window < 1 {
			window = DefaultWindow
		}
		return RollingCorrect(y, window)
	default:
		out := make([]float64, len(y))
		copy(out, y)
		return out
	}
}

// LinearCorrect subtracts y[0] + slope*i with slope = (y[n-1]-y[0])/(n-1).
// A single sample corrects to [0]; an empty input returns an empty slice.
func LinearCorrect(y []float64) []float64 {
	n := len(y)
	switch n {
	case 0:
		return []float64{}
	case 1:
		return []float64{0}
	}

	slope := (y[n-1] - y[0]) / float64(n-1)

	line := make([]float64, n)
	for i := range line {
		line[i] = y[0] + slope*float64(i)
	}

	out := make([]float64, n)
	vecmath.SubBlock(out, y, line)
	return out
}

// RollingCorrect subtracts, at every index i, the minimum of
// y[i-h .. i+h] with h = window/2, clamped to the slice bounds.
func RollingCorrect(y []float64, window int) []float64 {
	n := len(y)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	half := max(window/2, 0)

	mins := make([]float64, n)
	for i := range mins {
		lo := max(i-half, 0)
		hi := min(i+half, n-1)
		mins[i], _ = vecmath.Min(y[lo : hi+1])
	}

	vecmath.SubBlock(out, y, mins)
	return out
}
