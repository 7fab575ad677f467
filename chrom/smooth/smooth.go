// Package smooth applies optional noise smoothing to a trace before baseline
// correction.
//
// Kernels have odd width and unit sum. Output has the input's length; near
// the ends, where the kernel hangs over the data, each sample is divided by
// the kernel weight that actually overlapped so that the ends are not
// pulled toward zero.
package smooth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-chrom/dsp/conv"
	"github.com/cwbudde/algo-chrom/dsp/window"
)

const (
	// DefaultWidth is the kernel width used when none is given.
	DefaultWidth = 5
	// MaxWidth bounds the kernel width accepted by Width and Kernel.
	MaxWidth = 1<<16 - 1
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("smooth: unknown mode")

// Mode selects the smoothing kernel.
type Mode int

const (
	ModeNone Mode = iota
	ModeMovingAverage
	ModeTriangular
	ModeGaussian
	ModeHann
)

func (m Mode) String() string {
	switch m {
	case ModeMovingAverage:
		return "moving-average"
	case ModeTriangular:
		return "triangular"
	case ModeGaussian:
		return "gaussian"
	case ModeHann:
		return "hann"
	default:
		return "none"
	}
}

// ParseMode maps a case-insensitive name to a Mode. The empty string is
// ModeNone.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ModeNone, nil
	case "moving-average", "movingaverage", "moving_average", "mean":
		return ModeMovingAverage, nil
	case "triangular", "triangle":
		return ModeTriangular, nil
	case "gaussian", "gauss":
		return ModeGaussian, nil
	case "hann", "hanning":
		return ModeHann, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Width returns the effective kernel width: DefaultWidth for width < 1,
// otherwise min(width, MaxWidth) rounded up to the next odd number.
func Width(width int) int {
	if width < 1 {
		return DefaultWidth
	}
	width = min(width, MaxWidth)
	if width%2 == 0 {
		return width + 1
	}
	return width
}

// Kernel returns the unit-sum kernel for mode. ModeNone yields the identity
// kernel [1].
func Kernel(mode Mode, width int) ([]float64, error) {
	w := Width(width)

	switch mode {
	case ModeNone:
		return []float64{1}, nil
	case ModeMovingAverage:
		return window.Normalized(window.TypeRectangular, w)
	case ModeTriangular:
		return window.Normalized(window.TypeTriangle, w, window.WithInterior())
	case ModeGaussian:
		return window.Normalized(window.TypeGauss, w)
	case ModeHann:
		return window.Normalized(window.TypeHann, w, window.WithInterior())
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
}

// Apply returns y smoothed with the selected kernel. ModeNone, unknown
// modes and a width of one return a copy of y. The width is further limited
// to 2*len(y)-1, beyond which a wider kernel no longer changes which
// samples overlap.
func Apply(y []float64, mode Mode, width int) []float64 {
	out := append([]float64(nil), y...)
	if len(y) == 0 || mode == ModeNone {
		return out
	}

	k, err := Kernel(mode, min(Width(width), 2*len(y)-1))
	if err != nil || len(k) == 1 {
		return out
	}

	smoothed, err := conv.ConvolveMode(y, k, conv.ModeSame)
	if err != nil {
		return out
	}

	ones := make([]float64, len(y))
	for i := range ones {
		ones[i] = 1
	}
	weight, err := conv.ConvolveMode(ones, k, conv.ModeSame)
	if err != nil {
		return out
	}

	for i := range out {
		if weight[i] > 0 {
			out[i] = smoothed[i] / weight[i]
		}
	}
	return out
}
