package window

import (
	"math"

	"github.com/cwbudde/algo-chrom/internal/vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeTriangle
	TypeHann
	TypeGauss
)

// Metadata describes a window type.
type Metadata struct {
	Name string
	// ZeroEdges is set when the symmetric form is zero at both ends.
	ZeroEdges bool
}

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular"},
	TypeTriangle:    {Name: "Triangle", ZeroEdges: true},
	TypeHann:        {Name: "Hann", ZeroEdges: true},
	TypeGauss:       {Name: "Gauss"},
}

// DefaultGaussAlpha puts the Gauss window edges near 1.3% of the center.
const DefaultGaussAlpha = 2.5

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	interior bool
}

func defaultConfig() config {
	return config{alpha: DefaultGaussAlpha}
}

// WithAlpha sets the Gauss width parameter. Non-positive values are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.alpha = v
		}
	}
}

// WithInterior samples the shape at length interior points, dropping the
// two end points of the symmetric form. Windows with zero edges then keep
// every tap non-zero.
func WithInterior() Option {
	return func(c *config) {
		c.interior = true
	}
}

// Generate returns window coefficients of the given length, or nil for a
// non-positive length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.interior), cfg)
	}
	return out
}

// Normalized returns coefficients scaled to unit sum.
func Normalized(t Type, length int, opts ...Option) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	w := Generate(t, length, opts...)
	sum := vecmath.Sum(w)
	if sum == 0 {
		return nil, ErrZeroSum
	}
	vecmath.ScaleBlock(w, w, 1/sum)
	return w, nil
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	return metadataByType[t]
}

func evalWindow(t Type, x float64, cfg config) float64 {
	x = math.Max(0, math.Min(1, x))

	switch t {
	case TypeTriangle:
		return 1 - math.Abs(2*x-1)
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeGauss:
		v := (2*x - 1) * cfg.alpha
		return math.Exp(-math.Ln2 * v * v)
	default:
		return 1
	}
}

func samplePosition(n, size int, interior bool) float64 {
	if interior {
		return float64(n+1) / float64(size+1)
	}
	if size <= 1 {
		return 0.5
	}
	return float64(n) / float64(size-1)
}
