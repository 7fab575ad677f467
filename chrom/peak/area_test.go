package peak

import (
	"testing"

	"github.com/cwbudde/algo-chrom/internal/testutil"
)

func TestAreaNonUniformSpacing(t *testing.T) {
	x := []float64{0, 1, 3}
	y := []float64{0, 2, 0}
	testutil.RequireNearlyEqual(t, "area", Area(x, y, 0, 2), 3, 1e-12)
}

func TestAreaLocalBaseline(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{10, 14, 12}
	// baseline 10: trapezoids (0+4)/2 + (4+2)/2
	testutil.RequireNearlyEqual(t, "area", Area(x, y, 0, 2), 5, 1e-12)
}

func TestAreaUnsortedX(t *testing.T) {
	x := []float64{2, 1, 0}
	y := []float64{0, 2, 0}
	testutil.RequireNearlyEqual(t, "area", Area(x, y, 0, 2), -2, 1e-12)
}

func TestAreaDegenerateRanges(t *testing.T) {
	x, y := literalSeries()
	if got := Area(x, y, 4, 4); got != 0 {
		t.Fatalf("single sample area = %v, want 0", got)
	}
	if got := Area(x[:1], y[:1], 0, 0); got != 0 {
		t.Fatalf("one-sample series area = %v, want 0", got)
	}
	testutil.RequireNearlyEqual(t, "swapped", Area(x, y, 6, 0), Area(x, y, 0, 6), 0)
	testutil.RequireNearlyEqual(t, "clamped", Area(x, y, -5, 99), Area(x, y, 0, 10), 0)
}

func TestAreaNonNegativeForUnimodalSegments(t *testing.T) {
	x := testutil.Linspace(0, 4, 81)
	shapes := [][]float64{
		testutil.Chromatogram(x, 0, testutil.GaussianPeak{Center: 2, Height: 5, Sigma: 0.4}),
		testutil.Chromatogram(x, 3, testutil.GaussianPeak{Center: 1.2, Height: 9, Sigma: 0.7}),
		testutil.Ramp(0, 0.1, 81),
	}
	for i, y := range shapes {
		if a := Area(x, y, 0, len(y)-1); a < 0 {
			t.Errorf("shape %d: area %v < 0", i, a)
		}
	}
}

func TestWidthAtHalfMax(t *testing.T) {
	x, y := literalSeries()
	testutil.RequireNearlyEqual(t, "fwhm", WidthAtHalfMax(x, y, 3, 0, 6), 2, 0)

	// A flat range never drops below half maximum: the boundaries are used.
	flat := []float64{5, 5, 5}
	testutil.RequireNearlyEqual(t, "fwhm", WidthAtHalfMax([]float64{0, 1, 2}, flat, 1, 0, 2), 2, 0)

	if got := WidthAtHalfMax(nil, nil, 0, 0, 0); got != 0 {
		t.Fatalf("empty width = %v, want 0", got)
	}
}
