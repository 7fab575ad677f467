package peak

import (
	"math"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-chrom/internal/testutil"
)

func literalSeries() (x, y []float64) {
	x = testutil.Linspace(0, 10, 11)
	y = []float64{0, 5, 10, 100, 10, 5, 0, 5, 50, 5, 0}
	return x, y
}

func TestDetectLiteralTwoPeaks(t *testing.T) {
	x, y := literalSeries()
	peaks := Detect(x, y)

	want := []Peak{
		{Index: 3, X: 3, Y: 100, Area: 130, StartIndex: 0, EndIndex: 6, WidthAtHalfMax: 2},
		{Index: 8, X: 8, Y: 50, Area: 60, StartIndex: 6, EndIndex: 10, WidthAtHalfMax: 2},
	}
	if len(peaks) != len(want) {
		t.Fatalf("got %d peaks, want %d: %+v", len(peaks), len(want), peaks)
	}
	for i := range want {
		got := peaks[i]
		if got.Index != want[i].Index || got.StartIndex != want[i].StartIndex || got.EndIndex != want[i].EndIndex {
			t.Errorf("peak %d indices = %+v, want %+v", i, got, want[i])
		}
		testutil.RequireNearlyEqual(t, "x", got.X, want[i].X, 1e-12)
		testutil.RequireNearlyEqual(t, "y", got.Y, want[i].Y, 0)
		testutil.RequireNearlyEqual(t, "area", got.Area, want[i].Area, 1e-9)
		testutil.RequireNearlyEqual(t, "fwhm", got.WidthAtHalfMax, want[i].WidthAtHalfMax, 1e-12)
	}
}

func TestDetectHugeMinDistanceKeepsTallest(t *testing.T) {
	x, y := literalSeries()

	for _, d := range []int{1000, math.MaxInt / 2, math.MaxInt} {
		peaks := Detect(x, y, WithMinDistance(d))
		if len(peaks) != 1 {
			t.Fatalf("MinDistance %d: got %d peaks, want 1: %+v", d, len(peaks), peaks)
		}
		if peaks[0].Index != 3 || peaks[0].Y != 100 {
			t.Errorf("MinDistance %d: kept %+v, want the apex at index 3", d, peaks[0])
		}
	}
}

func TestDetectTooShort(t *testing.T) {
	if got := Detect([]float64{0, 1}, []float64{0, 5}); got != nil {
		t.Fatalf("expected no peaks, got %+v", got)
	}
	if got := Detect(nil, nil); got != nil {
		t.Fatalf("expected no peaks, got %+v", got)
	}
}

func TestDetectIgnoresPlateausAndFlatSignals(t *testing.T) {
	x := testutil.Linspace(0, 5, 6)
	for _, y := range [][]float64{
		{0, 0, 0, 0, 0, 0},
		{0, 5, 5, 0, 0, 0},
	} {
		if got := Detect(x, y); len(got) != 0 {
			t.Errorf("y=%v: expected no peaks, got %+v", y, got)
		}
	}
}

func TestDetectHeightThreshold(t *testing.T) {
	x := testutil.Linspace(0, 20, 21)
	y := make([]float64, 21)
	y[5] = 100
	y[15] = 4 // below 5% of the maximum

	peaks := Detect(x, y)
	if len(peaks) != 1 || peaks[0].Index != 5 {
		t.Fatalf("expected only the tall peak, got %+v", peaks)
	}

	absolute := Detect(x, y, WithRelativeThreshold(false), WithMinHeight(1), WithProminence(1))
	if len(absolute) != 2 {
		t.Fatalf("absolute thresholds: got %d peaks, want 2", len(absolute))
	}
}

func TestDetectLocalProminenceRejectsShoulder(t *testing.T) {
	x := testutil.Linspace(0, 9, 10)
	y := []float64{0, 1, 5, 4.5, 6, 7, 6, 5, 1, 0}

	peaks := Detect(x, y,
		WithRelativeThreshold(false),
		WithMinHeight(1),
		WithProminence(2),
		WithMinDistance(1),
	)
	if len(peaks) != 1 || peaks[0].Index != 5 {
		t.Fatalf("expected the shoulder at 2 to be rejected, got %+v", peaks)
	}
}

func TestDetectKeepsTallerOfClosePeaks(t *testing.T) {
	x := testutil.Linspace(0, 14, 15)
	tests := []struct {
		name string
		y    []float64
		want int
	}{
		{"taller second", []float64{0, 1, 2, 3, 40, 3, 2, 60, 2, 1, 0, 0, 0, 0, 0}, 7},
		{"taller first", []float64{0, 1, 2, 3, 60, 3, 2, 40, 2, 1, 0, 0, 0, 0, 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peaks := Detect(x, tt.y)
			if len(peaks) != 1 || peaks[0].Index != tt.want {
				t.Fatalf("got %+v, want single peak at %d", peaks, tt.want)
			}
		})
	}
}

func TestDetectBoundaryInvariant(t *testing.T) {
	x := testutil.Linspace(0, 30, 601)
	y := testutil.Add(
		testutil.Chromatogram(x, 0,
			testutil.GaussianPeak{Center: 5, Height: 80, Sigma: 0.3},
			testutil.GaussianPeak{Center: 5.9, Height: 40, Sigma: 0.25},
			testutil.GaussianPeak{Center: 14, Height: 120, Sigma: 0.5},
			testutil.GaussianPeak{Center: 22, Height: 15, Sigma: 0.4},
		),
		testutil.DeterministicNoise(7, 1.5, len(x)),
	)

	peaks := Detect(x, y)
	if len(peaks) == 0 {
		t.Fatal("expected peaks in synthetic chromatogram")
	}

	xs := make([]float64, len(peaks))
	for i, p := range peaks {
		xs[i] = p.X
	}
	testutil.RequireAscending(t, "peak x", xs)

	for i, p := range peaks {
		if !(p.StartIndex <= p.Index && p.Index <= p.EndIndex) {
			t.Errorf("peak %d: start %d, index %d, end %d out of order", i, p.StartIndex, p.Index, p.EndIndex)
		}
		if p.StartIndex < 0 || p.EndIndex > len(y)-1 {
			t.Errorf("peak %d: bounds [%d, %d] outside series", i, p.StartIndex, p.EndIndex)
		}
		if p.WidthAtHalfMax < 0 {
			t.Errorf("peak %d: negative width %v", i, p.WidthAtHalfMax)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	x := testutil.Linspace(0, 10, 201)
	y := testutil.Add(
		testutil.Chromatogram(x, 2, testutil.GaussianPeak{Center: 3, Height: 10, Sigma: 0.2}, testutil.GaussianPeak{Center: 7, Height: 6, Sigma: 0.3}),
		testutil.DeterministicNoise(3, 0.2, len(x)),
	)

	a := Detect(x, y)
	b := Detect(x, y)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("non-deterministic output:\n%+v\n%+v", a, b)
	}
}

func TestDetectMismatchedLengths(t *testing.T) {
	x, y := literalSeries()
	peaks := Detect(x[:9], y)
	for _, p := range peaks {
		if p.EndIndex > 8 {
			t.Fatalf("peak %+v exceeds truncated series", p)
		}
	}
}

func TestFilterByDistance(t *testing.T) {
	candidates := []Peak{
		{Index: 10, X: 1.0, Y: 20},
		{Index: 12, X: 1.2, Y: 30},
		{Index: 14, X: 1.4, Y: 25},
		{Index: 30, X: 3.0, Y: 5},
	}

	got := FilterByDistance(candidates, 5)
	if len(got) != 2 {
		t.Fatalf("got %+v, want 2 peaks", got)
	}
	if got[0].Index != 12 || got[1].Index != 30 {
		t.Fatalf("got indices %d, %d; want 12, 30", got[0].Index, got[1].Index)
	}

	if FilterByDistance(nil, 5) != nil {
		t.Fatal("expected nil for no candidates")
	}
}

func TestFilterByDistanceBoundary(t *testing.T) {
	// Exactly minDistance apart is not a conflict.
	got := FilterByDistance([]Peak{{Index: 3, X: 3, Y: 100}, {Index: 8, X: 8, Y: 50}}, 5)
	if len(got) != 2 {
		t.Fatalf("got %+v, want both peaks", got)
	}
}

func TestOptions(t *testing.T) {
	cfg := ApplyOptions(
		WithMinDistance(0),
		WithMinHeight(-1),
		WithProminence(0.1),
		nil,
	)
	def := DefaultOptions()
	if cfg.MinDistance != def.MinDistance || cfg.MinHeight != def.MinHeight {
		t.Fatalf("invalid values must be ignored: %+v", cfg)
	}
	if cfg.Prominence != 0.1 {
		t.Fatalf("Prominence = %v, want 0.1", cfg.Prominence)
	}

	replaced := ApplyOptions(WithOptions(Options{MinHeight: 2, MinDistance: 9, Prominence: 1}))
	if replaced != (Options{MinHeight: 2, MinDistance: 9, Prominence: 1, RelativeThreshold: false}) {
		t.Fatalf("WithOptions = %+v", replaced)
	}
}
