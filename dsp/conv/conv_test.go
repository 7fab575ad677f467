package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-chrom/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "vectorized kernel",
			a:        []float64{1, 0, 2},
			b:        []float64{1, 1, 1, 1, 1},
			expected: []float64{1, 1, 3, 3, 3, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-10)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	longKernel := make([]float64, 100)
	for i := range longKernel {
		longKernel[i] = math.Exp(-float64(i) / 20)
	}

	viaFFT, err := Convolve(signal, longKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}

	direct, _ := Direct(signal, longKernel)

	maxDiff, err := testutil.MaxAbsDiff(viaFFT, direct)
	if err != nil {
		t.Fatal(err)
	}
	if maxDiff > 1e-8 {
		t.Errorf("long kernel max difference %v exceeds tolerance", maxDiff)
	}
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	full, _ := ConvolveMode(a, b, ModeFull)
	if len(full) != len(a)+len(b)-1 {
		t.Errorf("full mode length: got %d, expected %d", len(full), len(a)+len(b)-1)
	}

	same, _ := ConvolveMode(a, b, ModeSame)
	testutil.RequireSliceNearlyEqual(t, same, []float64{4, 10, 16, 22, 22}, 1e-10)

	valid, _ := ConvolveMode(a, b, ModeValid)
	if len(valid) != len(a)-len(b)+1 {
		t.Errorf("valid mode length: got %d, expected %d", len(valid), len(a)-len(b)+1)
	}
}

func TestCorrelateFFTMatchesDirect(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	result, err := CorrelateFFT(a, b)
	if err != nil {
		t.Fatalf("CorrelateFFT failed: %v", err)
	}

	// Correlation is convolution with the reversed second input.
	direct, _ := Direct(a, []float64{3, 2, 1})
	testutil.RequireSliceNearlyEqual(t, result, direct, 1e-8)
}

func TestCorrelateFindsDelay(t *testing.T) {
	x := testutil.Linspace(0, 99, 100)
	ref := testutil.Chromatogram(x, 0, testutil.GaussianPeak{Center: 40, Height: 1, Sigma: 3})
	delayed := testutil.Chromatogram(x, 0, testutil.GaussianPeak{Center: 47, Height: 1, Sigma: 3})

	corr, err := CorrelateFFT(delayed, ref)
	if err != nil {
		t.Fatal(err)
	}

	idx, _ := FindPeak(corr)
	if lag := LagFromIndex(idx, len(ref)); lag != 7 {
		t.Fatalf("lag = %d, want 7", lag)
	}
}

func TestCorrelateErrors(t *testing.T) {
	if _, err := CorrelateFFT([]float64{}, []float64{1, 2}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := CorrelateFFT([]float64{1}, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestFindPeakEmpty(t *testing.T) {
	idx, val := FindPeak(nil)
	if idx != -1 || val != 0 {
		t.Fatalf("FindPeak(nil) = (%d, %v), want (-1, 0)", idx, val)
	}
}

func TestLagFromIndex(t *testing.T) {
	tests := []struct{ index, lenB, want int }{
		{0, 4, -3},
		{3, 4, 0},
		{8, 4, 5},
	}
	for _, tt := range tests {
		if got := LagFromIndex(tt.index, tt.lenB); got != tt.want {
			t.Errorf("LagFromIndex(%d, %d) = %d, want %d", tt.index, tt.lenB, got, tt.want)
		}
	}
}
