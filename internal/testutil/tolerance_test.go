package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 2.95})
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if math.Abs(d-0.1) > 1e-12 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for unequal lengths")
	}
}

func TestRequireHelpersAcceptMatchingInput(t *testing.T) {
	RequireNearlyEqual(t, "value", 1.0, 1.0+1e-12, 1e-9)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2}, 0)
	RequireFinite(t, []float64{0, -1, 1e300})
	RequireAscending(t, "x", []float64{0, 0, 0.5, 2})
	RequireAscending(t, "x", Linspace(0, 1, 11))
}
