// Package testutil holds signal generators and tolerance assertions shared by
// the package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNearlyEqual fails t if |got-want| exceeds eps.
func RequireNearlyEqual(t *testing.T, what string, got, want, eps float64) {
	t.Helper()
	if d := math.Abs(got - want); d > eps || math.IsNaN(d) {
		t.Fatalf("%s = %v, want %v ± %v", what, got, want, eps)
	}
}

// RequireSliceNearlyEqual compares element-wise with absolute tolerance eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps || math.IsNaN(d) {
			t.Fatalf("[%d] = %v, want %v ± %v", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t on the first NaN or infinity in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("[%d] = %v, want a finite value", i, v)
		}
	}
}

// RequireAscending fails t unless x is non-decreasing, which every
// retention-time axis and x-ordered result must be.
func RequireAscending(t *testing.T, what string, x []float64) {
	t.Helper()
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			t.Fatalf("%s not ascending at %d: %v < %v", what, i, x[i], x[i-1])
		}
	}
}

// MaxAbsDiff returns max |a[i]-b[i]|, or an error for unequal lengths.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: length %d vs %d", len(a), len(b))
	}
	var worst float64
	for i := range a {
		worst = math.Max(worst, math.Abs(a[i]-b[i]))
	}
	return worst, nil
}
