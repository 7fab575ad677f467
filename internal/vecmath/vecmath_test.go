package vecmath

import (
	"math"
	"slices"
	"testing"
)

func TestImplementationIsRegistered(t *testing.T) {
	if name := Implementation(); name == "" {
		t.Fatal("no kernel variant selected")
	}
}

func TestVariants(t *testing.T) {
	names := Variants()
	if !slices.Contains(names, "generic") {
		t.Fatalf("Variants() = %v, want generic among them", names)
	}
	if !slices.Contains(names, Implementation()) {
		t.Fatalf("selected %q not in %v", Implementation(), names)
	}
}

func TestMaxMin(t *testing.T) {
	tests := []struct {
		name       string
		x          []float64
		wantMax    float64
		wantMaxPos int
		wantMin    float64
		wantMinPos int
	}{
		{"empty", nil, 0, -1, 0, -1},
		{"single", []float64{3}, 3, 0, 3, 0},
		{"first occurrence", []float64{1, 5, 5, -2, -2}, 5, 1, -2, 3},
		{"negative", []float64{-3, -1, -7}, -1, 1, -7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMax, gotMaxPos := Max(tt.x)
			if gotMax != tt.wantMax || gotMaxPos != tt.wantMaxPos {
				t.Errorf("Max = (%v, %d), want (%v, %d)", gotMax, gotMaxPos, tt.wantMax, tt.wantMaxPos)
			}
			gotMin, gotMinPos := Min(tt.x)
			if gotMin != tt.wantMin || gotMinPos != tt.wantMinPos {
				t.Errorf("Min = (%v, %d), want (%v, %d)", gotMin, gotMinPos, tt.wantMin, tt.wantMinPos)
			}
		})
	}
}

func TestSubBlockAliasing(t *testing.T) {
	a := []float64{5, 6, 7}
	b := []float64{1, 2, 3}
	SubBlock(a, a, b)

	want := []float64{4, 4, 4}
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestScaleAndAccumulate(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5}
	dst := make([]float64, len(src))
	ScaleBlock(dst, src, 0.5)
	AddBlockInPlace(dst, src)

	for i, v := range dst {
		if want := src[i] * 1.5; v != want {
			t.Fatalf("dst[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestSum(t *testing.T) {
	x := make([]float64, 1001)
	for i := range x {
		x[i] = float64(i)
	}
	if got := Sum(x); math.Abs(got-500500) > 1e-9 {
		t.Fatalf("Sum = %v, want 500500", got)
	}
	if got := Sum(nil); got != 0 {
		t.Fatalf("Sum(nil) = %v, want 0", got)
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	SubBlock(make([]float64, 2), []float64{1, 2}, []float64{1})
}
