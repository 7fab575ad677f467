// Package vecmath provides the block kernels used by the chromatogram and
// convolution code.
//
// Every operation dispatches through the registry: the best variant for the
// detected CPU is looked up once and cached. Slices passed to the block
// operations must have equal length; dst may alias an input.
package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-chrom/internal/vecmath/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	// Pure Go fallback, always registered.
	_ "github.com/cwbudde/algo-chrom/internal/vecmath/generic"
)

var (
	impl     *registry.OpEntry
	implOnce sync.Once
)

func kernels() *registry.OpEntry {
	implOnce.Do(func() {
		impl = registry.Global.Lookup(cpu.DetectFeatures())
		if impl == nil {
			panic("vecmath: no kernel registered (missing generic fallback?)")
		}
	})
	return impl
}

// Implementation returns the name of the selected kernel variant.
func Implementation() string {
	return kernels().Name
}

// Variants returns the names of all registered kernel variants.
func Variants() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Max returns the maximum of x and its first index, or (0, -1) for empty x.
func Max(x []float64) (float64, int) {
	return kernels().Max(x)
}

// Min returns the minimum of x and its first index, or (0, -1) for empty x.
func Min(x []float64) (float64, int) {
	return kernels().Min(x)
}

// SubBlock computes dst[i] = a[i] - b[i].
func SubBlock(dst, a, b []float64) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic("vecmath: SubBlock length mismatch")
	}
	kernels().SubBlock(dst, a, b)
}

// ScaleBlock computes dst[i] = src[i] * scalar.
func ScaleBlock(dst, src []float64, scalar float64) {
	if len(src) != len(dst) {
		panic("vecmath: ScaleBlock length mismatch")
	}
	kernels().ScaleBlock(dst, src, scalar)
}

// AddBlockInPlace computes dst[i] += src[i].
func AddBlockInPlace(dst, src []float64) {
	if len(src) != len(dst) {
		panic("vecmath: AddBlockInPlace length mismatch")
	}
	kernels().AddBlockInPlace(dst, src)
}

// Sum returns the sum of all elements of x.
func Sum(x []float64) float64 {
	return kernels().Sum(x)
}
