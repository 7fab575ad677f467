// Package generic holds the pure Go vecmath kernels.
//
// They are the fallback variant registered with the lowest priority and are
// always selected when ForceGeneric is set.
package generic

import (
	"github.com/cwbudde/algo-chrom/internal/vecmath/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Max:             Max,
		Min:             Min,
		SubBlock:        SubBlock,
		ScaleBlock:      ScaleBlock,
		AddBlockInPlace: AddBlockInPlace,
		Sum:             Sum,
	})
}

// Max returns the largest element of x and the index of its first occurrence.
func Max(x []float64) (float64, int) {
	if len(x) == 0 {
		return 0, -1
	}

	best, pos := x[0], 0
	for i := 1; i < len(x); i++ {
		if x[i] > best {
			best, pos = x[i], i
		}
	}
	return best, pos
}

// Min returns the smallest element of x and the index of its first occurrence.
func Min(x []float64) (float64, int) {
	if len(x) == 0 {
		return 0, -1
	}

	best, pos := x[0], 0
	for i := 1; i < len(x); i++ {
		if x[i] < best {
			best, pos = x[i], i
		}
	}
	return best, pos
}

// SubBlock computes dst[i] = a[i] - b[i].
func SubBlock(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ScaleBlock computes dst[i] = src[i] * scalar.
func ScaleBlock(dst, src []float64, scalar float64) {
	for i := range dst {
		dst[i] = src[i] * scalar
	}
}

// AddBlockInPlace computes dst[i] += src[i].
func AddBlockInPlace(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// Sum returns the sum of x, unrolled by four.
func Sum(x []float64) float64 {
	var s0, s1, s2, s3 float64

	i := 0
	for ; i+3 < len(x); i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < len(x); i++ {
		s0 += x[i]
	}
	return (s0 + s1) + (s2 + s3)
}
