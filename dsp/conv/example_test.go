package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-chrom/dsp/conv"
)

func ExampleConvolveMode() {
	smoothed, _ := conv.ConvolveMode([]float64{0, 0, 3, 0, 0}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, conv.ModeSame)
	fmt.Printf("%.1f\n", smoothed)

	// Output:
	// [0.0 1.0 1.0 1.0 0.0]
}
