package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ConvolveFFT computes the full linear convolution of a and b by zero-padded
// FFT multiplication.
func ConvolveFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outLen := len(a) + len(b) - 1

	spec, plan, err := multiplySpectra(a, b, outLen, false)
	if err != nil {
		return nil, err
	}

	timeDomain := make([]complex128, len(spec))
	if err := plan.Inverse(timeDomain, spec); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, outLen)
	for i := range result {
		result[i] = real(timeDomain[i])
	}
	return result, nil
}

// multiplySpectra returns FFT(a)·FFT(b), or FFT(a)·conj(FFT(b)) when
// conjugate is set, at the power-of-two size covering minLen.
func multiplySpectra(a, b []float64, minLen int, conjugate bool) ([]complex128, *algofft.Plan[complex128], error) {
	fftSize := nextPowerOf2(minLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		bv := bFreq[i]
		if conjugate {
			bv = complex(real(bv), -imag(bv))
		}
		aFreq[i] *= bv
	}

	return aFreq, plan, nil
}
