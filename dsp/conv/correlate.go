package conv

import "fmt"

// CorrelateFFT computes the full cross-correlation of a and b in the
// frequency domain as IFFT(FFT(a)·conj(FFT(b))). The result has length
// len(a) + len(b) - 1 and index k corresponds to lag k - (len(b) - 1).
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)

	spec, plan, err := multiplySpectra(a, b, n+m-1, true)
	if err != nil {
		return nil, err
	}

	circular := make([]complex128, len(spec))
	if err := plan.Inverse(circular, spec); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Non-negative lags sit at the start of the circular result, negative
	// lags wrap around to the end.
	fftSize := len(circular)
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(circular[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(circular[fftSize-m+1+i])
	}

	return result, nil
}

// FindPeak returns the index and value of the maximum of corr.
// The first maximum wins on ties; (-1, 0) for empty input.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]
	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation index to a lag for a second input of
// length lenB.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}
