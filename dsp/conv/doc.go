// Package conv provides linear convolution and cross-correlation of sampled
// traces.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain sum, best for short kernels
//   - FFT convolution: zero-padded spectral multiplication via algo-fft,
//     best for long kernels
//
// [Convolve] selects between them by kernel length. [ConvolveMode] trims the
// full result to the length of the first input, which is what smoothing
// filters need.
//
// # Correlation
//
// Cross-correlation measures how similar two traces are as a function of
// displacement; the chromatogram aligner uses it to estimate a retention-time
// offset:
//
//	corr, err := conv.CorrelateFFT(reference, target)
//	idx, _ := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(idx, len(target))
package conv
