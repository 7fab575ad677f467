// Package window generates the tapered kernels used to smooth traces.
//
// Generate evaluates a window shape at evenly spaced positions in [0, 1].
// Normalized scales the result to unit sum so that convolving with it
// preserves the area under a trace.
package window
