// Package interp provides the interpolation primitives used to bring traces
// onto a common sampling grid.
//
//   - [Linear2]:         2-point linear interpolation
//   - [Uniform]:         resample a non-uniform trace onto an even grid
//   - [ParabolicOffset]: sub-sample position of a sampled maximum
package interp
