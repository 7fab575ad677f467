// Package align estimates retention-time offsets between traces.
//
// [EstimateShift] resamples two traces onto a shared even grid and locates
// the cross-correlation maximum, refined to a fraction of a sample. A
// positive shift means the target elutes later than the reference.
//
// [FitWarp] goes one step further and fits a linear retention-time map
// t' = Scale*t + Offset through matched peak apexes by least squares.
package align
