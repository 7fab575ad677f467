// Package pipeline runs the full annotation chain over a set of traces.
//
// For every series: sanitize, optionally smooth, correct the baseline,
// optionally align to a reference trace, then detect peaks. Detected peaks
// and user annotations are merged, laid out and given boundary markers.
//
// Run is synchronous and deterministic. It never fails; problems that the
// caller may want to know about, such as a trace that could not be
// aligned, are reported in Result.Warnings.
package pipeline
