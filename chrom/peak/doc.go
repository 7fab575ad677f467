// Package peak detects chromatographic peaks and resolves user-supplied peak
// boundaries.
//
// [Detect] finds strict local maxima above a height threshold, rejects those
// whose local prominence is too small, walks each peak's boundaries outward
// while the signal keeps falling, integrates the area above the local
// baseline and measures the width at half maximum. Survivors are thinned by
// [FilterByDistance] and returned in ascending retention-time order.
//
// Prominence is a bounded local-window approximation: the candidate height
// minus the higher of the minima found within 3*MinDistance samples on each
// side. It is not topographic prominence and can over- or under-count peaks
// on noisy shoulders; downstream layout depends on this exact policy.
//
// [Resolve] converts a user annotation's physical boundary positions into
// sample indices with [NearestIndex] and integrates its area the same way,
// so both provenances share one boundary shape.
//
// Nothing in this package returns an error or panics on numeric input.
package peak
