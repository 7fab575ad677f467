// Package layout positions peak labels and boundary markers for a renderer.
//
// Detected peaks and user annotations are first converted to the common
// [Annotation] form. [Layout] sorts them by retention time, chains those
// closer than the overlap threshold into groups and assigns each label a
// pixel offset: a single centered slot for isolated peaks, and slots from a
// fixed six-entry table for grouped ones, lowest peak first so leader lines
// do not cross. Groups larger than the table reuse slots cyclically.
//
// Grouping compares each annotation with the last member added to the
// current group, not the first one, so a slowly drifting run of peaks can
// form a single group wider than the threshold.
//
// [Markers] emits start and end boundary points at a fixed height below the
// corrected baseline, one shape per edge.
package layout
