// Package region implements the derived Region state of SPEC_FULL.md §5
// (spec.md §3, §4.5): it runs planarize+facewalk to discover bounded faces,
// assigns each a stable key, and reconciles the result against the store's
// persisted fill/color map — including the best-effort nearest-centroid
// remap across a topology change.
package region
