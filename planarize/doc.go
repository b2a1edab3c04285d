// Package planarize implements the planarization stage of SPEC_FULL.md §5
// (spec.md §4.4): project the current edge set to line segments (flattening
// cubics and chaining polylines), intersect every pair of segments with a
// grid-accelerated broad phase, snap the resulting subsegment endpoints to
// a quantization grid, and emit a half-edge graph for package facewalk.
//
// Every public type and function here is a pure, single-call computation
// scoped to one Planarize invocation: nothing is cached or retained across
// calls, per spec.md §5's "vertex/segment/half-edge buffers... scoped to a
// single get_regions call" resource discipline.
package planarize
