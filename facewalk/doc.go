// Package facewalk implements the face-walk engine of SPEC_FULL.md §5
// (spec.md §4.5): given a planarize.Graph half-edge structure, walk every
// face by the left-hand CCW rule, discard the exterior face, and compute a
// topology-stable 64-bit region key per face from its originating edge-id
// cycle.
package facewalk
