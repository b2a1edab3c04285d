// File: fill.go
// Role: region fill/color persistence map, the only region state that
// survives across edits (spec.md §3, §4.5). Geometry recomputation lives in
// package region; this file only owns the key -> {filled, color} map and
// its mutation operations.
package store

import "github.com/katalvlaran/vecnet/internal/xmath"

// Color is an RGBA color with 8-bit components.
type Color struct {
	R, G, B, A uint8
}

// RegionFill is the persisted state for one region key.
type RegionFill struct {
	Filled   bool
	Color    Color
	HasColor bool
}

// SetFlattenTolerance clamps tol to [MinFlattenTolerance, MaxFlattenTolerance]
// and installs it. Returns false if tol is non-finite.
func (s *Store) SetFlattenTolerance(tol float64) bool {
	if !xmath.Finite(tol) {
		return false
	}
	s.flattenTolerance = xmath.Clamp(tol, xmath.MinFlattenTolerance, xmath.MaxFlattenTolerance)
	s.bumpVer()

	return true
}

// ToggleRegion flips the filled flag for region key. Returns false if key
// is not present in the current fill map (the caller should call
// region.Compute first to populate it for newly-discovered regions).
func (s *Store) ToggleRegion(key uint64) bool {
	f, ok := s.fills[key]
	if !ok {
		return false
	}
	f.Filled = !f.Filled
	s.fills[key] = f
	s.bumpFillVer()

	return true
}

// SetRegionFill sets the filled flag for region key explicitly.
func (s *Store) SetRegionFill(key uint64, filled bool) bool {
	f, ok := s.fills[key]
	if !ok {
		return false
	}
	f.Filled = filled
	s.fills[key] = f
	s.bumpFillVer()

	return true
}

// SetRegionColor sets the RGBA color for region key.
func (s *Store) SetRegionColor(key uint64, c Color) bool {
	f, ok := s.fills[key]
	if !ok {
		return false
	}
	f.Color = c
	f.HasColor = true
	s.fills[key] = f
	s.bumpFillVer()

	return true
}

// RegionFillState returns the persisted state for key, or the zero value
// and false if key is unknown.
func (s *Store) RegionFillState(key uint64) (RegionFill, bool) {
	f, ok := s.fills[key]

	return f, ok
}

// FillKeys returns every region key currently tracked in the fill map.
func (s *Store) FillKeys() []uint64 {
	out := make([]uint64, 0, len(s.fills))
	for k := range s.fills {
		out = append(out, k)
	}

	return out
}

// EnsureRegionKeys inserts a default (filled=false, no color) entry for
// every key in keys that is not already present, and removes every
// currently-tracked key not present in keys (after any remap the caller
// performed). This is the synchronization point called by package region
// after each recomputation, per spec.md §4.5's fill/color persistence
// rules: keys present in both old and new keep their state; keys new in
// current default to unfilled; keys absent from current are dropped
// (after remap) by the caller.
func (s *Store) EnsureRegionKeys(keys []uint64) {
	want := make(map[uint64]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
		if _, ok := s.fills[k]; !ok {
			s.fills[k] = RegionFill{}
		}
	}
	for k := range s.fills {
		if _, ok := want[k]; !ok {
			delete(s.fills, k)
		}
	}
}

// SeedFill installs f for key unconditionally, creating the entry if absent.
// Used by package persist when loading a saved document, where fill state
// for a region key may arrive before any region.Compute() call has
// rediscovered that key geometrically.
func (s *Store) SeedFill(key uint64, f RegionFill) {
	s.fills[key] = f
}

// RemapRegionKey transfers old's persisted fill/color state to new, used by
// package region's nearest-centroid remap on topology change. No-op if old
// has no tracked state.
func (s *Store) RemapRegionKey(old, new uint64) {
	if f, ok := s.fills[old]; ok {
		s.fills[new] = f
		delete(s.fills, old)
	}
}
