// File: regions.go
// Role: get_regions / toggle_region / set_region_fill / set_region_color
// / set_flatten_tolerance, both API surfaces.
package vnet

import (
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/region"
	"github.com/katalvlaran/vecnet/store"
)

// GetRegions recomputes (if stale) and returns every bounded region of
// the current edge set. Always succeeds, per spec.md §4.1.
func (s *Store) GetRegions() []region.Region {
	return s.regions()
}

// GetRegionsRes is GetRegions's strict counterpart; always ok.
func (s *Store) GetRegionsRes() Res[[]region.Region] {
	return ok(s.regions())
}

// ToggleRegion flips the filled flag for region key. Returns false if
// key is not among the regions from the latest GetRegions computation.
func (s *Store) ToggleRegion(key uint64) bool {
	return s.store.ToggleRegion(key)
}

// ToggleRegionRes is ToggleRegion's strict counterpart.
func (s *Store) ToggleRegionRes(key uint64) Res[bool] {
	if !s.store.ToggleRegion(key) {
		return fail[bool](errInvalidID("region", key))
	}

	return ok(true)
}

// SetRegionFill sets the filled flag for region key explicitly.
func (s *Store) SetRegionFill(key uint64, filled bool) bool {
	return s.store.SetRegionFill(key, filled)
}

// SetRegionFillRes is SetRegionFill's strict counterpart.
func (s *Store) SetRegionFillRes(key uint64, filled bool) Res[bool] {
	if !s.store.SetRegionFill(key, filled) {
		return fail[bool](errInvalidID("region", key))
	}

	return ok(true)
}

// Color is the public RGBA color type (8-bit components, per spec.md §6).
type Color = store.Color

// SetRegionColor sets the RGBA color of region key.
func (s *Store) SetRegionColor(key uint64, c Color) bool {
	return s.store.SetRegionColor(key, c)
}

// SetRegionColorRes is SetRegionColor's strict counterpart.
func (s *Store) SetRegionColorRes(key uint64, c Color) Res[bool] {
	if !s.store.SetRegionColor(key, c) {
		return fail[bool](errInvalidID("region", key))
	}

	return ok(true)
}

// SetFlattenTolerance sets the curve-flatness threshold (px), clamped to
// [0.01, 10.0]. Returns false if tol is non-finite.
func (s *Store) SetFlattenTolerance(tol float64) bool {
	return s.store.SetFlattenTolerance(tol)
}

// SetFlattenToleranceRes is SetFlattenTolerance's strict counterpart.
func (s *Store) SetFlattenToleranceRes(tol float64) Res[bool] {
	if !xmath.Finite(tol) {
		return fail[bool](errNonFinite("tol"))
	}
	if tol < xmath.MinFlattenTolerance || tol > xmath.MaxFlattenTolerance {
		return fail[bool](errOutOfRange("tol", xmath.MinFlattenTolerance, xmath.MaxFlattenTolerance, tol))
	}
	s.store.SetFlattenTolerance(tol)

	return ok(true)
}
