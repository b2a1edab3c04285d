// File: handles.go
// Role: get_handles / set_handle_pos / set_handle_mode / bend_edge_to,
// both API surfaces.
package vnet

import (
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/store"
)

// Handles is the lenient get_handles payload: absolute positions of both
// control handles of a cubic edge.
type Handles struct {
	HAX, HAY, HBX, HBY float64
}

// GetHandles returns the absolute handle positions of cubic edge id.
// ok is false if id is absent or the edge is not cubic.
func (s *Store) GetHandles(id uint64) (Handles, bool) {
	hax, hay, hbx, hby, ok := s.store.GetHandles(id)

	return Handles{hax, hay, hbx, hby}, ok
}

// GetHandlesRes is GetHandles's strict counterpart.
func (s *Store) GetHandlesRes(id uint64) Res[Handles] {
	if !s.store.HasEdge(id) {
		return fail[Handles](errInvalidID("edge", id))
	}
	hax, hay, hbx, hby, got := s.store.GetHandles(id)
	if !got {
		return fail[Handles](errNotCubic(id))
	}

	return ok(Handles{hax, hay, hbx, hby})
}

// SetHandlePos sets handle `end` (0=A, 1=B) of cubic edge id to the
// absolute position (x, y), then re-enforces the edge's mode constraint.
func (s *Store) SetHandlePos(id uint64, end int, x, y float64) bool {
	return s.store.SetHandlePos(id, end, x, y)
}

// SetHandlePosRes is SetHandlePos's strict counterpart.
func (s *Store) SetHandlePosRes(id uint64, end int, x, y float64) Res[bool] {
	if !s.store.HasEdge(id) {
		return fail[bool](errInvalidID("edge", id))
	}
	if end != 0 && end != 1 {
		return fail[bool](errInvalidEnd())
	}
	if !xmath.FiniteAll(x, y) {
		return fail[bool](errNonFinite("x,y"))
	}
	if e, _ := s.store.Edge(id); e.Kind != store.KindCubic {
		return fail[bool](errNotCubic(id))
	}
	s.store.SetHandlePos(id, end, x, y)

	return ok(true)
}

// handleModeName/parseHandleMode translate between the public string
// encoding of HandleMode ("free"/"mirrored"/"aligned") and store's enum.
func parseHandleMode(name string) (store.HandleMode, bool) {
	switch name {
	case "free":
		return store.Free, true
	case "mirrored":
		return store.Mirrored, true
	case "aligned":
		return store.Aligned, true
	default:
		return 0, false
	}
}

// SetHandleMode sets the constraint mode ("free", "mirrored", "aligned")
// of cubic edge id. Only "mirrored" renormalizes the handles at once (to
// their mean length); "aligned" and "free" leave them as they are, and an
// aligned edge's handles are made antiparallel on its next SetHandlePos or
// BendEdgeTo. Returns false if id is absent, mode is unrecognized, or the
// edge is not cubic.
func (s *Store) SetHandleMode(id uint64, mode string) bool {
	m, known := parseHandleMode(mode)
	if !known {
		return false
	}

	return s.store.SetHandleMode(id, m)
}

// SetHandleModeRes is SetHandleMode's strict counterpart.
func (s *Store) SetHandleModeRes(id uint64, mode string) Res[bool] {
	if !s.store.HasEdge(id) {
		return fail[bool](errInvalidID("edge", id))
	}
	m, known := parseHandleMode(mode)
	if !known {
		return fail[bool](errInvalidMode(mode))
	}
	if e, _ := s.store.Edge(id); e.Kind != store.KindCubic {
		return fail[bool](errNotCubic(id))
	}
	s.store.SetHandleMode(id, m)

	return ok(true)
}

// BendEdgeTo moves the point on edge id at parameter t toward (tx, ty) by
// a minimal-norm handle perturbation. stiffness must be positive; with
// equal weights on both handles it does not change the result. t is
// clamped to [0,1]; a Line edge auto-converts to Cubic first.
func (s *Store) BendEdgeTo(id uint64, t, tx, ty, stiffness float64) bool {
	return s.store.BendEdgeTo(id, t, tx, ty, stiffness)
}

// BendEdgeToRes is BendEdgeTo's strict counterpart.
func (s *Store) BendEdgeToRes(id uint64, t, tx, ty, stiffness float64) Res[bool] {
	if !s.store.HasEdge(id) {
		return fail[bool](errInvalidID("edge", id))
	}
	if !xmath.FiniteAll(t, tx, ty, stiffness) {
		return fail[bool](errNonFinite("t,tx,ty,stiffness"))
	}
	if t < 0 || t > 1 {
		return fail[bool](errOutOfRange("t", 0, 1, t))
	}
	if stiffness <= 0 {
		return fail[bool](errOutOfRange("stiffness", 0, 1e300, stiffness))
	}
	if !s.store.BendEdgeTo(id, t, tx, ty, stiffness) {
		return fail[bool](errInvalidStructure("bend did not apply (degenerate edge length)"))
	}

	return ok(true)
}
