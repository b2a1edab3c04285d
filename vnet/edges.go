// File: edges.go
// Role: add_edge / remove_edge / set_edge_line / set_edge_cubic, both
// API surfaces.
package vnet

import "github.com/katalvlaran/vecnet/internal/xmath"

// AddEdge adds an edge between a and b. Returns (0, false) if a == b or
// either node is absent.
func (s *Store) AddEdge(a, b uint64) (uint64, bool) {
	return s.store.AddEdge(a, b)
}

// AddEdgeRes is AddEdge's strict counterpart.
func (s *Store) AddEdgeRes(a, b uint64) Res[uint64] {
	if !s.store.HasNode(a) {
		return fail[uint64](errInvalidID("node", a))
	}
	if !s.store.HasNode(b) {
		return fail[uint64](errInvalidID("node", b))
	}
	if a == b {
		return fail[uint64](errInvalidEdge())
	}
	id, added := s.store.AddEdge(a, b)
	if !added {
		return fail[uint64](errInvalidEdge())
	}

	return ok(id)
}

// RemoveEdge removes edge id. Returns false if id is absent.
func (s *Store) RemoveEdge(id uint64) bool {
	return s.store.RemoveEdge(id)
}

// RemoveEdgeRes is RemoveEdge's strict counterpart.
func (s *Store) RemoveEdgeRes(id uint64) Res[bool] {
	if !s.store.HasEdge(id) {
		return fail[bool](errInvalidID("edge", id))
	}
	s.store.RemoveEdge(id)

	return ok(true)
}

// SetEdgeLine downgrades edge id to a straight line. Returns false if id
// is absent.
func (s *Store) SetEdgeLine(id uint64) bool {
	return s.store.SetEdgeLine(id)
}

// SetEdgeLineRes is SetEdgeLine's strict counterpart.
func (s *Store) SetEdgeLineRes(id uint64) Res[bool] {
	if !s.store.HasEdge(id) {
		return fail[bool](errInvalidID("edge", id))
	}
	s.store.SetEdgeLine(id)

	return ok(true)
}

// SetEdgeCubic converts edge id to a cubic with control-handle offsets
// (p1x,p1y) from A and (p2x,p2y) from B. If both offsets have length
// below EpsLen, the edge is kept/reverted to Line. Returns false if id
// is absent or any offset is non-finite.
func (s *Store) SetEdgeCubic(id uint64, p1x, p1y, p2x, p2y float64) bool {
	return s.store.SetEdgeCubic(id, p1x, p1y, p2x, p2y)
}

// SetEdgeCubicRes is SetEdgeCubic's strict counterpart.
func (s *Store) SetEdgeCubicRes(id uint64, p1x, p1y, p2x, p2y float64) Res[bool] {
	if !s.store.HasEdge(id) {
		return fail[bool](errInvalidID("edge", id))
	}
	if !xmath.FiniteAll(p1x, p1y, p2x, p2y) {
		return fail[bool](errNonFinite("p1,p2"))
	}
	s.store.SetEdgeCubic(id, p1x, p1y, p2x, p2y)

	return ok(true)
}

// SetEdgePolyline converts edge id to a polyline through the given
// interior points (node positions remain the implicit endpoints).
// Returns false if id is absent, any point is non-finite, or pts
// exceeds the configured per-edge polyline point cap.
func (s *Store) SetEdgePolyline(id uint64, pts []xmath.Point) bool {
	if len(pts) > s.limits.MaxPolylinePointsPerEdge {
		return false
	}

	return s.store.SetEdgePolyline(id, pts)
}

// SetEdgePolylineRes is SetEdgePolyline's strict counterpart.
func (s *Store) SetEdgePolylineRes(id uint64, pts []xmath.Point) Res[bool] {
	if !s.store.HasEdge(id) {
		return fail[bool](errInvalidID("edge", id))
	}
	if len(pts) > s.limits.MaxPolylinePointsPerEdge {
		return fail[bool](errCapsExceeded())
	}
	for _, p := range pts {
		if !p.Finite() {
			return fail[bool](errNonFinite("points"))
		}
	}
	s.store.SetEdgePolyline(id, pts)

	return ok(true)
}
