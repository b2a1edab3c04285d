// File: mutate_edge.go
// Role: AddEdge/RemoveEdge/SetEdgeLine/SetEdgeCubic and the edge slot
// allocator. Handle-mode re-enforcement lives in handles.go.
package store

import "github.com/katalvlaran/vecnet/internal/xmath"

func (s *Store) allocEdgeSlot() int {
	if n := len(s.freeEdges); n > 0 {
		idx := s.freeEdges[n-1]
		s.freeEdges = s.freeEdges[:n-1]

		return idx
	}
	s.edges = append(s.edges, edgeSlot{})

	return len(s.edges) - 1
}

// AddEdge creates a Line edge between a and b. Returns (0, false) if a == b
// or either endpoint is absent.
func (s *Store) AddEdge(a, b uint64) (uint64, bool) {
	if a == b {
		return 0, false
	}
	if !s.HasNode(a) || !s.HasNode(b) {
		return 0, false
	}

	id := s.nextEdgeID
	s.nextEdgeID++
	idx := s.allocEdgeSlot()
	s.edges[idx] = edgeSlot{live: true, edge: Edge{ID: id, A: a, B: b, Kind: KindLine}}
	s.edgeIndex[id] = idx
	s.bumpVer()

	return id, true
}

// removeEdgeSlot deletes edge id's slot without touching geom_ver; callers
// bump the version themselves (RemoveNode cascades several of these under
// one logical mutation; RemoveEdge is the single-edge public entry point).
func (s *Store) removeEdgeSlot(id uint64) bool {
	idx, ok := s.edgeIndex[id]
	if !ok {
		return false
	}
	s.edges[idx] = edgeSlot{}
	delete(s.edgeIndex, id)
	s.freeEdges = append(s.freeEdges, idx)

	return true
}

// RemoveEdge deletes edge id. Returns false if it is absent.
func (s *Store) RemoveEdge(id uint64) bool {
	if !s.removeEdgeSlot(id) {
		return false
	}
	s.bumpVer()

	return true
}

// SetEdgeLine converts edge id to a Line, discarding any cubic/polyline
// data. Returns false if the edge is absent.
func (s *Store) SetEdgeLine(id uint64) bool {
	idx, ok := s.edgeIndex[id]
	if !ok {
		return false
	}
	e := &s.edges[idx].edge
	e.Kind = KindLine
	e.Ha, e.Hb = xmath.Point{}, xmath.Point{}
	e.Mode = Free
	e.Points = nil
	s.bumpVer()

	return true
}

// SetEdgeCubic converts edge id to a Cubic with handle offsets p1 (end A)
// and p2 (end B). If both offsets have length < EpsLen the edge is kept (or
// converted) as a Line instead. Returns false if the
// edge is absent or any coordinate is non-finite.
func (s *Store) SetEdgeCubic(id uint64, p1x, p1y, p2x, p2y float64) bool {
	idx, ok := s.edgeIndex[id]
	if !ok {
		return false
	}
	if !xmath.FiniteAll(p1x, p1y, p2x, p2y) {
		return false
	}

	ha := xmath.Point{p1x, p1y}
	hb := xmath.Point{p2x, p2y}
	e := &s.edges[idx].edge
	if ha.Length() < xmath.EpsLen && hb.Length() < xmath.EpsLen {
		e.Kind = KindLine
		e.Ha, e.Hb = xmath.Point{}, xmath.Point{}
		e.Mode = Free
	} else {
		e.Kind = KindCubic
		e.Ha, e.Hb = ha, hb
		e.Mode = Free
	}
	e.Points = nil
	s.bumpVer()

	return true
}

// SetEdgePolyline converts edge id to a Polyline with the given interior
// points (node positions remain the implicit first/last points). Returns
// false if the edge is absent or any point is non-finite.
func (s *Store) SetEdgePolyline(id uint64, pts []xmath.Point) bool {
	idx, ok := s.edgeIndex[id]
	if !ok {
		return false
	}
	for _, p := range pts {
		if !p.Finite() {
			return false
		}
	}
	cp := make([]xmath.Point, len(pts))
	copy(cp, pts)

	e := &s.edges[idx].edge
	e.Kind = KindPolyline
	e.Ha, e.Hb = xmath.Point{}, xmath.Point{}
	e.Mode = Free
	e.Points = cp
	s.bumpVer()

	return true
}
