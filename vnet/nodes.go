// File: nodes.go
// Role: add_node / move_node / remove_node, both API surfaces.
package vnet

import "github.com/katalvlaran/vecnet/internal/xmath"

// AddNode adds a node at (x, y). Returns (0, false) if (x, y) is
// non-finite.
func (s *Store) AddNode(x, y float64) (uint64, bool) {
	return s.store.AddNode(x, y)
}

// AddNodeRes is AddNode's strict counterpart.
func (s *Store) AddNodeRes(x, y float64) Res[uint64] {
	if !xmath.FiniteAll(x, y) {
		return fail[uint64](errNonFinite("x,y"))
	}
	id, added := s.store.AddNode(x, y)
	if !added {
		return fail[uint64](errNonFinite("x,y"))
	}

	return ok(id)
}

// MoveNode repositions node id to (x, y). Returns false if id is absent
// or (x, y) is non-finite.
func (s *Store) MoveNode(id uint64, x, y float64) bool {
	return s.store.MoveNode(id, x, y)
}

// MoveNodeRes is MoveNode's strict counterpart.
func (s *Store) MoveNodeRes(id uint64, x, y float64) Res[bool] {
	if !s.store.HasNode(id) {
		return fail[bool](errInvalidID("node", id))
	}
	if !xmath.FiniteAll(x, y) {
		return fail[bool](errNonFinite("x,y"))
	}
	s.store.MoveNode(id, x, y)

	return ok(true)
}

// RemoveNode removes node id, cascading the removal to every incident
// edge. Returns false if id is absent.
func (s *Store) RemoveNode(id uint64) bool {
	return s.store.RemoveNode(id)
}

// RemoveNodeRes is RemoveNode's strict counterpart.
func (s *Store) RemoveNodeRes(id uint64) Res[bool] {
	if !s.store.HasNode(id) {
		return fail[bool](errInvalidID("node", id))
	}
	s.store.RemoveNode(id)

	return ok(true)
}
