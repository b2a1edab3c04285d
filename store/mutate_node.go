// File: mutate_node.go
// Role: AddNode/MoveNode/RemoveNode and the node slot allocator.
//
// Determinism: ids are assigned by a monotonic counter and never reused
// within a Store's lifetime (only Clear() resets it), matching lvlath's
// "never reassign an id" contract for Graph vertex/edge identifiers.
package store

import "github.com/katalvlaran/vecnet/internal/xmath"

// allocNodeSlot returns a free slot index, recycling one from freeNodes if
// available, otherwise growing the arena.
func (s *Store) allocNodeSlot() int {
	if n := len(s.freeNodes); n > 0 {
		idx := s.freeNodes[n-1]
		s.freeNodes = s.freeNodes[:n-1]

		return idx
	}
	s.nodes = append(s.nodes, nodeSlot{})

	return len(s.nodes) - 1
}

// AddNode inserts a new node at (x, y) and returns its id.
// Returns (0, false) if x or y is non-finite.
func (s *Store) AddNode(x, y float64) (uint64, bool) {
	if !xmath.FiniteAll(x, y) {
		return 0, false
	}

	id := s.nextNodeID
	s.nextNodeID++
	idx := s.allocNodeSlot()
	s.nodes[idx] = nodeSlot{live: true, node: Node{ID: id, X: float32(x), Y: float32(y)}}
	s.nodeIndex[id] = idx
	s.bumpVer()

	return id, true
}

// MoveNode repositions node id to (x, y). Returns false if the node is
// absent or (x, y) is non-finite; the arena is left untouched in that case.
// Handle offsets on incident cubic edges are relative to node position and
// therefore need no adjustment (SPEC_FULL.md §5).
func (s *Store) MoveNode(id uint64, x, y float64) bool {
	idx, ok := s.nodeIndex[id]
	if !ok || !xmath.FiniteAll(x, y) {
		return false
	}
	s.nodes[idx].node.X = float32(x)
	s.nodes[idx].node.Y = float32(y)
	s.bumpVer()

	return true
}

// RemoveNode deletes node id and cascades to every incident edge. Returns
// false if the node is absent; the arena is left untouched in that case.
func (s *Store) RemoveNode(id uint64) bool {
	idx, ok := s.nodeIndex[id]
	if !ok {
		return false
	}

	// Cascade: remove every edge touching this node first.
	var toRemove []uint64
	for _, sl := range s.edges {
		if sl.live && (sl.edge.A == id || sl.edge.B == id) {
			toRemove = append(toRemove, sl.edge.ID)
		}
	}
	for _, eid := range toRemove {
		s.removeEdgeSlot(eid)
	}

	s.nodes[idx] = nodeSlot{}
	delete(s.nodeIndex, id)
	s.freeNodes = append(s.freeNodes, idx)
	s.bumpVer()

	return true
}
