// File: clone.go
// Role: Clone and Clear, patterned on lvlath/core's CloneEmpty/Clone/Clear.
package store

import "github.com/katalvlaran/vecnet/internal/xmath"

// Clear resets the store to empty: all nodes, edges, and region fill state
// are discarded and the id sequences restart from zero. Id reuse is
// permissible only after a full Clear.
func (s *Store) Clear() {
	s.nodes = nil
	s.nodeIndex = make(map[uint64]int)
	s.freeNodes = nil
	s.nextNodeID = 0

	s.edges = nil
	s.edgeIndex = make(map[uint64]int)
	s.freeEdges = nil
	s.nextEdgeID = 0

	s.fills = make(map[uint64]RegionFill)
	s.geomVer++
	s.fillVer++
}

// Clone returns a deep copy of the store: nodes, edges, fill state,
// version counters and tolerances. The clone shares no mutable state with
// the original, matching lvlath/core.Graph.Clone's deep-copy contract.
func (s *Store) Clone() *Store {
	c := &Store{
		nodeIndex:        make(map[uint64]int, len(s.nodeIndex)),
		edgeIndex:        make(map[uint64]int, len(s.edgeIndex)),
		nextNodeID:       s.nextNodeID,
		nextEdgeID:       s.nextEdgeID,
		geomVer:          s.geomVer,
		fillVer:          s.fillVer,
		flattenTolerance: s.flattenTolerance,
		mergeTolerance:   s.mergeTolerance,
		fills:            make(map[uint64]RegionFill, len(s.fills)),
	}

	c.nodes = make([]nodeSlot, len(s.nodes))
	copy(c.nodes, s.nodes)
	for id, idx := range s.nodeIndex {
		c.nodeIndex[id] = idx
	}
	c.freeNodes = append([]int(nil), s.freeNodes...)

	c.edges = make([]edgeSlot, len(s.edges))
	for i, sl := range s.edges {
		if sl.live {
			pts := append([]xmath.Point(nil), sl.edge.Points...)
			sl.edge.Points = pts
		}
		c.edges[i] = sl
	}
	for id, idx := range s.edgeIndex {
		c.edgeIndex[id] = idx
	}
	c.freeEdges = append([]int(nil), s.freeEdges...)

	for k, v := range s.fills {
		c.fills[k] = v
	}

	return c
}
