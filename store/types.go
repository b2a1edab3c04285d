// File: types.go
// Role: Node, Edge, EdgeKind, HandleMode and the Store arena type.
package store

import (
	"sort"

	"github.com/katalvlaran/vecnet/internal/xmath"
)

// EdgeKind tags the geometric representation of an Edge: a tagged sum, not
// polymorphic dispatch.
type EdgeKind uint8

const (
	// KindLine is a straight segment between the edge's two node endpoints.
	KindLine EdgeKind = iota
	// KindCubic is a cubic Bezier arc with per-end handle offsets.
	KindCubic
	// KindPolyline is an ordered sequence of interior points.
	KindPolyline
)

// String renders the kind for diagnostics and JSON encoding.
func (k EdgeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCubic:
		return "cubic"
	case KindPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// HandleMode constrains the relationship between a cubic edge's two handles.
type HandleMode uint8

const (
	// Free applies no constraint between ha and hb.
	Free HandleMode = iota
	// Mirrored forces hb = -ha (equal magnitude, opposite direction).
	Mirrored
	// Aligned forces hb's direction to -ha/|ha| while preserving hb's length.
	Aligned
)

// String renders the mode for diagnostics and JSON encoding.
func (m HandleMode) String() string {
	switch m {
	case Free:
		return "free"
	case Mirrored:
		return "mirrored"
	case Aligned:
		return "aligned"
	default:
		return "unknown"
	}
}

// ValidHandleMode reports whether m is one of the three defined modes.
func ValidHandleMode(m HandleMode) bool {
	return m == Free || m == Mirrored || m == Aligned
}

// Node is a value snapshot of one node in the arena: a stable id and a
// position stored at 32-bit precision, per SPEC_FULL.md §5.
type Node struct {
	ID   uint64
	X, Y float32
}

// Pos widens Node's position to the float64 Point used by the geometry
// pipeline's internal math.
func (n Node) Pos() xmath.Point { return xmath.Point{float64(n.X), float64(n.Y)} }

// Edge is a value snapshot of one edge in the arena. Fields not relevant to
// Kind are zero/nil; callers must branch on Kind before reading them, the
// same contract lvlath's Edge applies to Directed/Weight per graph mode.
type Edge struct {
	ID   uint64
	A, B uint64

	Kind EdgeKind

	// Cubic-only: handle offsets relative to node A/B positions, and the
	// constraint mode between them.
	Ha, Hb xmath.Point
	Mode   HandleMode

	// Polyline-only: ordered interior points (node positions are the
	// implicit first/last points).
	Points []xmath.Point
}

// nodeSlot is the arena's backing storage for one node slot. Slots are
// recycled on RemoveNode but the id itself is never reassigned within a
// store's lifetime (only Clear() resets the id sequence).
type nodeSlot struct {
	live bool
	node Node
}

// edgeSlot is the arena's backing storage for one edge slot.
type edgeSlot struct {
	live bool
	edge Edge
}

// Store is the single process-wide arena owning all nodes and edges plus
// the monotonic version counters consumed by caches layered on top. A zero
// Store is not usable; construct with New().
type Store struct {
	nodes      []nodeSlot
	nodeIndex  map[uint64]int // node id -> slot index
	freeNodes  []int
	nextNodeID uint64

	edges      []edgeSlot
	edgeIndex  map[uint64]int // edge id -> slot index
	freeEdges  []int
	nextEdgeID uint64

	geomVer uint64
	fillVer uint64

	flattenTolerance float64

	fills map[uint64]RegionFill // region key -> persisted fill/color state

	lastCentroids map[uint64]xmath.Point // region key -> centroid, from the last Compute()

	mergeTolerance float64 // SVG endpoint-merge tolerance, see SPEC_FULL.md §7

	telemetry func(code string, args ...any)
}

// New constructs an empty Store with the default flatten tolerance
// (DefaultFlattenTolerance) and merge tolerance (EpsPos).
func New() *Store {
	return &Store{
		nodeIndex:        make(map[uint64]int),
		edgeIndex:        make(map[uint64]int),
		flattenTolerance: xmath.DefaultFlattenTolerance,
		fills:            make(map[uint64]RegionFill),
		mergeTolerance:   xmath.EpsPos,
	}
}

// SetTelemetry installs an optional warning sink invoked when computations
// are suppressed (cap exceeded, face-walk step cap, etc). A nil sink
// disables telemetry.
func (s *Store) SetTelemetry(fn func(code string, args ...any)) {
	s.telemetry = fn
}

func (s *Store) warn(code string, args ...any) {
	if s.telemetry != nil {
		s.telemetry(code, args...)
	}
}

// Ver returns the current geom_ver: it increases on every successful
// mutation that can affect geometry.
func (s *Store) Ver() uint64 { return s.geomVer }

// FillVer returns the current fill_ver: it increases on every successful
// region fill/color change, independent of Ver().
func (s *Store) FillVer() uint64 { return s.fillVer }

func (s *Store) bumpVer() { s.geomVer++ }

func (s *Store) bumpFillVer() { s.fillVer++ }

// FlattenTolerance returns the current curve-flatness threshold in px.
func (s *Store) FlattenTolerance() float64 { return s.flattenTolerance }

// MergeTolerance returns the current SVG endpoint-merge tolerance.
func (s *Store) MergeTolerance() float64 { return s.mergeTolerance }

// SetMergeTolerance overrides the SVG ingest endpoint-merge tolerance.
// SPEC_FULL.md §7 records this as the resolution of the spec's open
// question: a plain EpsPos baseline with a setter for future zoom awareness.
func (s *Store) SetMergeTolerance(eps float64) {
	if eps > 0 && xmath.Finite(eps) {
		s.mergeTolerance = eps
	}
}

// NodeCount reports the number of live nodes.
func (s *Store) NodeCount() int { return len(s.nodeIndex) }

// EdgeCount reports the number of live edges.
func (s *Store) EdgeCount() int { return len(s.edgeIndex) }

// Node returns a value snapshot of the node with id, or (_, false) if it is
// not live.
func (s *Store) Node(id uint64) (Node, bool) {
	idx, ok := s.nodeIndex[id]
	if !ok {
		return Node{}, false
	}

	return s.nodes[idx].node, true
}

// HasNode reports whether id refers to a live node.
func (s *Store) HasNode(id uint64) bool {
	_, ok := s.nodeIndex[id]

	return ok
}

// Nodes returns a snapshot of all live nodes sorted by id ascending,
// matching lvlath's deterministic-iteration-order convention.
func (s *Store) Nodes() []Node {
	out := make([]Node, 0, len(s.nodeIndex))
	for _, idx := range s.nodeIndex {
		out = append(out, s.nodes[idx].node)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edge returns a value snapshot of the edge with id, or (_, false) if it is
// not live.
func (s *Store) Edge(id uint64) (Edge, bool) {
	idx, ok := s.edgeIndex[id]
	if !ok {
		return Edge{}, false
	}

	return s.edges[idx].edge, true
}

// HasEdge reports whether id refers to a live edge.
func (s *Store) HasEdge(id uint64) bool {
	_, ok := s.edgeIndex[id]

	return ok
}

// Edges returns a snapshot of all live edges sorted by id ascending.
func (s *Store) Edges() []Edge {
	out := make([]Edge, 0, len(s.edgeIndex))
	for _, idx := range s.edgeIndex {
		out = append(out, s.edges[idx].edge)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// IncidentEdges returns the ids of all edges touching node id, sorted asc.
func (s *Store) IncidentEdges(id uint64) []uint64 {
	var out []uint64
	for _, sl := range s.edges {
		if !sl.live {
			continue
		}
		if sl.edge.A == id || sl.edge.B == id {
			out = append(out, sl.edge.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
