// File: unmarshal.go
// Role: parses the versioned JSON document into a *store.Store, per
// spec.md §4.6's lenient/strict split.
package persist

import (
	"encoding/json"

	"github.com/katalvlaran/vecnet/caps"
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/store"
)

// FromJSON decodes data into s, which callers should pass as a fresh
// store.New() so a strict-mode error can be reported without disturbing
// any store already in use -- FromJSON mutates s incrementally as it
// walks the document and does not roll back a partial load on error.
// In lenient mode, nodes with non-finite or out-of-bounds coordinates and
// edges whose endpoints are missing or equal are silently dropped; a cubic
// edge lacking a handle, or an edge of unknown kind, is kept as a Line, and
// an unknown handle mode is ignored. In strict mode
// those conditions return ErrInvalidStructure or ErrOutOfBounds. In both
// modes a JSON syntax error, an unsupported version, or a cap violation is
// returned (ErrJSONParse, ErrInvalidStructure, ErrCapsExceeded). Node and edge ids are renumbered by s's own allocator;
// region keys in fills are independent of node/edge ids and are applied
// verbatim.
func FromJSON(s *store.Store, data []byte, limits caps.Limits, strict bool) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrJSONParse
	}
	if doc.Version < MinSupportedVersion || doc.Version > CurrentVersion {
		return ErrInvalidStructure
	}

	if len(doc.Nodes) > limits.MaxNodes || len(doc.Edges) > limits.MaxEdges {
		return ErrCapsExceeded
	}

	totalPolyPts := 0
	for _, e := range doc.Edges {
		if len(e.Points) > limits.MaxPolylinePointsPerEdge {
			return ErrCapsExceeded
		}
		totalPolyPts += len(e.Points)
	}
	if totalPolyPts > limits.MaxTotalPolylinePoints {
		return ErrCapsExceeded
	}

	idMap := make(map[uint64]uint64, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if !xmath.Finite(n.X) || !xmath.Finite(n.Y) {
			if strict {
				return ErrInvalidStructure
			}

			continue
		}
		if n.X < limits.MinCoord || n.X > limits.MaxCoord || n.Y < limits.MinCoord || n.Y > limits.MaxCoord {
			if strict {
				return ErrOutOfBounds
			}

			continue
		}
		id, ok := s.AddNode(n.X, n.Y)
		if !ok {
			if strict {
				return ErrInvalidStructure
			}

			continue
		}
		idMap[n.ID] = id
	}

	for _, e := range doc.Edges {
		a, aok := idMap[e.A]
		b, bok := idMap[e.B]
		if !aok || !bok || a == b {
			if strict {
				return ErrInvalidStructure
			}

			continue
		}
		id, ok := s.AddEdge(a, b)
		if !ok {
			if strict {
				return ErrInvalidStructure
			}

			continue
		}

		switch e.Kind {
		case "cubic":
			if e.Ha == nil || e.Hb == nil {
				if strict {
					return ErrInvalidStructure
				}

				continue
			}
			s.SetEdgeCubic(id, e.Ha.X, e.Ha.Y, e.Hb.X, e.Hb.Y)
			if mode, ok := parseMode(e.Mode); ok {
				s.SetHandleMode(id, mode)
			} else if strict && e.Mode != "" {
				return ErrInvalidStructure
			}

		case "polyline":
			pts := make([]xmath.Point, len(e.Points))
			for i, p := range e.Points {
				pts[i] = xmath.Point{p.X, p.Y}
			}
			s.SetEdgePolyline(id, pts)

		case "line", "":
			// default representation, nothing further to set

		default:
			if strict {
				return ErrInvalidStructure
			}
		}
	}

	for _, f := range doc.Fills {
		rf := store.RegionFill{Filled: f.Filled}
		if f.Color != nil {
			rf.Color = store.Color{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: f.Color.A}
			rf.HasColor = true
		}
		s.SeedFill(f.Key, rf)
	}

	return nil
}

func parseMode(s string) (store.HandleMode, bool) {
	switch s {
	case "free", "":
		return store.Free, true
	case "mirrored":
		return store.Mirrored, true
	case "aligned":
		return store.Aligned, true
	default:
		return store.Free, false
	}
}
