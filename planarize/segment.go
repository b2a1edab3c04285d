// File: segment.go
// Role: Segment type and projection of the edge set to segments.
package planarize

import (
	"github.com/katalvlaran/vecnet/curveq"
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/store"
)

// Segment is one straight piece contributed by an edge's geometry, carrying
// a back-reference to its originating edge id per spec.md §4.4.
type Segment struct {
	A, B   xmath.Point
	EdgeID uint64
}

// NodeLookup resolves a node id to its position; callers pass store.Store.Node
// (value, ok) adapted to this shape.
type NodeLookup func(id uint64) (xmath.Point, bool)

// BuildSegments projects edges to line segments: a Line contributes one
// segment, a Cubic contributes its adaptive flattening at flattenTol, and a
// Polyline contributes its n-1 segments (including the implicit leading and
// trailing segments to/from its node endpoints).
func BuildSegments(edges []store.Edge, nodeAt NodeLookup, flattenTol float64) []Segment {
	var out []Segment
	for _, e := range edges {
		a, aok := nodeAt(e.A)
		b, bok := nodeAt(e.B)
		if !aok || !bok {
			continue
		}

		switch e.Kind {
		case store.KindLine:
			if a.Dist(b) < xmath.EpsLen {
				continue
			}
			out = append(out, Segment{A: a, B: b, EdgeID: e.ID})

		case store.KindCubic:
			cubic := curveq.ControlCubic(a, b, e.Ha, e.Hb)
			pts := cubic.Flatten(flattenTol)
			out = append(out, segmentsFromChain(pts, e.ID)...)

		case store.KindPolyline:
			chain := make([]xmath.Point, 0, len(e.Points)+2)
			chain = append(chain, a)
			chain = append(chain, e.Points...)
			chain = append(chain, b)
			out = append(out, segmentsFromChain(chain, e.ID)...)
		}
	}

	return out
}

func segmentsFromChain(pts []xmath.Point, edgeID uint64) []Segment {
	var out []Segment
	for i := 0; i+1 < len(pts); i++ {
		if pts[i].Dist(pts[i+1]) < xmath.EpsLen {
			continue
		}
		out = append(out, Segment{A: pts[i], B: pts[i+1], EdgeID: edgeID})
	}

	return out
}
