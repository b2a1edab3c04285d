// File: planarize.go
// Role: orchestrates segment projection, intersection splitting, vertex
// quantization and half-edge graph construction, per spec.md §4.4.
package planarize

import (
	"math"
	"sort"

	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/store"
)

// Planarize runs the full planarization pipeline over edges, using nodeAt
// to resolve node positions and flattenTol for cubic flattening. The
// returned Graph owns no references into the store; it is safe to use
// after further mutations (a fresh snapshot per spec.md §5's "scoped to a
// single call" resource discipline).
func Planarize(edges []store.Edge, nodeAt NodeLookup, flattenTol float64) *Graph {
	segs := BuildSegments(edges, nodeAt, flattenTol)
	if len(segs) == 0 {
		return &Graph{}
	}

	// One sorted, deduplicated split-parameter list per segment, seeded
	// with the segment's own endpoints.
	splits := make([][]float64, len(segs))
	for i := range segs {
		splits[i] = []float64{0, 1}
	}

	// paramOn projects p onto s's parametrization, clamped to [0,1].
	paramOn := func(s Segment, p xmath.Point) float64 {
		d := s.B.Sub(s.A)

		return xmath.Clamp(p.Sub(s.A).Dot(d)/d.LengthSq(), 0, 1)
	}

	for _, pair := range CandidatePairs(segs) {
		i, j := pair[0], pair[1]
		si, sj := segs[i], segs[j]
		h := classify(si.A, si.B, sj.A, sj.B)
		switch h.kind {
		case hitCross, hitTouch:
			splits[i] = append(splits[i], h.u)
			splits[j] = append(splits[j], h.v)
		case hitCollinearOverlap:
			// Split each segment at the other's endpoints: the overlap boundaries.
			splits[i] = append(splits[i], paramOn(si, sj.A), paramOn(si, sj.B))
			splits[j] = append(splits[j], paramOn(sj, si.A), paramOn(sj, si.B))
		}
	}

	vp := newVertexPool()
	type subseg struct {
		u, v   int // vertex indices
		edgeID uint64
	}
	var subs []subseg

	for i, s := range segs {
		ps := dedupeSorted(splits[i])
		for k := 0; k+1 < len(ps); k++ {
			pa := xmath.Lerp(s.A, s.B, ps[k])
			pb := xmath.Lerp(s.A, s.B, ps[k+1])
			if pa.Dist(pb) < xmath.EpsPos {
				continue
			}
			u := vp.Add(pa)
			v := vp.Add(pb)
			if u == v {
				continue
			}
			subs = append(subs, subseg{u: u, v: v, edgeID: s.EdgeID})
		}
	}

	positions := vp.Positions()
	g := &Graph{Positions: positions}
	g.Out = make([][]int, len(positions))

	for _, sub := range subs {
		p0, p1 := positions[sub.u], positions[sub.v]
		ang01 := angleOf(p1.Sub(p0))
		ang10 := angleOf(p0.Sub(p1))

		idx01 := len(g.HalfEdges)
		g.HalfEdges = append(g.HalfEdges, HalfEdge{Origin: sub.u, Dest: sub.v, EdgeID: sub.edgeID, Angle: ang01})
		idx10 := len(g.HalfEdges)
		g.HalfEdges = append(g.HalfEdges, HalfEdge{Origin: sub.v, Dest: sub.u, EdgeID: sub.edgeID, Angle: ang10})

		g.Out[sub.u] = append(g.Out[sub.u], idx01)
		g.Out[sub.v] = append(g.Out[sub.v], idx10)
	}

	for _, outs := range g.Out {
		sort.Slice(outs, func(a, b int) bool { return g.HalfEdges[outs[a]].Angle < g.HalfEdges[outs[b]].Angle })
	}

	return g
}

func angleOf(v xmath.Point) float64 {
	a := math.Atan2(v[1], v[0])
	if a >= math.Pi {
		a = -math.Pi
	}

	return a
}

func dedupeSorted(vals []float64) []float64 {
	cp := append([]float64(nil), vals...)
	sort.Float64s(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v-out[len(out)-1] > epsParam {
			out = append(out, v)
		}
	}

	return out
}
