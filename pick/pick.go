// File: pick.go
// Role: hit testing over nodes, handles and edges, per spec.md §4.6.
package pick

import (
	"github.com/katalvlaran/vecnet/curveq"
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/store"
)

// Kind tags what a Result refers to: a tagged sum, not polymorphic
// dispatch.
type Kind uint8

const (
	KindNode Kind = iota
	KindEdge
	KindHandle
)

// Result is the pick outcome. Only the fields relevant to Kind are
// meaningful: Node{NodeID}, Edge{EdgeID,T}, Handle{EdgeID,End}.
type Result struct {
	Kind   Kind
	NodeID uint64
	EdgeID uint64
	End    int
	T      float64
}

// Pick returns the closest hit to (x, y) within tol, or (Result{}, false)
// if nothing qualifies. Priority is handle > node > edge: if any handle
// falls within tol, the closest handle wins outright, and so on.
func Pick(s *store.Store, x, y, tol float64) (Result, bool) {
	p := xmath.Point{x, y}

	if r, ok := pickHandle(s, p, tol); ok {
		return r, true
	}
	if r, ok := pickNode(s, p, tol); ok {
		return r, true
	}
	if r, ok := pickEdge(s, p, tol); ok {
		return r, true
	}

	return Result{}, false
}

func pickHandle(s *store.Store, p xmath.Point, tol float64) (Result, bool) {
	best := Result{}
	bestDist := tol
	found := false
	for _, e := range s.Edges() {
		if e.Kind != store.KindCubic {
			continue
		}
		na, _ := s.Node(e.A)
		nb, _ := s.Node(e.B)
		abs1 := na.Pos().Add(e.Ha)
		abs2 := nb.Pos().Add(e.Hb)

		if d := abs1.Dist(p); d <= bestDist {
			best, bestDist, found = Result{Kind: KindHandle, EdgeID: e.ID, End: 0}, d, true
		}
		if d := abs2.Dist(p); d <= bestDist {
			best, bestDist, found = Result{Kind: KindHandle, EdgeID: e.ID, End: 1}, d, true
		}
	}

	return best, found
}

func pickNode(s *store.Store, p xmath.Point, tol float64) (Result, bool) {
	best := Result{}
	bestDist := tol
	found := false
	for _, n := range s.Nodes() {
		if d := n.Pos().Dist(p); d <= bestDist {
			best, bestDist, found = Result{Kind: KindNode, NodeID: n.ID}, d, true
		}
	}

	return best, found
}

func pickEdge(s *store.Store, p xmath.Point, tol float64) (Result, bool) {
	best := Result{}
	bestDist := tol
	found := false
	for _, e := range s.Edges() {
		na, _ := s.Node(e.A)
		nb, _ := s.Node(e.B)
		a, b := na.Pos(), nb.Pos()

		switch e.Kind {
		case store.KindLine:
			d, t := distToSegment(p, a, b)
			if d <= bestDist {
				best, bestDist, found = Result{Kind: KindEdge, EdgeID: e.ID, T: t}, d, true
			}

		case store.KindCubic:
			cubic := curveq.ControlCubic(a, b, e.Ha, e.Hb)
			d, t := distToFlattenedCubic(cubic, s.FlattenTolerance(), p)
			if d <= bestDist {
				best, bestDist, found = Result{Kind: KindEdge, EdgeID: e.ID, T: t}, d, true
			}

		case store.KindPolyline:
			chain := make([]xmath.Point, 0, len(e.Points)+2)
			chain = append(chain, a)
			chain = append(chain, e.Points...)
			chain = append(chain, b)
			d, t := distToChain(p, chain)
			if d <= bestDist {
				best, bestDist, found = Result{Kind: KindEdge, EdgeID: e.ID, T: t}, d, true
			}
		}
	}

	return best, found
}

// distToSegment returns the point-to-segment distance and the clamped
// projection parameter t in [0,1].
func distToSegment(p, a, b xmath.Point) (float64, float64) {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq < xmath.EpsDenom {
		return p.Dist(a), 0
	}
	t := xmath.Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	proj := a.Add(ab.Scale(t))

	return p.Dist(proj), t
}

// distToChain returns the distance to the nearest sub-segment of chain and
// the global arc-length fraction of the closest point.
func distToChain(p xmath.Point, chain []xmath.Point) (float64, float64) {
	if len(chain) < 2 {
		return 1e300, 0
	}
	lengths := make([]float64, len(chain)-1)
	total := 0.0
	for i := 0; i+1 < len(chain); i++ {
		lengths[i] = chain[i].Dist(chain[i+1])
		total += lengths[i]
	}
	if total < xmath.EpsLen {
		return p.Dist(chain[0]), 0
	}

	bestDist := 1e300
	bestArc := 0.0
	acc := 0.0
	for i := 0; i+1 < len(chain); i++ {
		d, t := distToSegment(p, chain[i], chain[i+1])
		if d < bestDist {
			bestDist = d
			bestArc = (acc + t*lengths[i]) / total
		}
		acc += lengths[i]
	}

	return bestDist, bestArc
}

// distToFlattenedCubic approximates distance-to-curve by distance to the
// flattened polyline, mapping t back by arc-length fraction, per spec.md
// §4.6: "fast approximation, not analytic".
func distToFlattenedCubic(c curveq.Cubic, tol float64, p xmath.Point) (float64, float64) {
	pts := c.Flatten(tol)

	return distToChain(p, pts)
}
