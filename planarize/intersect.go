// File: intersect.go
// Role: pairwise segment intersection classification via f64 orientation
// predicates, per spec.md §4.4.
package planarize

import "github.com/katalvlaran/vecnet/internal/xmath"

// hitKind tags the result of classifying two segments.
type hitKind uint8

const (
	hitNone hitKind = iota
	hitCross
	hitTouch
	hitCollinearOverlap
)

// hit describes where segment 1 (params u) and segment 2 (params v)
// intersect, both in [0,1] when applicable.
type hit struct {
	kind hitKind
	u, v float64
}

func cross(o, a, b xmath.Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// classify determines how segments (a1,b1) and (a2,b2) relate.
func classify(a1, b1, a2, b2 xmath.Point) hit {
	d1 := b1.Sub(a1)
	d2 := b2.Sub(a2)
	denom := d1.Cross(d2)

	if abs(denom) < xmath.EpsDenom {
		// Parallel or collinear.
		if abs(cross(a1, b1, a2)) < xmath.EpsPos {
			return classifyCollinear(a1, b1, a2, b2, d1)
		}

		return hit{kind: hitNone}
	}

	// Solve a1 + u*d1 == a2 + v*d2.
	diff := a2.Sub(a1)
	u := diff.Cross(d2) / denom
	v := diff.Cross(d1) / denom

	if u < -epsParam || u > 1+epsParam || v < -epsParam || v > 1+epsParam {
		return hit{kind: hitNone}
	}
	u = xmath.Clamp(u, 0, 1)
	v = xmath.Clamp(v, 0, 1)

	if isEndpointParam(u) || isEndpointParam(v) {
		return hit{kind: hitTouch, u: u, v: v}
	}

	return hit{kind: hitCross, u: u, v: v}
}

const epsParam = 1e-7

func isEndpointParam(p float64) bool {
	return p < xmath.EpsPos || p > 1-xmath.EpsPos
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// classifyCollinear handles the case where both segments lie on (nearly)
// the same line; it reports an overlap hit with u = v = the midpoint of the
// overlap on segment 1's parametrization, clamped to [0,1]. Planarize does
// not use these parameters: it splits both segments at the overlap
// boundaries (each segment at the other's endpoints) itself.
func classifyCollinear(a1, b1, a2, b2, d1 xmath.Point) hit {
	len1sq := d1.LengthSq()
	if len1sq < xmath.EpsDenom {
		return hit{kind: hitNone}
	}
	projParam := func(p xmath.Point) float64 {
		return p.Sub(a1).Dot(d1) / len1sq
	}
	ta2 := projParam(a2)
	tb2 := projParam(b2)
	lo, hi := ta2, tb2
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi < -xmath.EpsPos || lo > 1+xmath.EpsPos {
		return hit{kind: hitNone}
	}

	mid := xmath.Clamp((lo+hi)/2, 0, 1)

	return hit{kind: hitCollinearOverlap, u: mid, v: mid}
}
