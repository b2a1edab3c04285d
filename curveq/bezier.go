// File: bezier.go
// Role: cubic Bezier evaluation and adaptive flattening.
package curveq

import "github.com/katalvlaran/vecnet/internal/xmath"

// Cubic describes one cubic Bezier arc by its four control points:
// P0 is the start node position, P1/P2 are P0/P3 plus the edge's handle
// offsets, and P3 is the end node position.
type Cubic struct {
	P0, P1, P2, P3 xmath.Point
}

// ControlCubic builds the four control points of a cubic edge from its
// endpoint positions and relative handle offsets, per spec.md §4.2:
// P1 = a.pos + ha, P2 = b.pos + hb.
func ControlCubic(a, b, ha, hb xmath.Point) Cubic {
	return Cubic{P0: a, P1: a.Add(ha), P2: b.Add(hb), P3: b}
}

// Evaluate computes B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
func (c Cubic) Evaluate(t float64) xmath.Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t

	c0 := mt2 * mt
	c1 := 3 * mt2 * t
	c2 := 3 * mt * t2
	c3 := t2 * t

	return xmath.Point{
		c0*c.P0[0] + c1*c.P1[0] + c2*c.P2[0] + c3*c.P3[0],
		c0*c.P0[1] + c1*c.P1[1] + c2*c.P2[1] + c3*c.P3[1],
	}
}

// deCasteljauSplit subdivides c at t=0.5, returning the left and right
// sub-curves such that their concatenation reproduces c exactly.
func (c Cubic) deCasteljauSplit() (left, right Cubic) {
	p01 := xmath.Lerp(c.P0, c.P1, 0.5)
	p12 := xmath.Lerp(c.P1, c.P2, 0.5)
	p23 := xmath.Lerp(c.P2, c.P3, 0.5)
	p012 := xmath.Lerp(p01, p12, 0.5)
	p123 := xmath.Lerp(p12, p23, 0.5)
	p0123 := xmath.Lerp(p012, p123, 0.5)

	left = Cubic{c.P0, p01, p012, p0123}
	right = Cubic{p0123, p123, p23, c.P3}

	return left, right
}

// flatness measures the max perpendicular distance of P1, P2 from the
// chord P0-P3, per spec.md §4.2.
func (c Cubic) flatness() float64 {
	chord := c.P3.Sub(c.P0)
	chordLen := chord.Length()
	if chordLen < xmath.EpsLen {
		// Degenerate chord: fall back to distance from P0.
		d1 := c.P1.Sub(c.P0).Length()
		d2 := c.P2.Sub(c.P0).Length()
		if d1 > d2 {
			return d1
		}

		return d2
	}

	// Perpendicular distance = |cross(chord, P-P0)| / |chord|.
	d1 := abs(chord.Cross(c.P1.Sub(c.P0))) / chordLen
	d2 := abs(chord.Cross(c.P2.Sub(c.P0))) / chordLen
	if d1 > d2 {
		return d1
	}

	return d2
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// Flatten approximates c by a polyline whose deviation from the true curve
// is bounded by tol, via recursive de Casteljau subdivision capped at
// xmath.MaxFlattenDepth. The returned slice includes both endpoints.
func (c Cubic) Flatten(tol float64) []xmath.Point {
	if tol < xmath.MinFlattenTolerance {
		tol = xmath.MinFlattenTolerance
	}
	pts := []xmath.Point{c.P0}
	c.flattenInto(tol, 0, &pts)

	return pts
}

// flattenInto appends the flattened points of c (excluding P0, which the
// caller already holds) to *out.
func (c Cubic) flattenInto(tol float64, depth int, out *[]xmath.Point) {
	if depth >= xmath.MaxFlattenDepth || c.flatness() <= tol {
		*out = append(*out, c.P3)

		return
	}
	left, right := c.deCasteljauSplit()
	left.flattenInto(tol, depth+1, out)
	right.flattenInto(tol, depth+1, out)
}
