package xmath

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a 2D coordinate used throughout the geometry pipeline. It is
// defined over golang.org/x/image/math/f64.Vec2's underlying representation
// so conversions to/from the rest of the x/image ecosystem stay free, while
// still letting us attach the arithmetic helpers below.
type Point f64.Vec2

// Vec2 converts p to the golang.org/x/image/math/f64 representation.
func (p Point) Vec2() f64.Vec2 { return f64.Vec2(p) }

// X and Y read the coordinate components.
func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p[0] + q[0], p[1] + q[1]} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p[0] - q[0], p[1] - q[1]} }

// Scale returns p * k.
func (p Point) Scale(k float64) Point { return Point{p[0] * k, p[1] * k} }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p[0]*q[0] + p[1]*q[1] }

// Cross returns the 2D cross product (scalar) p×q.
func (p Point) Cross(q Point) float64 { return p[0]*q[1] - p[1]*q[0] }

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 { return math.Hypot(p[0], p[1]) }

// LengthSq returns the squared Euclidean norm of p (avoids the sqrt).
func (p Point) LengthSq() float64 { return p[0]*p[0] + p[1]*p[1] }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Length() }

// Normalized returns p scaled to unit length, or the zero vector if
// |p| < EpsLen.
func (p Point) Normalized() Point {
	l := p.Length()
	if l < EpsLen {
		return Point{0, 0}
	}

	return p.Scale(1 / l)
}

// Finite reports whether both components of p are finite.
func (p Point) Finite() bool { return Finite(p[0]) && Finite(p[1]) }

// Lerp linearly interpolates between p and q at parameter t.
func Lerp(p, q Point, t float64) Point {
	return Point{p[0] + (q[0]-p[0])*t, p[1] + (q[1]-p[1])*t}
}
