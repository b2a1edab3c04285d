// File: halfedge.go
// Role: the half-edge graph type consumed by package facewalk.
package planarize

import "github.com/katalvlaran/vecnet/internal/xmath"

// HalfEdge is one directed half of a planar subsegment.
type HalfEdge struct {
	Origin, Dest int // vertex indices into Graph.Positions
	EdgeID       uint64
	Angle        float64 // outgoing tangent angle at Origin, in [-pi, pi)
}

// Graph is the planarizer's output: a half-edge graph with vertex
// positions and, for each vertex, its outgoing half-edges sorted by angle
// ascending (the order the face walker needs).
type Graph struct {
	Positions []xmath.Point
	Out       [][]int // Out[v] = indices into HalfEdges, sorted by Angle asc
	HalfEdges []HalfEdge
}
