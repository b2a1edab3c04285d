// File: fallback.go
// Role: degree-2 cycle fallback, used when Walk produces no bounded faces
// at all, per spec.md §4.5's fallback rule: detect the unique path through
// nodes all of degree 2 and reconstruct its boundary from real edge
// geometry (not chords).
package facewalk

import "github.com/katalvlaran/vecnet/planarize"

// FallbackCycles finds every simple cycle whose vertices all have degree
// exactly 2 in g (i.e. exactly two incident sub-segments), reconstructing
// each as a Face from the half-edge chain's own vertex positions.
func FallbackCycles(g *planarize.Graph) []Face {
	n := len(g.Positions)
	visited := make([]bool, n)
	var faces []Face

	for start := 0; start < n; start++ {
		if visited[start] || len(g.Out[start]) != 2 {
			continue
		}
		cycle, ok := traceDegree2Cycle(g, start, visited)
		if !ok {
			continue
		}
		faces = append(faces, faceFromWalk(g, cycle))
	}

	return faces
}

// traceDegree2Cycle walks forward from start while every visited vertex
// has degree exactly 2, returning the half-edge index path if it closes
// back on start with >= 3 distinct vertices.
func traceDegree2Cycle(g *planarize.Graph, start int, visited []bool) ([]int, bool) {
	var path []int
	cur := start
	prevHalf := -1
	localVisited := map[int]bool{start: true}

	for {
		if len(g.Out[cur]) != 2 {
			return nil, false
		}
		var next int
		if prevHalf == -1 {
			next = g.Out[cur][0]
		} else {
			revOfPrev := opposite(prevHalf)
			if g.Out[cur][0] == revOfPrev {
				next = g.Out[cur][1]
			} else {
				next = g.Out[cur][0]
			}
		}
		path = append(path, next)
		he := g.HalfEdges[next]
		prevHalf = next
		cur = he.Dest

		if cur == start {
			if len(path) < 3 {
				return nil, false
			}
			for v := range localVisited {
				visited[v] = true
			}

			return path, true
		}
		if localVisited[cur] || len(g.Out[cur]) != 2 {
			return nil, false
		}
		localVisited[cur] = true
	}
}
