package facewalk

import (
	"testing"

	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/planarize"
)

// degree2Triangle builds a half-edge graph by hand: three vertices, each
// of degree 2, connected in a cycle -- the shape FallbackCycles targets.
func degree2Triangle() *planarize.Graph {
	g := &planarize.Graph{
		Positions: []xmath.Point{{0, 0}, {10, 0}, {5, 8}},
	}
	g.Out = make([][]int, 3)
	addPair := func(u, v int, edgeID uint64) {
		i0 := len(g.HalfEdges)
		g.HalfEdges = append(g.HalfEdges, planarize.HalfEdge{Origin: u, Dest: v, EdgeID: edgeID})
		i1 := len(g.HalfEdges)
		g.HalfEdges = append(g.HalfEdges, planarize.HalfEdge{Origin: v, Dest: u, EdgeID: edgeID})
		g.Out[u] = append(g.Out[u], i0)
		g.Out[v] = append(g.Out[v], i1)
	}
	addPair(0, 1, 1)
	addPair(1, 2, 2)
	addPair(2, 0, 3)

	return g
}

func TestFallbackCycles_FindsTheTriangle(t *testing.T) {
	g := degree2Triangle()
	faces := FallbackCycles(g)
	if len(faces) != 1 {
		t.Fatalf("FallbackCycles: got %d faces, want 1", len(faces))
	}
	if len(faces[0].EdgeCycle) != 3 {
		t.Errorf("FallbackCycles: face has %d edges, want 3", len(faces[0].EdgeCycle))
	}
}

func TestFallbackCycles_EmptyGraph(t *testing.T) {
	g := &planarize.Graph{}
	if faces := FallbackCycles(g); faces != nil {
		t.Errorf("FallbackCycles on an empty graph: got %v, want nil", faces)
	}
}
