package facewalk

import (
	"testing"

	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/planarize"
	"github.com/katalvlaran/vecnet/store"
)

func squareGraph(t *testing.T) *planarize.Graph {
	t.Helper()
	s := store.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(10, 10)
	d, _ := s.AddNode(0, 10)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	s.AddEdge(c, d)
	s.AddEdge(d, a)

	lookup := func(id uint64) (xmath.Point, bool) {
		n, ok := s.Node(id)
		if !ok {
			return xmath.Point{}, false
		}

		return n.Pos(), true
	}

	return planarize.Planarize(s.Edges(), lookup, 0.25)
}

func TestWalk_Square_OneBoundedFace(t *testing.T) {
	g := squareGraph(t)
	faces := Walk(g)
	if len(faces) != 1 {
		t.Fatalf("Walk on a square: got %d faces, want 1 (exterior discarded)", len(faces))
	}
	if faces[0].Area <= 0 {
		t.Errorf("Walk: bounded face area = %v, want > 0 (CCW-oriented)", faces[0].Area)
	}
}

func TestWalk_Square_FaceHasFourDistinctEdges(t *testing.T) {
	g := squareGraph(t)
	faces := Walk(g)
	if len(faces) != 1 {
		t.Fatalf("Walk: got %d faces, want 1", len(faces))
	}
	canon := CanonicalCycle(faces[0].EdgeCycle)
	if len(canon) != 4 {
		t.Errorf("Walk: face's canonical edge cycle has length %d, want 4", len(canon))
	}
}

func TestWalk_EmptyGraph(t *testing.T) {
	g := &planarize.Graph{}
	if faces := Walk(g); faces != nil {
		t.Errorf("Walk on an empty graph: got %v, want nil", faces)
	}
}

func TestWalk_Triangle_RegionKeyStableAcrossRebuild(t *testing.T) {
	build := func() uint64 {
		s := store.New()
		a, _ := s.AddNode(0, 0)
		b, _ := s.AddNode(10, 0)
		c, _ := s.AddNode(5, 8)
		s.AddEdge(a, b)
		s.AddEdge(b, c)
		s.AddEdge(c, a)
		lookup := func(id uint64) (xmath.Point, bool) {
			n, ok := s.Node(id)
			if !ok {
				return xmath.Point{}, false
			}

			return n.Pos(), true
		}
		g := planarize.Planarize(s.Edges(), lookup, 0.25)
		faces := Walk(g)
		if len(faces) != 1 {
			t.Fatalf("expected exactly one bounded face, got %d", len(faces))
		}

		return RegionKey(faces[0].EdgeCycle)
	}

	if k1, k2 := build(), build(); k1 != k2 {
		t.Fatalf("region key not stable across independent rebuilds of the same triangle: %d vs %d", k1, k2)
	}
}
