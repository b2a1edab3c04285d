package region

import (
	"testing"

	"github.com/katalvlaran/vecnet/store"
)

func triangleStore(t *testing.T) (*store.Store, uint64, uint64, uint64) {
	t.Helper()
	s := store.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(5, 8)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	s.AddEdge(c, a)

	return s, a, b, c
}

func TestCompute_Triangle_OneRegion(t *testing.T) {
	s, _, _, _ := triangleStore(t)
	regions := Compute(s)
	if len(regions) != 1 {
		t.Fatalf("Compute: got %d regions for a triangle, want 1", len(regions))
	}
	if regions[0].Filled {
		t.Errorf("Compute: a freshly discovered region should default to unfilled")
	}
}

func TestCompute_NoEdges_NoRegions(t *testing.T) {
	s := store.New()
	s.AddNode(0, 0)
	regions := Compute(s)
	if len(regions) != 0 {
		t.Fatalf("Compute: got %d regions with no edges, want 0", len(regions))
	}
}

func TestCompute_KeyStableUnderPureBend(t *testing.T) {
	s, ab, _, _ := triangleStore(t)
	_ = ab
	edges := s.Edges()
	var abID uint64
	for _, e := range edges {
		abID = e.ID

		break
	}

	before := Compute(s)
	if len(before) != 1 {
		t.Fatalf("Compute: got %d regions, want 1", len(before))
	}
	keyBefore := before[0].Key

	s.BendEdgeTo(abID, 0.5, 5, -2, 1.0)

	after := Compute(s)
	if len(after) != 1 {
		t.Fatalf("Compute after bend: got %d regions, want 1", len(after))
	}
	if after[0].Key != keyBefore {
		t.Errorf("Compute: region key changed after a pure bend: %d -> %d", keyBefore, after[0].Key)
	}
}

func TestCompute_FillStatePersistsAcrossRecompute(t *testing.T) {
	s, _, _, _ := triangleStore(t)
	regions := Compute(s)
	key := regions[0].Key
	if !s.SetRegionFill(key, true) {
		t.Fatalf("SetRegionFill: unexpected failure for a freshly-computed key")
	}

	regions2 := Compute(s)
	if len(regions2) != 1 || !regions2[0].Filled {
		t.Fatalf("Compute: fill state did not persist across a no-op recompute: %+v", regions2)
	}
}

func TestCompute_RemapsFillAcrossTopologyChange(t *testing.T) {
	s := store.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(10, 10)
	d, _ := s.AddNode(0, 10)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	s.AddEdge(c, d)
	s.AddEdge(d, a)

	regions := Compute(s)
	if len(regions) != 1 {
		t.Fatalf("Compute: got %d regions for a square, want 1", len(regions))
	}
	oldKey := regions[0].Key
	s.SetRegionFill(oldKey, true)
	s.SetRegionColor(oldKey, store.Color{R: 10, G: 20, B: 30, A: 255})

	// Collapse the square to a triangle near the same centroid: removing d
	// changes the face's edge-id cycle entirely, so RegionKey necessarily
	// changes, but the nearest-centroid remap should still carry the fill
	// state across to the new key.
	s.RemoveNode(d)
	s.AddEdge(c, a)

	regions2 := Compute(s)
	if len(regions2) != 1 {
		t.Fatalf("Compute after collapsing to a triangle: got %d regions, want 1", len(regions2))
	}
	if regions2[0].Key == oldKey {
		t.Fatalf("expected the region key to change once the edge cycle changed")
	}
	if !regions2[0].Filled {
		t.Errorf("Compute: fill state was not remapped across the topology change")
	}
	if !regions2[0].HasColor || regions2[0].Color != (store.Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("Compute: color state was not remapped across the topology change, got %+v", regions2[0])
	}
}
