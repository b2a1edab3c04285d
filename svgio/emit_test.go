package svgio

import (
	"strings"
	"testing"

	"github.com/katalvlaran/vecnet/caps"
	"github.com/katalvlaran/vecnet/store"
)

func TestToPaths_Line(t *testing.T) {
	s := store.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	s.AddEdge(a, b)

	frags := ToPaths(s)
	if len(frags) != 1 {
		t.Fatalf("ToPaths: got %d fragments, want 1", len(frags))
	}
	if !strings.HasPrefix(frags[0], "M 0,0") || !strings.Contains(frags[0], "L 10,0") {
		t.Errorf("ToPaths: got %q, want an M..L fragment from (0,0) to (10,0)", frags[0])
	}
}

func TestToPaths_Cubic(t *testing.T) {
	s := store.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	eid, _ := s.AddEdge(a, b)
	s.SetEdgeCubic(eid, 1, 1, -1, -1)

	frags := ToPaths(s)
	if len(frags) != 1 {
		t.Fatalf("ToPaths: got %d fragments, want 1", len(frags))
	}
	if !strings.Contains(frags[0], "C ") {
		t.Errorf("ToPaths: got %q, want a C command for a cubic edge", frags[0])
	}
}

func TestToPaths_RoundTripsThroughAddPath(t *testing.T) {
	s := store.New()
	n, err := AddPath(s, "M 0,0 L 10,0 L 10,10 Z", caps.Default())
	if err != nil {
		t.Fatalf("AddPath: unexpected error %v", err)
	}
	if n != 3 {
		t.Fatalf("AddPath: got %d edges, want 3", n)
	}

	frags := ToPaths(s)
	if len(frags) != 3 {
		t.Fatalf("ToPaths: got %d fragments, want 3", len(frags))
	}

	s2 := store.New()
	for _, f := range frags {
		if _, err := AddPath(s2, f, caps.Default()); err != nil {
			t.Fatalf("AddPath(re-ingest): unexpected error %v for fragment %q", err, f)
		}
	}
	if s2.EdgeCount() != s.EdgeCount() {
		t.Errorf("round trip: got %d edges, want %d", s2.EdgeCount(), s.EdgeCount())
	}
}
