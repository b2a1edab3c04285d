package vnet

import "testing"

func TestAddNode_MoveNode_RemoveNode(t *testing.T) {
	s := New()
	id, ok := s.AddNode(1, 2)
	if !ok {
		t.Fatalf("AddNode: unexpected failure")
	}
	if !s.MoveNode(id, 3, 4) {
		t.Fatalf("MoveNode: unexpected failure")
	}
	if !s.RemoveNode(id) {
		t.Fatalf("RemoveNode: unexpected failure")
	}
	if s.RemoveNode(id) {
		t.Fatalf("RemoveNode: second removal should fail")
	}
}

func TestAddNodeRes_RejectsNonFinite(t *testing.T) {
	s := New()
	res := s.AddNodeRes(1, inf())
	if res.OK {
		t.Fatalf("AddNodeRes: expected failure for a non-finite y")
	}
	if res.Err.Code != CodeNonFinite {
		t.Errorf("AddNodeRes: got code %q, want %q", res.Err.Code, CodeNonFinite)
	}
}

func inf() float64 { return 1.0 / zero() }
func zero() float64 { return 0 }

func TestGeomVersion_MonotonicAndUnchangedOnStrictFailure(t *testing.T) {
	s := New()
	v0 := s.GeomVersion()
	s.AddNode(0, 0)
	v1 := s.GeomVersion()
	if v1 <= v0 {
		t.Fatalf("GeomVersion: got %d after a mutation, want > %d", v1, v0)
	}

	res := s.BendEdgeToRes(9999, 0.5, 0, 0, 1)
	if res.OK {
		t.Fatalf("BendEdgeToRes: expected failure for a missing edge")
	}
	if res.Err.Code != CodeInvalidID {
		t.Errorf("BendEdgeToRes: got code %q, want %q", res.Err.Code, CodeInvalidID)
	}
	if s.GeomVersion() != v1 {
		t.Errorf("GeomVersion: got %d after a failed strict call, want unchanged %d", s.GeomVersion(), v1)
	}
}

func TestScenario_TriangleFill(t *testing.T) {
	s := New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(5, 8)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	eAC, _ := s.AddEdge(c, a)

	regions := s.GetRegions()
	if len(regions) != 1 {
		t.Fatalf("GetRegions: got %d regions, want 1", len(regions))
	}
	key := regions[0].Key
	if regions[0].Area < 39 || regions[0].Area > 41 {
		t.Errorf("GetRegions: area = %v, want ~40", regions[0].Area)
	}

	if !s.ToggleRegion(key) {
		t.Fatalf("ToggleRegion: unexpected failure")
	}
	if !s.GetRegions()[0].Filled {
		t.Errorf("GetRegions: region should be filled after ToggleRegion")
	}

	s.RemoveEdge(eAC)
	if len(s.GetRegions()) != 0 {
		t.Errorf("GetRegions: region should disappear once the triangle is opened")
	}
}

func TestScenario_BendPreservesRegionKey(t *testing.T) {
	s := New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(5, 8)
	eAB, _ := s.AddEdge(a, b)
	s.AddEdge(b, c)
	s.AddEdge(c, a)

	before := s.GetRegions()
	if len(before) != 1 {
		t.Fatalf("GetRegions: got %d regions, want 1", len(before))
	}
	keyBefore := before[0].Key
	areaBefore := before[0].Area

	if !s.BendEdgeTo(eAB, 0.5, 5, -5, 1.0) {
		t.Fatalf("BendEdgeTo: unexpected failure")
	}

	after := s.GetRegions()
	if len(after) != 1 {
		t.Fatalf("GetRegions: got %d regions after bend, want 1", len(after))
	}
	if after[0].Key != keyBefore {
		t.Errorf("GetRegions: key changed from %d to %d after a pure bend", keyBefore, after[0].Key)
	}
	if after[0].Area == areaBefore {
		t.Errorf("GetRegions: area should change after the bend")
	}
}

func TestScenario_MirroredHandle(t *testing.T) {
	s := New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	e, _ := s.AddEdge(a, b)
	s.SetEdgeCubic(e, 3, 4, -3, 4)
	if !s.SetHandleMode(e, "mirrored") {
		t.Fatalf("SetHandleMode: unexpected failure")
	}
	h, ok := s.GetHandles(e)
	if !ok {
		t.Fatalf("GetHandles: unexpected failure")
	}
	ha := [2]float64{h.HAX - 0, h.HAY - 0}
	hb := [2]float64{h.HBX - 10, h.HBY - 0}
	if absf(ha[0]+hb[0]) > 1e-3 || absf(ha[1]+hb[1]) > 1e-3 {
		t.Errorf("mirrored handles: ha=%v hb=%v, want ha == -hb within EPS_CONSTRAINT", ha, hb)
	}

	if !s.SetHandlePos(e, 0, 1, 2) {
		t.Fatalf("SetHandlePos: unexpected failure")
	}
	h2, _ := s.GetHandles(e)
	newHa := [2]float64{h2.HAX - 0, h2.HAY - 0}
	newHb := [2]float64{h2.HBX - 10, h2.HBY - 0}
	if absf(newHa[0]+newHb[0]) > 1e-3 || absf(newHa[1]+newHb[1]) > 1e-3 {
		t.Errorf("mirrored handles after edit: ha=%v hb=%v, want ha == -hb", newHa, newHb)
	}
}

func TestScenario_StrictRejection(t *testing.T) {
	s := New()
	res := s.BendEdgeToRes(9999, 0.5, 0, 0, 1)
	if res.OK {
		t.Fatalf("BendEdgeToRes: expected failure")
	}
	if res.Err.Code != CodeInvalidID {
		t.Errorf("BendEdgeToRes: got code %q, want invalid_id", res.Err.Code)
	}
	if data, ok := res.Err.Data["id"]; !ok || data != uint64(9999) {
		t.Errorf("BendEdgeToRes: Data[id] = %v, want 9999", data)
	}
}

func TestScenario_SelfTouchFigureEight(t *testing.T) {
	s := New()
	shared, _ := s.AddNode(0, 0)
	a1, _ := s.AddNode(-10, 0)
	a2, _ := s.AddNode(-5, 8)
	b1, _ := s.AddNode(10, 0)
	b2, _ := s.AddNode(5, 8)

	s.AddEdge(shared, a1)
	s.AddEdge(a1, a2)
	s.AddEdge(a2, shared)

	s.AddEdge(shared, b1)
	s.AddEdge(b1, b2)
	s.AddEdge(b2, shared)

	regions := s.GetRegions()
	if len(regions) != 2 {
		t.Fatalf("GetRegions: got %d regions, want 2", len(regions))
	}
	if regions[0].Key == regions[1].Key {
		t.Errorf("GetRegions: both regions share key %d, want distinct keys", regions[0].Key)
	}
	for _, r := range regions {
		if r.Area <= 0 {
			t.Errorf("GetRegions: region %d has non-positive area %v", r.Key, r.Area)
		}
	}
}

func TestScenario_SVGRoundTrip(t *testing.T) {
	s := New()
	n, ok := s.AddSVGPath("M 0 0 L 10 0 L 10 10 Z")
	if !ok || n != 3 {
		t.Fatalf("AddSVGPath: got (%d,%v), want (3,true)", n, ok)
	}

	frags := s.ToSVGPaths()
	if len(frags) != 3 {
		t.Fatalf("ToSVGPaths: got %d fragments, want 3", len(frags))
	}

	before := s.GetRegions()
	if len(before) != 1 {
		t.Fatalf("GetRegions: got %d regions, want 1", len(before))
	}

	s2 := New()
	for _, f := range frags {
		if _, ok := s2.AddSVGPath(f); !ok {
			t.Fatalf("AddSVGPath(re-ingest): unexpected failure for fragment %q", f)
		}
	}
	after := s2.GetRegions()
	if len(after) != 1 {
		t.Fatalf("GetRegions: got %d regions after round trip, want 1", len(after))
	}
	if absf(float64(after[0].Area-before[0].Area)) > 1e-2 {
		t.Errorf("GetRegions: area %v after round trip, want ~%v", after[0].Area, before[0].Area)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
