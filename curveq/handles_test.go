package curveq

import (
	"testing"

	"github.com/katalvlaran/vecnet/internal/xmath"
)

func TestEnforceMode_FreeIsNoop(t *testing.T) {
	ha, hb := xmath.Point{1, 2}, xmath.Point{3, 4}
	gotA, gotB := EnforceMode(Free, EditedA, ha, hb)
	if gotA != ha || gotB != hb {
		t.Fatalf("EnforceMode(Free) changed handles: (%v,%v) -> (%v,%v)", ha, hb, gotA, gotB)
	}
}

func TestEnforceMode_MirroredEditedA(t *testing.T) {
	ha := xmath.Point{3, 4}
	_, hb := EnforceMode(Mirrored, EditedA, ha, xmath.Point{99, 99})
	want := ha.Scale(-1)
	if hb != want {
		t.Errorf("EnforceMode(Mirrored, EditedA): hb = %v, want %v", hb, want)
	}
}

func TestEnforceMode_MirroredEditedB(t *testing.T) {
	hb := xmath.Point{-2, 5}
	ha, _ := EnforceMode(Mirrored, EditedB, xmath.Point{99, 99}, hb)
	want := hb.Scale(-1)
	if ha != want {
		t.Errorf("EnforceMode(Mirrored, EditedB): ha = %v, want %v", ha, want)
	}
}

func TestEnforceMode_AlignedPreservesOppositeLength(t *testing.T) {
	ha := xmath.Point{3, 4} // length 5
	hbIn := xmath.Point{10, 0} // length 10
	_, hb := EnforceMode(Aligned, EditedA, ha, hbIn)
	if absf(hb.Length()-hbIn.Length()) > 1e-9 {
		t.Errorf("EnforceMode(Aligned): hb length = %v, want preserved %v", hb.Length(), hbIn.Length())
	}
	if !AntiparallelWithin(ha, hb, 1e-9) {
		t.Errorf("EnforceMode(Aligned): ha=%v hb=%v are not antiparallel", ha, hb)
	}
}

func TestEnforceMode_AlignedNoopOnDegenerateEdited(t *testing.T) {
	ha := xmath.Point{}
	hb := xmath.Point{5, 0}
	gotA, gotB := EnforceMode(Aligned, EditedA, ha, hb)
	if gotA != ha || gotB != hb {
		t.Fatalf("EnforceMode(Aligned) with a degenerate edited handle should be a no-op, got (%v,%v)", gotA, gotB)
	}
}

func TestEnforceModeNoEditedEnd_MeanLength(t *testing.T) {
	ha := xmath.Point{10, 0}
	hb := xmath.Point{-2, 0}
	newHa, newHb := EnforceModeNoEditedEnd(Mirrored, ha, hb)
	mean := (ha.Length() + hb.Length()) / 2
	if absf(newHa.Length()-mean) > 1e-9 || absf(newHb.Length()-mean) > 1e-9 {
		t.Errorf("EnforceModeNoEditedEnd: lengths = %v, %v, want both %v", newHa.Length(), newHb.Length(), mean)
	}
	if absf(newHa.X()+newHb.X()) > 1e-9 || absf(newHa.Y()+newHb.Y()) > 1e-9 {
		t.Errorf("EnforceModeNoEditedEnd: newHa + newHb = (%v,%v), want (0,0)", newHa.X()+newHb.X(), newHa.Y()+newHb.Y())
	}
}

func TestEnforceModeNoEditedEnd_NonMirroredIsNoop(t *testing.T) {
	ha, hb := xmath.Point{1, 1}, xmath.Point{2, 2}
	gotA, gotB := EnforceModeNoEditedEnd(Free, ha, hb)
	if gotA != ha || gotB != hb {
		t.Fatalf("EnforceModeNoEditedEnd(Free) should be a no-op")
	}
	gotA, gotB = EnforceModeNoEditedEnd(Aligned, ha, hb)
	if gotA != ha || gotB != hb {
		t.Fatalf("EnforceModeNoEditedEnd(Aligned) should be a no-op")
	}
}

func TestAntiparallelWithin_DegenerateIsTriviallySatisfied(t *testing.T) {
	if !AntiparallelWithin(xmath.Point{}, xmath.Point{1, 0}, 0) {
		t.Errorf("AntiparallelWithin: a zero-length handle should trivially satisfy the constraint")
	}
}

func TestAntiparallelWithin_ExactlyOpposite(t *testing.T) {
	if !AntiparallelWithin(xmath.Point{1, 0}, xmath.Point{-1, 0}, 1e-9) {
		t.Errorf("AntiparallelWithin: exactly opposite handles should satisfy a tight tolerance")
	}
}

func TestAntiparallelWithin_SameDirectionFails(t *testing.T) {
	if AntiparallelWithin(xmath.Point{1, 0}, xmath.Point{1, 0}, 1e-9) {
		t.Errorf("AntiparallelWithin: same-direction handles should not satisfy a tight tolerance")
	}
}
