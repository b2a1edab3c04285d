// File: handles.go
// Role: GetHandles/SetHandlePos/SetHandleMode and the bend-solver write-back
// (BendEdgeTo), per spec.md §4.2-4.3.
package store

import (
	"github.com/katalvlaran/vecnet/bend"
	"github.com/katalvlaran/vecnet/curveq"
	"github.com/katalvlaran/vecnet/internal/xmath"
)

func toCurveqMode(m HandleMode) curveq.HandleMode {
	switch m {
	case Mirrored:
		return curveq.Mirrored
	case Aligned:
		return curveq.Aligned
	default:
		return curveq.Free
	}
}

// GetHandles returns the absolute handle positions (ha, hb) for cubic edge
// id. ok is false if the edge is absent or not cubic.
func (s *Store) GetHandles(id uint64) (hax, hay, hbx, hby float64, ok bool) {
	idx, found := s.edgeIndex[id]
	if !found {
		return 0, 0, 0, 0, false
	}
	e := s.edges[idx].edge
	if e.Kind != KindCubic {
		return 0, 0, 0, 0, false
	}
	na, _ := s.Node(e.A)
	nb, _ := s.Node(e.B)
	abs1 := na.Pos().Add(e.Ha)
	abs2 := nb.Pos().Add(e.Hb)

	return abs1[0], abs1[1], abs2[0], abs2[1], true
}

// SetHandlePos sets handle `end` (0=A, 1=B) of cubic edge id to the
// absolute position (x, y), then re-enforces the edge's handle-mode
// constraint with the edited end set to `end`. Returns false if the edge is
// absent, not cubic, end is not in {0,1}, or (x,y) is non-finite.
func (s *Store) SetHandlePos(id uint64, end int, x, y float64) bool {
	idx, found := s.edgeIndex[id]
	if !found {
		return false
	}
	if end != 0 && end != 1 {
		return false
	}
	if !xmath.FiniteAll(x, y) {
		return false
	}
	e := &s.edges[idx].edge
	if e.Kind != KindCubic {
		return false
	}
	na, _ := s.Node(e.A)
	nb, _ := s.Node(e.B)

	if end == 0 {
		e.Ha = xmath.Point{x, y}.Sub(na.Pos())
	} else {
		e.Hb = xmath.Point{x, y}.Sub(nb.Pos())
	}

	edited := curveq.EditedA
	if end == 1 {
		edited = curveq.EditedB
	}
	e.Ha, e.Hb = curveq.EnforceMode(toCurveqMode(e.Mode), edited, e.Ha, e.Hb)
	s.bumpVer()

	return true
}

// SetHandleMode sets the constraint mode of cubic edge id and immediately
// renormalizes its handles to satisfy it (no edited-end hint: Mirrored uses
// the mean-length rule of spec.md §4.2; Aligned/Free are left as-is until
// the next edited SetHandlePos). Returns false if the edge is absent, not
// cubic, or mode is not one of Free/Mirrored/Aligned.
func (s *Store) SetHandleMode(id uint64, mode HandleMode) bool {
	idx, found := s.edgeIndex[id]
	if !found {
		return false
	}
	if !ValidHandleMode(mode) {
		return false
	}
	e := &s.edges[idx].edge
	if e.Kind != KindCubic {
		return false
	}
	e.Mode = mode
	e.Ha, e.Hb = curveq.EnforceModeNoEditedEnd(toCurveqMode(mode), e.Ha, e.Hb)
	s.bumpVer()

	return true
}

// BendEdgeTo moves the point on edge id at parameter t toward (tx, ty) by a
// minimal-norm perturbation of its handles, with the given stiffness.
// t is clamped to [0,1]. A Line edge auto-converts to Cubic first (handles
// set symmetric at 30% of the segment's length, mode Free) unless its
// length is < EpsLen, per spec.md §4.2. Returns false, leaving the edge
// unchanged, if the edge is absent or a polyline, (tx,ty)/stiffness is
// non-finite, stiffness <= 0, the edge (line or cubic) has length < EpsLen,
// or t lies so close to 0 or 1 that the solve is degenerate.
func (s *Store) BendEdgeTo(id uint64, t, tx, ty, stiffness float64) bool {
	idx, found := s.edgeIndex[id]
	if !found {
		return false
	}
	if !xmath.FiniteAll(t, tx, ty, stiffness) || stiffness <= 0 {
		return false
	}
	t = xmath.Clamp(t, 0, 1)

	e := &s.edges[idx].edge
	na, _ := s.Node(e.A)
	nb, _ := s.Node(e.B)
	a, b := na.Pos(), nb.Pos()

	// A Line's cubic form is written back only once the bend applies.
	ha, hb, mode := e.Ha, e.Hb, e.Mode
	if e.Kind == KindLine {
		if a.Dist(b) < xmath.EpsLen {
			return false
		}
		dir := b.Sub(a)
		ha, hb, mode = dir.Scale(0.3), dir.Scale(-0.3), Free
	} else if e.Kind != KindCubic {
		return false
	}
	if a.Dist(b) < xmath.EpsLen {
		return false
	}

	cubic := curveq.ControlCubic(a, b, ha, hb)
	res := bend.Solve(cubic, t, xmath.Point{tx, ty})
	if !res.Applied {
		return false
	}

	e.Kind = KindCubic
	e.Mode = mode
	e.Ha, e.Hb = curveq.EnforceMode(toCurveqMode(mode), res.Edited, ha.Add(res.DP1), hb.Add(res.DP2))
	s.bumpVer()

	return true
}
