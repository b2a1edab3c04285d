// File: handles.go
// Role: handle-mode constraint enforcement (Free | Mirrored | Aligned),
// per spec.md §4.2.
package curveq

import "github.com/katalvlaran/vecnet/internal/xmath"

// HandleMode mirrors store.HandleMode without importing package store, so
// this package stays a leaf with no dependency on the arena.
type HandleMode uint8

const (
	Free HandleMode = iota
	Mirrored
	Aligned
)

// EditedEnd selects which handle was just touched by the caller; the
// opposite handle is adjusted to satisfy the constraint.
type EditedEnd uint8

const (
	EditedA EditedEnd = iota
	EditedB
)

// EnforceMode re-enforces the constraint between ha (end A) and hb (end B)
// for the given mode, given which end was just edited. It returns the
// (possibly unchanged) pair (ha, hb).
//
//   - Free: no-op.
//   - Mirrored: opposite := -edited.
//   - Aligned: opposite's direction becomes -edited/|edited|, opposite's
//     length is preserved. No-op if |edited| < EpsLen.
func EnforceMode(mode HandleMode, edited EditedEnd, ha, hb xmath.Point) (xmath.Point, xmath.Point) {
	switch mode {
	case Mirrored:
		if edited == EditedA {
			hb = ha.Scale(-1)
		} else {
			ha = hb.Scale(-1)
		}
	case Aligned:
		if edited == EditedA {
			if ha.Length() < xmath.EpsLen {
				return ha, hb
			}
			dir := ha.Normalized().Scale(-1)
			hb = dir.Scale(hb.Length())
		} else {
			if hb.Length() < xmath.EpsLen {
				return ha, hb
			}
			dir := hb.Normalized().Scale(-1)
			ha = dir.Scale(ha.Length())
		}
	case Free:
		// no-op
	}

	return ha, hb
}

// EnforceModeNoEditedEnd re-enforces Mirrored with no edited-end hint, per
// spec.md §4.2: use the arithmetic mean length on both sides along the line
// ha <-> -ha. Aligned and Free are no-ops without a hint (they need a
// driver end to know which direction to preserve).
func EnforceModeNoEditedEnd(mode HandleMode, ha, hb xmath.Point) (xmath.Point, xmath.Point) {
	if mode != Mirrored {
		return ha, hb
	}
	lenA := ha.Length()
	lenB := hb.Length()
	if lenA < xmath.EpsLen && lenB < xmath.EpsLen {
		return ha, hb
	}
	mean := (lenA + lenB) / 2
	// Direction is taken from whichever handle is non-degenerate; if both
	// are, prefer ha's direction (arbitrary but deterministic tie-break).
	dir := ha
	if dir.Length() < xmath.EpsLen {
		dir = hb.Scale(-1)
	}
	dir = dir.Normalized()

	return dir.Scale(mean), dir.Scale(-mean)
}

// AntiparallelWithin reports whether ha and hb point in opposite directions,
// i.e. the Aligned invariant: tol bounds 1 + cos(theta), where theta is the
// angle between the handles (0 when they are exactly opposite).
// Degenerate (near-zero-length) handles are trivially considered satisfied.
func AntiparallelWithin(ha, hb xmath.Point, tol float64) bool {
	la, lb := ha.Length(), hb.Length()
	if la < xmath.EpsLen || lb < xmath.EpsLen {
		return true
	}
	cosTheta := ha.Dot(hb) / (la * lb)
	cosTheta = xmath.Clamp(cosTheta, -1, 1)
	// Antiparallel means the angle between them is pi; compare cos to -1.
	return (1 + cosTheta) <= tol
}
