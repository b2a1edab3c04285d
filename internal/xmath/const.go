// Package xmath centralizes the epsilon constants and small float/vector
// helpers shared by every geometry package in vecnet (curveq, bend,
// planarize, facewalk, region, pick). Keeping them in one package gives the
// engine a single source of truth, the way builder/constants.go centralizes
// shared numeric constants for the builder package's constructors.
package xmath

import "math"

// Shared epsilon constants. Values and names are fixed by the engine's
// public contract; do not rename or rescale without updating every caller.
const (
	// EpsPos is the tolerance for endpoint coincidence / vertex merging.
	EpsPos = 1e-4
	// EpsLen is the minimum edge/handle length treated as non-degenerate.
	EpsLen = 1e-6
	// EpsDenom is the minimum denominator magnitude before a division is
	// treated as a near-parallel or near-singular degeneracy.
	EpsDenom = 1e-8
	// EpsFaceArea is the minimum |signed area| for a face walk to be
	// accepted as a bounded face.
	EpsFaceArea = 1e-2
	// EpsAngle is the angular tolerance for antiparallel/aligned handle checks.
	EpsAngle = 1e-6
	// EpsConstraint is the tolerance for handle-mode constraint checks
	// (e.g. |ha+hb| < EpsConstraint for Mirrored).
	EpsConstraint = 1e-3
	// QuantScale is the vertex quantization grid scale (0.1px grid).
	QuantScale = 10.0
	// MaxFlattenDepth caps recursive Bezier flattening depth.
	MaxFlattenDepth = 16

	// DefaultFlattenTolerance is the default curve-flatness threshold in px.
	DefaultFlattenTolerance = 0.25
	// MinFlattenTolerance and MaxFlattenTolerance bound SetFlattenTolerance.
	MinFlattenTolerance = 0.01
	MaxFlattenTolerance = 10.0
)

// Finite reports whether v is a finite (non-NaN, non-Inf) float64.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteAll reports whether every value in vs is finite.
func FiniteAll(vs ...float64) bool {
	for _, v := range vs {
		if !Finite(v) {
			return false
		}
	}

	return true
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
