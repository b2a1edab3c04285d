package bend

import (
	"testing"

	"github.com/katalvlaran/vecnet/curveq"
	"github.com/katalvlaran/vecnet/internal/xmath"
)

func TestSolve_MovesEvaluateToTarget(t *testing.T) {
	c := curveq.ControlCubic(xmath.Point{0, 0}, xmath.Point{10, 0}, xmath.Point{}, xmath.Point{})
	target := xmath.Point{5, 3}

	res := Solve(c, 0.5, target)
	if !res.Applied {
		t.Fatalf("Solve: expected Applied=true at t=0.5 on a non-degenerate cubic")
	}

	c.P1 = c.P1.Add(res.DP1)
	c.P2 = c.P2.Add(res.DP2)

	got := c.Evaluate(0.5)
	if dist(got, target) > 1e-9 {
		t.Errorf("after applying the bend perturbation, Evaluate(0.5) = %v, want %v", got, target)
	}
}

func TestSolve_MinimalNorm(t *testing.T) {
	c := curveq.ControlCubic(xmath.Point{0, 0}, xmath.Point{10, 0}, xmath.Point{}, xmath.Point{})
	res := Solve(c, 0.25, xmath.Point{1, 1})
	if !res.Applied {
		t.Fatalf("Solve: expected Applied=true")
	}
	// The minimal-norm solution makes dP1 and dP2 parallel (both scalar
	// multiples of the same direction d), since dP_i = (c_i/denom) * d.
	cross := res.DP1.Cross(res.DP2)
	if absf(cross) > 1e-9 {
		t.Errorf("Solve: DP1 x DP2 = %v, want ~0 (parallel perturbations)", cross)
	}
}

func TestSolve_EditedEndSwitchesAtMidpoint(t *testing.T) {
	c := curveq.ControlCubic(xmath.Point{0, 0}, xmath.Point{10, 0}, xmath.Point{1, 1}, xmath.Point{-1, 1})

	lo := Solve(c, 0.25, xmath.Point{2, 2})
	if lo.Edited != curveq.EditedA {
		t.Errorf("Solve at t=0.25: Edited = %v, want EditedA", lo.Edited)
	}
	hi := Solve(c, 0.75, xmath.Point{8, 2})
	if hi.Edited != curveq.EditedB {
		t.Errorf("Solve at t=0.75: Edited = %v, want EditedB", hi.Edited)
	}
}

func TestSolve_DegenerateEndpointsAreNoop(t *testing.T) {
	c := curveq.ControlCubic(xmath.Point{0, 0}, xmath.Point{10, 0}, xmath.Point{}, xmath.Point{})
	res := Solve(c, 0, xmath.Point{1, 1})
	if res.Applied {
		t.Errorf("Solve at t=0: expected Applied=false (c1=c2=0, zero denominator)")
	}
	res = Solve(c, 1, xmath.Point{1, 1})
	if res.Applied {
		t.Errorf("Solve at t=1: expected Applied=false (c1=c2=0, zero denominator)")
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func dist(a, b xmath.Point) float64 {
	return a.Sub(b).Length()
}
