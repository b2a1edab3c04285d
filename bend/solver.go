// File: solver.go
// Role: closed-form least-squares bend solve, per spec.md §4.3.
package bend

import (
	"github.com/katalvlaran/vecnet/curveq"
	"github.com/katalvlaran/vecnet/internal/xmath"
)

// Result carries the minimal-norm perturbation to apply to a cubic edge's
// two handles, and which end was "edited" so callers can re-enforce the
// handle-mode constraint afterward.
type Result struct {
	DP1, DP2 xmath.Point
	Edited   curveq.EditedEnd
	Applied  bool
}

// Solve computes the bend perturbation for cubic c at parameter t toward
// target T. It takes no stiffness argument: with equal weights on both
// handles the stiffness cancels out of the closed-form minimum-norm
// solution, so callers validate it (> 0) and do not pass it here; only the
// denominator degeneracy guard matters in this function.
//
// Let c1 = 3(1-t)^2 t, c2 = 3(1-t) t^2, d = T - B(t). The constraint is
// c1*dP1 + c2*dP2 = d; minimizing stiffness*(|dP1|^2+|dP2|^2) gives
// dP_i = (c_i / (c1^2+c2^2)) * d.
//
// Applied is false (a no-op) if c1^2+c2^2 < EpsDenom.
func Solve(c curveq.Cubic, t float64, target xmath.Point) Result {
	mt := 1 - t
	c1 := 3 * mt * mt * t
	c2 := 3 * mt * t * t

	denom := c1*c1 + c2*c2
	if denom < xmath.EpsDenom {
		return Result{Applied: false}
	}

	d := target.Sub(c.Evaluate(t))

	edited := curveq.EditedA
	if t > 0.5 {
		edited = curveq.EditedB
	}

	return Result{
		DP1:     d.Scale(c1 / denom),
		DP2:     d.Scale(c2 / denom),
		Edited:  edited,
		Applied: true,
	}
}
