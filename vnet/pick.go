// File: pick.go
// Role: pick(x,y,tol), both API surfaces.
package vnet

import (
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/pick"
)

// Pick returns the closest hit to (x, y) within tol (handle > node >
// edge priority), or (pick.Result{}, false) if nothing qualifies.
func (s *Store) Pick(x, y, tol float64) (pick.Result, bool) {
	return pick.Pick(s.store, x, y, tol)
}

// PickRes is Pick's strict counterpart. "Nothing hit" is ok with a
// zero-value *pick.Result, per spec.md §4.8.
func (s *Store) PickRes(x, y, tol float64) Res[*pick.Result] {
	if !xmath.FiniteAll(x, y, tol) {
		return fail[*pick.Result](errNonFinite("x,y,tol"))
	}
	if tol < 0 {
		return fail[*pick.Result](errOutOfRange("tol", 0, 1e300, tol))
	}
	r, found := pick.Pick(s.store, x, y, tol)
	if !found {
		return ok[*pick.Result](nil)
	}

	return ok(&r)
}
