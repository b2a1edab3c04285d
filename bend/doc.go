// Package bend implements the minimal-perturbation bend solver of
// SPEC_FULL.md §5 (spec.md §4.3): given a cubic edge, a parameter t, a
// target point T and a stiffness, solve for the minimum-norm handle
// perturbation (dP1, dP2) that moves B(t) to T.
package bend
