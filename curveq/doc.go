// Package curveq implements the curve math of SPEC_FULL.md §5 (spec.md
// §4.2): cubic Bezier evaluation, adaptive flattening by recursive de
// Casteljau subdivision, and handle-mode constraint enforcement
// (Free | Mirrored | Aligned).
//
// Every function here is pure: it takes points and returns points, with no
// dependency on package store, so store, planarize, pick and svgio can all
// import curveq without creating a cycle.
package curveq
