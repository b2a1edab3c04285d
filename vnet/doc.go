// Package vnet is the public facade of the vector-network geometry
// engine, per spec.md §4. It composes package store's arena with a
// region cache keyed by geom_ver and publishes two parallel operation
// surfaces: a lenient one (clamps, returns false/zero on trivial
// errors, never panics) and a strict one (exact validation, a tagged
// Res[T] result, no mutation on error, with one exception: AddSVGPathRes
// keeps whatever it ingested before the failing command), mirroring the
// dual API split
// lvlath's builder package draws between its permissive constructors
// and its validating ones.
package vnet
