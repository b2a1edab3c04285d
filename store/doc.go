// Package store implements the vecnet node/edge arena: the data model of
// SPEC_FULL.md §5 (spec.md §3). It owns the Node and Edge catalogs, assigns
// stable non-negative integer ids that are never reassigned within a store's
// lifetime, and tracks the monotonic geom_ver / fill_ver counters consumed
// by caches layered on top (region, pick, planarize).
//
// Mirroring lvlath/core's split between a Graph facade and its locking
// primitives, Store exposes mutation methods that validate inputs and leave
// the arena untouched on any rejected mutation — every successful mutation
// that can affect geometry bumps Ver(); region fill/color changes bump
// FillVer() instead (see fill.go).
//
// Store is not safe for concurrent use from multiple goroutines; per
// SPEC_FULL.md §5 the engine is single-threaded and synchronous, and callers
// that parallelize must own one Store per goroutine.
package store
