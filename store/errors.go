// File: errors.go
// Role: sentinel errors for the lenient Go-error path of package store.
//
// Error policy (matches lvlath/core's convention):
//   - Only sentinel variables are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
package store

import "errors"

var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("store: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("store: edge not found")

	// ErrSelfLoop indicates an edge was requested with a == b.
	ErrSelfLoop = errors.New("store: self-loop edge not allowed")

	// ErrNonFinite indicates a supplied coordinate or parameter is NaN/Inf.
	ErrNonFinite = errors.New("store: non-finite value")

	// ErrNotCubic indicates a cubic-only operation targeted a non-cubic edge.
	ErrNotCubic = errors.New("store: edge is not cubic")

	// ErrNotPolyline indicates a polyline-only operation targeted a non-polyline edge.
	ErrNotPolyline = errors.New("store: edge is not a polyline")

	// ErrInvalidEnd indicates a handle end selector outside {0,1}.
	ErrInvalidEnd = errors.New("store: invalid handle end")

	// ErrInvalidMode indicates an unrecognized HandleMode value.
	ErrInvalidMode = errors.New("store: invalid handle mode")

	// ErrOutOfRange indicates a numeric parameter outside its documented domain.
	ErrOutOfRange = errors.New("store: parameter out of range")

	// ErrRegionNotFound indicates a region key unknown to the current fill map.
	ErrRegionNotFound = errors.New("store: region not found")
)
