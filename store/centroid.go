// File: centroid.go
// Role: holds the previous Compute() call's region centroids, so package
// region can perform its best-effort nearest-centroid remap across a
// topology change, per spec.md §4.5.
package store

import "github.com/katalvlaran/vecnet/internal/xmath"

// LastCentroids returns a copy of the region centroids recorded by the
// most recent region recomputation.
func (s *Store) LastCentroids() map[uint64]xmath.Point {
	out := make(map[uint64]xmath.Point, len(s.lastCentroids))
	for k, v := range s.lastCentroids {
		out[k] = v
	}

	return out
}

// SetLastCentroids replaces the recorded region centroids. Called by
// package region at the end of each Compute().
func (s *Store) SetLastCentroids(m map[uint64]xmath.Point) {
	s.lastCentroids = m
}
