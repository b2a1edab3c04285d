// File: remap.go
// Role: fill/color persistence across recomputation, including the
// best-effort nearest-centroid remap on topology change, per spec.md §4.5
// and SPEC_FULL.md §7's recorded Open Question decision.
package region

import (
	"sort"

	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/store"
)

// reconcile updates s's persisted fill map in place so that:
//   - keys present in both the old and new sets keep their state untouched;
//   - keys new in the current set default to unfilled/uncolored;
//   - keys absent from the current set are remapped, best-effort, to the
//     nearest (by centroid) newly-introduced key not already matched to
//     another old key, with ties broken by ascending FNV-1a hash value of
//     the candidate new key;
//   - any old key that cannot be matched is discarded.
func reconcile(s *store.Store, newKeys []uint64, newCentroids map[uint64]xmath.Point) {
	newSet := make(map[uint64]struct{}, len(newKeys))
	for _, k := range newKeys {
		newSet[k] = struct{}{}
	}

	oldKeys := s.FillKeys()
	oldCentroids := s.LastCentroids()

	var unmatchedOld []uint64
	for _, k := range oldKeys {
		if _, ok := newSet[k]; !ok {
			unmatchedOld = append(unmatchedOld, k)
		}
	}

	var freshNew []uint64
	for _, k := range newKeys {
		found := false
		for _, ok := range oldKeys {
			if ok == k {
				found = true

				break
			}
		}
		if !found {
			freshNew = append(freshNew, k)
		}
	}
	sort.Slice(freshNew, func(i, j int) bool { return freshNew[i] < freshNew[j] })

	claimed := make(map[uint64]bool, len(freshNew))
	sort.Slice(unmatchedOld, func(i, j int) bool { return unmatchedOld[i] < unmatchedOld[j] })
	for _, old := range unmatchedOld {
		oc, haveCentroid := oldCentroids[old]
		if !haveCentroid {
			continue // nothing to compare against: discard
		}
		best, bestDist, found := uint64(0), 0.0, false
		for _, cand := range freshNew {
			if claimed[cand] {
				continue
			}
			nc := newCentroids[cand]
			d := oc.Dist(nc)
			if !found || d < bestDist || (d == bestDist && cand < best) {
				best, bestDist, found = cand, d, true
			}
		}
		if found {
			claimed[best] = true
			s.RemapRegionKey(old, best)
		}
	}

	s.EnsureRegionKeys(newKeys)
}
