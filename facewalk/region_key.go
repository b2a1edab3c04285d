// File: region_key.go
// Role: topology-stable 64-bit region key derivation, per spec.md §4.5.
package facewalk

// compressConsecutiveDuplicates removes adjacent repeats from ids (e.g. a
// face that grazes the same edge twice in a row due to a degenerate
// sub-segment split), preserving cyclic adjacency: the last and first
// elements are also compared.
func compressConsecutiveDuplicates(ids []uint64) []uint64 {
	if len(ids) == 0 {
		return ids
	}
	out := make([]uint64, 0, len(ids))
	for i, id := range ids {
		if i > 0 && id == out[len(out)-1] {
			continue
		}
		out = append(out, id)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	return out
}

// minRotation returns the lexicographically minimum rotation of ids.
// Uses Booth-style pairwise comparison; ids is small (one face boundary)
// so the naive O(n^2) comparison is deliberate over an O(n) variant, for
// clarity over performance (matches lvlath's deterministic-but-unfussy
// traversal helpers).
func minRotation(ids []uint64) []uint64 {
	n := len(ids)
	if n == 0 {
		return ids
	}
	best := 0
	for start := 1; start < n; start++ {
		if lessRotation(ids, start, best, n) {
			best = start
		}
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = ids[(best+i)%n]
	}

	return out
}

func lessRotation(ids []uint64, a, b, n int) bool {
	for i := 0; i < n; i++ {
		va := ids[(a+i)%n]
		vb := ids[(b+i)%n]
		if va != vb {
			return va < vb
		}
	}

	return false
}

func reversed(ids []uint64) []uint64 {
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}

	return out
}

func lexLess(a, b []uint64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// CanonicalCycle compresses consecutive duplicates in ids, then returns
// whichever of its minimum rotation or its reverse's minimum rotation is
// lexicographically smaller. This is stable under pure bends (ids
// unchanged), under adding/removing edges unrelated to the face, and under
// any renaming/reordering of vertex ids, per spec.md §4.5.
func CanonicalCycle(ids []uint64) []uint64 {
	compressed := compressConsecutiveDuplicates(ids)
	fwd := minRotation(compressed)
	rev := minRotation(reversed(compressed))
	if lexLess(rev, fwd) {
		return rev
	}

	return fwd
}

// fnv1a64 hashes the little-endian byte sequence of ids with FNV-1a, per
// spec.md §9's cross-platform determinism requirement.
func fnv1a64(ids []uint64) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, id := range ids {
		for shift := 0; shift < 64; shift += 8 {
			b := byte(id >> shift)
			h ^= uint64(b)
			h *= prime
		}
	}

	return h
}

// RegionKey computes the stable 64-bit region key for a face's
// originating edge-id sequence.
func RegionKey(edgeCycle []uint64) uint64 {
	return fnv1a64(CanonicalCycle(edgeCycle))
}
