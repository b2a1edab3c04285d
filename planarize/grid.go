// File: grid.go
// Role: uniform-grid broad phase that prunes candidate segment pairs by
// AABB overlap before the exact intersection test, per spec.md §4.4.
package planarize

import (
	"math"

	"github.com/katalvlaran/vecnet/internal/xmath"
)

// cellSize picks a grid cell size from the segment population's bounding
// box so that the average cell holds O(1) segments; callers with a known
// good scale may bypass this by passing their own cell size to buildGrid.
func cellSize(segs []Segment) float64 {
	if len(segs) == 0 {
		return 1
	}
	minX, minY := segs[0].A[0], segs[0].A[1]
	maxX, maxY := minX, minY
	for _, s := range segs {
		for _, p := range [2]xmath.Point{s.A, s.B} {
			if p[0] < minX {
				minX = p[0]
			}
			if p[0] > maxX {
				maxX = p[0]
			}
			if p[1] < minY {
				minY = p[1]
			}
			if p[1] > maxY {
				maxY = p[1]
			}
		}
	}
	w, h := maxX-minX, maxY-minY
	area := w * h
	if area <= 0 {
		return 1
	}
	// Target ~1 segment per cell on average.
	size := 1.0
	if n := float64(len(segs)); n > 0 {
		size = math.Sqrt(area / n)
	}
	if size < xmath.EpsPos {
		size = 1
	}

	return size
}

type cellKey struct{ cx, cy int }

// grid buckets segment indices by the cells their AABB spans.
type grid struct {
	cell    float64
	buckets map[cellKey][]int
}

func buildGrid(segs []Segment, cell float64) *grid {
	g := &grid{cell: cell, buckets: make(map[cellKey][]int)}
	for i, s := range segs {
		minX, minY, maxX, maxY := aabb(s)
		cx0, cy0 := int(minX/cell), int(minY/cell)
		cx1, cy1 := int(maxX/cell), int(maxY/cell)
		for cx := cx0; cx <= cx1; cx++ {
			for cy := cy0; cy <= cy1; cy++ {
				k := cellKey{cx, cy}
				g.buckets[k] = append(g.buckets[k], i)
			}
		}
	}

	return g
}

func aabb(s Segment) (minX, minY, maxX, maxY float64) {
	minX, maxX = s.A[0], s.A[0]
	if s.B[0] < minX {
		minX = s.B[0]
	}
	if s.B[0] > maxX {
		maxX = s.B[0]
	}
	minY, maxY = s.A[1], s.A[1]
	if s.B[1] < minY {
		minY = s.B[1]
	}
	if s.B[1] > maxY {
		maxY = s.B[1]
	}

	return minX, minY, maxX, maxY
}

// CandidatePairs returns every (i, j), i < j, pair of segment indices whose
// AABBs share at least one grid cell, deduplicated by the ordered index
// pair per spec.md §4.4.
func CandidatePairs(segs []Segment) [][2]int {
	if len(segs) < 2 {
		return nil
	}
	g := buildGrid(segs, cellSize(segs))
	seen := make(map[[2]int]struct{})
	var out [][2]int
	for _, bucket := range g.buckets {
		for a := 0; a < len(bucket); a++ {
			for b := a + 1; b < len(bucket); b++ {
				i, j := bucket[a], bucket[b]
				if i > j {
					i, j = j, i
				}
				if i == j {
					continue
				}
				key := [2]int{i, j}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, key)
			}
		}
	}

	return out
}
