// File: region.go
// Role: Region type and Compute, the lazy recomputation pipeline invoked by
// get_regions, per spec.md §4.5.
package region

import (
	"sort"

	"github.com/katalvlaran/vecnet/facewalk"
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/planarize"
	"github.com/katalvlaran/vecnet/store"
)

// Region is a value copy of one discovered face plus its persisted
// fill/color state, per spec.md §3: "Regions as returned to callers are
// value copies; the caller may retain them but they become stale after the
// next geom_ver tick."
type Region struct {
	Key      uint64
	Area     float32
	Filled   bool
	Color    store.Color
	HasColor bool
	// Points is flat-interleaved [x0,y0,x1,y1,...]; the first point is
	// repeated as the last to close the polygon, per spec.md §6.
	Points []float32
}

// Compute runs the planarizer and face walker over s's current edge set,
// reconciles the resulting region keys against s's persisted fill/color
// map (performing the nearest-centroid remap on topology change), and
// returns a value-copy snapshot of every bounded region. Always succeeds:
// an edge set with no bounded faces returns an empty slice, per spec.md
// §4.1's "get_regions → always ok".
func Compute(s *store.Store) []Region {
	nodeAt := func(id uint64) (xmath.Point, bool) {
		n, ok := s.Node(id)
		if !ok {
			return xmath.Point{}, false
		}

		return n.Pos(), true
	}

	g := planarize.Planarize(s.Edges(), nodeAt, s.FlattenTolerance())
	faces := facewalk.Walk(g)
	if len(faces) == 0 {
		faces = facewalk.FallbackCycles(g)
	}

	type keyed struct {
		face     facewalk.Face
		key      uint64
		centroid xmath.Point
	}
	items := make([]keyed, 0, len(faces))
	for _, f := range faces {
		items = append(items, keyed{face: f, key: facewalk.RegionKey(f.EdgeCycle), centroid: centroidOf(f.Points)})
	}

	newCentroids := make(map[uint64]xmath.Point, len(items))
	newKeys := make([]uint64, 0, len(items))
	for _, it := range items {
		newCentroids[it.key] = it.centroid
		newKeys = append(newKeys, it.key)
	}

	reconcile(s, newKeys, newCentroids)
	s.SetLastCentroids(newCentroids)

	out := make([]Region, 0, len(items))
	for _, it := range items {
		fill, _ := s.RegionFillState(it.key)
		out = append(out, Region{
			Key:      it.key,
			Area:     float32(it.face.Area),
			Filled:   fill.Filled,
			Color:    fill.Color,
			HasColor: fill.HasColor,
			Points:   flatten(it.face.Points),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

func centroidOf(pts []xmath.Point) xmath.Point {
	if len(pts) == 0 {
		return xmath.Point{}
	}
	// Polygon centroid by the shoelace-weighted formula; pts[0]==pts[last].
	var cx, cy, areaAcc float64
	n := len(pts)
	for i := 0; i+1 < n; i++ {
		cross := pts[i][0]*pts[i+1][1] - pts[i+1][0]*pts[i][1]
		areaAcc += cross
		cx += (pts[i][0] + pts[i+1][0]) * cross
		cy += (pts[i][1] + pts[i+1][1]) * cross
	}
	if abs(areaAcc) < xmath.EpsDenom {
		// Degenerate polygon: fall back to the vertex average.
		var sx, sy float64
		for i := 0; i+1 < n; i++ {
			sx += pts[i][0]
			sy += pts[i][1]
		}

		return xmath.Point{sx / float64(n-1), sy / float64(n-1)}
	}
	areaAcc /= 2
	cx /= 6 * areaAcc
	cy /= 6 * areaAcc

	return xmath.Point{cx, cy}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func flatten(pts []xmath.Point) []float32 {
	out := make([]float32, 0, len(pts)*2)
	for _, p := range pts {
		out = append(out, float32(p[0]), float32(p[1]))
	}

	return out
}
