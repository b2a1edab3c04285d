// File: quantize.go
// Role: vertex quantization to a 0.1px grid, averaging unquantized
// positions that share a quantized key, per spec.md §4.4.
package planarize

import (
	"math"

	"github.com/katalvlaran/vecnet/internal/xmath"
)

type quantKey struct{ qx, qy int64 }

func quantize(p xmath.Point) quantKey {
	return quantKey{
		qx: int64(math.Round(p[0] * xmath.QuantScale)),
		qy: int64(math.Round(p[1] * xmath.QuantScale)),
	}
}

// vertexPool accumulates unquantized positions under their quantized key
// and resolves each to the arithmetic mean of its contributors, reducing
// drift per spec.md §4.4.
type vertexPool struct {
	keyToIndex map[quantKey]int
	sum        []xmath.Point
	count      []int
}

func newVertexPool() *vertexPool {
	return &vertexPool{keyToIndex: make(map[quantKey]int)}
}

// Add registers p and returns its vertex index, merging with any existing
// vertex sharing the same quantized key.
func (vp *vertexPool) Add(p xmath.Point) int {
	k := quantize(p)
	idx, ok := vp.keyToIndex[k]
	if !ok {
		idx = len(vp.sum)
		vp.keyToIndex[k] = idx
		vp.sum = append(vp.sum, p)
		vp.count = append(vp.count, 1)

		return idx
	}
	vp.sum[idx] = vp.sum[idx].Add(p)
	vp.count[idx]++

	return idx
}

// Positions returns the averaged position of every vertex, indexed by
// vertex index.
func (vp *vertexPool) Positions() []xmath.Point {
	out := make([]xmath.Point, len(vp.sum))
	for i, s := range vp.sum {
		out[i] = s.Scale(1 / float64(vp.count[i]))
	}

	return out
}
