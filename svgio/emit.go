// File: emit.go
// Role: emits the edges of a Store as SVG path fragments, per spec.md
// §4.7. Each edge becomes its own `M ... L|C ...` fragment; the caller
// is responsible for joining fragments however their document wants
// (single multi-subpath `d`, or one `<path>` per fragment).
package svgio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecnet/store"
)

// ToPaths renders every edge in s as an independent SVG path fragment in
// ascending edge-id order (deterministic, matching the Store's other
// accessors). Line and polyline edges emit `M x,y L ...`; cubic edges
// emit `M x,y C c1x,c1y c2x,c2y ex,ey`.
func ToPaths(s *store.Store) []string {
	edges := s.Edges()
	frags := make([]string, 0, len(edges))
	for _, e := range edges {
		a, aok := s.Node(e.A)
		b, bok := s.Node(e.B)
		if !aok || !bok {
			continue
		}
		frags = append(frags, fragmentFor(e, a, b))
	}

	return frags
}

func fragmentFor(e store.Edge, a, b store.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %s", fmtPoint(float64(a.X), float64(a.Y)))

	switch e.Kind {
	case store.KindCubic:
		c1x, c1y := float64(a.X)+e.Ha.X(), float64(a.Y)+e.Ha.Y()
		c2x, c2y := float64(b.X)+e.Hb.X(), float64(b.Y)+e.Hb.Y()
		fmt.Fprintf(&sb, " C %s %s %s",
			fmtPoint(c1x, c1y), fmtPoint(c2x, c2y), fmtPoint(float64(b.X), float64(b.Y)))

	case store.KindPolyline:
		for _, pt := range e.Points {
			fmt.Fprintf(&sb, " L %s", fmtPoint(pt.X(), pt.Y()))
		}
		fmt.Fprintf(&sb, " L %s", fmtPoint(float64(b.X), float64(b.Y)))

	default: // KindLine
		fmt.Fprintf(&sb, " L %s", fmtPoint(float64(b.X), float64(b.Y)))
	}

	return sb.String()
}

func fmtPoint(x, y float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64) + "," + strconv.FormatFloat(y, 'g', -1, 64)
}
