// File: marshal.go
// Role: serializes a *store.Store to the versioned JSON document.
package persist

import (
	"encoding/json"
	"sort"

	"github.com/katalvlaran/vecnet/store"
)

// ToJSON renders s as the current-version document format.
func ToJSON(s *store.Store) ([]byte, error) {
	nodes := s.Nodes()
	edges := s.Edges()
	keys := s.FillKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	doc := document{
		Version: CurrentVersion,
		Nodes:   make([]nodeDoc, 0, len(nodes)),
		Edges:   make([]edgeDoc, 0, len(edges)),
		Fills:   make([]fillDoc, 0, len(keys)),
	}

	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, nodeDoc{ID: n.ID, X: float64(n.X), Y: float64(n.Y)})
	}

	for _, e := range edges {
		ed := edgeDoc{ID: e.ID, A: e.A, B: e.B, Kind: e.Kind.String()}
		switch e.Kind {
		case store.KindCubic:
			ed.Ha = &pointDoc{X: e.Ha.X(), Y: e.Ha.Y()}
			ed.Hb = &pointDoc{X: e.Hb.X(), Y: e.Hb.Y()}
			ed.Mode = e.Mode.String()
		case store.KindPolyline:
			ed.Points = make([]pointDoc, len(e.Points))
			for i, p := range e.Points {
				ed.Points[i] = pointDoc{X: p.X(), Y: p.Y()}
			}
		}
		doc.Edges = append(doc.Edges, ed)
	}

	for _, k := range keys {
		f, _ := s.RegionFillState(k)
		fd := fillDoc{Key: k, Filled: f.Filled}
		if f.HasColor {
			fd.Color = &colorDoc{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: f.Color.A}
		}
		doc.Fills = append(doc.Fills, fd)
	}

	return json.Marshal(doc)
}
