// File: parse.go
// Role: interprets a tokenized SVG path into Store mutations, per
// spec.md §4.7.
package svgio

import (
	"github.com/katalvlaran/vecnet/caps"
	"github.com/katalvlaran/vecnet/internal/xmath"
	"github.com/katalvlaran/vecnet/store"
)

// AddPath ingests the SVG path data string d into s, merging coincident
// subpath endpoints via position-based vertex lookup at s.MergeTolerance(),
// and returns the number of edges created. Caps in limits bound the input
// length, command and subpath counts, and resulting node/edge counts;
// MaxExpandedSegs is not checked here. Coordinates outside
// [limits.MinCoord, limits.MaxCoord] are rejected.
func AddPath(s *store.Store, d string, limits caps.Limits) (int, error) {
	if len(d) > limits.MaxSVGLen {
		return 0, ErrCapsExceeded
	}

	toks, err := tokenize(d)
	if err != nil {
		return 0, err
	}
	if len(toks) > limits.MaxSVGCommands {
		return 0, ErrCapsExceeded
	}

	p := &pathState{s: s, limits: limits}
	edgesAdded := 0
	subpaths := 0

	for _, t := range toks {
		switch t.cmd {
		case 'M', 'm':
			if len(t.nums)%2 != 0 || len(t.nums) == 0 {
				return edgesAdded, ErrParse
			}
			subpaths++
			if subpaths > limits.MaxSVGSubpaths {
				return edgesAdded, ErrCapsExceeded
			}
			rel := t.cmd == 'm'
			for k := 0; k < len(t.nums); k += 2 {
				x, y := t.nums[k], t.nums[k+1]
				if rel && p.havePen {
					x, y = p.penX+x, p.penY+y
				}
				if err := p.moveTo(x, y); err != nil {
					return edgesAdded, err
				}
			}

		case 'L', 'l':
			if len(t.nums)%2 != 0 || len(t.nums) == 0 {
				return edgesAdded, ErrParse
			}
			rel := t.cmd == 'l'
			for k := 0; k < len(t.nums); k += 2 {
				x, y := t.nums[k], t.nums[k+1]
				if rel {
					x, y = p.penX+x, p.penY+y
				}
				n, err := p.lineTo(x, y)
				if err != nil {
					return edgesAdded, err
				}
				edgesAdded += n
			}

		case 'C', 'c':
			if len(t.nums)%6 != 0 || len(t.nums) == 0 {
				return edgesAdded, ErrParse
			}
			rel := t.cmd == 'c'
			for k := 0; k < len(t.nums); k += 6 {
				c1x, c1y := t.nums[k], t.nums[k+1]
				c2x, c2y := t.nums[k+2], t.nums[k+3]
				ex, ey := t.nums[k+4], t.nums[k+5]
				if rel {
					c1x, c1y = p.penX+c1x, p.penY+c1y
					c2x, c2y = p.penX+c2x, p.penY+c2y
					ex, ey = p.penX+ex, p.penY+ey
				}
				n, err := p.curveTo(c1x, c1y, c2x, c2y, ex, ey)
				if err != nil {
					return edgesAdded, err
				}
				edgesAdded += n
			}

		case 'Z', 'z':
			n, err := p.closePath()
			if err != nil {
				return edgesAdded, err
			}
			edgesAdded += n

		default:
			return edgesAdded, ErrParse
		}
	}

	return edgesAdded, nil
}

// pathState tracks the ingest pen position and subpath start, and performs
// position-based vertex merging.
type pathState struct {
	s              *store.Store
	limits         caps.Limits
	havePen        bool
	penX, penY     float64
	penNode        uint64
	startX, startY float64
	startNode      uint64
	haveStart      bool
}

func (p *pathState) checkBounds(x, y float64) error {
	if !xmath.FiniteAll(x, y) {
		return ErrParse
	}
	if x < p.limits.MinCoord || x > p.limits.MaxCoord || y < p.limits.MinCoord || y > p.limits.MaxCoord {
		return ErrOutOfBounds
	}

	return nil
}

// findOrCreateNode resolves (x, y) to a live node within the store's
// merge tolerance, creating one if no coincident node exists, per
// spec.md §4.7's position-based vertex merging.
func findOrCreateNode(s *store.Store, x, y float64) (uint64, bool) {
	tol := s.MergeTolerance()
	target := xmath.Point{x, y}
	for _, n := range s.Nodes() {
		if n.Pos().Dist(target) <= tol {
			return n.ID, true
		}
	}

	return s.AddNode(x, y)
}

func (p *pathState) moveTo(x, y float64) error {
	if err := p.checkBounds(x, y); err != nil {
		return err
	}
	if p.s.NodeCount() >= p.limits.MaxNodes {
		return ErrCapsExceeded
	}
	id, ok := findOrCreateNode(p.s, x, y)
	if !ok {
		return ErrParse
	}
	p.penX, p.penY, p.penNode, p.havePen = x, y, id, true
	p.startX, p.startY, p.startNode, p.haveStart = x, y, id, true

	return nil
}

func (p *pathState) lineTo(x, y float64) (int, error) {
	if err := p.checkBounds(x, y); err != nil {
		return 0, err
	}
	if !p.havePen {
		return 0, ErrParse
	}
	if p.s.EdgeCount() >= p.limits.MaxEdges {
		return 0, ErrCapsExceeded
	}
	id, ok := findOrCreateNode(p.s, x, y)
	if !ok {
		return 0, ErrParse
	}
	added := 0
	if id != p.penNode {
		if _, ok := p.s.AddEdge(p.penNode, id); ok {
			added = 1
		}
	}
	p.penX, p.penY, p.penNode = x, y, id

	return added, nil
}

func (p *pathState) curveTo(c1x, c1y, c2x, c2y, ex, ey float64) (int, error) {
	for _, pair := range [][2]float64{{c1x, c1y}, {c2x, c2y}, {ex, ey}} {
		if err := p.checkBounds(pair[0], pair[1]); err != nil {
			return 0, err
		}
	}
	if !p.havePen {
		return 0, ErrParse
	}
	if p.s.EdgeCount() >= p.limits.MaxEdges {
		return 0, ErrCapsExceeded
	}
	startX, startY, startNode := p.penX, p.penY, p.penNode
	endID, ok := findOrCreateNode(p.s, ex, ey)
	if !ok {
		return 0, ErrParse
	}
	added := 0
	if endID != startNode {
		eid, ok := p.s.AddEdge(startNode, endID)
		if ok {
			ha := xmath.Point{c1x - startX, c1y - startY}
			hb := xmath.Point{c2x - ex, c2y - ey}
			p.s.SetEdgeCubic(eid, ha[0], ha[1], hb[0], hb[1])
			added = 1
		}
	}
	p.penX, p.penY, p.penNode = ex, ey, endID

	return added, nil
}

func (p *pathState) closePath() (int, error) {
	if !p.havePen || !p.haveStart {
		return 0, nil
	}
	added := 0
	if p.penNode != p.startNode {
		if p.s.EdgeCount() >= p.limits.MaxEdges {
			return 0, ErrCapsExceeded
		}
		if _, ok := p.s.AddEdge(p.penNode, p.startNode); ok {
			added = 1
		}
	}
	p.penX, p.penY, p.penNode = p.startX, p.startY, p.startNode

	return added, nil
}
