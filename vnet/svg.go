// File: svg.go
// Role: add_svg_path / to_svg_paths, both API surfaces.
package vnet

import "github.com/katalvlaran/vecnet/svgio"

// AddSVGPath ingests the SVG path data string d, returning the number of
// edges created, or (0, false) on a parse error or cap violation.
func (s *Store) AddSVGPath(d string) (int, bool) {
	n, err := svgio.AddPath(s.store, d, s.limits)
	if err != nil {
		return 0, false
	}

	return n, true
}

// AddSVGPathRes is AddSVGPath's strict counterpart. Ingestion is not
// rolled back: an error raised after some commands were applied leaves the
// nodes and edges they created in the store (and GeomVersion advanced).
func (s *Store) AddSVGPathRes(d string) Res[int] {
	n, err := svgio.AddPath(s.store, d, s.limits)
	if err != nil {
		switch err {
		case svgio.ErrCapsExceeded:
			return fail[int](errCapsExceeded())
		case svgio.ErrOutOfBounds:
			return fail[int](errOutOfBounds())
		default:
			return fail[int](errSVGParse(err.Error()))
		}
	}

	return ok(n)
}

// ToSVGPaths emits every edge as an independent SVG path fragment.
func (s *Store) ToSVGPaths() []string {
	return svgio.ToPaths(s.store)
}

// ToSVGPathsRes is ToSVGPaths's strict counterpart; always ok.
func (s *Store) ToSVGPathsRes() Res[[]string] {
	return ok(svgio.ToPaths(s.store))
}
