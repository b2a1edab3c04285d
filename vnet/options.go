// File: options.go
// Role: functional options for constructing a Store, in the style of
// lvlath/core's GraphOption and lvlath/builder's BuilderOption.
package vnet

import "github.com/katalvlaran/vecnet/caps"

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithFlattenTolerance sets the initial curve-flatness threshold (px),
// clamped to [0.01, 10.0]. Non-finite values are ignored.
func WithFlattenTolerance(tol float64) StoreOption {
	return func(s *Store) {
		s.store.SetFlattenTolerance(tol)
	}
}

// WithMergeTolerance sets the initial SVG endpoint-merge tolerance.
func WithMergeTolerance(eps float64) StoreOption {
	return func(s *Store) {
		s.store.SetMergeTolerance(eps)
	}
}

// WithCaps tightens the ingestion caps applied to add_svg_path/from_json.
// Every field is clamped against caps.Default() so an embedder can only
// lower a limit, never raise it above the spec's numbers.
func WithCaps(limits caps.Limits) StoreOption {
	return func(s *Store) {
		d := caps.Default()
		s.limits = caps.Limits{
			MaxNodes:                 minInt(limits.MaxNodes, d.MaxNodes),
			MaxEdges:                 minInt(limits.MaxEdges, d.MaxEdges),
			MaxPolylinePointsPerEdge: minInt(limits.MaxPolylinePointsPerEdge, d.MaxPolylinePointsPerEdge),
			MaxTotalPolylinePoints:   minInt(limits.MaxTotalPolylinePoints, d.MaxTotalPolylinePoints),
			MaxSVGLen:                minInt(limits.MaxSVGLen, d.MaxSVGLen),
			MaxSVGCommands:           minInt(limits.MaxSVGCommands, d.MaxSVGCommands),
			MaxSVGSubpaths:           minInt(limits.MaxSVGSubpaths, d.MaxSVGSubpaths),
			MaxExpandedSegs:          minInt(limits.MaxExpandedSegs, d.MaxExpandedSegs),
			MinCoord:                 maxFloat(limits.MinCoord, d.MinCoord),
			MaxCoord:                 minFloat(limits.MaxCoord, d.MaxCoord),
		}
	}
}

// Telemetry receives diagnostic codes for suppressed computations (a cap
// hit, a face-walk step-cap abort). Implementations must not block or
// retain args beyond the call.
type Telemetry interface {
	Warn(code string, args ...any)
}

// WithTelemetry installs a sink for diagnostic warnings. A nil t disables
// telemetry.
func WithTelemetry(t Telemetry) StoreOption {
	return func(s *Store) {
		if t == nil {
			s.store.SetTelemetry(nil)

			return
		}
		s.store.SetTelemetry(t.Warn)
	}
}

func minInt(a, b int) int {
	if a <= 0 || a > b {
		return b
	}

	return a
}

func minFloat(a, b float64) float64 {
	if a > b {
		return b
	}

	return a
}

func maxFloat(a, b float64) float64 {
	if a < b {
		return b
	}

	return a
}
