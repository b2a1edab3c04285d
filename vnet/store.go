// File: store.go
// Role: the Store type: store.Store plus a region cache keyed by
// geom_ver, per spec.md §4.1 and §4.4's "region recomputation is lazy
// within a read call".
package vnet

import (
	"github.com/katalvlaran/vecnet/caps"
	"github.com/katalvlaran/vecnet/region"
	"github.com/katalvlaran/vecnet/store"
)

// Store is the public facade over one vector network: a node/edge arena,
// ingestion caps, and a lazily (re)computed region cache. The zero value
// is not usable; construct with New.
type Store struct {
	store  *store.Store
	limits caps.Limits

	regionCacheValid bool
	regionCacheVer   uint64
	regionCache      []region.Region
}

// New constructs an empty Store with the spec's default caps and
// tolerances, as overridden by opts.
func New(opts ...StoreOption) *Store {
	s := &Store{
		store:  store.New(),
		limits: caps.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GeomVersion returns the current geom_ver: it strictly increases on any
// mutating call that succeeds and is unchanged by a failed strict call
// (except an AddSVGPathRes that fails after ingesting part of its input).
func (s *Store) GeomVersion() uint64 { return s.store.Ver() }

// FillVersion returns the current fill_ver: it increases only on region
// fill/color changes, independent of GeomVersion.
func (s *Store) FillVersion() uint64 { return s.store.FillVer() }

// regions returns the cached region snapshot, recomputing it if the
// store's geometry has changed since the last call.
func (s *Store) regions() []region.Region {
	ver := s.store.Ver()
	if s.regionCacheValid && s.regionCacheVer == ver {
		return s.regionCache
	}
	s.regionCache = region.Compute(s.store)
	s.regionCacheVer = ver
	s.regionCacheValid = true

	return s.regionCache
}
