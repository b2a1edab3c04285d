// File: json.go
// Role: to_json / from_json, both API surfaces.
package vnet

import (
	"github.com/katalvlaran/vecnet/persist"
	"github.com/katalvlaran/vecnet/store"
)

// ToJSON renders the current store as the versioned JSON document.
func (s *Store) ToJSON() ([]byte, bool) {
	data, err := persist.ToJSON(s.store)
	if err != nil {
		return nil, false
	}

	return data, true
}

// ToJSONRes is ToJSON's strict counterpart.
func (s *Store) ToJSONRes() Res[[]byte] {
	data, err := persist.ToJSON(s.store)
	if err != nil {
		return fail[[]byte](errJSONParse(err.Error()))
	}

	return ok(data)
}

// FromJSON replaces the store's contents with the document encoded in
// data. On any error the existing store is left untouched (the document
// is decoded into a scratch Store first and only swapped in on success).
// Returns false on a parse error, cap violation, or structurally invalid
// document (lenient decoding still drops individually-invalid edges
// rather than rejecting the whole document; only top-level failures
// reach this boundary).
func (s *Store) FromJSON(data []byte) bool {
	fresh := store.New()
	if err := persist.FromJSON(fresh, data, s.limits, false); err != nil {
		return false
	}
	s.swap(fresh)

	return true
}

// FromJSONRes is FromJSON's strict counterpart: any structural defect in
// data (not just top-level decode failure) is rejected and s is left
// unmodified.
func (s *Store) FromJSONRes(data []byte) Res[bool] {
	fresh := store.New()
	err := persist.FromJSON(fresh, data, s.limits, true)
	if err != nil {
		switch err {
		case persist.ErrJSONParse:
			return fail[bool](errJSONParse(err.Error()))
		case persist.ErrCapsExceeded:
			return fail[bool](errCapsExceeded())
		case persist.ErrOutOfBounds:
			return fail[bool](errOutOfBounds())
		default:
			return fail[bool](errInvalidStructure(err.Error()))
		}
	}
	s.swap(fresh)

	return ok(true)
}

// swap replaces s's underlying arena with fresh's, preserving s's
// configured caps and tolerances but invalidating the region cache and
// resetting geom_ver/fill_ver to fresh's own (a load is a new session,
// not a mutation of the prior one).
func (s *Store) swap(fresh *store.Store) {
	fresh.SetFlattenTolerance(s.store.FlattenTolerance())
	fresh.SetMergeTolerance(s.store.MergeTolerance())
	s.store = fresh
	s.regionCacheValid = false
}
