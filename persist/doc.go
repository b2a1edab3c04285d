// Package persist implements spec.md §4.6: the versioned JSON document
// format and its load/save operations. The wire format is a top-level
// object {version, nodes, edges, fills}; ToJSON/FromJSON round-trip a
// *store.Store modulo node/edge id renumbering.
package persist
