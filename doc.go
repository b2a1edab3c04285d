// Package vecnet is a vector-network geometry engine: an undirected
// planar-ish graph whose nodes carry 2D positions and whose edges are
// straight segments, cubic Bezier arcs, or polylines. Unlike a simple
// path model, any node may have arbitrary degree, and enclosed areas
// are automatically discovered as fillable regions with stable
// identities across edits.
//
// Under the hood, the engine is organized under several subpackages:
//
//	store/      — node/edge arenas, version counters, fill/color state
//	curveq/     — cubic Bezier evaluation, flattening, handle modes
//	bend/       — the minimal-perturbation bend solver
//	planarize/  — segment projection, broad-phase indexing, intersection
//	facewalk/   — bounded-face discovery and region keying
//	region/     — derived region state, fill persistence, nearest-centroid remap
//	pick/       — hit testing (handle > node > edge priority)
//	svgio/      — SVG path ingest/emit
//	persist/    — the versioned JSON document format
//	vnet/       — the public facade: lenient and strict operation surfaces
//
// vnet is the package an embedder imports; every other subpackage is an
// internal collaborator in its pipeline.
package vecnet
