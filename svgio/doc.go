// Package svgio implements spec.md §4.7: SVG path ingest (M/m, L/l, C/c,
// Z/z, with relative forms resolved against the current pen) and emit
// (per-edge M L / M C fragments, polylines as chained L).
package svgio
