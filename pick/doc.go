// Package pick implements spec.md §4.6: given a point and a tolerance,
// return the closest of {handle, node, edge}, with priority handle > node
// > edge when multiple hits fall within tolerance.
package pick
