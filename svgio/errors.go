// File: errors.go
// Role: sentinel errors for the lenient path of package svgio.
package svgio

import "errors"

var (
	// ErrParse indicates the `d` string could not be tokenized or contains
	// an unsupported/malformed command.
	ErrParse = errors.New("svgio: parse error")

	// ErrCapsExceeded indicates a configured cap in package caps was hit.
	ErrCapsExceeded = errors.New("svgio: caps exceeded")

	// ErrOutOfBounds indicates a coordinate fell outside [MinCoord,MaxCoord].
	ErrOutOfBounds = errors.New("svgio: coordinate out of bounds")
)
