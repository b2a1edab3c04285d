// File: errors.go
// Role: sentinel errors for the lenient path of package persist.
package persist

import "errors"

var (
	// ErrInvalidStructure indicates the document failed strict structural
	// validation (unknown version, malformed edge reference, etc).
	ErrInvalidStructure = errors.New("persist: invalid structure")

	// ErrJSONParse indicates the bytes are not well-formed JSON.
	ErrJSONParse = errors.New("persist: json parse error")

	// ErrCapsExceeded indicates a configured cap in package caps was hit.
	ErrCapsExceeded = errors.New("persist: caps exceeded")

	// ErrOutOfBounds indicates a coordinate fell outside [MinCoord,MaxCoord].
	ErrOutOfBounds = errors.New("persist: coordinate out of bounds")
)
