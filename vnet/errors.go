// File: errors.go
// Role: the strict API's tagged result type and closed error-code enum,
// per spec.md §4.1 and §4.8.
package vnet

import "fmt"

// Error codes, a closed enum per spec.md §4.1. These are the only codes
// a strict operation may report; adding a new failure mode means adding
// a new code here, not reusing an unrelated one.
const (
	CodeInvalidID        = "invalid_id"
	CodeInvalidMode      = "invalid_mode"
	CodeInvalidEnd       = "invalid_end"
	CodeOutOfRange       = "out_of_range"
	CodeNonFinite        = "non_finite"
	CodeNotCubic         = "not_cubic"
	CodeNotPolyline      = "not_polyline"
	CodeInvalidArray     = "invalid_array"
	CodeJSONParse        = "json_parse"
	CodeSVGParse         = "svg_parse"
	CodeInvalidEdge      = "invalid_edge"
	CodeCapsExceeded     = "caps_exceeded"
	CodeOutOfBounds      = "out_of_bounds"
	CodeInvalidStructure = "invalid_structure"
)

// Error is the strict API's error value: a code from the closed enum
// above, a free-text message, and optional structured data. Error
// implements the error interface so it can also be handled like any
// other Go error.
type Error struct {
	Code    string
	Message string
	Data    map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newErr(code, msg string, data map[string]any) *Error {
	return &Error{Code: code, Message: msg, Data: data}
}

func errInvalidID(kind string, id uint64) *Error {
	return newErr(CodeInvalidID, fmt.Sprintf("no live %s with id %d", kind, id), map[string]any{"kind": kind, "id": id})
}

func errInvalidMode(got string) *Error {
	return newErr(CodeInvalidMode, fmt.Sprintf("invalid handle mode %q", got), map[string]any{"got": got})
}

func errInvalidEnd() *Error {
	return newErr(CodeInvalidEnd, "end must be 0 or 1", nil)
}

func errOutOfRange(param string, min, max, got float64) *Error {
	return newErr(CodeOutOfRange, fmt.Sprintf("%s out of range", param),
		map[string]any{"param": param, "min": min, "max": max, "got": got})
}

func errNonFinite(param string) *Error {
	return newErr(CodeNonFinite, fmt.Sprintf("%s must be finite", param), map[string]any{"param": param})
}

func errNotCubic(edge uint64) *Error {
	return newErr(CodeNotCubic, "edge is not cubic", map[string]any{"edge": edge})
}

func errInvalidEdge() *Error {
	return newErr(CodeInvalidEdge, "self-loop edges are not allowed", nil)
}

func errCapsExceeded() *Error {
	return newErr(CodeCapsExceeded, "an ingestion cap was exceeded", nil)
}

func errOutOfBounds() *Error {
	return newErr(CodeOutOfBounds, "coordinate is out of bounds", nil)
}

func errInvalidStructure(msg string) *Error {
	return newErr(CodeInvalidStructure, msg, nil)
}

func errSVGParse(msg string) *Error {
	return newErr(CodeSVGParse, msg, nil)
}

func errJSONParse(msg string) *Error {
	return newErr(CodeJSONParse, msg, nil)
}

// Res is the strict API's tagged result: either OK with a Value, or not
// OK with an Err, never both, per spec.md §4.8's "tagged variant, not
// polymorphic dispatch" requirement.
type Res[T any] struct {
	OK    bool
	Value T
	Err   *Error
}

func ok[T any](v T) Res[T] {
	return Res[T]{OK: true, Value: v}
}

func fail[T any](e *Error) Res[T] {
	return Res[T]{OK: false, Err: e}
}
