package vnet

import (
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_NoPanicOnRandomJSON checks spec.md §8's "no panic under
// random-byte fuzz into from_json" by feeding arbitrary byte strings
// (most of them not valid JSON at all) through FromJSON.
func TestProperty_NoPanicOnRandomJSON(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(t, "data")
		s := New()
		s.FromJSON(data) // success or failure, either is fine; panicking is not
	})
}

// TestProperty_NoPanicOnRandomSVGPath checks the same invariant for
// add_svg_path, fuzzing the `d` string with arbitrary runes.
func TestProperty_NoPanicOnRandomSVGPath(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.StringN(0, 64, -1).Draw(t, "d")
		s := New()
		s.AddSVGPath(d)
	})
}
