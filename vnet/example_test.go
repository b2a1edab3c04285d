package vnet_test

import (
	"fmt"

	"github.com/katalvlaran/vecnet/vnet"
)

// ExampleStore_triangle demonstrates adding a triangle, discovering its
// single enclosed region, and toggling its fill.
func ExampleStore_triangle() {
	s := vnet.New()
	a, _ := s.AddNode(0, 0)
	b, _ := s.AddNode(10, 0)
	c, _ := s.AddNode(5, 8)
	s.AddEdge(a, b)
	s.AddEdge(b, c)
	s.AddEdge(c, a)

	regions := s.GetRegions()
	fmt.Println(len(regions))

	key := regions[0].Key
	s.ToggleRegion(key)
	fmt.Println(s.GetRegions()[0].Filled)

	// Output:
	// 1
	// true
}

// ExampleStore_svgRoundTrip demonstrates ingesting an SVG path and
// re-emitting it as path fragments.
func ExampleStore_svgRoundTrip() {
	s := vnet.New()
	n, _ := s.AddSVGPath("M 0 0 L 10 0 L 10 10 Z")
	fmt.Println(n)
	fmt.Println(len(s.ToSVGPaths()))

	// Output:
	// 3
	// 3
}

// ExampleStore_strictRejection demonstrates the strict API's tagged
// result on a reference to a nonexistent edge.
func ExampleStore_strictRejection() {
	s := vnet.New()
	res := s.BendEdgeToRes(9999, 0.5, 0, 0, 1)
	fmt.Println(res.OK, res.Err.Code)

	// Output:
	// false invalid_id
}
