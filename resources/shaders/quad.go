//go:build ignore
// +build ignore

//kage:unit pixels

package main

// Vertex colors are interpolated across the quad, so the fragment only passes them through.
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return color
}
