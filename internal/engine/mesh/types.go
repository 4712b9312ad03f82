// Package mesh builds vertex data for the demos and uploads it to the GPU.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved vertex as laid out in the vertex buffer.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// Data is CPU-side, non-indexed triangle list geometry.
type Data struct {
	Name     string
	Vertices []Vertex
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Triangles returns the number of triangles in the list.
func (d *Data) Triangles() int {
	return len(d.Vertices) / 3
}

// Bounds returns the box enclosing every vertex. Empty data yields a zero box.
func (d *Data) Bounds() Bounds {
	if len(d.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: d.Vertices[0].Position, Max: d.Vertices[0].Position}
	for _, v := range d.Vertices[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], v.Position[i])
			b.Max[i] = max(b.Max[i], v.Position[i])
		}
	}
	return b
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return mgl32.Vec3(b.Min).Add(mgl32.Vec3(b.Max)).Mul(0.5)
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return mgl32.Vec3(b.Max).Sub(mgl32.Vec3(b.Min))
}

// Triangle returns the three vertices of the first demo, in buffer order.
func Triangle() []Vertex {
	return []Vertex{
		{Position: [3]float32{0.5, -0.5, 0.0}},
		{Position: [3]float32{0.0, 0.5, 0.0}},
		{Position: [3]float32{-0.5, -0.5, 0.0}},
	}
}

// GroundPlane returns a square of the given edge length centred on the
// origin at height y, as two counter-clockwise triangles facing +Y.
func GroundPlane(size, y float32, color [3]float32) []Vertex {
	h := size / 2
	up := [3]float32{0, 1, 0}
	corner := func(x, z float32) Vertex {
		return Vertex{Position: [3]float32{x, y, z}, Normal: up, Color: color}
	}
	return []Vertex{
		corner(-h, -h), corner(-h, h), corner(h, h),
		corner(-h, -h), corner(h, h), corner(h, -h),
	}
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or
// false when the triangle is degenerate.
func faceNormal(a, b, c [3]float32) ([3]float32, bool) {
	e1 := mgl32.Vec3(b).Sub(mgl32.Vec3(a))
	e2 := mgl32.Vec3(c).Sub(mgl32.Vec3(a))
	n := e1.Cross(e2)
	if n.Len() < 1e-8 {
		return [3]float32{}, false
	}
	return n.Normalize(), true
}
