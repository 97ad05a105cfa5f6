// Package geometry holds the fixed vertex data drawn by the renderers.
package geometry

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved entry of the vertex buffer: a 3D position
// followed by a 2D texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Layout of Vertex as seen by glVertexAttribPointer.
const (
	PositionComponents = 3
	TexCoordComponents = 2

	Stride         = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset = unsafe.Offsetof(Vertex{}.Position)
	TexCoordOffset = unsafe.Offsetof(Vertex{}.TexCoord)
)

const (
	// VertexCount is the number of vertices in a Quad.
	VertexCount = 4
	// IndexCount is the number of indices in a Quad, three per triangle.
	IndexCount = 6
)

// Quad is a rectangle made of two triangles sharing the 0-2 diagonal.
type Quad struct {
	Vertices [VertexCount]Vertex
	Indices  [IndexCount]uint16
}

// NewQuad returns a quad centered at the origin of normalized device
// coordinates, extending halfExtent in both directions. Texture coordinate
// (0,0) maps to the top-left corner.
func NewQuad(halfExtent float32) Quad {
	e := halfExtent
	return Quad{
		Vertices: [VertexCount]Vertex{
			{Position: mgl32.Vec3{-e, e, 0}, TexCoord: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{-e, -e, 0}, TexCoord: mgl32.Vec2{0, 1}},
			{Position: mgl32.Vec3{e, -e, 0}, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{e, e, 0}, TexCoord: mgl32.Vec2{1, 0}},
		},
		Indices: [IndexCount]uint16{0, 1, 2, 0, 2, 3},
	}
}

// Triangles splits the index list into its two triangles.
func (q Quad) Triangles() [2][3]uint16 {
	return [2][3]uint16{
		{q.Indices[0], q.Indices[1], q.Indices[2]},
		{q.Indices[3], q.Indices[4], q.Indices[5]},
	}
}

// VertexBytes is the size in bytes of the vertex array.
func (q Quad) VertexBytes() int {
	return len(q.Vertices) * int(Stride)
}

// IndexBytes is the size in bytes of the index array.
func (q Quad) IndexBytes() int {
	return len(q.Indices) * int(unsafe.Sizeof(q.Indices[0]))
}

// ToScreen projects the vertex positions into window pixel space, with the
// origin at the top-left corner and y growing downwards.
func (q Quad) ToScreen(width, height float32) [VertexCount]mgl32.Vec2 {
	var out [VertexCount]mgl32.Vec2
	for i, v := range q.Vertices {
		out[i] = mgl32.Vec2{
			(v.Position.X() + 1) / 2 * width,
			(1 - v.Position.Y()) / 2 * height,
		}
	}
	return out
}
