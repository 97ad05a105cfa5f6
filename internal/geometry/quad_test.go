package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, int32(5*4), Stride)
	assert.Equal(t, uintptr(0), PositionOffset)
	assert.Equal(t, uintptr(3*4), TexCoordOffset)
}

func TestNewQuadShape(t *testing.T) {
	q := NewQuad(0.75)

	require.Len(t, q.Vertices, 4)
	require.Len(t, q.Indices, 6)
	assert.Equal(t, [6]uint16{0, 1, 2, 0, 2, 3}, q.Indices)
	for _, idx := range q.Indices {
		assert.Less(t, int(idx), len(q.Vertices))
	}

	assert.Equal(t, mgl32.Vec3{-0.75, 0.75, 0}, q.Vertices[0].Position)
	assert.Equal(t, mgl32.Vec3{0.75, -0.75, 0}, q.Vertices[2].Position)
	assert.Equal(t, mgl32.Vec2{0, 0}, q.Vertices[0].TexCoord)
	assert.Equal(t, mgl32.Vec2{1, 1}, q.Vertices[2].TexCoord)

	assert.Equal(t, 80, q.VertexBytes())
	assert.Equal(t, 12, q.IndexBytes())
}

func TestTrianglesShareDiagonal(t *testing.T) {
	tris := NewQuad(1).Triangles()

	shared := 0
	for _, a := range tris[0] {
		for _, b := range tris[1] {
			if a == b {
				shared++
			}
		}
	}
	assert.Equal(t, 2, shared)
	assert.Contains(t, tris[0], uint16(0))
	assert.Contains(t, tris[0], uint16(2))
	assert.Contains(t, tris[1], uint16(0))
	assert.Contains(t, tris[1], uint16(2))
}

func TestToScreen(t *testing.T) {
	pts := NewQuad(0.5).ToScreen(512, 1024)

	assert.InDelta(t, 128, pts[0].X(), 1e-4)
	assert.InDelta(t, 256, pts[0].Y(), 1e-4)
	assert.InDelta(t, 384, pts[2].X(), 1e-4)
	assert.InDelta(t, 768, pts[2].Y(), 1e-4)
}
