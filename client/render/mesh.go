package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list. Triangles wind counter-clockwise when seen
// from outside, so their cross product points outward.
type Mesh struct {
	Vertices  []mgl64.Vec3
	Triangles [][3]int
}

// NewCube returns an axis aligned cube centered on the origin with the given edge length.
func NewCube(size float64) *Mesh {
	h := size / 2
	return &Mesh{
		Vertices: []mgl64.Vec3{
			{-h, -h, -h}, // 0
			{h, -h, -h},  // 1
			{h, h, -h},   // 2
			{-h, h, -h},  // 3
			{-h, -h, h},  // 4
			{h, -h, h},   // 5
			{h, h, h},    // 6
			{-h, h, h},   // 7
		},
		Triangles: [][3]int{
			// +Z
			{4, 5, 6}, {4, 6, 7},
			// -Z
			{1, 0, 3}, {1, 3, 2},
			// +X
			{5, 1, 2}, {5, 2, 6},
			// -X
			{0, 4, 7}, {0, 7, 3},
			// +Y
			{7, 6, 2}, {7, 2, 3},
			// -Y
			{0, 1, 5}, {0, 5, 4},
		},
	}
}

// Normal returns the outward unit normal of triangle i in mesh space.
func (m *Mesh) Normal(i int) mgl64.Vec3 {
	t := m.Triangles[i]
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
