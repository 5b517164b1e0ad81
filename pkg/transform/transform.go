// Package transform holds the position, orientation and scale of scene records.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// Up is the world vertical axis.
	Up = mgl64.Vec3{0, 1, 0}
	// Origin is the world origin.
	Origin = mgl64.Vec3{0, 0, 0}
)

type Transform struct {
	// Position is the translation of the record in world space.
	Position mgl64.Vec3
	// Rotation is the orientation of the record.
	Rotation mgl64.Quat
	// Scale is the per-axis scale of the record.
	Scale mgl64.Vec3
}

// New returns an identity transform at the origin.
func New() Transform {
	return Transform{
		Position: Origin,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// FromXYZ returns an identity transform translated to (x, y, z).
func FromXYZ(x, y, z float64) Transform {
	t := New()
	t.Position = mgl64.Vec3{x, y, z}
	return t
}

// Translate moves the transform by the given offset.
func (t *Transform) Translate(offset mgl64.Vec3) {
	t.Position = t.Position.Add(offset)
}

// RotateY rotates the transform about the world vertical axis by angle radians.
func (t *Transform) RotateY(angle float64) {
	t.Rotation = mgl64.QuatRotate(angle, Up).Mul(t.Rotation).Normalize()
}

// Yaw returns the rotation about the vertical axis in radians, in (-pi, pi].
// Only meaningful for transforms that have been rotated solely about Up.
func (t Transform) Yaw() float64 {
	yaw := 2 * math.Atan2(t.Rotation.V.Y(), t.Rotation.W)
	if yaw > math.Pi {
		yaw -= 2 * math.Pi
	} else if yaw <= -math.Pi {
		yaw += 2 * math.Pi
	}
	return yaw
}

// Matrix returns the model matrix: translation * rotation * scale.
func (t Transform) Matrix() mgl64.Mat4 {
	translation := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// Apply transforms a point from local to world space.
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.Matrix().Mul4x1(point.Vec4(1)).Vec3()
}

// ApplyNormal rotates a direction from local to world space, ignoring translation.
func (t Transform) ApplyNormal(normal mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(normal).Normalize()
}
