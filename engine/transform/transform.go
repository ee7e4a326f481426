package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Spec describes the placement of a single drawable: scale, axis-aligned
// Euler rotation in degrees, and translation. A Spec is built per draw call
// and discarded; it is never retained between frames.
type Spec struct {
	// Scale is the per-axis scale factor. A zero scale collapses the mesh,
	// so every drawable is expected to set all three components.
	Scale mgl32.Vec3

	// RotationDegrees is the rotation about each axis in degrees. The axis
	// rotations enter the model matrix in X, Y, Z factor order.
	RotationDegrees mgl32.Vec3

	// Translation is the world-space position.
	Translation mgl32.Vec3
}

// Compose builds the model matrix for the spec.
//
// The composition order is fixed: translation * rotateX * rotateY * rotateZ * scale,
// i.e. reading right to left the mesh is scaled first, rotated about Z, then Y,
// then X, and translated last. Euler rotations do not commute, so reordering
// these factors changes the result for any drawable rotated on more than one axis.
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func (s Spec) Compose() mgl32.Mat4 {
	scale := mgl32.Scale3D(s.Scale.X(), s.Scale.Y(), s.Scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(s.RotationDegrees.X()))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(s.RotationDegrees.Y()))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(s.RotationDegrees.Z()))
	translation := mgl32.Translate3D(s.Translation.X(), s.Translation.Y(), s.Translation.Z())

	return translation.Mul4(rotX).Mul4(rotY).Mul4(rotZ).Mul4(scale)
}
