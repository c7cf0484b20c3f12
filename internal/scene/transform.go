package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationStep is how far a spinning instance turns about Y each frame, in degrees.
const RotationStep = 0.2

// ModelMatrix composes translation * Rx * Ry * Rz * scale. Rotation is in degrees.
func ModelMatrix(scale, rotation, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation.Z()))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

// wrapDegrees maps d into [0, 360).
func wrapDegrees(d float32) float32 {
	d = math32.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}
