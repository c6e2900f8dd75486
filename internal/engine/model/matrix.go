package model

import "github.com/go-gl/mathgl/mgl32"

// Matrix returns the model matrix: translate · Rx · Ry · Rz · scale.
func (t Transform) Matrix() mgl32.Mat4 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(mgl32.HomogRotate3DX(t.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(t.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation[2])).
		Mul4(mgl32.Scale3D(s, s, s))
}

// TransformPoint applies the model matrix to a local-space point.
func (t Transform) TransformPoint(p [3]float32) mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3(p), t.Matrix())
}
