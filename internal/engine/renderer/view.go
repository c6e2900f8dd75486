package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/tideline/internal/engine/lighting"
)

// View is everything the passes need from the camera for one frame.
type View struct {
	Eye        mgl32.Vec3
	LookAt     mgl32.Vec3
	View       mgl32.Mat4
	Projection mgl32.Mat4
	// PointScale converts world point sizes to pixels.
	PointScale float32
}

// Look describes the fixed appearance of the scene.
type Look struct {
	Background [3]float32
	FogNear    float32
	FogFar     float32
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	Rig        lighting.Rig
	// MeshColor tints every mesh; the models carry no textures.
	MeshColor [3]float32
}

// DefaultLook returns the deep-navy night scene.
func DefaultLook() Look {
	return Look{
		Background: lighting.Hex(0x0a1929),
		FogNear:    10,
		FogFar:     50,
		FOV:        15,
		Near:       0.1,
		Far:        1000,
		Rig:        lighting.DefaultRig(),
		MeshColor:  [3]float32{0.75, 0.75, 0.78},
	}
}

// NewView builds the camera matrices for a framebuffer of width x height
// pixels.
func (l Look) NewView(eye, lookAt mgl32.Vec3, width, height int) View {
	return View{
		Eye:        eye,
		LookAt:     lookAt,
		View:       mgl32.LookAtV(eye, lookAt, mgl32.Vec3{0, 1, 0}),
		Projection: Projection(l.FOV, width, height, l.Near, l.Far),
		PointScale: PointScale(height),
	}
}

// Projection returns a perspective matrix. A zero height falls back to a
// square aspect.
func Projection(fovDeg float32, width, height int, near, far float32) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

// PointScale is half the framebuffer height, so a point of world size s at
// view depth z covers s*PointScale/z pixels.
func PointScale(height int) float32 {
	return float32(height) / 2
}

// FogFactor returns the linear fog blend at view depth d. It mirrors the
// shaders.
func FogFactor(d, near, far float32) float32 {
	if far <= near {
		return 0
	}
	f := (d - near) / (far - near)
	return min(max(f, 0), 1)
}
