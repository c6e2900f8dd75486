package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjectionAspect(t *testing.T) {
	wide := Projection(15, 1600, 800, 0.1, 1000)
	square := Projection(15, 0, 0, 0.1, 1000)

	// [0] scales x by 1/(aspect*tan(fov/2)); [5] scales y by 1/tan(fov/2).
	if d := wide[5]/wide[0] - 2; d > 1e-5 || d < -1e-5 {
		t.Errorf("expected aspect 2, got %v", wide[5]/wide[0])
	}
	if square[0] != square[5] {
		t.Errorf("zero height should fall back to square aspect, got %v vs %v", square[0], square[5])
	}
}

func TestFogFactor(t *testing.T) {
	tests := []struct {
		d, want float32
	}{
		{0, 0},
		{10, 0},
		{30, 0.5},
		{50, 1},
		{80, 1},
	}
	for _, tt := range tests {
		if got := FogFactor(tt.d, 10, 50); got != tt.want {
			t.Errorf("FogFactor(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
	if got := FogFactor(20, 5, 5); got != 0 {
		t.Errorf("degenerate range should disable fog, got %v", got)
	}
}

func TestNewView(t *testing.T) {
	look := DefaultLook()
	eye := mgl32.Vec3{0, 8, 15}
	v := look.NewView(eye, mgl32.Vec3{}, 1280, 720)

	if v.PointScale != 360 {
		t.Errorf("point scale = %v, want 360", v.PointScale)
	}
	// The look-at target sits straight ahead of the camera.
	centre := v.View.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if centre.X() > 1e-5 || centre.X() < -1e-5 || centre.Y() > 1e-5 || centre.Y() < -1e-5 {
		t.Errorf("target off axis in view space: %v", centre)
	}
	if centre.Z() >= 0 {
		t.Errorf("target should be in front of the camera, z = %v", centre.Z())
	}
}

func TestDefaultLook(t *testing.T) {
	l := DefaultLook()
	if l.FOV != 15 || l.Near != 0.1 || l.Far != 1000 {
		t.Errorf("unexpected projection %+v", l)
	}
	if l.FogNear != 10 || l.FogFar != 50 {
		t.Errorf("unexpected fog %v..%v", l.FogNear, l.FogFar)
	}
}
