package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSeedFromKeepsPosition(t *testing.T) {
	tests := []struct {
		name     string
		position mgl32.Vec3
		target   mgl32.Vec3
	}{
		{"establishing", mgl32.Vec3{-0.22, 9.71, -9.31}, mgl32.Vec3{0, 0, 0}},
		{"deck", mgl32.Vec3{4.5, 1.33, 6}, mgl32.Vec3{0, 1, 0}},
		{"below target", mgl32.Vec3{7.53, 1.94, -1.5}, mgl32.Vec3{2.86, 3.16, 0.39}},
		{"far", mgl32.Vec3{0, 8, 45}, mgl32.Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.SeedFrom(tt.position, tt.target)

			if c.Center != tt.target {
				t.Errorf("center = %v, want %v", c.Center, tt.target)
			}
			if got := c.Position(); !got.ApproxEqualThreshold(tt.position, 1e-4) {
				t.Errorf("position = %v, want %v", got, tt.position)
			}

			// With no input the springs hold still.
			c.Update(1.0 / 60)
			if got := c.Position(); !got.ApproxEqualThreshold(tt.position, 1e-4) {
				t.Errorf("position drifted to %v", got)
			}
		})
	}
}

func TestSeedFromDegenerate(t *testing.T) {
	c := NewOrbitCamera()
	c.SeedFrom(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3})
	if got := c.Position(); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("position = %v, want target", got)
	}
}

func TestInputIgnoredWhileDisabled(t *testing.T) {
	c := NewOrbitCamera()
	before := c.Position()

	c.HandleDrag(100, 100)
	c.HandleZoom(5)
	c.HandleMovement(1, 1, 1)
	for range 60 {
		c.Update(1.0 / 60)
	}
	if got := c.Position(); got != before {
		t.Errorf("position moved while disabled: %v -> %v", before, got)
	}
}

func TestDragConvergesAndClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.Enable()

	c.HandleDrag(0, 10000)
	for range 600 {
		c.Update(1.0 / 60)
	}
	if d := c.Pitch - c.MaxPitch; d > 1e-3 || d < -1e-3 {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MaxPitch)
	}

	c.HandleDrag(0, -20000)
	for range 600 {
		c.Update(1.0 / 60)
	}
	if d := c.Pitch - c.MinPitch; d > 1e-3 || d < -1e-3 {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MinPitch)
	}
}

func TestZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.Enable()

	for range 50 {
		c.HandleZoom(-1)
	}
	for range 600 {
		c.Update(1.0 / 60)
	}
	if d := c.Distance - c.MaxDistance; d > 1e-3 || d < -1e-3 {
		t.Errorf("distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestDisableStopsMotion(t *testing.T) {
	c := NewOrbitCamera()
	c.Enable()
	c.HandleDrag(300, 0)
	c.Update(1.0 / 60)

	c.Disable()
	yaw := c.Yaw
	for range 30 {
		c.Update(1.0 / 60)
	}
	if c.Yaw != yaw {
		t.Errorf("yaw kept moving after Disable: %v -> %v", yaw, c.Yaw)
	}
	if c.Enabled() {
		t.Error("expected camera to be disabled")
	}
}

func TestHandleMovementPansCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Enable()
	c.HandleMovement(0, 0, 1)
	want := c.Distance * 0.01
	if c.Center.Y() != want {
		t.Errorf("center y = %v, want %v", c.Center.Y(), want)
	}
}
