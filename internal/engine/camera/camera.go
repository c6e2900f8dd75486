// Package camera provides the free-orbit camera used when the user takes
// over from the scripted path.
package camera

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a center point. Input moves goal angles and
// distance; Update springs the rendered values toward them.
type OrbitCamera struct {
	// Center point to orbit around
	Center mgl32.Vec3

	// Spherical coordinates as rendered
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle above the horizon (radians)
	Yaw      float32 // Horizontal angle (radians)

	// Spherical coordinates input is steering toward
	goalDistance float32
	goalPitch    float32
	goalYaw      float32

	// Spring velocities
	velDistance float64
	velPitch    float64
	velYaw      float64

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Spring tuning
	Frequency    float64
	DampingRatio float64

	enabled bool
}

// NewOrbitCamera creates a new orbit camera with default settings. Pitch is
// limited so the camera never drops more than 30° below the horizon.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		Distance:        10.0,
		Pitch:           0.5,
		MinDistance:     5.0,
		MaxDistance:     30.0,
		MinPitch:        -math32.Pi / 6,
		MaxPitch:        math32.Pi/2 - 0.01,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Frequency:       6.0,
		DampingRatio:    1.0,
	}
	c.settle()
	return c
}

// settle makes the goal equal the rendered state and stops all motion.
func (c *OrbitCamera) settle() {
	c.goalDistance = c.Distance
	c.goalPitch = c.Pitch
	c.goalYaw = c.Yaw
	c.velDistance, c.velPitch, c.velYaw = 0, 0, 0
}

// Enable turns on input handling.
func (c *OrbitCamera) Enable() {
	c.enabled = true
}

// Disable turns off input handling and stops any motion in flight.
func (c *OrbitCamera) Disable() {
	c.enabled = false
	c.settle()
}

// Enabled reports whether input is handled.
func (c *OrbitCamera) Enabled() bool {
	return c.enabled
}

// SeedFrom re-centres the orbit on target while keeping the camera at
// position, so taking over from another driver does not move the view.
// Limits are not applied here; the next input eases back inside them.
func (c *OrbitCamera) SeedFrom(position, target mgl32.Vec3) {
	c.Center = target
	offset := position.Sub(target)
	d := offset.Len()
	if d > 1e-6 {
		c.Distance = d
		c.Pitch = math32.Asin(clamp(offset.Y()/d, -1, 1))
		c.Yaw = math32.Atan2(offset.X(), offset.Z())
	} else {
		c.Distance = 0
	}
	c.settle()
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cosPitch := math32.Cos(c.Pitch)
	return c.Center.Add(mgl32.Vec3{
		c.Distance * cosPitch * math32.Sin(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		c.Distance * cosPitch * math32.Cos(c.Yaw),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	if !c.enabled {
		return
	}
	c.goalYaw -= deltaX * c.DragSensitivity
	c.goalPitch = clamp(c.goalPitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	if !c.enabled {
		return
	}
	c.goalDistance -= delta * c.goalDistance * c.ZoomSensitivity
	c.goalDistance = clamp(c.goalDistance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point along the ground plane.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	if !c.enabled {
		return
	}
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	dirX := math32.Sin(c.Yaw)
	dirZ := math32.Cos(c.Yaw)
	rightX := math32.Cos(c.Yaw)
	rightZ := -math32.Sin(c.Yaw)

	// Negate forward so it moves "into" the scene
	c.Center[0] += (-dirX*forward + rightX*right) * speed
	c.Center[2] += (-dirZ*forward + rightZ*right) * speed
	c.Center[1] += up * speed
}

// SetCenter sets the camera's center point without moving the orbit angles.
func (c *OrbitCamera) SetCenter(center mgl32.Vec3) {
	c.Center = center
}

// Update advances the springs by dt seconds.
func (c *OrbitCamera) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s := harmonica.NewSpring(dt, c.Frequency, c.DampingRatio)

	var pos float64
	pos, c.velDistance = s.Update(float64(c.Distance), c.velDistance, float64(c.goalDistance))
	c.Distance = float32(pos)
	pos, c.velPitch = s.Update(float64(c.Pitch), c.velPitch, float64(c.goalPitch))
	c.Pitch = float32(pos)
	pos, c.velYaw = s.Update(float64(c.Yaw), c.velYaw, float64(c.goalYaw))
	c.Yaw = float32(pos)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
