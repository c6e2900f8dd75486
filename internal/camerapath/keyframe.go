// Package camerapath interpolates the scripted camera through keyframed
// viewpoints as scroll progress goes from 0 to 1.
package camerapath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Keyframe anchors the camera pose and ship heading at one progress value.
// ShipYaw keeps growing across the table instead of wrapping so the ship
// always turns the same way.
type Keyframe struct {
	Progress float64    `yaml:"progress"`
	Camera   mgl32.Vec3 `yaml:"camera,flow"`
	Target   mgl32.Vec3 `yaml:"target,flow"`
	ShipYaw  float32    `yaml:"ship_yaw"`
}

// Pose is the interpolated camera transform for one frame.
type Pose struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	ShipYaw  float32
}

func yaw(turns float64) float32 {
	return float32(math.Pi * turns)
}

// DefaultKeyframes is the built-in tour: a high establishing shot, a sweep
// past the bow, close passes along the deck and a final pull-back.
var DefaultKeyframes = []Keyframe{
	{Progress: 0, Camera: mgl32.Vec3{-0.22, 9.71, -9.31}, Target: mgl32.Vec3{0, 0, 0}, ShipYaw: yaw(0.2)},
	{Progress: 0.09, Camera: mgl32.Vec3{1.37, 6.71, 1.63}, Target: mgl32.Vec3{0, 0, 0}, ShipYaw: yaw(0.2)},
	{Progress: 0.14, Camera: mgl32.Vec3{0.32, 1.87, 12.18}, Target: mgl32.Vec3{0, 0, 0}, ShipYaw: yaw(0.8)},
	{Progress: 0.28, Camera: mgl32.Vec3{4.5, 1.33, 6}, Target: mgl32.Vec3{0, 1, 0}, ShipYaw: yaw(1.2)},
	{Progress: 0.42, Camera: mgl32.Vec3{2.17, 1.37, 4.42}, Target: mgl32.Vec3{0, 0.5, 0}, ShipYaw: yaw(1.8)},
	{Progress: 0.56, Camera: mgl32.Vec3{7.7, 2.9, 1.33}, Target: mgl32.Vec3{4, 3, -1.5}, ShipYaw: yaw(2.3)},
	{Progress: 0.7, Camera: mgl32.Vec3{7.53, 1.94, -1.5}, Target: mgl32.Vec3{2.86, 1.16, 0.39}, ShipYaw: yaw(2.8)},
	{Progress: 0.84, Camera: mgl32.Vec3{-4, 3, 7}, Target: mgl32.Vec3{0, 1, 0}, ShipYaw: yaw(3.5)},
	{Progress: 1.0, Camera: mgl32.Vec3{0, 8, 15}, Target: mgl32.Vec3{0, 0, 0}, ShipYaw: yaw(4)},
}
