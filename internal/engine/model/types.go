// Package model holds mesh data and placement for the scene's rigid models.
package model

import "github.com/go-gl/mathgl/mgl32"

// Vertex represents a model mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds the complete model mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the model.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Transform places a model in the world. Rotation holds Euler angles in
// radians applied in X, Y, Z order.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    float32
}

// Surface holds the shading response of a model.
type Surface struct {
	Roughness float32
	Metalness float32
}

// Model is a loaded mesh with its world placement.
type Model struct {
	Name      string
	Mesh      *Mesh
	Transform Transform
	Surface   Surface
}
