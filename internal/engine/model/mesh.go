package model

import "github.com/go-gl/mathgl/mgl32"

// EmptyBounds returns bounds that any point will expand.
func EmptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// Extend grows b to contain p.
func (b *Bounds) Extend(p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Size returns the box extent along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return mgl32.Vec3{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the box midpoint.
func (b Bounds) Center() mgl32.Vec3 {
	return mgl32.Vec3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// MaxDim returns the largest extent.
func (b Bounds) MaxDim() float32 {
	s := b.Size()
	return max(s[0], s[1], s[2])
}

// ComputeBounds recalculates the mesh bounds from its vertices.
func (m *Mesh) ComputeBounds() {
	m.Bounds = EmptyBounds()
	for _, v := range m.Vertices {
		m.Bounds.Extend(v.Position)
	}
}

// ComputeFlatNormals assigns each triangle's face normal to its vertices.
// Vertices shared between triangles keep the normal of the last one.
func (m *Mesh) ComputeFlatNormals() {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(max(a, b, c)) >= len(m.Vertices) {
			continue
		}
		p0 := mgl32.Vec3(m.Vertices[a].Position)
		p1 := mgl32.Vec3(m.Vertices[b].Position)
		p2 := mgl32.Vec3(m.Vertices[c].Position)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		// Degenerate triangle detection
		if n.Len() < 1e-5 {
			continue
		}
		n = n.Normalize()
		m.Vertices[a].Normal = [3]float32(n)
		m.Vertices[b].Normal = [3]float32(n)
		m.Vertices[c].Normal = [3]float32(n)
	}
}

// FitTo scales the model so its largest dimension equals size and moves it
// so the bounding box centre lands on the origin.
func (m *Model) FitTo(size float32) {
	if m.Mesh == nil {
		return
	}
	maxDim := m.Mesh.Bounds.MaxDim()
	if maxDim <= 0 {
		return
	}
	scale := size / maxDim
	m.Transform.Scale = scale
	m.Transform.Position = m.Transform.Position.Sub(m.Mesh.Bounds.Center().Mul(scale))
}
