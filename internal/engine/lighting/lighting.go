// Package lighting describes the scene's light rig for GPU upload.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Hex converts a 0xRRGGBB colour to linear 0-1 components.
func Hex(c uint32) [3]float32 {
	return [3]float32{
		float32((c>>16)&0xff) / 255,
		float32((c>>8)&0xff) / 255,
		float32(c&0xff) / 255,
	}
}

// Scale multiplies a colour by an intensity.
func Scale(c [3]float32, intensity float32) [3]float32 {
	return [3]float32{c[0] * intensity, c[1] * intensity, c[2] * intensity}
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Position  mgl32.Vec3
	Color     [3]float32
	Intensity float32
}

// Direction returns the normalized vector pointing toward the light.
func (d DirectionalLight) Direction() mgl32.Vec3 {
	if d.Position.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Position.Normalize()
}

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  mgl32.Vec3
	Color     [3]float32
	Range     float32 // Light radius, 0 means unlimited
	Intensity float32
}

// Falloff returns the attenuation at distance d. It mirrors the shader.
func (p PointLight) Falloff(d float32) float32 {
	if p.Range <= 0 {
		return 1
	}
	f := 1 - d/p.Range
	if f <= 0 {
		return 0
	}
	return f * f
}

// Hemisphere blends between a sky and a ground colour by surface normal.
type Hemisphere struct {
	Sky       [3]float32
	Ground    [3]float32
	Intensity float32
}

// At returns the hemisphere contribution for a normal with the given
// upward component in [-1, 1].
func (h Hemisphere) At(up float32) [3]float32 {
	w := 0.5*up + 0.5
	var c [3]float32
	for i := range c {
		c[i] = (h.Ground[i] + (h.Sky[i]-h.Ground[i])*w) * h.Intensity
	}
	return c
}

// Rig is the complete light setup of the scene.
type Rig struct {
	Ambient    [3]float32 // already scaled by intensity
	Hemisphere Hemisphere
	Key        DirectionalLight
	Fill       DirectionalLight
	Accent     PointLight
}

// DefaultRig returns the night-sea lighting: sky-blue ambient, a blue
// hemisphere, a white key light high to one side, a cool fill from the
// other and a warm accent near the ship.
func DefaultRig() Rig {
	return Rig{
		Ambient: Hex(0x87ceeb),
		Hemisphere: Hemisphere{
			Sky:       Hex(0x7095c1),
			Ground:    Hex(0x0c2340),
			Intensity: 1,
		},
		Key: DirectionalLight{
			Position:  mgl32.Vec3{15, 25, 15},
			Color:     Hex(0xffffff),
			Intensity: 1.5,
		},
		Fill: DirectionalLight{
			Position:  mgl32.Vec3{-10, 15, -10},
			Color:     Hex(0x4a7ba7),
			Intensity: 0.6,
		},
		Accent: PointLight{
			Position:  mgl32.Vec3{5, 5, 5},
			Color:     Hex(0xffa500),
			Range:     30,
			Intensity: 0.8,
		},
	}
}
