package camerapath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Path is an ordered, immutable keyframe table.
type Path struct {
	keys []Keyframe
}

// New validates keys and returns a path over a private copy of them.
func New(keys []Keyframe) (*Path, error) {
	if err := Validate(keys); err != nil {
		return nil, err
	}
	return &Path{keys: append([]Keyframe(nil), keys...)}, nil
}

// Default returns the built-in path.
func Default() *Path {
	return &Path{keys: append([]Keyframe(nil), DefaultKeyframes...)}
}

// Len returns the number of keyframes.
func (p *Path) Len() int {
	return len(p.keys)
}

// Keyframe returns keyframe i.
func (p *Path) Keyframe(i int) Keyframe {
	return p.keys[i]
}

// Segment returns the index i of the pair (i, i+1) bracketing progress.
// The first bracketing pair wins, so a value equal to an inner keyframe
// resolves to the pair ending there. Values past either end use the
// boundary pair.
func (p *Path) Segment(progress float64) int {
	last := len(p.keys) - 1
	if progress >= p.keys[last].Progress {
		return last - 1
	}
	for i := 0; i < last; i++ {
		if progress >= p.keys[i].Progress && progress <= p.keys[i+1].Progress {
			return i
		}
	}
	return 0
}

// LocalT returns how far progress lies through segment i, clamped to [0,1].
// A zero-length segment yields 0.
func (p *Path) LocalT(i int, progress float64) float64 {
	start := p.keys[i].Progress
	end := p.keys[i+1].Progress
	if end <= start {
		return 0
	}
	t := (progress - start) / (end - start)
	if math.IsNaN(t) {
		return 0
	}
	return clamp01(t)
}

// Sample returns the eased pose at progress.
func (p *Path) Sample(progress float64) Pose {
	i := p.Segment(progress)
	t := float32(EaseInOutQuad(p.LocalT(i, progress)))
	a, b := p.keys[i], p.keys[i+1]
	return Pose{
		Position: lerpVec(a.Camera, b.Camera, t),
		LookAt:   lerpVec(a.Target, b.Target, t),
		ShipYaw:  Lerp(a.ShipYaw, b.ShipYaw, t),
	}
}

// EaseInOutQuad accelerates through the first half and decelerates through
// the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Lerp blends a and b so that t=0 and t=1 reproduce the ends exactly.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

func lerpVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
