package camerapath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, EaseInOutQuad(tt.in), 1e-12, "EaseInOutQuad(%v)", tt.in)
	}
}

func TestSampleAtKeyframesIsExact(t *testing.T) {
	p := Default()
	for i := range p.Len() {
		k := p.Keyframe(i)
		pose := p.Sample(k.Progress)
		assert.Equal(t, k.Camera, pose.Position, "keyframe %d position", i)
		assert.Equal(t, k.Target, pose.LookAt, "keyframe %d target", i)
		assert.Equal(t, k.ShipYaw, pose.ShipYaw, "keyframe %d yaw", i)
	}
}

func TestSampleMidSegment(t *testing.T) {
	p := Default()
	require.Equal(t, 2, p.Segment(0.21))
	assert.InDelta(t, 0.5, p.LocalT(2, 0.21), 1e-9)

	pose := p.Sample(0.21)
	assert.InDelta(t, 2.41, pose.Position.X(), 1e-5)
	assert.InDelta(t, (1.87+1.33)/2, pose.Position.Y(), 1e-5)
	assert.InDelta(t, 0.5, pose.LookAt.Y(), 1e-5)
	assert.InDelta(t, math.Pi, pose.ShipYaw, 1e-5)
}

func TestSegmentFirstMatchWins(t *testing.T) {
	p := Default()
	// 0.14 closes segment 1 and opens segment 2; the scan stops at 1.
	assert.Equal(t, 1, p.Segment(0.14))
	assert.Equal(t, 1.0, p.LocalT(1, 0.14))
}

func TestSampleOutOfRange(t *testing.T) {
	p := Default()
	first := p.Keyframe(0)
	last := p.Keyframe(p.Len() - 1)

	tests := []struct {
		name     string
		progress float64
		want     Keyframe
		segment  int
	}{
		{"below start", -0.3, first, 0},
		{"above end", 1.4, last, p.Len() - 2},
		{"at end", 1.0, last, p.Len() - 2},
		{"not a number", math.NaN(), first, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.segment, p.Segment(tt.progress))
			pose := p.Sample(tt.progress)
			assert.Equal(t, tt.want.Camera, pose.Position)
			assert.Equal(t, tt.want.Target, pose.LookAt)
			assert.Equal(t, tt.want.ShipYaw, pose.ShipYaw)
		})
	}
}

func TestSampleContinuousAcrossKeyframes(t *testing.T) {
	p := Default()
	const eps = 1e-7
	for i := 1; i < p.Len()-1; i++ {
		k := p.Keyframe(i).Progress
		before := p.Sample(k - eps)
		after := p.Sample(k + eps)
		assert.True(t, before.Position.ApproxEqualThreshold(after.Position, 1e-3), "jump at keyframe %d", i)
		assert.InDelta(t, before.ShipYaw, after.ShipYaw, 1e-3)
	}
}

func TestShipYawMonotonic(t *testing.T) {
	p := Default()
	prev := float32(math.Inf(-1))
	for q := 0.0; q <= 1.0; q += 0.001 {
		y := p.Sample(q).ShipYaw
		// Flat segments may wobble by an ulp.
		require.GreaterOrEqual(t, y, prev-1e-6, "yaw decreased at %v", q)
		prev = y
	}
}

func TestZeroSpanSegment(t *testing.T) {
	p := &Path{keys: []Keyframe{
		{Progress: 0.5, Camera: mgl32.Vec3{1, 1, 1}},
		{Progress: 0.5, Camera: mgl32.Vec3{9, 9, 9}},
	}}
	assert.Equal(t, 0.0, p.LocalT(0, 0.5))
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, p.Sample(0.4).Position)
}

func TestLerpEndpoints(t *testing.T) {
	for _, pair := range [][2]float32{{0.32, 4.5}, {-9.31, 15}, {1.87, 1.33}} {
		assert.Equal(t, pair[0], Lerp(pair[0], pair[1], 0))
		assert.Equal(t, pair[1], Lerp(pair[0], pair[1], 1))
	}
}
