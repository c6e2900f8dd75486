package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / ReferenceFrameRate

func TestDefaultTimeConstantReproducesReferenceDamping(t *testing.T) {
	tr := NewTracker(0)
	assert.InDelta(t, ReferenceDamping, tr.Alpha(frame), 1e-12)
	assert.InDelta(t, 0.325, DefaultTimeConstant, 1e-3)
}

func TestTrackerConvergesGeometrically(t *testing.T) {
	tr := NewTracker(0)
	tr.SetTarget(1)

	for n := 1; n <= 200; n++ {
		got := tr.Update(frame)
		want := 1 - math.Pow(0.95, float64(n))
		require.InDelta(t, want, got, 1e-9, "frame %d", n)
		require.Less(t, got, 1.0, "frame %d", n)
	}
}

func TestTrackerFrameRateIndependent(t *testing.T) {
	fast := NewTracker(0)
	slow := NewTracker(0)
	fast.SetTarget(1)
	slow.SetTarget(1)

	// One second at 120 Hz and at 30 Hz.
	for range 120 {
		fast.Update(1.0 / 120)
	}
	for range 30 {
		slow.Update(1.0 / 30)
	}
	assert.InDelta(t, fast.Smoothed(), slow.Smoothed(), 1e-9)
}

func TestTrackerIgnoresNonPositiveDelta(t *testing.T) {
	tr := NewTracker(0)
	tr.SetTarget(1)
	assert.Zero(t, tr.Update(0))
	assert.Zero(t, tr.Update(-1))
}

func TestTrackerDisengaged(t *testing.T) {
	tr := NewTracker(0)
	tr.SetTarget(0.5)
	for range 10 {
		tr.Update(frame)
	}
	frozen := tr.Smoothed()

	tr.Disengage()
	assert.Equal(t, Disengaged, tr.State())

	// Targets keep arriving while disengaged.
	tr.SetTarget(0.9)
	for range 10 {
		assert.Equal(t, frozen, tr.Update(frame))
	}
	assert.Equal(t, 0.9, tr.Target())

	// Re-engaging continues from the frozen value, no snap.
	tr.Engage()
	next := tr.Update(frame)
	assert.InDelta(t, frozen+(0.9-frozen)*ReferenceDamping, next, 1e-12)
}

func TestTrackerOutOfRangeTarget(t *testing.T) {
	tr := NewTracker(0)
	tr.SetTarget(1.2)
	for range 500 {
		tr.Update(frame)
	}
	assert.Greater(t, tr.Smoothed(), 1.0)
	assert.LessOrEqual(t, tr.Smoothed(), 1.2)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "tracking", Tracking.String())
	assert.Equal(t, "disengaged", Disengaged.String())
}
