// Package scroll turns a raw scroll offset into smoothed path progress.
package scroll

import "math"

// ReferenceDamping is the per-frame catch-up fraction the default damping
// is tuned to at ReferenceFrameRate.
const (
	ReferenceDamping   = 0.05
	ReferenceFrameRate = 60.0
)

// DefaultTimeConstant reproduces ReferenceDamping at ReferenceFrameRate.
var DefaultTimeConstant = TimeConstantFor(ReferenceDamping, ReferenceFrameRate)

// TimeConstantFor returns τ such that one frame at fps closes the given
// fraction of the gap: 1 − exp(−(1/fps)/τ) = fraction.
func TimeConstantFor(fraction, fps float64) float64 {
	return -(1 / fps) / math.Log(1-fraction)
}

// State is the tracker's engagement state.
type State int

const (
	// Tracking moves smoothed progress toward the target every frame.
	Tracking State = iota
	// Disengaged freezes smoothed progress; targets are still recorded.
	Disengaged
)

func (s State) String() string {
	if s == Disengaged {
		return "disengaged"
	}
	return "tracking"
}

// Tracker damps the raw scroll ratio into a continuous progress value.
type Tracker struct {
	target   float64
	smoothed float64
	state    State

	// TimeConstant is the exponential decay constant in seconds.
	TimeConstant float64
}

// NewTracker creates a tracking tracker. A non-positive timeConstant falls
// back to DefaultTimeConstant.
func NewTracker(timeConstant float64) *Tracker {
	if timeConstant <= 0 {
		timeConstant = DefaultTimeConstant
	}
	return &Tracker{TimeConstant: timeConstant}
}

// SetTarget records the latest raw progress. It is accepted in every state
// and is not clamped.
func (t *Tracker) SetTarget(p float64) {
	t.target = p
}

// Target returns the latest raw progress.
func (t *Tracker) Target() float64 {
	return t.target
}

// Smoothed returns the damped progress.
func (t *Tracker) Smoothed() float64 {
	return t.smoothed
}

// State returns the current engagement state.
func (t *Tracker) State() State {
	return t.state
}

// Engage resumes tracking from the current smoothed value.
func (t *Tracker) Engage() {
	t.state = Tracking
}

// Disengage freezes smoothed progress.
func (t *Tracker) Disengage() {
	t.state = Disengaged
}

// Alpha returns the fraction of the remaining gap closed over dt seconds.
func (t *Tracker) Alpha(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-dt/t.TimeConstant)
}

// Update advances smoothed progress by dt seconds and returns it.
func (t *Tracker) Update(dt float64) float64 {
	if t.state != Tracking {
		return t.smoothed
	}
	t.smoothed += (t.target - t.smoothed) * t.Alpha(dt)
	return t.smoothed
}
