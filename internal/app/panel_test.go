package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/tideline/internal/camerapath"
	"github.com/Faultbox/tideline/internal/director"
	"github.com/Faultbox/tideline/internal/ocean"
)

func TestPanelStartsClosedOnFirstField(t *testing.T) {
	p := NewPanel()
	assert.False(t, p.Open())
	assert.Equal(t, ocean.FieldParticleSize, p.Selected())

	p.Toggle()
	assert.True(t, p.Open())
	p.Toggle()
	assert.False(t, p.Open())
}

func TestPanelSelectionWraps(t *testing.T) {
	p := NewPanel()
	p.Prev()
	assert.Equal(t, ocean.FieldLevel, p.Selected())
	p.Next()
	assert.Equal(t, ocean.FieldParticleSize, p.Selected())
	p.Next()
	assert.Equal(t, ocean.FieldParticleSpacing, p.Selected())
}

func selectField(t *testing.T, p *Panel, f ocean.Field) {
	t.Helper()
	for range ocean.Fields() {
		if p.Selected() == f {
			return
		}
		p.Next()
	}
	require.FailNow(t, "field not in panel", f.String())
}

func TestPanelStep(t *testing.T) {
	params := ocean.DefaultParams()
	p := NewPanel()
	selectField(t, p, ocean.FieldWaveSpeed)

	f, v, ok := p.Step(&params, 1)
	assert.True(t, ok)
	assert.Equal(t, ocean.FieldWaveSpeed, f)
	assert.InDelta(t, 0.8, v, 1e-9)

	// Step does not write to the store.
	assert.Equal(t, 0.7, params.WaveSpeed)

	_, v, ok = p.Step(&params, -2)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)
}

func TestPanelStepStopsAtLimit(t *testing.T) {
	params := ocean.DefaultParams()
	params.IntensityMultiplier = 3.0
	p := NewPanel()
	selectField(t, p, ocean.FieldIntensity)

	_, v, ok := p.Step(&params, 1)
	assert.False(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestSliderValue(t *testing.T) {
	tests := []struct {
		name  string
		field ocean.Field
		in    float64
		want  float64
	}{
		{"on grid", ocean.FieldWaveSpeed, 0.7, 0.7},
		{"snaps", ocean.FieldParticleSize, 0.17, 0.15},
		{"below min", ocean.FieldParticleSpacing, 0.1, 0.2},
		{"above max", ocean.FieldWidth, 1000, 400},
		{"negative range", ocean.FieldLevel, -0.25, -0.25},
		{"zero min", ocean.FieldNoiseAmplitude, -0.05, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SliderValue(tt.field, tt.in), 1e-9)
		})
	}
}

func TestPanelStatus(t *testing.T) {
	params := ocean.DefaultParams()
	p := NewPanel()
	assert.Equal(t, "Particle Size 0.10 [0.10..1.00] (1/13)", p.Status(&params))

	selectField(t, p, ocean.FieldWaveSpeed)
	assert.Equal(t, "Wave Speed 0.7 [0.1..2.0] (6/13)", p.Status(&params))
}

func TestHUD(t *testing.T) {
	pose := camerapath.Pose{Position: [3]float32{1, 2, 3}, LookAt: [3]float32{0, 0.5, 0}}

	tests := []struct {
		name string
		h    hud
		want string
	}{
		{"plain", hud{Base: "Tideline"}, "Tideline"},
		{"loading", hud{Base: "Tideline", Loading: "loading 50%"}, "Tideline | loading 50%"},
		{
			"free camera",
			hud{Base: "Tideline", Mode: director.Free, Pose: pose},
			"Tideline | free camera pos (1.00, 2.00, 3.00) target (0.00, 0.50, 0.00)",
		},
		{
			"panel and message",
			hud{Base: "T", Panel: "Wave Speed 0.7", Message: "saved"},
			"T | Wave Speed 0.7 | saved",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.h.String())
		})
	}
}
