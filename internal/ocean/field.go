package ocean

import "fmt"

// Effect tells the caller what a parameter edit invalidates.
type Effect int

const (
	// EffectNone means the next frame picks the value up on its own.
	EffectNone Effect = iota
	// EffectMaterial means the shared particle material must be refreshed.
	EffectMaterial
	// EffectRebuild means the sample grid must be reallocated.
	EffectRebuild
)

func (e Effect) String() string {
	switch e {
	case EffectMaterial:
		return "material"
	case EffectRebuild:
		return "rebuild"
	default:
		return "none"
	}
}

// Field identifies one editable parameter.
type Field int

const (
	FieldParticleSize Field = iota
	FieldParticleSpacing
	FieldParticleOpacity
	FieldWidth
	FieldDepth
	FieldWaveSpeed
	FieldWaveAmplitude
	FieldWaveFrequency
	FieldNoiseAmplitude
	FieldNoiseFrequency
	FieldIntensity
	FieldTiltAmplitude
	FieldLevel

	fieldCount
)

// FieldInfo describes how an editor presents a field. Min, Max and Step are
// the slider limits; the store itself never clamps.
type FieldInfo struct {
	Label  string
	Min    float64
	Max    float64
	Step   float64
	Effect Effect
}

var fieldInfo = [fieldCount]FieldInfo{
	FieldParticleSize:    {"Particle Size", 0.1, 1.0, 0.05, EffectMaterial},
	FieldParticleSpacing: {"Particle Spacing", 0.2, 1.5, 0.1, EffectRebuild},
	FieldParticleOpacity: {"Particle Opacity", 0.1, 1.0, 0.05, EffectMaterial},
	FieldWidth:           {"Ocean Width", 50, 400, 10, EffectRebuild},
	FieldDepth:           {"Ocean Depth", 50, 400, 10, EffectRebuild},
	FieldWaveSpeed:       {"Wave Speed", 0.1, 2.0, 0.1, EffectNone},
	FieldWaveAmplitude:   {"Wave Amplitude", 0.1, 1.0, 0.05, EffectNone},
	FieldWaveFrequency:   {"Wave Frequency", 0.1, 2.0, 0.1, EffectNone},
	FieldNoiseAmplitude:  {"Noise Amplitude", 0.0, 0.5, 0.05, EffectNone},
	FieldNoiseFrequency:  {"Noise Frequency", 0.5, 3.0, 0.1, EffectNone},
	FieldIntensity:       {"Vigor / Intensity", 0.1, 3.0, 0.1, EffectNone},
	FieldTiltAmplitude:   {"Ship Tilt", 0.0, 0.15, 0.01, EffectNone},
	FieldLevel:           {"Ocean Level", -2.0, 2.0, 0.05, EffectRebuild},
}

// Fields returns every editable field in panel order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := range fieldCount {
		fields = append(fields, f)
	}
	return fields
}

// Info returns the presentation metadata for f.
func (f Field) Info() FieldInfo {
	if f < 0 || f >= fieldCount {
		return FieldInfo{Label: fmt.Sprintf("Field(%d)", int(f))}
	}
	return fieldInfo[f]
}

func (f Field) String() string {
	return f.Info().Label
}

// Format renders v with the precision the slider step implies.
func (f Field) Format(v float64) string {
	if f.Info().Step < 0.1 {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func (p *Params) ptr(f Field) *float64 {
	switch f {
	case FieldParticleSize:
		return &p.ParticleSize
	case FieldParticleSpacing:
		return &p.ParticleSpacing
	case FieldParticleOpacity:
		return &p.ParticleOpacity
	case FieldWidth:
		return &p.Width
	case FieldDepth:
		return &p.Depth
	case FieldWaveSpeed:
		return &p.WaveSpeed
	case FieldWaveAmplitude:
		return &p.WaveAmplitude
	case FieldWaveFrequency:
		return &p.WaveFrequency
	case FieldNoiseAmplitude:
		return &p.NoiseAmplitude
	case FieldNoiseFrequency:
		return &p.NoiseFrequency
	case FieldIntensity:
		return &p.IntensityMultiplier
	case FieldTiltAmplitude:
		return &p.TiltAmplitude
	case FieldLevel:
		return &p.Level
	}
	return nil
}

// Get returns the current value of f.
func (p *Params) Get(f Field) float64 {
	if v := p.ptr(f); v != nil {
		return *v
	}
	return 0
}

// Set writes v into f and reports what the write invalidates. Writing the
// value a field already holds invalidates nothing.
func (p *Params) Set(f Field, v float64) Effect {
	ptr := p.ptr(f)
	if ptr == nil || *ptr == v {
		return EffectNone
	}
	*ptr = v
	return fieldInfo[f].Effect
}

// Diff lists the fields whose values differ between p and other.
func (p *Params) Diff(other *Params) []Field {
	var changed []Field
	for _, f := range Fields() {
		if p.Get(f) != other.Get(f) {
			changed = append(changed, f)
		}
	}
	return changed
}
