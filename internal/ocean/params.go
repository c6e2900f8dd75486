// Package ocean implements the procedural wave field and the particle grid that samples it.
package ocean

// Params is the live parameter store read every frame by the wave field, the
// particle grid and the ship floater. Editors hold the same pointer the frame
// loop reads; values are not validated here.
type Params struct {
	// Particle appearance (material only, no rebuild)
	ParticleSize    float64 `yaml:"particle_size"`
	ParticleOpacity float64 `yaml:"particle_opacity"`

	// Grid layout (rebuild on change)
	ParticleSpacing float64 `yaml:"particle_spacing"`
	Width           float64 `yaml:"width"`
	Depth           float64 `yaml:"depth"`
	Level           float64 `yaml:"level"`

	// Waves
	WaveSpeed     float64 `yaml:"wave_speed"`
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	WaveFrequency float64 `yaml:"wave_frequency"`

	// Noise
	NoiseAmplitude float64 `yaml:"noise_amplitude"`
	NoiseFrequency float64 `yaml:"noise_frequency"`

	// Scales speed, amplitude and noise amplitude together.
	IntensityMultiplier float64 `yaml:"intensity_multiplier"`

	// Ship rocking
	TiltAmplitude float64 `yaml:"tilt_amplitude"`
}

// DefaultParams returns the values the scene starts with.
func DefaultParams() Params {
	return Params{
		ParticleSize:        0.1,
		ParticleOpacity:     0.5,
		ParticleSpacing:     0.1,
		Width:               20,
		Depth:               20,
		Level:               -0.25,
		WaveSpeed:           0.7,
		WaveAmplitude:       0.15,
		WaveFrequency:       0.8,
		NoiseAmplitude:      0.1,
		NoiseFrequency:      0.8,
		IntensityMultiplier: 1.0,
		TiltAmplitude:       0.1,
	}
}

// ResetParams returns the preset applied by the control panel's reset action.
// It covers a much wider sea than DefaultParams with sparser particles.
func ResetParams() Params {
	return Params{
		ParticleSize:        0.3,
		ParticleOpacity:     0.6,
		ParticleSpacing:     0.5,
		Width:               200,
		Depth:               200,
		Level:               -0.25,
		WaveSpeed:           0.5,
		WaveAmplitude:       0.3,
		WaveFrequency:       0.5,
		NoiseAmplitude:      0.15,
		NoiseFrequency:      1.5,
		IntensityMultiplier: 1.0,
		TiltAmplitude:       0.03,
	}
}
