package ocean

import "math"

// Relative weights of the secondary and diagonal waves.
const (
	secondaryFreq  = 0.8
	secondarySpeed = 0.7
	secondaryAmp   = 0.7

	diagonalFreq  = 0.5
	diagonalSpeed = 0.5
	diagonalAmp   = 0.5

	noiseSpeedX = 0.3
	noiseSpeedZ = 0.4
)

// Height evaluates the wave field at (x, z) and time t in seconds.
// The noise term is only added when includeNoise is set; phaseX and phaseZ
// shift it per sample so neighbouring particles do not move in lockstep.
// Speed, amplitude and noise amplitude are scaled by the intensity
// multiplier here, at evaluation time.
func Height(p *Params, x, z, t float64, includeNoise bool, phaseX, phaseZ float64) float64 {
	speed := p.WaveSpeed * p.IntensityMultiplier
	amp := p.WaveAmplitude * p.IntensityMultiplier
	freq := p.WaveFrequency

	// Along X
	h := math.Sin(x*freq+t*speed) * amp

	// Along Z
	h += math.Sin(z*freq*secondaryFreq+t*speed*secondarySpeed) * amp * secondaryAmp

	// Diagonal
	h += math.Sin((x+z)*freq*diagonalFreq+t*speed*diagonalSpeed) * amp * diagonalAmp

	if includeNoise {
		namp := p.NoiseAmplitude * p.IntensityMultiplier
		nfreq := p.NoiseFrequency
		nx := math.Sin(x*nfreq+t*speed*noiseSpeedX+phaseX) * namp
		nz := math.Cos(z*nfreq+t*speed*noiseSpeedZ+phaseZ) * namp
		h += (nx + nz) * 0.5
	}

	return h
}

// MaxSwell is the bound on |Height| with noise disabled.
func MaxSwell(p *Params) float64 {
	amp := math.Abs(p.WaveAmplitude * p.IntensityMultiplier)
	return amp * (1 + secondaryAmp + diagonalAmp)
}
