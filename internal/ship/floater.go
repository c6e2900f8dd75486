// Package ship keeps the ship model riding the ocean swell.
package ship

import (
	"math"

	"github.com/Faultbox/tideline/internal/engine/model"
	"github.com/Faultbox/tideline/internal/ocean"
)

// tiltRate is the spatial and temporal rate of the rocking motion.
const tiltRate = 0.5

// Floater applies wave height and a rocking tilt to the ship transform.
type Floater struct {
	// Baseline is the ship's rest height above the wave field.
	Baseline float64
}

// Tilt returns the rocking angles about X and Z for a ship at (x, z).
// This is a cheap stand-in for the wave slope, not its derivative.
func Tilt(p *ocean.Params, x, z, t float64) (tiltX, tiltZ float64) {
	amp := p.TiltAmplitude * p.IntensityMultiplier
	tiltX = math.Sin(x*tiltRate+t*tiltRate) * amp
	tiltZ = math.Cos(z*tiltRate+t*tiltRate) * amp
	return tiltX, tiltZ
}

// Update floats tr on the wave field at time t. The ship reads the field
// without the noise term so it moves more smoothly than the particles.
// A nil transform means the model has not loaded yet and is ignored.
func (f *Floater) Update(tr *model.Transform, p *ocean.Params, t float64) {
	if tr == nil {
		return
	}
	x := float64(tr.Position[0])
	z := float64(tr.Position[2])

	h := ocean.Height(p, x, z, t, false, 0, 0)
	tr.Position[1] = float32(f.Baseline + h)

	tiltX, tiltZ := Tilt(p, x, z, t)
	tr.Rotation[0] = float32(tiltX)
	tr.Rotation[2] = float32(tiltZ)
}
