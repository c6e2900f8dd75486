package ocean

import (
	"math"
	"math/rand/v2"
)

// Sample is one particle of the ocean grid.
type Sample struct {
	Initial [3]float32 // fixed at build time
	Phase   [3]float64 // uniform in [0, 2π), fixed at build time
}

// Material holds per-particle appearance shared by every sample. Size and
// opacity edits mutate it in place without touching the grid.
type Material struct {
	Size    float32
	Opacity float32
	Color   [3]float32
}

// Grid is a dense lattice of samples centred on the origin. Positions is
// the flat x,y,z buffer handed to the renderer; only the y components
// change between frames.
type Grid struct {
	Samples   []Sample
	Positions []float32
	Material  *Material

	CountX, CountZ int
	Spacing        float64
	Width, Depth   float64

	// Generation increments on every rebuild so GPU buffers can be reallocated.
	Generation int

	rng *rand.Rand
}

// NewGrid builds a grid for p. A nil rng seeds from the runtime source.
func NewGrid(p *Params, rng *rand.Rand) *Grid {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Grid{
		Material: &Material{Color: [3]float32{1, 1, 1}},
		rng:      rng,
	}
	g.ApplyMaterial(p)
	g.Rebuild(p)
	return g
}

// GridSize returns the lattice dimensions for the given extent and spacing.
// A non-positive spacing yields an empty grid.
func GridSize(width, depth, spacing float64) (nx, nz int) {
	if spacing <= 0 || width <= 0 || depth <= 0 {
		return 0, 0
	}
	return int(math.Floor(width / spacing)), int(math.Floor(depth / spacing))
}

// Rebuild discards every sample and reallocates the lattice from p,
// drawing fresh random phases.
func (g *Grid) Rebuild(p *Params) {
	nx, nz := GridSize(p.Width, p.Depth, p.ParticleSpacing)
	count := nx * nz

	g.Samples = make([]Sample, count)
	g.Positions = make([]float32, count*3)
	g.CountX, g.CountZ = nx, nz
	g.Spacing = p.ParticleSpacing
	g.Width, g.Depth = p.Width, p.Depth
	g.Generation++

	halfX := float64(nx) / 2
	halfZ := float64(nz) / 2
	y := float32(p.Level)

	idx := 0
	for i := range nx {
		for j := range nz {
			x := float32((float64(i) - halfX) * p.ParticleSpacing)
			z := float32((float64(j) - halfZ) * p.ParticleSpacing)

			s := &g.Samples[idx]
			s.Initial = [3]float32{x, y, z}
			s.Phase = [3]float64{
				g.rng.Float64() * 2 * math.Pi,
				g.rng.Float64() * 2 * math.Pi,
				g.rng.Float64() * 2 * math.Pi,
			}

			g.Positions[idx*3] = x
			g.Positions[idx*3+1] = y
			g.Positions[idx*3+2] = z
			idx++
		}
	}
}

// ApplyMaterial copies size and opacity from p into the shared material.
func (g *Grid) ApplyMaterial(p *Params) {
	g.Material.Size = float32(p.ParticleSize)
	g.Material.Opacity = float32(p.ParticleOpacity)
}

// Apply routes an edit effect to the matching refresh.
func (g *Grid) Apply(p *Params, e Effect) {
	switch e {
	case EffectRebuild:
		g.Rebuild(p)
	case EffectMaterial:
		g.ApplyMaterial(p)
	}
}

// Len returns the number of samples.
func (g *Grid) Len() int {
	return len(g.Samples)
}

// Update writes the wave height for time t into every sample. All samples
// see the same t.
func (g *Grid) Update(p *Params, t float64) {
	for i := range g.Samples {
		s := &g.Samples[i]
		h := Height(p, float64(s.Initial[0]), float64(s.Initial[2]), t, true, s.Phase[0], s.Phase[2])
		g.Positions[i*3+1] = s.Initial[1] + float32(h)
	}
}

// Position returns the current position of sample i.
func (g *Grid) Position(i int) [3]float32 {
	return [3]float32{g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]}
}
