// Coastal terrain profile using layered simplex noise. The ground is
// mostly flat at Config.GroundLevel with gentle relief; debris settles
// onto it and buildings sit on it.
package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Terrain samples the ground elevation along the coastal band.
type Terrain struct {
	noise opensimplex.Noise
	base  float64
}

// NewTerrain creates a terrain profile from a seed and base elevation.
func NewTerrain(seed int64, groundLevel float64) *Terrain {
	return &Terrain{
		noise: opensimplex.NewNormalized(seed),
		base:  groundLevel,
	}
}

// GroundY returns the ground elevation at x. Relief stays within a few
// units so settlements remain walkable.
func (t *Terrain) GroundY(x float64) float64 {
	n := octaveNoise(t.noise, x, 0, 3, 0.002, 0.5)
	return t.base + (n-0.5)*12
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
