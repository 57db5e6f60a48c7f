package trance

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseAlgo selects the gradient-noise algorithm backing a noise field.
type NoiseAlgo uint8

const (
	NoiseOpenSimplex NoiseAlgo = iota // OpenSimplex noise, normalized to [0, 1]
	NoisePerlin                       // classic Perlin noise, rescaled to [0, 1]
)

// MaxOctaves bounds the fractal octave count per noise field.
const MaxOctaves = 8

// MaxWarpDepth bounds the domain-warp passes per noise field. Each pass adds
// one full fractal sum per pixel.
const MaxWarpDepth = 2

// noiseSource samples smooth scalar noise in [0, 1] at a 3D point. Sources
// are immutable after construction; equal seeds sample identically forever.
type noiseSource interface {
	sample(x, y, z float64) float64
}

type simplexSource struct {
	noise opensimplex.Noise
}

func (s simplexSource) sample(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)
}

type perlinSource struct {
	noise *perlin.Perlin
}

func (s perlinSource) sample(x, y, z float64) float64 {
	// Noise3D stays within roughly ±0.9; recentre and clamp the stragglers.
	return clamp01(0.5 + 0.5*s.noise.Noise3D(x, y, z))
}

// newNoiseSource builds the seeded source for a noise algorithm. The Perlin
// source runs a single internal iteration; octave layering happens in fbm so
// both algorithms share the same fractal shape.
func newNoiseSource(algo NoiseAlgo, seed int64) noiseSource {
	if algo == NoisePerlin {
		return perlinSource{noise: perlin.NewPerlin(2, 2, 1, seed)}
	}
	return simplexSource{noise: opensimplex.NewNormalized(seed)}
}

// octaveRotation is the fixed domain rotation between octaves, keeping the
// axis-aligned artifacts of successive octaves from lining up.
const octaveRotation = 0.62

// fbm sums octaves of the source with doubling frequency and persistence-
// scaled amplitude, normalizing by the accumulated amplitude so the result
// stays in [0, 1] for any octave count. The time axis z is sampled as-is at
// every octave; scaling it with frequency would make fine octaves flicker.
func fbm(src noiseSource, p Vec2, z float64, octaves int, persistence float64) float64 {
	sum := 0.0
	amp := 1.0
	total := 0.0
	freq := 1.0
	for o := 0; o < octaves; o++ {
		sum += amp * src.sample(p.X*freq, p.Y*freq, z)
		total += amp
		amp *= persistence
		freq *= 2
		p = p.Rotate(octaveRotation)
	}
	return sum / total
}

// warpDirs are the fixed displacement directions of successive warp passes.
var warpDirs = [MaxWarpDepth]Vec2{{X: 0.8, Y: 0.6}, {X: -0.6, Y: 0.8}}

// noiseWarp evaluates fractal noise with up to MaxWarpDepth domain-warp
// passes. Each pass re-samples the fractal at a coordinate displaced along a
// fixed direction by the previous pass's centered value, smearing the
// isolines into the churning, inky look. At most MaxWarpDepth+1 fractal sums
// run per pixel.
func noiseWarp(n *FieldNode, src noiseSource, c Coord, t float64) float64 {
	p := c.UV.Scale(n.Frequency)
	z := t * n.TimeScale
	v := fbm(src, p, z, n.Octaves, n.Persistence)
	for pass := 0; pass < n.WarpDepth; pass++ {
		p = p.Add(warpDirs[pass].Scale(n.WarpStrength * (v - 0.5)))
		v = fbm(src, p, z, n.Octaves, n.Persistence)
	}
	return v
}
