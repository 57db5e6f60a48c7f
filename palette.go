package trance

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteMode selects how the composed scalar maps to color.
type PaletteMode uint8

const (
	PaletteCosine    PaletteMode = iota // cosine palette a + b·cos(2π(c·t + d)) per channel
	PalettePosterize                    // quantized hue bands through HSV
)

// MaxPaletteSteps bounds the band count of the posterize mode.
const MaxPaletteSteps = 256

// PaletteConfig maps the composed scalar signal to color.
//
// In cosine mode the four coefficient colors follow the classic procedural
// palette formula: A is the base level, B the oscillation amplitude, C the
// per-channel frequency, and D the per-channel phase. Slightly detuned D
// channels give the characteristic shifting rainbow ramps. In posterize mode
// the signal becomes a hue in a fixed number of bands with smoothed edges,
// converted through HSV.
type PaletteConfig struct {
	Mode PaletteMode `json:"mode"`

	// A, B, C, D are the cosine palette coefficients, one value per channel.
	A Color `json:"a"`
	B Color `json:"b"`
	C Color `json:"c"`
	D Color `json:"d"`

	// Steps is the posterize band count, in [2, MaxPaletteSteps]. Zero
	// selects the default 6.
	Steps int `json:"steps,omitempty"`
	// Smoothing is the softened fraction of each band edge, in [0, 0.5].
	// Zero keeps the edges hard.
	Smoothing float64 `json:"smoothing,omitempty"`
	// Saturation and Value are the HSV components of every band. Zero
	// selects the default 1.
	Saturation float64 `json:"saturation,omitempty"`
	Value      float64 `json:"value,omitempty"`
}

func (p PaletteConfig) withDefaults() PaletteConfig {
	switch p.Mode {
	case PaletteCosine:
		if p.A == (Color{}) && p.B == (Color{}) && p.C == (Color{}) && p.D == (Color{}) {
			// The all-zero coefficient set would paint solid black; fall back
			// to the familiar full-spectrum ramp.
			p.A = Color{0.5, 0.5, 0.5}
			p.B = Color{0.5, 0.5, 0.5}
			p.C = Color{1, 1, 1}
			p.D = Color{0, 1.0 / 3.0, 2.0 / 3.0}
		}
	case PalettePosterize:
		if p.Steps == 0 {
			p.Steps = 6
		}
		if p.Saturation == 0 {
			p.Saturation = 1
		}
		if p.Value == 0 {
			p.Value = 1
		}
	}
	return p
}

func (p PaletteConfig) validate() error {
	if p.Mode > PalettePosterize {
		return fmt.Errorf("trance: unknown palette mode %d", p.Mode)
	}
	switch p.Mode {
	case PaletteCosine:
		for _, c := range []Color{p.A, p.B, p.C, p.D} {
			if !isFinite(c.R) || !isFinite(c.G) || !isFinite(c.B) {
				return fmt.Errorf("trance: cosine palette coefficients must be finite")
			}
		}
	case PalettePosterize:
		if p.Steps < 2 || p.Steps > MaxPaletteSteps {
			return fmt.Errorf("trance: palette steps %d out of range [2, %d]", p.Steps, MaxPaletteSteps)
		}
		if !isFinite(p.Smoothing) || p.Smoothing < 0 || p.Smoothing > 0.5 {
			return fmt.Errorf("trance: palette smoothing %v out of range [0, 0.5]", p.Smoothing)
		}
		if p.Saturation < 0 || p.Saturation > 1 || p.Value < 0 || p.Value > 1 {
			return fmt.Errorf("trance: palette saturation/value out of range [0, 1]")
		}
	}
	return nil
}

// mapColor converts the composed scalar to a color. Cosine palettes clamp
// per channel; posterize output is bounded by construction.
func (p *PaletteConfig) mapColor(signal float64) Color {
	if p.Mode == PalettePosterize {
		return p.posterize(signal)
	}
	return Color{
		R: clamp01(p.A.R + p.B.R*math.Cos(Tau*(p.C.R*signal+p.D.R))),
		G: clamp01(p.A.G + p.B.G*math.Cos(Tau*(p.C.G*signal+p.D.G))),
		B: clamp01(p.A.B + p.B.B*math.Cos(Tau*(p.C.B*signal+p.D.B))),
	}
}

// posterize quantizes the signal into hue bands. The band index blends
// across each boundary with a smoothstep of width Smoothing, so bands snap
// without shimmering at the edge pixels.
func (p *PaletteConfig) posterize(signal float64) Color {
	steps := float64(p.Steps)
	x := fract(signal) * steps
	i := math.Floor(x)
	f := x - i
	if p.Smoothing > 0 {
		i += smoothstep(1-p.Smoothing, 1, f)
	}
	hue := fract(i / steps)
	c := colorful.Hsv(hue*360, p.Saturation, p.Value)
	return Color{R: c.R, G: c.G, B: c.B}
}
