package trance

import (
	"fmt"
	"math"
)

// PostConfig shapes the palette output into the final color. Effects apply
// in a fixed order: vignette, glow, pulse, gamma, contrast, saturation, and
// the terminal clamp. Zero values are neutral except where a default is
// documented, so the zero PostConfig passes colors through untouched.
type PostConfig struct {
	// VignetteRadius is where edge darkening begins, in normalized radius.
	// Zero or negative disables the vignette.
	VignetteRadius float64 `json:"vignetteRadius,omitempty"`
	// VignetteSoftness is the width of the darkening ramp. Zero selects the
	// default 0.35.
	VignetteSoftness float64 `json:"vignetteSoftness,omitempty"`

	// GlowGain scales the additive glow accumulated from field outputs.
	// Zero disables glow.
	GlowGain float64 `json:"glowGain,omitempty"`
	// GlowFalloff is the exponential decay rate of glow with field value;
	// higher values hug the arms tighter. Zero selects the default 4.
	GlowFalloff float64 `json:"glowFalloff,omitempty"`
	// GlowColor tints the glow. The zero color selects white.
	GlowColor Color `json:"glowColor"`

	// PulseRate is a slow sinusoidal brightness breathing in cycles per
	// second. Zero disables the pulse.
	PulseRate float64 `json:"pulseRate,omitempty"`
	// PulseDepth is the pulse amplitude, in [0, 1). The brightness factor
	// swings between 1-depth and 1.
	PulseDepth float64 `json:"pulseDepth,omitempty"`

	// Gamma is the power-law exponent per channel. Zero selects 1 (linear).
	Gamma float64 `json:"gamma,omitempty"`
	// Contrast scales channels about the 0.5 midpoint. Zero selects 1.
	Contrast float64 `json:"contrast,omitempty"`
	// Saturation mixes each channel against its luma. 1 is unchanged, 0 is
	// grayscale. Zero selects 1; use a small positive value for grayscale.
	Saturation float64 `json:"saturation,omitempty"`
}

func (p PostConfig) withDefaults() PostConfig {
	if p.VignetteRadius > 0 && p.VignetteSoftness == 0 {
		p.VignetteSoftness = 0.35
	}
	if p.GlowGain > 0 && p.GlowFalloff == 0 {
		p.GlowFalloff = 4
	}
	if p.GlowGain > 0 && p.GlowColor == (Color{}) {
		p.GlowColor = ColorWhite
	}
	if p.Gamma == 0 {
		p.Gamma = 1
	}
	if p.Contrast == 0 {
		p.Contrast = 1
	}
	if p.Saturation == 0 {
		p.Saturation = 1
	}
	return p
}

func (p PostConfig) validate() error {
	for _, v := range []float64{p.VignetteRadius, p.VignetteSoftness, p.GlowGain, p.GlowFalloff, p.PulseRate} {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("trance: post effect parameters must be finite and non-negative")
		}
	}
	if !isFinite(p.PulseDepth) || p.PulseDepth < 0 || p.PulseDepth >= 1 {
		return fmt.Errorf("trance: pulse depth %v out of range [0, 1)", p.PulseDepth)
	}
	if p.Gamma <= 0 || !isFinite(p.Gamma) {
		return fmt.Errorf("trance: gamma %v must be finite and positive", p.Gamma)
	}
	if p.Contrast < 0 || !isFinite(p.Contrast) {
		return fmt.Errorf("trance: contrast %v must be finite and non-negative", p.Contrast)
	}
	if p.Saturation < 0 || !isFinite(p.Saturation) {
		return fmt.Errorf("trance: saturation %v must be finite and non-negative", p.Saturation)
	}
	if !isFinite(p.GlowColor.R) || !isFinite(p.GlowColor.G) || !isFinite(p.GlowColor.B) {
		return fmt.Errorf("trance: glow color must be finite")
	}
	return nil
}

// apply runs the post-effect chain. glow is the pre-accumulated weighted
// glow term from the field pass; r is the normalized radius of the pixel.
func (p *PostConfig) apply(c Color, glow, r, t float64) Color {
	if p.VignetteRadius > 0 {
		v := 1 - smoothstep(p.VignetteRadius, p.VignetteRadius+p.VignetteSoftness, r)
		c = c.Scale(v)
	}
	if p.GlowGain > 0 && glow > 0 {
		g := p.GlowGain * glow
		c.R += p.GlowColor.R * g
		c.G += p.GlowColor.G * g
		c.B += p.GlowColor.B * g
	}
	if p.PulseRate > 0 && p.PulseDepth > 0 {
		c = c.Scale(1 - p.PulseDepth*(0.5+0.5*math.Sin(Tau*p.PulseRate*t)))
	}
	if p.Gamma != 1 {
		c.R = powSafe(c.R, p.Gamma)
		c.G = powSafe(c.G, p.Gamma)
		c.B = powSafe(c.B, p.Gamma)
	}
	if p.Contrast != 1 {
		c.R = (c.R-0.5)*p.Contrast + 0.5
		c.G = (c.G-0.5)*p.Contrast + 0.5
		c.B = (c.B-0.5)*p.Contrast + 0.5
	}
	if p.Saturation != 1 {
		lum := 0.299*c.R + 0.587*c.G + 0.114*c.B
		c.R = lum + (c.R-lum)*p.Saturation
		c.G = lum + (c.G-lum)*p.Saturation
		c.B = lum + (c.B-lum)*p.Saturation
	}
	return finalize(c)
}

// powSafe is math.Pow with negative bases floored to zero first, so gamma
// after an overshooting contrast or glow never produces NaN.
func powSafe(v, exp float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Pow(v, exp)
}

// finalize clamps every channel to [0, 1] and substitutes the fallback for
// anything non-finite. This is the terminal guarantee: no NaN, no infinity,
// nothing outside the displayable range leaves the pipeline.
func finalize(c Color) Color {
	return Color{R: scrub(c.R), G: scrub(c.G), B: scrub(c.B)}
}

func scrub(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return clamp01(v)
}
