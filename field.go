package trance

import (
	"fmt"
	"math"
)

// FieldKind selects the evaluation behavior of a FieldNode and decides which
// of its parameter groups applies.
type FieldKind uint8

const (
	FieldSpiralPhase   FieldKind = iota // N-armed spiral via an angular wave of a log-radius phase
	FieldSpiralSDF                      // normalized distance to the nearest spiral arm isoline
	FieldNoiseWarp                      // fractal noise with iterated domain warping
	FieldFlowPotential                  // log potential of orbiting sources and sinks
)

// FieldNode describes one scalar field of an archetype. It is a plain data
// struct; which parameter group is read depends on Kind, and unused groups
// are ignored. Zero values select the documented defaults where one exists.
type FieldNode struct {
	// Kind selects the field function.
	Kind FieldKind `json:"kind"`
	// Blend controls how this field's output folds into the running signal.
	Blend BlendSpec `json:"blend"`
	// GlowWeight scales this field's contribution to the additive glow pass.
	// Zero contributes no glow.
	GlowWeight float64 `json:"glowWeight,omitempty"`

	// --- Spiral parameters (FieldSpiralPhase, FieldSpiralSDF) ---

	// Wave selects the angular oscillation strategy.
	Wave WaveStrategy `json:"wave,omitempty"`
	// Arms is the arm count N, in [1, MaxArmCount]. Required for spiral kinds.
	Arms int `json:"arms,omitempty"`
	// Tightness scales the log-radius term of the spiral phase. Zero is
	// accepted and degenerates to a flat pinwheel fan.
	Tightness float64 `json:"tightness,omitempty"`
	// Speed is the phase advance per second. Positive values wind inward.
	Speed float64 `json:"speed,omitempty"`
	// Phase is the initial phase offset in radians.
	Phase float64 `json:"phase,omitempty"`
	// Soften is added to the radius before the logarithm, fading the infinite
	// winding toward the center. Zero selects the default 0.1.
	Soften float64 `json:"soften,omitempty"`

	// --- Noise parameters (FieldNoiseWarp) ---

	// Noise selects the noise algorithm backing the fractal sum.
	Noise NoiseAlgo `json:"noise,omitempty"`
	// Octaves is the fractal octave count, in [1, MaxOctaves]. Zero selects
	// the default 5.
	Octaves int `json:"octaves,omitempty"`
	// Frequency is the base sampling frequency. Zero selects the default 2.
	Frequency float64 `json:"frequency,omitempty"`
	// Persistence is the per-octave amplitude falloff, in (0, 1]. Zero
	// selects the default 0.5.
	Persistence float64 `json:"persistence,omitempty"`
	// WarpDepth is the number of domain-warp passes, in [0, MaxWarpDepth].
	WarpDepth int `json:"warpDepth,omitempty"`
	// WarpStrength scales each warp pass's coordinate displacement.
	WarpStrength float64 `json:"warpStrength,omitempty"`
	// TimeScale maps seconds onto the third noise axis. Zero selects the
	// default 0.15.
	TimeScale float64 `json:"timeScale,omitempty"`
	// Seed selects the noise permutation. Equal seeds reproduce equal fields.
	Seed int64 `json:"seed,omitempty"`

	// --- Flow parameters (FieldFlowPotential) ---

	// Poles are the orbiting sources and sinks, at most MaxPoles. Required
	// for flow kinds.
	Poles []Pole `json:"poles,omitempty"`
	// Gain scales the summed potential before the tanh squash. Zero selects
	// the default 0.5.
	Gain float64 `json:"gain,omitempty"`
}

// withDefaults returns a copy with zero-valued parameters replaced by their
// documented defaults. Only parameters of the node's kind are touched.
func (n FieldNode) withDefaults() FieldNode {
	switch n.Kind {
	case FieldSpiralPhase, FieldSpiralSDF:
		if n.Soften == 0 {
			n.Soften = 0.1
		}
	case FieldNoiseWarp:
		if n.Octaves == 0 {
			n.Octaves = 5
		}
		if n.Frequency == 0 {
			n.Frequency = 2
		}
		if n.Persistence == 0 {
			n.Persistence = 0.5
		}
		if n.TimeScale == 0 {
			n.TimeScale = 0.15
		}
	case FieldFlowPotential:
		if n.Gain == 0 {
			n.Gain = 0.5
		}
	}
	return n
}

// validate checks the node after defaults have been applied. The index names
// the node in error messages.
func (n FieldNode) validate(i int) error {
	if n.Kind > FieldFlowPotential {
		return fmt.Errorf("trance: field %d: unknown kind %d", i, n.Kind)
	}
	if n.Wave > WaveChebyshev {
		return fmt.Errorf("trance: field %d: unknown wave strategy %d", i, n.Wave)
	}
	if err := n.Blend.validate(i); err != nil {
		return err
	}
	if n.GlowWeight < 0 || !isFinite(n.GlowWeight) {
		return fmt.Errorf("trance: field %d: glow weight %v must be finite and non-negative", i, n.GlowWeight)
	}
	switch n.Kind {
	case FieldSpiralPhase, FieldSpiralSDF:
		if n.Arms < 1 || n.Arms > MaxArmCount {
			return fmt.Errorf("trance: field %d: arm count %d out of range [1, %d]", i, n.Arms, MaxArmCount)
		}
		if !isFinite(n.Tightness) || !isFinite(n.Speed) || !isFinite(n.Phase) {
			return fmt.Errorf("trance: field %d: spiral parameters must be finite", i)
		}
		if n.Soften <= 0 || n.Soften > 1 {
			return fmt.Errorf("trance: field %d: soften %v out of range (0, 1]", i, n.Soften)
		}
	case FieldNoiseWarp:
		if n.Noise > NoisePerlin {
			return fmt.Errorf("trance: field %d: unknown noise algorithm %d", i, n.Noise)
		}
		if n.Octaves < 1 || n.Octaves > MaxOctaves {
			return fmt.Errorf("trance: field %d: octave count %d out of range [1, %d]", i, n.Octaves, MaxOctaves)
		}
		if n.Frequency <= 0 || !isFinite(n.Frequency) {
			return fmt.Errorf("trance: field %d: frequency %v must be finite and positive", i, n.Frequency)
		}
		if n.Persistence <= 0 || n.Persistence > 1 {
			return fmt.Errorf("trance: field %d: persistence %v out of range (0, 1]", i, n.Persistence)
		}
		if n.WarpDepth < 0 || n.WarpDepth > MaxWarpDepth {
			return fmt.Errorf("trance: field %d: warp depth %d out of range [0, %d]", i, n.WarpDepth, MaxWarpDepth)
		}
		if !isFinite(n.WarpStrength) {
			return fmt.Errorf("trance: field %d: warp strength %v must be finite", i, n.WarpStrength)
		}
		if n.TimeScale < 0 || !isFinite(n.TimeScale) {
			return fmt.Errorf("trance: field %d: time scale %v must be finite and non-negative", i, n.TimeScale)
		}
	case FieldFlowPotential:
		if len(n.Poles) == 0 {
			return fmt.Errorf("trance: field %d: flow field needs at least one pole", i)
		}
		if len(n.Poles) > MaxPoles {
			return fmt.Errorf("trance: field %d: pole count %d exceeds %d", i, len(n.Poles), MaxPoles)
		}
		for j, p := range n.Poles {
			if err := p.validate(i, j); err != nil {
				return err
			}
		}
		if n.Gain <= 0 || !isFinite(n.Gain) {
			return fmt.Errorf("trance: field %d: gain %v must be finite and positive", i, n.Gain)
		}
	}
	return nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
