package trance

import "math"

// Evaluator is a compiled archetype: a pure function from pixel contexts to
// colors. Compilation applies defaults, validates every parameter, and
// builds the seeded noise sources, so evaluation itself never fails and
// never allocates. An Evaluator is immutable and safe for concurrent use
// from any number of goroutines.
type Evaluator struct {
	desc  ArchetypeDescriptor
	noise []noiseSource // indexed like desc.Fields; nil for non-noise kinds
}

// NewEvaluator compiles a descriptor. Malformed descriptors are rejected
// here; see the parameter docs on the config types for the accepted ranges.
func NewEvaluator(desc ArchetypeDescriptor) (*Evaluator, error) {
	d := desc.withDefaults()
	if err := d.validate(); err != nil {
		return nil, err
	}
	// Detach pole slices from the caller's descriptor so later mutation
	// of the input cannot reach into a compiled evaluator.
	for i := range d.Fields {
		if len(d.Fields[i].Poles) > 0 {
			poles := make([]Pole, len(d.Fields[i].Poles))
			copy(poles, d.Fields[i].Poles)
			d.Fields[i].Poles = poles
		}
	}
	e := &Evaluator{
		desc:  d,
		noise: make([]noiseSource, len(d.Fields)),
	}
	for i := range d.Fields {
		if d.Fields[i].Kind == FieldNoiseWarp {
			e.noise[i] = newNoiseSource(d.Fields[i].Noise, d.Fields[i].Seed)
		}
	}
	return e, nil
}

// Name returns the archetype's name.
func (e *Evaluator) Name() string {
	return e.desc.Name
}

// Descriptor returns a copy of the compiled descriptor with all defaults
// filled in. Mutating the copy does not affect the evaluator.
func (e *Evaluator) Descriptor() ArchetypeDescriptor {
	d := e.desc
	d.Fields = make([]FieldNode, len(e.desc.Fields))
	copy(d.Fields, e.desc.Fields)
	for i := range d.Fields {
		if len(d.Fields[i].Poles) > 0 {
			poles := make([]Pole, len(d.Fields[i].Poles))
			copy(poles, d.Fields[i].Poles)
			d.Fields[i].Poles = poles
		}
	}
	return d
}

// Eval computes the color of one pixel. The pipeline is fixed: normalize,
// pointer warp, kaleidoscope fold, fields in order through their blends,
// palette, post-effects. Identical contexts always produce identical colors,
// so callers may split any pixel range across goroutines in any order.
func (e *Evaluator) Eval(ctx PixelContext) Color {
	base := Normalize(ctx.Pos, ctx.Res)
	c := base
	if e.desc.Pointer.Mode != PointerNone && ctx.Pointer.Active {
		c = e.warpPointer(c, ctx)
	}
	if e.desc.FoldCount >= 2 {
		folded := Fold(c.Theta, e.desc.FoldCount)
		sin, cos := math.Sincos(folded)
		c.Theta = folded
		c.UV = Vec2{X: c.R * cos, Y: c.R * sin}
	}

	signal := 0.0
	glow := 0.0
	wantGlow := e.desc.Post.GlowGain > 0
	for i := range e.desc.Fields {
		f := &e.desc.Fields[i]
		var v float64
		switch f.Kind {
		case FieldSpiralPhase:
			v = spiralPhase(f, c, ctx.T)
		case FieldSpiralSDF:
			v = spiralDist(f, c, ctx.T)
		case FieldNoiseWarp:
			v = noiseWarp(f, e.noise[i], c, ctx.T)
		case FieldFlowPotential:
			v = flowPotential(f, c, ctx.T)
		}
		if wantGlow && f.GlowWeight > 0 {
			glow += f.GlowWeight * math.Exp(-e.desc.Post.GlowFalloff*v)
		}
		if i == 0 {
			signal = v
		} else {
			signal = blend(signal, v, f.Blend)
		}
	}
	if e.desc.ClampSignal {
		signal = clamp01(signal)
	}

	// The vignette reads the unwarped radius: it darkens screen edges, not
	// pattern edges.
	return e.desc.Post.apply(e.desc.Palette.mapColor(signal), glow, base.R, ctx.T)
}

// warpPointer applies the archetype's pointer response to the coordinate.
// Influence decays exponentially with distance from the pointer, so the
// warp stays smooth everywhere and fades to nothing far away.
func (e *Evaluator) warpPointer(c Coord, ctx PixelContext) Coord {
	p := &e.desc.Pointer
	pointerUV := normalizeUV(ctx.Pointer.Pos, ctx.Res)
	offset := c.UV.Sub(pointerUV)
	d := offset.Len()
	switch p.Mode {
	case PointerAttract:
		pull := p.Strength * math.Exp(-d/p.Falloff)
		return coordFromUV(c.UV.Sub(offset.Scale(pull)))
	case PointerStir:
		if !ctx.Pointer.Pressed {
			return c
		}
		angle := p.Strength * math.Exp(-d/p.Falloff)
		return coordFromUV(pointerUV.Add(offset.Rotate(angle)))
	}
	return c
}
