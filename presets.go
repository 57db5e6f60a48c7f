package trance

// Built-in archetype catalog. Every preset compiles; TestPresetsCompile
// keeps that honest. The catalog intentionally covers every field kind,
// both wave strategies, both noise algorithms, and both palette modes, so
// it doubles as a live tour of the engine.

// Presets returns the built-in archetypes in catalog order. The slice and
// everything in it are fresh copies; callers may mutate freely.
func Presets() []ArchetypeDescriptor {
	return []ArchetypeDescriptor{
		{
			Name: "vortex",
			Fields: []FieldNode{{
				Kind:       FieldSpiralPhase,
				Wave:       WaveTrig,
				Arms:       3,
				Tightness:  2.0,
				Speed:      0.25,
				GlowWeight: 0.4,
			}},
			Pointer: PointerConfig{Mode: PointerAttract},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.45, 0.35, 0.55},
				B:    Color{0.45, 0.35, 0.45},
				C:    Color{1, 1, 1},
				D:    Color{0.0, 0.15, 0.35},
			},
			Post: PostConfig{
				VignetteRadius: 0.6,
				GlowGain:       0.25,
				GlowColor:      Color{0.9, 0.8, 1.0},
			},
		},
		{
			Name: "undertow",
			Fields: []FieldNode{
				{
					Kind:      FieldSpiralPhase,
					Wave:      WaveChebyshev,
					Arms:      2,
					Tightness: 3.0,
					Speed:     0.18,
				},
				{
					Kind:      FieldSpiralPhase,
					Wave:      WaveChebyshev,
					Arms:      2,
					Tightness: 3.0,
					Speed:     -0.18,
					Blend:     BlendSpec{Op: BlendMin},
				},
			},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.15, 0.3, 0.45},
				B:    Color{0.2, 0.35, 0.5},
				C:    Color{1.0, 1.0, 0.8},
				D:    Color{0.5, 0.6, 0.7},
			},
			Post: PostConfig{VignetteRadius: 0.65, Contrast: 1.15},
		},
		{
			Name: "pinwheel",
			Fields: []FieldNode{{
				Kind:  FieldSpiralPhase,
				Wave:  WaveTrig,
				Arms:  6,
				Speed: 0.4,
			}},
			Pointer: PointerConfig{Mode: PointerStir},
			Palette: PaletteConfig{
				Mode:      PalettePosterize,
				Steps:     6,
				Smoothing: 0.08,
				Value:     0.95,
			},
			Post: PostConfig{VignetteRadius: 0.7},
		},
		{
			Name:      "kaleidoscope",
			FoldCount: 12,
			Fields: []FieldNode{
				{
					Kind:      FieldSpiralPhase,
					Wave:      WaveTrig,
					Arms:      4,
					Tightness: 1.6,
					Speed:     0.2,
				},
				{
					Kind:         FieldNoiseWarp,
					Noise:        NoiseOpenSimplex,
					Octaves:      4,
					Frequency:    3,
					WarpDepth:    1,
					WarpStrength: 0.8,
					Seed:         11,
					Blend:        BlendSpec{Op: BlendMultiply},
				},
			},
			Palette: PaletteConfig{
				Mode:       PalettePosterize,
				Steps:      8,
				Smoothing:  0.12,
				Saturation: 0.85,
			},
			Post: PostConfig{VignetteRadius: 0.55, VignetteSoftness: 0.5},
		},
		{
			Name: "inkflow",
			Fields: []FieldNode{{
				Kind:         FieldNoiseWarp,
				Noise:        NoiseOpenSimplex,
				Octaves:      6,
				Frequency:    2.2,
				WarpDepth:    2,
				WarpStrength: 1.4,
				TimeScale:    0.08,
				Seed:         7,
			}},
			ClampSignal: true,
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.12, 0.12, 0.18},
				B:    Color{0.35, 0.3, 0.45},
				C:    Color{1.2, 1.0, 0.9},
				D:    Color{0.6, 0.5, 0.4},
			},
			Post: PostConfig{Gamma: 1.3, Contrast: 1.2},
		},
		{
			Name: "emberfield",
			Fields: []FieldNode{{
				Kind:         FieldNoiseWarp,
				Noise:        NoisePerlin,
				Octaves:      5,
				Frequency:    2.8,
				Persistence:  0.55,
				WarpDepth:    1,
				WarpStrength: 1.0,
				TimeScale:    0.12,
				Seed:         23,
			}},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.45, 0.2, 0.05},
				B:    Color{0.5, 0.3, 0.15},
				C:    Color{1, 1, 1},
				D:    Color{0.0, 0.1, 0.2},
			},
			Post: PostConfig{
				VignetteRadius: 0.6,
				PulseRate:      0.12,
				PulseDepth:     0.18,
			},
		},
		{
			Name: "riptide",
			Fields: []FieldNode{{
				Kind: FieldFlowPotential,
				Poles: []Pole{
					{Strength: 1.0, Center: Vec2{X: -0.25, Y: 0}, OrbitRadius: 0.22, RateA: 0.31, RateB: 0.19},
					{Strength: -1.0, Center: Vec2{X: 0.25, Y: 0}, OrbitRadius: 0.22, RateA: 0.23, RateB: 0.37, PhaseA: 1.3},
					{Strength: 0.6, Center: Vec2{X: 0, Y: 0.2}, OrbitRadius: 0.3, RateA: 0.17, RateB: 0.29, PhaseB: 2.1},
				},
				Gain: 0.8,
			}},
			Pointer: PointerConfig{Mode: PointerAttract, Strength: 0.5},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.1, 0.25, 0.4},
				B:    Color{0.15, 0.3, 0.4},
				C:    Color{0.8, 1.0, 1.2},
				D:    Color{0.55, 0.5, 0.45},
			},
			Post: PostConfig{VignetteRadius: 0.7, Gamma: 1.1},
		},
		{
			Name: "lanterns",
			Fields: []FieldNode{
				{
					Kind: FieldFlowPotential,
					Poles: []Pole{
						{Strength: -0.8, Center: Vec2{X: -0.3, Y: -0.15}, OrbitRadius: 0.18, RateA: 0.27, RateB: 0.41},
						{Strength: -0.8, Center: Vec2{X: 0.3, Y: 0.15}, OrbitRadius: 0.18, RateA: 0.33, RateB: 0.21, PhaseA: 2.4},
					},
					Gain: 1.1,
				},
				{
					Kind:       FieldSpiralSDF,
					Arms:       5,
					Tightness:  2.4,
					Speed:      0.12,
					GlowWeight: 1.0,
					Blend:      BlendSpec{Op: BlendMax},
				},
			},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.2, 0.12, 0.08},
				B:    Color{0.3, 0.2, 0.12},
				C:    Color{1, 1, 1},
				D:    Color{0.1, 0.2, 0.4},
			},
			Post: PostConfig{
				GlowGain:    0.5,
				GlowFalloff: 7,
				GlowColor:   Color{1.0, 0.75, 0.4},
				Gamma:       1.15,
			},
		},
		{
			Name: "silverthread",
			Fields: []FieldNode{{
				Kind:       FieldSpiralSDF,
				Arms:       9,
				Tightness:  3.2,
				Speed:      0.3,
				GlowWeight: 1.0,
			}},
			ClampSignal: true,
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.1, 0.1, 0.12},
				B:    Color{0.12, 0.12, 0.15},
				C:    Color{1, 1, 1},
				D:    Color{0.3, 0.3, 0.35},
			},
			Post: PostConfig{
				GlowGain:    0.6,
				GlowFalloff: 9,
				GlowColor:   Color{0.85, 0.9, 1.0},
				Saturation:  0.4,
			},
		},
		{
			Name:      "bloom",
			FoldCount: 5,
			Fields: []FieldNode{
				{
					Kind:      FieldSpiralPhase,
					Wave:      WaveTrig,
					Arms:      5,
					Tightness: 1.2,
					Speed:     0.15,
					Phase:     0.6,
				},
				{
					Kind:      FieldNoiseWarp,
					Noise:     NoiseOpenSimplex,
					Octaves:   4,
					Frequency: 4,
					TimeScale: 0.1,
					Seed:      42,
					Blend:     BlendSpec{Op: BlendMix, Weight: 0.35},
				},
			},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.5, 0.3, 0.4},
				B:    Color{0.4, 0.3, 0.35},
				C:    Color{1, 1, 1},
				D:    Color{0.0, 0.25, 0.5},
			},
			Post: PostConfig{
				VignetteRadius:   0.55,
				VignetteSoftness: 0.45,
				PulseRate:        0.1,
				PulseDepth:       0.12,
			},
		},
		{
			Name: "maelstrom",
			Fields: []FieldNode{
				{
					Kind:      FieldSpiralPhase,
					Wave:      WaveChebyshev,
					Arms:      5,
					Tightness: 3.5,
					Speed:     0.6,
				},
				{
					Kind: FieldFlowPotential,
					Poles: []Pole{
						{Strength: 1.2, Center: Vec2{}, OrbitRadius: 0.35, RateA: 0.43, RateB: 0.27},
					},
					Gain:  0.9,
					Blend: BlendSpec{Op: BlendMin},
				},
			},
			Pointer: PointerConfig{Mode: PointerStir, Strength: 2.2},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.25, 0.15, 0.35},
				B:    Color{0.35, 0.25, 0.4},
				C:    Color{1.1, 0.9, 1.0},
				D:    Color{0.2, 0.4, 0.6},
			},
			Post: PostConfig{Contrast: 1.25, Gamma: 1.1},
		},
		{
			Name: "halcyon",
			Fields: []FieldNode{{
				Kind:      FieldSpiralPhase,
				Wave:      WaveTrig,
				Arms:      1,
				Tightness: 1.2,
				Speed:     0.08,
			}},
			Palette: PaletteConfig{
				Mode: PaletteCosine,
				A:    Color{0.35, 0.4, 0.45},
				B:    Color{0.25, 0.25, 0.3},
				C:    Color{0.7, 0.8, 0.9},
				D:    Color{0.4, 0.45, 0.5},
			},
			Post: PostConfig{
				VignetteRadius:   0.45,
				VignetteSoftness: 0.6,
				PulseRate:        0.07,
				PulseDepth:       0.25,
				Contrast:         0.85,
			},
		},
	}
}

// Preset returns the named built-in archetype. The boolean reports whether
// the name exists.
func Preset(name string) (ArchetypeDescriptor, bool) {
	for _, d := range Presets() {
		if d.Name == name {
			return d, true
		}
	}
	return ArchetypeDescriptor{}, false
}

// PresetNames returns the built-in archetype names in catalog order.
func PresetNames() []string {
	presets := Presets()
	names := make([]string, len(presets))
	for i, d := range presets {
		names[i] = d.Name
	}
	return names
}
