package trance

import (
	"encoding/json"
	"fmt"
)

// MaxFields bounds the field count per archetype. Together with the octave,
// warp, arm, and pole caps it keeps the per-pixel cost of any valid
// descriptor bounded.
const MaxFields = 8

// PointerMode selects how pointer state influences evaluation.
type PointerMode uint8

const (
	PointerNone    PointerMode = iota // pointer state is ignored
	PointerAttract                    // coordinates bend toward the pointer
	PointerStir                       // a pressed pointer swirls coordinates around itself
)

// PointerConfig describes the archetype's response to pointer state. The
// pointer enters evaluation as plain input data, so responses stay
// deterministic: the same pointer state always produces the same frame.
type PointerConfig struct {
	Mode PointerMode `json:"mode"`
	// Strength scales the response: the pull fraction for attract, the
	// swirl angle in radians for stir. Zero selects the default 0.35 for
	// attract and 1.5 for stir.
	Strength float64 `json:"strength,omitempty"`
	// Falloff is the influence radius in normalized coordinates. Zero
	// selects the default 0.4.
	Falloff float64 `json:"falloff,omitempty"`
}

func (p PointerConfig) withDefaults() PointerConfig {
	if p.Strength == 0 {
		switch p.Mode {
		case PointerAttract:
			p.Strength = 0.35
		case PointerStir:
			p.Strength = 1.5
		}
	}
	if p.Falloff == 0 {
		p.Falloff = 0.4
	}
	return p
}

func (p PointerConfig) validate() error {
	if p.Mode > PointerStir {
		return fmt.Errorf("trance: unknown pointer mode %d", p.Mode)
	}
	if !isFinite(p.Strength) || !isFinite(p.Falloff) {
		return fmt.Errorf("trance: pointer parameters must be finite")
	}
	if p.Falloff <= 0 {
		return fmt.Errorf("trance: pointer falloff %v must be positive", p.Falloff)
	}
	return nil
}

// ArchetypeDescriptor is the complete, declarative description of one
// pattern: its fields, their composition, the optional kaleidoscope fold,
// pointer response, palette, and post-effects. Descriptors are plain data.
// They marshal to and from JSON without loss, and a descriptor compiled
// after a round trip renders identically to the original.
//
// Descriptors are not validated until compiled with NewEvaluator.
type ArchetypeDescriptor struct {
	// Name labels the archetype for HUDs and playlists.
	Name string `json:"name"`
	// Fields evaluate in order; see BlendSpec for how outputs combine.
	Fields []FieldNode `json:"fields"`
	// FoldCount applies an N-way kaleidoscope fold to the angle before the
	// fields run. 0 and 1 leave the angle alone.
	FoldCount int `json:"foldCount,omitempty"`
	// ClampSignal clamps the composed signal to [0, 1] before the palette.
	// Leave it false to use the raw signal as an unbounded palette phase.
	ClampSignal bool `json:"clampSignal,omitempty"`

	Pointer PointerConfig `json:"pointer"`
	Palette PaletteConfig `json:"palette"`
	Post    PostConfig    `json:"post"`
}

// withDefaults returns a copy with all documented defaults filled in.
func (d ArchetypeDescriptor) withDefaults() ArchetypeDescriptor {
	fields := make([]FieldNode, len(d.Fields))
	for i, f := range d.Fields {
		f = f.withDefaults()
		f.Blend = f.Blend.withDefaults()
		fields[i] = f
	}
	d.Fields = fields
	d.Pointer = d.Pointer.withDefaults()
	d.Palette = d.Palette.withDefaults()
	d.Post = d.Post.withDefaults()
	return d
}

// validate checks the descriptor after defaults have been applied.
func (d ArchetypeDescriptor) validate() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("trance: archetype %q has no fields", d.Name)
	}
	if len(d.Fields) > MaxFields {
		return fmt.Errorf("trance: archetype %q has %d fields, max %d", d.Name, len(d.Fields), MaxFields)
	}
	for i, f := range d.Fields {
		if err := f.validate(i); err != nil {
			return err
		}
	}
	if d.FoldCount < 0 || d.FoldCount > MaxFoldCount {
		return fmt.Errorf("trance: fold count %d out of range [0, %d]", d.FoldCount, MaxFoldCount)
	}
	if err := d.Pointer.validate(); err != nil {
		return err
	}
	if err := d.Palette.validate(); err != nil {
		return err
	}
	return d.Post.validate()
}

// Validate reports whether the descriptor would compile. It applies the
// same defaulting as NewEvaluator, so a descriptor that passes here always
// compiles.
func (d ArchetypeDescriptor) Validate() error {
	return d.withDefaults().validate()
}

// ParseArchetype parses a JSON descriptor and validates it. The returned
// descriptor is ready for NewEvaluator.
func ParseArchetype(jsonData []byte) (ArchetypeDescriptor, error) {
	var d ArchetypeDescriptor
	if err := json.Unmarshal(jsonData, &d); err != nil {
		return ArchetypeDescriptor{}, fmt.Errorf("trance: parse archetype: %w", err)
	}
	if err := d.Validate(); err != nil {
		return ArchetypeDescriptor{}, err
	}
	return d, nil
}

// --- Enum wire names ---
//
// Every enum marshals as a lowercase string so descriptor files read and
// diff cleanly. Unknown names fail the decode rather than silently mapping
// to a default.

func (k FieldKind) String() string {
	switch k {
	case FieldSpiralPhase:
		return "spiral-phase"
	case FieldSpiralSDF:
		return "spiral-sdf"
	case FieldNoiseWarp:
		return "noise-warp"
	case FieldFlowPotential:
		return "flow-potential"
	}
	return fmt.Sprintf("FieldKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k FieldKind) MarshalText() ([]byte, error) {
	if k > FieldFlowPotential {
		return nil, fmt.Errorf("trance: unknown field kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FieldKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "spiral-phase":
		*k = FieldSpiralPhase
	case "spiral-sdf":
		*k = FieldSpiralSDF
	case "noise-warp":
		*k = FieldNoiseWarp
	case "flow-potential":
		*k = FieldFlowPotential
	default:
		return fmt.Errorf("trance: unknown field kind %q", text)
	}
	return nil
}

func (s WaveStrategy) String() string {
	if s == WaveChebyshev {
		return "chebyshev"
	}
	return "trig"
}

// MarshalText implements encoding.TextMarshaler.
func (s WaveStrategy) MarshalText() ([]byte, error) {
	if s > WaveChebyshev {
		return nil, fmt.Errorf("trance: unknown wave strategy %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *WaveStrategy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "trig":
		*s = WaveTrig
	case "chebyshev":
		*s = WaveChebyshev
	default:
		return fmt.Errorf("trance: unknown wave strategy %q", text)
	}
	return nil
}

func (a NoiseAlgo) String() string {
	if a == NoisePerlin {
		return "perlin"
	}
	return "opensimplex"
}

// MarshalText implements encoding.TextMarshaler.
func (a NoiseAlgo) MarshalText() ([]byte, error) {
	if a > NoisePerlin {
		return nil, fmt.Errorf("trance: unknown noise algorithm %d", a)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *NoiseAlgo) UnmarshalText(text []byte) error {
	switch string(text) {
	case "opensimplex":
		*a = NoiseOpenSimplex
	case "perlin":
		*a = NoisePerlin
	default:
		return fmt.Errorf("trance: unknown noise algorithm %q", text)
	}
	return nil
}

func (o BlendOp) String() string {
	switch o {
	case BlendMultiply:
		return "multiply"
	case BlendMin:
		return "min"
	case BlendMax:
		return "max"
	}
	return "mix"
}

// MarshalText implements encoding.TextMarshaler.
func (o BlendOp) MarshalText() ([]byte, error) {
	if o > BlendMax {
		return nil, fmt.Errorf("trance: unknown blend op %d", o)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *BlendOp) UnmarshalText(text []byte) error {
	switch string(text) {
	case "mix":
		*o = BlendMix
	case "multiply":
		*o = BlendMultiply
	case "min":
		*o = BlendMin
	case "max":
		*o = BlendMax
	default:
		return fmt.Errorf("trance: unknown blend op %q", text)
	}
	return nil
}

func (m PaletteMode) String() string {
	if m == PalettePosterize {
		return "posterize"
	}
	return "cosine"
}

// MarshalText implements encoding.TextMarshaler.
func (m PaletteMode) MarshalText() ([]byte, error) {
	if m > PalettePosterize {
		return nil, fmt.Errorf("trance: unknown palette mode %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PaletteMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "cosine":
		*m = PaletteCosine
	case "posterize":
		*m = PalettePosterize
	default:
		return fmt.Errorf("trance: unknown palette mode %q", text)
	}
	return nil
}

func (m PointerMode) String() string {
	switch m {
	case PointerAttract:
		return "attract"
	case PointerStir:
		return "stir"
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler.
func (m PointerMode) MarshalText() ([]byte, error) {
	if m > PointerStir {
		return nil, fmt.Errorf("trance: unknown pointer mode %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PointerMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*m = PointerNone
	case "attract":
		*m = PointerAttract
	case "stir":
		*m = PointerStir
	default:
		return fmt.Errorf("trance: unknown pointer mode %q", text)
	}
	return nil
}
