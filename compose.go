package trance

import (
	"fmt"
	"math"
)

// BlendOp selects how a field's output folds into the running signal.
type BlendOp uint8

const (
	BlendMix      BlendOp = iota // weighted linear interpolation toward the field
	BlendMultiply                // signal × field (only darkens)
	BlendMin                     // pointwise minimum (carves interference nulls)
	BlendMax                     // pointwise maximum (brightest field wins)
)

// BlendSpec pairs a blend operation with its mix weight. Fields apply in
// descriptor order: the first field seeds the signal and every later field
// folds in through its own spec.
type BlendSpec struct {
	Op BlendOp `json:"op"`
	// Weight is the interpolation fraction for BlendMix, in [0, 1]. The
	// other operations ignore it. Zero selects the default 0.5.
	Weight float64 `json:"weight,omitempty"`
}

func (b BlendSpec) withDefaults() BlendSpec {
	if b.Op == BlendMix && b.Weight == 0 {
		b.Weight = 0.5
	}
	return b
}

func (b BlendSpec) validate(i int) error {
	if b.Op > BlendMax {
		return fmt.Errorf("trance: field %d: unknown blend op %d", i, b.Op)
	}
	if !isFinite(b.Weight) || b.Weight < 0 || b.Weight > 1 {
		return fmt.Errorf("trance: field %d: blend weight %v out of range [0, 1]", i, b.Weight)
	}
	return nil
}

// blend folds one field value into the running signal.
func blend(signal, value float64, spec BlendSpec) float64 {
	switch spec.Op {
	case BlendMultiply:
		return signal * value
	case BlendMin:
		return math.Min(signal, value)
	case BlendMax:
		return math.Max(signal, value)
	default:
		return mix(signal, value, spec.Weight)
	}
}
