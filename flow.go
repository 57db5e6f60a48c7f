package trance

import (
	"fmt"
	"math"
)

// MaxPoles bounds the pole count per flow field.
const MaxPoles = 8

// Pole is one orbiting source (positive strength) or sink (negative
// strength) of a flow-potential field. Its position traces a Lissajous
// path: the two orbit rates are independent, so picking incommensurate
// values makes the drift look non-repeating while staying perfectly smooth
// and deterministic in time.
type Pole struct {
	// Strength scales this pole's potential. Positive radiates, negative
	// attracts.
	Strength float64 `json:"strength"`
	// Center is the orbit center in normalized coordinates.
	Center Vec2 `json:"center"`
	// OrbitRadius is the orbit amplitude. Zero pins the pole to Center.
	OrbitRadius float64 `json:"orbitRadius,omitempty"`
	// RateA and RateB are the angular rates of the horizontal and vertical
	// orbit components, in radians per second.
	RateA float64 `json:"rateA,omitempty"`
	RateB float64 `json:"rateB,omitempty"`
	// PhaseA and PhaseB offset the two orbit components.
	PhaseA float64 `json:"phaseA,omitempty"`
	PhaseB float64 `json:"phaseB,omitempty"`
}

// position returns the pole's location at time t.
func (p Pole) position(t float64) Vec2 {
	return Vec2{
		X: p.Center.X + p.OrbitRadius*math.Sin(p.RateA*t+p.PhaseA),
		Y: p.Center.Y + p.OrbitRadius*math.Cos(p.RateB*t+p.PhaseB),
	}
}

func (p Pole) validate(field, i int) error {
	for _, v := range []float64{p.Strength, p.Center.X, p.Center.Y, p.OrbitRadius, p.RateA, p.RateB, p.PhaseA, p.PhaseB} {
		if !isFinite(v) {
			return fmt.Errorf("trance: field %d: pole %d has non-finite parameters", field, i)
		}
	}
	if p.OrbitRadius < 0 {
		return fmt.Errorf("trance: field %d: pole %d orbit radius %v must be non-negative", field, i, p.OrbitRadius)
	}
	return nil
}

// flowPotential sums the logarithmic potential of every pole at the
// coordinate and squashes it through tanh into [0, 1]. The distance floor
// keeps the logarithm finite when a pixel lands exactly on a pole; tanh
// keeps the output bounded no matter how the strengths stack up.
func flowPotential(n *FieldNode, c Coord, t float64) float64 {
	sum := 0.0
	for i := range n.Poles {
		p := &n.Poles[i]
		d := c.UV.Sub(p.position(t)).Len()
		sum += p.Strength * math.Log(math.Max(d, poleDistEps))
	}
	return 0.5 + 0.5*math.Tanh(n.Gain*sum)
}
