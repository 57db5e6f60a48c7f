package trance

import (
	"math"
	"testing"
)

func flowNode(poles ...Pole) FieldNode {
	return FieldNode{Kind: FieldFlowPotential, Poles: poles}.withDefaults()
}

func TestPolePosition(t *testing.T) {
	tests := []struct {
		name string
		pole Pole
		t    float64
		want Vec2
	}{
		{
			"pinned",
			Pole{Strength: 1, Center: Vec2{X: 0.2, Y: -0.1}},
			5.0,
			Vec2{X: 0.2, Y: -0.1},
		},
		{
			"orbit start",
			Pole{Strength: 1, OrbitRadius: 0.3, RateA: 1, RateB: 1},
			0,
			Vec2{X: 0, Y: 0.3},
		},
		{
			"quarter orbit",
			Pole{Strength: 1, OrbitRadius: 0.3, RateA: 1, RateB: 1},
			math.Pi / 2,
			Vec2{X: 0.3, Y: 0},
		},
		{
			"phase offset",
			Pole{Strength: 1, OrbitRadius: 0.2, PhaseA: math.Pi / 2},
			0,
			Vec2{X: 0.2, Y: 0.2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pole.position(tt.t)
			assertNear(t, "X", got.X, tt.want.X)
			assertNear(t, "Y", got.Y, tt.want.Y)
		})
	}
}

func TestPolePositionSmooth(t *testing.T) {
	const dt = 1e-4
	p := Pole{Strength: 1, OrbitRadius: 0.4, RateA: 0.7, RateB: 1.3, PhaseB: 0.5}
	for _, tm := range []float64{0, 9.1, 512.7} {
		a := p.position(tm)
		b := p.position(tm + dt)
		if a.Sub(b).Len() > 1e-3 {
			t.Errorf("t=%v: pole moved %v in %v seconds", tm, a.Sub(b).Len(), dt)
		}
	}
}

func TestFlowPotentialBounded(t *testing.T) {
	n := flowNode(
		Pole{Strength: 1.5, Center: Vec2{X: -0.3}},
		Pole{Strength: -2.0, Center: Vec2{X: 0.3}, OrbitRadius: 0.2, RateA: 0.9, RateB: 1.1},
	)
	for _, tm := range []float64{0, 33.3, 1e4} {
		for x := -0.8; x <= 0.8; x += 0.1 {
			for y := -0.8; y <= 0.8; y += 0.1 {
				v := flowPotential(&n, coordFromUV(Vec2{X: x, Y: y}), tm)
				if v < 0 || v > 1 {
					t.Fatalf("flowPotential(%v, %v, t=%v) = %v, out of [0, 1]", x, y, tm, v)
				}
			}
		}
	}
}

func TestFlowPotentialOnPole(t *testing.T) {
	// A pixel exactly on a pole hits the distance floor, not a singularity.
	n := flowNode(Pole{Strength: 3, Center: Vec2{X: 0.25, Y: -0.4}})
	v := flowPotential(&n, coordFromUV(Vec2{X: 0.25, Y: -0.4}), 0)
	if !isFinite(v) || v < 0 || v > 1 {
		t.Errorf("value on pole = %v, want finite in [0, 1]", v)
	}
}

func TestFlowPotentialStrengthSign(t *testing.T) {
	// Near a radiating pole the log distance is negative, so positive
	// strength pushes the squashed value below the midpoint and negative
	// strength pushes it above.
	c := coordFromUV(Vec2{X: 0.05, Y: 0})
	src := flowNode(Pole{Strength: 2})
	sink := flowNode(Pole{Strength: -2})
	if v := flowPotential(&src, c, 0); v >= 0.5 {
		t.Errorf("positive pole nearby = %v, want below 0.5", v)
	}
	if v := flowPotential(&sink, c, 0); v <= 0.5 {
		t.Errorf("negative pole nearby = %v, want above 0.5", v)
	}
}

func TestFlowPotentialGain(t *testing.T) {
	// Raising the gain steepens the squash away from the midpoint.
	c := coordFromUV(Vec2{X: 0.1, Y: 0.1})
	soft := flowNode(Pole{Strength: 1})
	hard := soft
	hard.Gain = 4
	vs := flowPotential(&soft, c, 0)
	vh := flowPotential(&hard, c, 0)
	if math.Abs(vh-0.5) <= math.Abs(vs-0.5) {
		t.Errorf("gain 4 value %v no further from midpoint than gain %v value %v", vh, soft.Gain, vs)
	}
}

func TestFlowPotentialTimeSmooth(t *testing.T) {
	const dt = 1e-4
	n := flowNode(
		Pole{Strength: 1, OrbitRadius: 0.3, RateA: 1.1, RateB: 0.6},
		Pole{Strength: -1, Center: Vec2{X: 0.4}, OrbitRadius: 0.1, RateA: 0.8, RateB: 1.7},
	)
	c := coordFromUV(Vec2{X: -0.2, Y: 0.15})
	for _, tm := range []float64{0, 7.7, 300.2} {
		a := flowPotential(&n, c, tm)
		b := flowPotential(&n, c, tm+dt)
		if math.Abs(a-b) > 1e-2 {
			t.Errorf("t=%v: step of %v moved value by %v", tm, dt, math.Abs(a-b))
		}
	}
}

func BenchmarkFlowPotential(b *testing.B) {
	n := flowNode(
		Pole{Strength: 1, OrbitRadius: 0.3, RateA: 1.1, RateB: 0.6},
		Pole{Strength: -1.5, Center: Vec2{X: 0.4}},
		Pole{Strength: 0.8, Center: Vec2{Y: -0.3}, OrbitRadius: 0.2, RateA: 0.5, RateB: 0.9},
	)
	c := coordFromUV(Vec2{X: 0.2, Y: -0.1})
	b.ReportAllocs()
	for b.Loop() {
		_ = flowPotential(&n, c, 2.0)
	}
}
