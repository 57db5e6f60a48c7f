package trance

import (
	"math"
	"testing"
)

// The documented reference point for the phase spiral: three arms, tightness
// 2.0, speed 0.25, sampled at r = 0.5 on the positive x axis at t = 0.
func workedSpiralNode() FieldNode {
	return FieldNode{
		Kind:      FieldSpiralPhase,
		Arms:      3,
		Tightness: 2.0,
		Speed:     0.25,
	}.withDefaults()
}

func TestSpiralPhaseWorkedExample(t *testing.T) {
	n := workedSpiralNode()
	c := coordAt(0.5, 0)

	// ln(0.5 + 0.1) drives the phase.
	assertNear(t, "softened log radius", math.Log(c.R+n.Soften), -0.5108256238)

	got := spiralPhase(&n, c, 0)
	want := 0.5 + 0.5*math.Sin(2.0*math.Log(0.6))
	assertNear(t, "spiral value", got, want)
	if math.Abs(got-0.078) > 0.01 {
		t.Errorf("spiral value = %v, want within 0.01 of 0.078", got)
	}
}

func TestSpiralPhaseBounded(t *testing.T) {
	n := workedSpiralNode()
	for _, tm := range []float64{0, 1.5, 377.2, 1e4} {
		for r := 0.0; r <= 1.5; r += 0.05 {
			for theta := -3.1; theta <= 3.1; theta += 0.2 {
				v := spiralPhase(&n, coordAt(r, theta), tm)
				if v < 0 || v > 1 {
					t.Fatalf("spiralPhase(r=%v, θ=%v, t=%v) = %v, out of [0, 1]", r, theta, tm, v)
				}
			}
		}
	}
}

func TestSpiralPhaseChebyshevBounded(t *testing.T) {
	n := workedSpiralNode()
	n.Wave = WaveChebyshev
	for r := 0.0; r <= 1.5; r += 0.05 {
		for theta := -3.1; theta <= 3.1; theta += 0.2 {
			v := spiralPhase(&n, coordAt(r, theta), 2.5)
			if v < -epsilon || v > 1+epsilon {
				t.Fatalf("chebyshev spiralPhase(r=%v, θ=%v) = %v, out of [0, 1]", r, theta, v)
			}
		}
	}
}

func TestSpiralPhaseTimeSmooth(t *testing.T) {
	// A small time step moves the value by at most a proportionally small
	// amount; the field never jumps between frames.
	const dt = 1e-4
	n := workedSpiralNode()
	c := coordAt(0.4, 1.2)
	for _, tm := range []float64{0, 3.7, 120.5} {
		a := spiralPhase(&n, c, tm)
		b := spiralPhase(&n, c, tm+dt)
		if math.Abs(a-b) > 1e-3 {
			t.Errorf("t=%v: step of %v moved value by %v", tm, dt, math.Abs(a-b))
		}
	}
}

func TestSpiralPhaseSpeedWinds(t *testing.T) {
	// Advancing time by a full phase period returns the same value.
	n := workedSpiralNode()
	c := coordAt(0.5, 0.9)
	period := Tau / n.Speed
	assertNear(t, "full period", spiralPhase(&n, c, 0), spiralPhase(&n, c, period))
}

// --- Arm distance field ---

func TestSpiralDistOnIsoline(t *testing.T) {
	// With tightness and speed zeroed the arms are straight rays; on a ray
	// the distance is exactly zero, halfway between rays it peaks.
	n := FieldNode{Kind: FieldSpiralSDF, Arms: 4}.withDefaults()

	on := spiralDist(&n, coordAt(0.5, 0), 0)
	assertNear(t, "on arm", on, 0)

	mid := spiralDist(&n, coordAt(0.5, math.Pi/4), 0)
	assertNear(t, "between arms", mid, 0.5/4)
}

func TestSpiralDistBounded(t *testing.T) {
	n := FieldNode{Kind: FieldSpiralSDF, Arms: 3, Tightness: 1.4, Speed: 0.3}.withDefaults()
	for _, tm := range []float64{0, 42.0, 9001.5} {
		for r := 0.0; r <= 1.5; r += 0.07 {
			for theta := -3.1; theta <= 3.1; theta += 0.23 {
				v := spiralDist(&n, coordAt(r, theta), tm)
				if v < 0 || v > 1 {
					t.Fatalf("spiralDist(r=%v, θ=%v, t=%v) = %v, out of [0, 1]", r, theta, tm, v)
				}
			}
		}
	}
}

func TestSpiralDistCenterDamped(t *testing.T) {
	// The radius factor pulls the band contrast to nearly nothing at the
	// center, hiding the infinite winding.
	n := FieldNode{Kind: FieldSpiralSDF, Arms: 2, Tightness: 3.0}.withDefaults()
	for theta := -3.0; theta <= 3.0; theta += 0.5 {
		v := spiralDist(&n, coordAt(1e-6, theta), 0)
		if v > 1e-2 {
			t.Errorf("spiralDist near center at θ=%v = %v, want under 1e-2", theta, v)
		}
	}
}

func BenchmarkSpiralPhase(b *testing.B) {
	n := workedSpiralNode()
	c := coordAt(0.5, 1.0)
	b.ReportAllocs()
	for b.Loop() {
		_ = spiralPhase(&n, c, 2.5)
	}
}

func BenchmarkSpiralDist(b *testing.B) {
	n := FieldNode{Kind: FieldSpiralSDF, Arms: 3, Tightness: 1.4}.withDefaults()
	c := coordAt(0.5, 1.0)
	b.ReportAllocs()
	for b.Loop() {
		_ = spiralDist(&n, c, 2.5)
	}
}
