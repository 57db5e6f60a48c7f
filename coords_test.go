package trance

import (
	"math"
	"testing"
)

// --- Normalize ---

func TestNormalizeCenter(t *testing.T) {
	tests := []struct {
		name string
		res  Vec2
	}{
		{"square", Vec2{512, 512}},
		{"landscape", Vec2{1280, 720}},
		{"portrait", Vec2{600, 1000}},
		{"odd", Vec2{641, 483}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Normalize(Vec2{0.5 * tt.res.X, 0.5 * tt.res.Y}, tt.res)
			assertNear(t, "UV.X", c.UV.X, 0)
			assertNear(t, "UV.Y", c.UV.Y, 0)
			assertNear(t, "R", c.R, 0)
			assertNear(t, "LogR", c.LogR, math.Log(1e-3))
		})
	}
}

func TestNormalizeAspect(t *testing.T) {
	// The shorter axis spans exactly [-0.5, 0.5] regardless of aspect.
	res := Vec2{1280, 720}
	top := Normalize(Vec2{640, 0}, res)
	bottom := Normalize(Vec2{640, 720}, res)
	assertNear(t, "top UV.Y", top.UV.Y, -0.5)
	assertNear(t, "bottom UV.Y", bottom.UV.Y, 0.5)

	// The longer axis extends past ±0.5 by the aspect ratio.
	left := Normalize(Vec2{0, 360}, res)
	assertNear(t, "left UV.X", left.UV.X, -1280.0/720.0/2)

	// A physical circle stays circular: points one short-axis unit from
	// center in x and in y have the same radius.
	px := Normalize(Vec2{640 + 100, 360}, res)
	py := Normalize(Vec2{640, 360 + 100}, res)
	assertNear(t, "radius x vs y", px.R, py.R)
}

func TestNormalizeTheta(t *testing.T) {
	res := Vec2{400, 400}
	tests := []struct {
		name   string
		pos    Vec2
		expect float64
	}{
		{"right", Vec2{400, 200}, 0},
		{"down", Vec2{200, 400}, math.Pi / 2},
		{"left", Vec2{0, 200}, math.Pi},
		{"up", Vec2{200, 0}, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Normalize(tt.pos, res)
			assertNear(t, "Theta", c.Theta, tt.expect)
		})
	}
}

func TestNormalizeThetaRange(t *testing.T) {
	res := Vec2{617, 431}
	for y := 0.0; y < res.Y; y += 13 {
		for x := 0.0; x < res.X; x += 13 {
			c := Normalize(Vec2{x, y}, res)
			if c.Theta <= -math.Pi || c.Theta > math.Pi {
				t.Fatalf("Theta at (%v,%v) = %v, want in (-π, π]", x, y, c.Theta)
			}
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	res := Vec2{800, 600}
	pos := Vec2{123, 457}
	a := Normalize(pos, res)
	b := Normalize(pos, res)
	if a != b {
		t.Errorf("Normalize not deterministic: %+v vs %+v", a, b)
	}
}

func TestNormalizeDegenerateResolution(t *testing.T) {
	tests := []struct {
		name string
		res  Vec2
	}{
		{"zero", Vec2{0, 0}},
		{"zero height", Vec2{640, 0}},
		{"fractional", Vec2{0.5, 480}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Normalize(Vec2{10, 10}, tt.res)
			if !isFinite(c.UV.X) || !isFinite(c.UV.Y) || !isFinite(c.R) || !isFinite(c.Theta) || !isFinite(c.LogR) {
				t.Errorf("Normalize with res %v produced non-finite coord %+v", tt.res, c)
			}
			assertNear(t, "R", c.R, 0)
		})
	}
}

func TestCoordFromUVConsistency(t *testing.T) {
	// A coordinate rebuilt from its own UV must reproduce itself; warps
	// rely on this.
	res := Vec2{1024, 768}
	for _, pos := range []Vec2{{0, 0}, {512, 384}, {1000, 50}, {37, 700}} {
		c := Normalize(pos, res)
		r := coordFromUV(c.UV)
		if c != r {
			t.Errorf("coordFromUV mismatch at %v: %+v vs %+v", pos, c, r)
		}
	}
}

func TestCoordDir(t *testing.T) {
	c := Normalize(Vec2{300, 200}, Vec2{400, 400})
	d := c.dir()
	assertNear(t, "dir length", d.Len(), 1)
	assertNear(t, "dir.X", d.X, math.Cos(c.Theta))
	assertNear(t, "dir.Y", d.Y, math.Sin(c.Theta))

	// At the exact center the direction is pinned, not NaN.
	center := Normalize(Vec2{200, 200}, Vec2{400, 400})
	cd := center.dir()
	if cd != (Vec2{1, 0}) {
		t.Errorf("center dir = %v, want {1 0}", cd)
	}
}

func BenchmarkNormalize(b *testing.B) {
	res := Vec2{1280, 720}
	b.ReportAllocs()
	for b.Loop() {
		_ = Normalize(Vec2{777, 333}, res)
	}
}
