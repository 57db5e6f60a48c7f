package trance

import "math"

// Color represents an RGB color with components in [0, 1]. Alpha is implicit
// and always full; hosts append it when converting to display pixels.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ColorBlack is the fallback color substituted for non-finite results.
var ColorBlack = Color{0, 0, 0}

// ColorWhite is full-brightness white.
var ColorWhite = Color{1, 1, 1}

// Lerp linearly interpolates between c and other. t=0 returns c, t=1 returns
// other. t is not clamped.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Scale multiplies all three channels by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated counterclockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos*v.X - sin*v.Y, Y: sin*v.X + cos*v.Y}
}

// Pointer carries per-frame pointer state into evaluation. Active reports
// whether a pointer exists this frame (mouse on screen or touch down);
// Pressed reports whether its primary button or touch is held.
type Pointer struct {
	Pos     Vec2 // pixel coordinates, same space as PixelContext.Pos
	Pressed bool
	Active  bool
}

// PixelContext is the full input to one evaluation: the pixel position, the
// output resolution, the animation clock in seconds, and optional pointer
// state. Evaluation reads it and nothing else, so identical contexts always
// produce identical colors.
type PixelContext struct {
	Pos     Vec2 // pixel coordinates, origin top-left, Y down
	Res     Vec2 // output resolution in pixels
	T       float64
	Pointer Pointer
}

// Tau is the full-circle constant, 2π.
const Tau = 2 * math.Pi

const (
	logRadiusEps = 1e-3 // floor inside ln(r + ε) for the log-radius channel
	radiusEps    = 1e-3 // floor for radius factors near the origin
	poleDistEps  = 1e-4 // floor for pole distances in flow potentials
)

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// mix linearly interpolates between a and b by t.
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothstep is the Hermite ramp 3t²-2t³ between edges e0 and e1, clamped.
func smoothstep(e0, e1, x float64) float64 {
	if e1 == e0 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// fract returns the fractional part of x in [0, 1), correct for negatives.
func fract(x float64) float64 {
	return x - math.Floor(x)
}
