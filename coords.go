package trance

import "math"

// Coord is a pixel position after normalization: a centered, aspect-corrected
// UV plus the derived polar quantities every field consumes.
type Coord struct {
	UV    Vec2    // centered coordinates; the shorter axis spans [-0.5, 0.5]
	R     float64 // distance from center, |UV|
	Theta float64 // angle from atan2, in (-π, π]
	LogR  float64 // ln(R + ε), finite at the exact center
}

// Normalize maps a pixel position to a Coord. The origin moves to the image
// center and both axes divide by the shorter resolution axis, so a circle
// stays circular at any aspect ratio and the pattern is resolution
// independent. Degenerate resolutions (either axis < 1) collapse to the
// center coordinate.
func Normalize(pos, res Vec2) Coord {
	if math.Min(res.X, res.Y) < 1 {
		return Coord{Theta: 0, LogR: math.Log(logRadiusEps)}
	}
	return coordFromUV(normalizeUV(pos, res))
}

// normalizeUV maps a pixel position to the centered UV plane.
func normalizeUV(pos, res Vec2) Vec2 {
	shorter := math.Min(res.X, res.Y)
	return Vec2{
		X: (pos.X - 0.5*res.X) / shorter,
		Y: (pos.Y - 0.5*res.Y) / shorter,
	}
}

// coordFromUV derives the polar quantities for a UV position. Warps that
// displace UV rebuild the coordinate through here so every downstream field
// sees consistent values.
func coordFromUV(uv Vec2) Coord {
	r := uv.Len()
	return Coord{
		UV:    uv,
		R:     r,
		Theta: math.Atan2(uv.Y, uv.X),
		LogR:  math.Log(r + logRadiusEps),
	}
}

// dir returns the unit direction of the coordinate. At the exact center,
// where no direction exists, it returns the +X axis so angular fields stay
// finite.
func (c Coord) dir() Vec2 {
	if c.R < radiusEps {
		return Vec2{X: 1, Y: 0}
	}
	return c.UV.Scale(1 / c.R)
}
