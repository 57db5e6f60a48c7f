package trance

import "math"

// spiralPhase evaluates the N-armed logarithmic spiral as a brightness in
// [0, 1]. The phase term tightness·ln(r+soften) - t·speed (+ the static
// offset) feeds the node's wave strategy, so arms wind with radius and
// rotate over time; the soften floor fades the otherwise infinite winding
// at the center instead of cutting it off.
func spiralPhase(n *FieldNode, c Coord, t float64) float64 {
	phase := n.Tightness*math.Log(c.R+n.Soften) - t*n.Speed + n.Phase
	return 0.5 + 0.5*angularWave(n.Wave, c, n.Arms, phase)
}

// spiralDist evaluates the distance from the coordinate to the nearest of
// the N spiral arm isolines, as a bounded field: 0 exactly on an arm,
// rising toward the gap midline. The arm coordinate counts whole turns, so
// its fractional part locates the coordinate between adjacent isolines.
// The result scales by 1/N and by max(r, ε), damping the band toward the
// center without ever collapsing the whole field to zero there.
func spiralDist(n *FieldNode, c Coord, t float64) float64 {
	turns := (float64(n.Arms)*c.Theta + n.Tightness*math.Log(c.R+n.Soften) - t*n.Speed + n.Phase) / Tau
	f := fract(turns)
	d := 2 * math.Min(f, 1-f)
	return clamp01(d * math.Max(c.R, radiusEps) / float64(n.Arms))
}
