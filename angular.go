package trance

import "math"

// WaveStrategy selects how the N-armed angular oscillation of a spiral field
// is computed. Both strategies produce the same arm count winding at the same
// rate and both are continuous across the θ = ±π seam; they differ only by a
// fixed quarter-period rotation of the pattern.
type WaveStrategy uint8

const (
	WaveTrig      WaveStrategy = iota // sin(N·θ + phase) from the atan2 angle
	WaveChebyshev                     // vector rotation + Chebyshev recurrence, no inverse trig
)

// MaxArmCount is the largest accepted arm count for angular fields. It bounds
// the Chebyshev recurrence length per pixel.
const MaxArmCount = 64

// angularWave evaluates an n-armed oscillation in [-1, 1] at the coordinate.
//
// WaveTrig computes sin(n·θ + phase) directly. WaveChebyshev rotates the unit
// direction vector by phase/n with a 2×2 rotation and feeds the rotated x
// component through the degree-n Chebyshev polynomial, which equals
// cos(n·θ + phase) without ever computing an angle. The phase/n pre-rotation
// keeps the two strategies winding in lockstep under animated phases.
func angularWave(s WaveStrategy, c Coord, n int, phase float64) float64 {
	if s == WaveChebyshev {
		d := c.dir().Rotate(phase / float64(n))
		return chebyshev(n, d.X)
	}
	return math.Sin(float64(n)*c.Theta + phase)
}

// chebyshev evaluates the Chebyshev polynomial T_n(x) by the recurrence
// T_{k+1} = 2x·T_k - T_{k-1}. For x = cos(θ) the result is cos(n·θ) exactly.
func chebyshev(n int, x float64) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return x
	}
	prev, cur := 1.0, x
	for k := 1; k < n; k++ {
		prev, cur = cur, 2*x*cur-prev
	}
	return cur
}
