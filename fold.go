package trance

import "math"

// MaxFoldCount is the largest accepted mirror-fold count.
const MaxFoldCount = 64

// Fold maps an angle into the mirrored sector [0, π/n], producing n-way
// kaleidoscopic symmetry. The angle is reduced modulo the sector width 2π/n
// with the result kept non-negative (math.Mod follows the sign of the
// dividend, so negative angles need the correction), then the upper half of
// the sector reflects onto the lower half. A count of 1 or less is the
// identity: the angle passes through unfolded.
func Fold(theta float64, n int) float64 {
	if n <= 1 {
		return theta
	}
	sector := Tau / float64(n)
	m := math.Mod(theta, sector)
	if m < 0 {
		m += sector
	}
	if m > sector/2 {
		m = sector - m
	}
	return m
}
