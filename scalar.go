// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Epsilon is the threshold below which a scalar is treated as zero
// in length and coincidence checks.
const Epsilon float32 = 1e-6

// DegToRad converts deg from degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// RadToDeg converts rad from radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}

// Clamp returns x limited to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

// Lerp returns the linear interpolation of a and b at t.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
