// Package floats provides the small set of float64 vector helpers shared by
// the matching packages.
package floats

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm calculates the L2 norm (length) of a vector.
func Norm(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Acos is math.Acos with its argument clamped to [-1, 1].
// Floating-point drift can push a cosine fractionally outside the valid
// domain; clamping maps it to the boundary angle instead of NaN.
func Acos(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Acos(x)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
