package library

import "fmt"

// Euler is a crystal orientation as three Euler angles in degrees,
// Bunge Z-X-Z convention.
type Euler struct {
	Phi1 float64
	Phi  float64
	Phi2 float64
}

// String returns a string representation of the orientation.
func (e Euler) String() string {
	return fmt.Sprintf("(%g, %g, %g)", e.Phi1, e.Phi, e.Phi2)
}

// HKL is a Miller index triple identifying a crystallographic reflection.
type HKL struct {
	H, K, L int
}

// String returns a string representation of the Miller index.
func (h HKL) String() string {
	return fmt.Sprintf("(%d %d %d)", h.H, h.K, h.L)
}
