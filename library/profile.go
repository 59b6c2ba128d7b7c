package library

// ProfileSimulation is the simulated 1-D profile of one phase: reflection
// magnitudes paired with their Miller indices. Magnitudes[i] belongs to
// HKLs[i].
//
// The simulation is read-only after construction.
type ProfileSimulation struct {
	Magnitudes []float64
	HKLs       []HKL
}

// NewProfileSimulation validates and assembles a profile simulation.
func NewProfileSimulation(magnitudes []float64, hkls []HKL) (*ProfileSimulation, error) {
	if len(magnitudes) == 0 {
		return nil, ErrEmptyLibrary
	}
	if len(magnitudes) != len(hkls) {
		return nil, &ErrTableLength{Magnitudes: len(magnitudes), HKLs: len(hkls)}
	}
	return &ProfileSimulation{Magnitudes: magnitudes, HKLs: hkls}, nil
}

// Size returns the number of simulated reflections.
func (s *ProfileSimulation) Size() int {
	return len(s.Magnitudes)
}
