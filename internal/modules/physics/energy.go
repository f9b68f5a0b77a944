package physics

import (
	"fmt"
	"math"
)

// lenrBasePower is the base output per lattice before deuterium loading.
var lenrBasePower = map[string]float64{
	MaterialPdTMD:       120,
	MaterialGrapheneBIC: 55,
}

// Stabilizer computes holographic energy scalars for a qubit register.
type Stabilizer struct {
	QubitCount int
}

// NewStabilizer returns a stabilizer over qubits.
func NewStabilizer(qubits int) *Stabilizer {
	return &Stabilizer{QubitCount: qubits}
}

// AdSCFTMapping scales a boundary energy down by √(2^N).
func (s *Stabilizer) AdSCFTMapping(eCFT float64) float64 {
	return eCFT / math.Sqrt(math.Pow(2, float64(s.QubitCount)))
}

// LENRPower returns the lattice's base power times the deuterium loading.
func (s *Stabilizer) LENRPower(lattice string, loading float64) (float64, error) {
	base, ok := lenrBasePower[lattice]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLattice, lattice)
	}
	return base * loading, nil
}
