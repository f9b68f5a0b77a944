package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pipeline constants.
const (
	DefaultSamplingRate = 256
	DefaultQubits       = 8
	DefaultMaxEntropy   = 1.0
	DefaultComptonScale = 1e-12
	DefaultCFTEnergy    = 1e6
	DefaultLoading      = 0.8
)

// NavigationResult collects every scalar the navigation pipeline produces.
type NavigationResult struct {
	ConsciousnessBias     float64       `json:"consciousness_bias"`
	KagomeHamiltonian     *mat.SymDense `json:"-"`
	LocalEnergy           float64       `json:"local_energy"`
	LENRPower             float64       `json:"lenr_power"`
	CausalityEntropy      float64       `json:"causality_entropy"`
	TrajectoryProbability complex128    `json:"-"`
}

// ExecuteNavigation runs coupling, condensate, stabilizer, causality gate and
// trajectory steps in order, over a straight path from start to end.
func ExecuteNavigation(start, end, eeg []float64) (NavigationResult, error) {
	navigator := NewNavigator()
	coupling := NewCoupling(DefaultSamplingRate)
	stabilizer := NewStabilizer(DefaultQubits)
	gate := NewCausalityGate(DefaultMaxEntropy)
	condensate, err := NewCondensate(MaterialGrapheneBIC, 300)
	if err != nil {
		return NavigationResult{}, err
	}

	var result NavigationResult
	result.ConsciousnessBias = coupling.StressTensor(coupling.ExtractGamma(eeg), DefaultComptonScale)

	triangle := [][]float64{{0, 0}, {1, 0}, {0.5, math.Sqrt(3) / 2}}
	result.KagomeHamiltonian = condensate.KagomeHamiltonian(triangle)

	result.LocalEnergy = stabilizer.AdSCFTMapping(DefaultCFTEnergy)
	result.LENRPower, err = stabilizer.LENRPower(MaterialPdTMD, DefaultLoading)
	if err != nil {
		return NavigationResult{}, err
	}

	rho := mat.NewSymDense(2, []float64{0.5, 0, 0, 0.5})
	entropy, ok := gate.Check(rho)
	result.CausalityEntropy = entropy
	if !ok {
		return result, fmt.Errorf("%w: S=%.4f", ErrCausalityViolation, entropy)
	}

	path := navigator.OptimizePath(start, end, DefaultPathSteps)
	result.TrajectoryProbability = navigator.QuaternionTrajectory(path)
	return result, nil
}
