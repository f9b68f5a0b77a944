package physics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CausalityGate bounds the von Neumann entropy of a density matrix.
type CausalityGate struct {
	MaxEntropy float64
}

// NewCausalityGate returns a gate with the given entropy bound.
func NewCausalityGate(maxEntropy float64) *CausalityGate {
	return &CausalityGate{MaxEntropy: maxEntropy}
}

// VonNeumannEntropy returns S = -Σ λ ln λ over the eigenvalues of rho, with λ
// floored at 1e-12 inside the logarithm. ok is false if the decomposition fails.
func VonNeumannEntropy(rho mat.Symmetric) (entropy float64, ok bool) {
	var eig mat.EigenSym
	if !eig.Factorize(rho, false) {
		return 0, false
	}
	for _, lambda := range eig.Values(nil) {
		entropy -= lambda * math.Log(math.Max(lambda, 1e-12))
	}
	return entropy, true
}

// Check returns the entropy of rho and whether it stays strictly below the bound.
func (g *CausalityGate) Check(rho mat.Symmetric) (float64, bool) {
	entropy, ok := VonNeumannEntropy(rho)
	if !ok {
		return 0, false
	}
	return entropy, entropy < g.MaxEntropy
}
