package registry

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/tsnn/pkg/formulas"
)

// eigenFloor drops numerically-zero eigenvalues before the entropy sum.
const eigenFloor = 1e-10

// coherence is the purity tr(ρ·ρ) of ρ = v vᵀ, clipped to [0, 1].
func coherence(v []float64) float64 {
	vec := mat.NewVecDense(len(v), v)
	var rho, sq mat.Dense
	rho.Outer(1, vec, vec)
	sq.Mul(&rho, &rho)
	return formulas.Clamp(mat.Trace(&sq), 0, 1)
}

// spectralEntropy is the base-2 Shannon entropy of the eigenvalues of w wᵀ.
// w is expected to be unit norm. Rounding noise can push the sum marginally
// below zero; the result is floored at 0.
func spectralEntropy(w []float64) float64 {
	var rho mat.SymDense
	rho.SymOuterK(1, mat.NewVecDense(len(w), w))

	var eig mat.EigenSym
	if !eig.Factorize(&rho, false) {
		return 0
	}

	entropy := 0.0
	for _, lambda := range eig.Values(nil) {
		if lambda > eigenFloor {
			entropy -= lambda * math.Log2(lambda+eigenFloor)
		}
	}
	return math.Max(0, entropy)
}
