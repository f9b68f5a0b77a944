// Package fidelity scores similarity between node states across hierarchy edges.
package fidelity

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/tsnn/internal/modules/hierarchy"
	"github.com/aristath/tsnn/pkg/formulas"
)

// StateLookup resolves a node id to its current state, or nil when it has none.
type StateLookup func(id string) mat.Matrix

// EdgeFidelity returns |trace(A·Bᵀ)| / (‖A‖_F ‖B‖_F) clipped to [0, 1].
// Nil operands, zero norms and mismatched shapes score 0.
func EdgeFidelity(a, b mat.Matrix) float64 {
	if a == nil || b == nil {
		return 0
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return 0
	}

	normA, normB := mat.Norm(a, 2), mat.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}

	var overlap mat.Dense
	overlap.Mul(a, b.T())
	return formulas.Clamp(math.Abs(mat.Trace(&overlap))/(normA*normB), 0, 1)
}

// MeanLayerSync averages EdgeFidelity over edges. No edges yields 0.
func MeanLayerSync(edges []hierarchy.Edge, lookup StateLookup) float64 {
	if len(edges) == 0 {
		return 0
	}
	scores := make([]float64, len(edges))
	for i, e := range edges {
		scores[i] = EdgeFidelity(lookup(e.From), lookup(e.To))
	}
	return formulas.Mean(scores)
}
