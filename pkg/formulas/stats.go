// Package formulas provides small numeric helpers over gonum shared by the modules.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values.
// An empty slice has mean 0.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Log2 returns the base-2 logarithm of n, with log2(0) defined as 0.
func Log2(n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Log2(float64(n))
}

// Normalize returns a copy of v scaled to unit Euclidean norm and the original norm.
// A zero-norm input is returned as a copy with norm 0; callers decide whether that is an error.
func Normalize(v []float64) ([]float64, float64) {
	out := make([]float64, len(v))
	copy(out, v)
	norm := floats.Norm(out, 2)
	if norm == 0 {
		return out, 0
	}
	floats.Scale(1/norm, out)
	return out, norm
}

// Cosine returns |<a, b>| / (|a| |b|) clipped to [0, 1], or 0 when either norm is 0.
func Cosine(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return Clamp(math.Abs(floats.Dot(a, b))/(na*nb), 0, 1)
}
