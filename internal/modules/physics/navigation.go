// Package physics holds the toy formulas the system feeds on: quaternion path
// probability, kagome lattice Hamiltonians, an entropy gate, holographic energy
// scalars and EEG gamma coupling. They are pure functions over small inputs.
package physics

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
)

const (
	// degenerateTol marks a quaternion product or result as numerically zero.
	degenerateTol = 1e-10
	// DefaultPathSteps is the number of points OptimizePath produces.
	DefaultPathSteps = 10
)

// Navigator computes trajectory probabilities over up-to-4D coordinates.
type Navigator struct {
	Dimension int
}

// NewNavigator creates a navigator over 4D (quaternion) coordinates.
func NewNavigator() *Navigator {
	return &Navigator{Dimension: 4}
}

// toQuaternion maps the first four coordinates to (real, i, j, k), padding with zeros.
func toQuaternion(coord []float64) quat.Number {
	var parts [4]float64
	copy(parts[:], coord)
	return quat.Number{Real: parts[0], Imag: parts[1], Jmag: parts[2], Kmag: parts[3]}
}

// QuaternionTrajectory multiplies consecutive path points as quaternions and
// folds each product into a complex path integral. Fewer than two points give 1.
func (n *Navigator) QuaternionTrajectory(coords [][]float64) complex128 {
	if len(coords) < 2 {
		return 1
	}

	result := complex(1, 0)
	for i := 0; i+1 < len(coords); i++ {
		q := quat.Mul(toQuaternion(coords[i]), toQuaternion(coords[i+1]))
		if quat.Abs(q) < degenerateTol {
			result *= complex(1, 0.1)
			continue
		}
		// i, j and k all collapse onto the imaginary axis
		result *= complex(q.Real, q.Imag+q.Jmag+q.Kmag)
	}

	if cmplx.Abs(result) < degenerateTol {
		return complex(0.1, 0.1)
	}
	return result
}

// OptimizePath linearly interpolates steps points from start to end inclusive.
// Mismatched lengths interpolate over the shorter one.
func (n *Navigator) OptimizePath(start, end []float64, steps int) [][]float64 {
	if steps < 1 {
		steps = DefaultPathSteps
	}
	dims := min(len(start), len(end))

	path := make([][]float64, steps)
	for i := range path {
		path[i] = make([]float64, dims)
	}
	column := make([]float64, steps)
	for d := 0; d < dims; d++ {
		if steps == 1 {
			column[0] = start[d]
		} else {
			floats.Span(column, start[d], end[d])
		}
		for i := range path {
			path[i][d] = column[i]
		}
	}
	return path
}

// MetricFluctuation returns Σ position² · 1e-6.
func (n *Navigator) MetricFluctuation(position []float64) float64 {
	return floats.Dot(position, position) * 1e-6
}
