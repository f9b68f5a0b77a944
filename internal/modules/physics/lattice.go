package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Material names with known coupling parameters.
const (
	MaterialGrapheneBIC = "graphene-BIC"
	MaterialPdTMD       = "Pd-TMD"
)

// couplingParams are the hopping amplitude J0 and decay rate alpha of a material.
type couplingParams struct {
	J0    float64
	Alpha float64
}

var materials = map[string]couplingParams{
	MaterialGrapheneBIC: {J0: 1.2, Alpha: 0.15},
	MaterialPdTMD:       {J0: 0.8, Alpha: 0.22},
}

// Condensate builds lattice Hamiltonians for one material.
type Condensate struct {
	Material    string
	Temperature float64
	params      couplingParams
}

// NewCondensate returns a condensate for material at temperature kelvin.
func NewCondensate(material string, temperature float64) (*Condensate, error) {
	params, ok := materials[material]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, material)
	}
	return &Condensate{Material: material, Temperature: temperature, params: params}, nil
}

// KagomeHamiltonian returns H with H_ij = J0·exp(-α|ri-rj|)·cos(π/3) for i≠j and a zero diagonal.
func (c *Condensate) KagomeHamiltonian(coords [][]float64) *mat.SymDense {
	n := len(coords)
	if n == 0 {
		return &mat.SymDense{}
	}
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := floats.Distance(coords[i], coords[j], 2)
			h.SetSym(i, j, c.params.J0*math.Exp(-c.params.Alpha*r)*math.Cos(math.Pi/3))
		}
	}
	return h
}

// KagomeCoordinates lays out n sites on a kagome lattice, three per unit cell,
// filling cells row by row.
func KagomeCoordinates(n int) [][]float64 {
	if n <= 0 {
		return nil
	}
	basis := [][2]float64{{0, 0}, {1, 0}, {0.5, math.Sqrt(3) / 2}}
	cells := (n + len(basis) - 1) / len(basis)
	width := int(math.Ceil(math.Sqrt(float64(cells))))

	coords := make([][]float64, 0, n)
	for cell := 0; len(coords) < n; cell++ {
		col, row := cell%width, cell/width
		ox := 2*float64(col) + float64(row)
		oy := math.Sqrt(3) * float64(row)
		for _, b := range basis {
			if len(coords) == n {
				break
			}
			coords = append(coords, []float64{ox + b[0], oy + b[1]})
		}
	}
	return coords
}

// DefaultHamiltonian is the graphene-BIC kagome Hamiltonian over n sites.
func DefaultHamiltonian(n int) *mat.SymDense {
	c, err := NewCondensate(MaterialGrapheneBIC, 300)
	if err != nil {
		panic(err) // unreachable: the material is built in
	}
	return c.KagomeHamiltonian(KagomeCoordinates(n))
}
