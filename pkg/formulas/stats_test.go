package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.2, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.0000001, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 0, 1))
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0.0, Log2(0))
	assert.Equal(t, 0.0, Log2(1))
	assert.Equal(t, 2.0, Log2(4))
	assert.InDelta(t, 4.807, Log2(28), 1e-3)
}

func TestNormalize(t *testing.T) {
	in := []float64{3, 4}
	out, norm := Normalize(in)
	assert.Equal(t, 5.0, norm)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, out, 1e-12)
	assert.Equal(t, []float64{3, 4}, in, "input must not be modified")

	zero, norm := Normalize([]float64{0, 0})
	assert.Equal(t, 0.0, norm)
	assert.Equal(t, []float64{0, 0}, zero)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{-2, 0}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.InDelta(t, 0.5, Cosine([]float64{1, 0}, []float64{0.5, math.Sqrt(0.75)}), 1e-12)
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 0}))
}
