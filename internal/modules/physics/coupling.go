package physics

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Gamma band limits in Hz.
const (
	gammaLow  = 38.0
	gammaHigh = 42.0
)

// Coupling extracts gamma-band amplitude from EEG samples.
type Coupling struct {
	SamplingRate float64
	Alpha        float64
}

// NewCoupling returns a coupling for samples taken at samplingRate Hz.
func NewCoupling(samplingRate float64) *Coupling {
	return &Coupling{SamplingRate: samplingRate, Alpha: 0.5}
}

// ExtractGamma returns the largest real-FFT magnitude between 38 and 42 Hz,
// or 0 when the band holds no bins.
func (c *Coupling) ExtractGamma(eeg []float64) float64 {
	if len(eeg) < 2 || c.SamplingRate <= 0 {
		return 0
	}
	fft := fourier.NewFFT(len(eeg))
	coeffs := fft.Coefficients(nil, eeg)

	peak := 0.0
	for i, coeff := range coeffs {
		freq := fft.Freq(i) * c.SamplingRate
		if freq < gammaLow || freq > gammaHigh {
			continue
		}
		if amp := cmplx.Abs(coeff); amp > peak {
			peak = amp
		}
	}
	return peak
}

// StressTensor returns α·(γ·λC)².
func (c *Coupling) StressTensor(gamma, lambdaC float64) float64 {
	phi := gamma * lambdaC
	return c.Alpha * phi * phi
}
