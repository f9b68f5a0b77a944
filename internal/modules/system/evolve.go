package system

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/tsnn/internal/domain"
	"github.com/aristath/tsnn/internal/modules/physics"
	"github.com/aristath/tsnn/internal/modules/registry"
)

// EvolutionMetrics are the recomputed scalars of one evolved record.
type EvolutionMetrics struct {
	Coherence    float64 `json:"coherence"`
	Alignment    float64 `json:"ethical_fidelity"`
	Entanglement float64 `json:"entanglement_entropy"`
	Error        string  `json:"error,omitempty"`
}

// EvolutionReport is the outcome of EvolveSystem.
type EvolutionReport struct {
	States map[string]EvolutionMetrics `json:"states"`
	Health registry.HealthSummary      `json:"system_health"`
}

// EvolveSystem propagates every record by exp(-H·t) and renormalizes it.
// Each vector is reshaped row-major into n x len/n, where n is H's size.
// A nil h selects the kagome Hamiltonian over the quantum dimension.
// Records that cannot be evolved keep their previous vector; their errors are
// listed in the report and joined into the returned error.
func (s *System) EvolveSystem(h mat.Symmetric, t float64) (EvolutionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h == nil {
		h = physics.DefaultHamiltonian(s.cfg.QuantumDimension)
	}
	n := h.SymmetricDim()
	if n == 0 {
		return EvolutionReport{}, &domain.DimensionMismatchError{Want: s.cfg.QuantumDimension, Got: 0}
	}

	var generator, propagator mat.Dense
	generator.Scale(-t, h)
	propagator.Exp(&generator)

	report := EvolutionReport{States: make(map[string]EvolutionMetrics, s.registry.Len())}
	var errs []error
	for _, id := range s.registry.IDs() {
		rec, _ := s.registry.Get(id)
		evolved, err := s.propagate(id, rec.Vector, &propagator)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to evolve %s: %w", id, err))
			report.States[id] = EvolutionMetrics{Error: err.Error()}
			continue
		}
		report.States[id] = EvolutionMetrics{
			Coherence:    evolved.Coherence,
			Alignment:    evolved.Alignment,
			Entanglement: evolved.Entanglement,
		}
	}
	report.Health = s.registry.HealthSummary()

	s.log.Info().
		Int("states", len(report.States)).
		Int("failed", len(errs)).
		Float64("t", t).
		Msg("System evolved")
	return report, errors.Join(errs...)
}

// propagate applies u to vector and stores the result. Callers hold s.mu.
func (s *System) propagate(id string, vector []float64, u *mat.Dense) (registry.Record, error) {
	n, _ := u.Dims()
	if len(vector)%n != 0 {
		return registry.Record{}, &domain.DimensionMismatchError{Want: n, Got: len(vector)}
	}
	psi := mat.NewDense(n, len(vector)/n, vector)

	var out mat.Dense
	out.Mul(u, psi)
	return s.registry.Evolve(id, flatten(&out))
}
