package system

import (
	"github.com/aristath/tsnn/internal/modules/hierarchy"
)

// LayerDistribution counts nodes per layer.
type LayerDistribution struct {
	Core        int `json:"core" msgpack:"core"`
	Aggregation int `json:"aggregation" msgpack:"aggregation"`
	Edge        int `json:"edge" msgpack:"edge"`
}

// FatTreeMetrics describes the hierarchy.
type FatTreeMetrics struct {
	TotalNodes        int               `json:"total_nodes" msgpack:"total_nodes"`
	TotalEdges        int               `json:"total_edges" msgpack:"total_edges"`
	LogarithmicDepth  float64           `json:"logarithmic_depth" msgpack:"logarithmic_depth"`
	LayerDistribution LayerDistribution `json:"layer_distribution" msgpack:"layer_distribution"`
}

// SPCMetrics is the registry health at snapshot time.
type SPCMetrics struct {
	Coherence                float64 `json:"coherence" msgpack:"coherence"`
	EthicalFidelity          float64 `json:"ethical_fidelity" msgpack:"ethical_fidelity"`
	ConsciousnessIntegration float64 `json:"consciousness_integration" msgpack:"consciousness_integration"`
}

// Status is a point-in-time snapshot. It shares no memory with the System.
type Status struct {
	SystemState        SystemState    `json:"system_state" msgpack:"system_state"`
	FatTreeMetrics     FatTreeMetrics `json:"fat_tree_metrics" msgpack:"fat_tree_metrics"`
	SPCMetrics         SPCMetrics     `json:"spc_metrics" msgpack:"spc_metrics"`
	QuantumStates      int            `json:"quantum_states" msgpack:"quantum_states"`
	EthicalConstraints int            `json:"ethical_constraints" msgpack:"ethical_constraints"`
}

// Status assembles the current snapshot.
func (s *System) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	dist := s.tree.LayerDistribution()
	health := s.registry.HealthSummary()
	return Status{
		SystemState: s.state,
		FatTreeMetrics: FatTreeMetrics{
			TotalNodes:       s.tree.TotalNodes(),
			TotalEdges:       s.tree.TotalEdges(),
			LogarithmicDepth: s.tree.LogarithmicDepth(),
			LayerDistribution: LayerDistribution{
				Core:        dist[hierarchy.LayerCore],
				Aggregation: dist[hierarchy.LayerAggregation],
				Edge:        dist[hierarchy.LayerEdge],
			},
		},
		SPCMetrics: SPCMetrics{
			Coherence:                health.Coherence,
			EthicalFidelity:          health.Alignment,
			ConsciousnessIntegration: health.Integration,
		},
		QuantumStates:      s.registry.Len(),
		EthicalConstraints: len(s.registry.Constraints()),
	}
}
