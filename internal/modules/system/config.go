package system

import (
	"github.com/aristath/tsnn/internal/domain"
)

// Config holds construction parameters for a System.
type Config struct {
	CoreNodes        int
	AggregationNodes int
	EdgeNodes        int
	QuantumDimension int
	// Seed drives node states, the reference field and entanglement noise.
	// 0 seeds from the clock, so entanglement scores vary between runs.
	Seed uint64
}

// DefaultConfig returns the 4/8/16 topology with 4x4 states.
func DefaultConfig() Config {
	return Config{
		CoreNodes:        4,
		AggregationNodes: 8,
		EdgeNodes:        16,
		QuantumDimension: 4,
	}
}

// Validate rejects negative node counts and a non-positive dimension.
func (c Config) Validate() error {
	counts := []struct {
		field string
		value int
	}{
		{"core_nodes", c.CoreNodes},
		{"aggregation_nodes", c.AggregationNodes},
		{"edge_nodes", c.EdgeNodes},
	}
	for _, count := range counts {
		if count.value < 0 {
			return &domain.ConfigurationError{Field: count.field, Message: "must be >= 0"}
		}
	}
	if c.QuantumDimension < 1 {
		return &domain.ConfigurationError{Field: "quantum_dimension", Message: "must be >= 1"}
	}
	return nil
}
