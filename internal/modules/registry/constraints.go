package registry

// Constraint names understood by SatisfiesConstraints.
const (
	FidelityThreshold  = "fidelity_threshold"
	CoherenceThreshold = "coherence_threshold"
	EntanglementBound  = "entanglement_bound"
)

// Constraint is a named threshold check against one derived record scalar.
type Constraint struct {
	Name        string  `json:"name"`
	Threshold   float64 `json:"threshold"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// DefaultConstraints returns the standard constraint set.
func DefaultConstraints() []Constraint {
	return []Constraint{
		{
			Name:        FidelityThreshold,
			Threshold:   0.95,
			Weight:      1.0,
			Description: "Minimum alignment with the reference field",
		},
		{
			Name:        CoherenceThreshold,
			Threshold:   0.90,
			Weight:      0.8,
			Description: "Minimum state coherence",
		},
		{
			Name:        EntanglementBound,
			Threshold:   0.85,
			Weight:      0.7,
			Description: "Maximum entanglement entropy",
		},
	}
}

// check reports whether rec satisfies c. Unknown names pass.
func (c Constraint) check(rec *Record) bool {
	switch c.Name {
	case FidelityThreshold:
		return rec.Alignment >= c.Threshold
	case CoherenceThreshold:
		return rec.Coherence >= c.Threshold
	case EntanglementBound:
		return rec.Entanglement <= c.Threshold
	}
	return true
}
