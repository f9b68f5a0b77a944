package system

import (
	"github.com/aristath/tsnn/internal/modules/fidelity"
)

// Check names reported by IntegrityReport.Checks.
const (
	CheckFatTree            = "fat_tree_valid"
	CheckSPCFramework       = "spc_framework_valid"
	CheckEthicalConstraints = "ethical_constraints_valid"
	CheckConsciousnessField = "consciousness_field_valid"
	CheckSynchronization    = "synchronization_valid"
	CheckEthicalCompliance  = "ethical_compliance_valid"
)

// IntegrityReport holds the outcome of each integrity check.
type IntegrityReport struct {
	FatTree            bool `json:"fat_tree_valid"`
	SPCFramework       bool `json:"spc_framework_valid"`
	EthicalConstraints bool `json:"ethical_constraints_valid"`
	ConsciousnessField bool `json:"consciousness_field_valid"`
	Synchronization    bool `json:"synchronization_valid"`
	EthicalCompliance  bool `json:"ethical_compliance_valid"`
}

// Checks returns the report keyed by check name.
func (r IntegrityReport) Checks() map[string]bool {
	return map[string]bool{
		CheckFatTree:            r.FatTree,
		CheckSPCFramework:       r.SPCFramework,
		CheckEthicalConstraints: r.EthicalConstraints,
		CheckConsciousnessField: r.ConsciousnessField,
		CheckSynchronization:    r.Synchronization,
		CheckEthicalCompliance:  r.EthicalCompliance,
	}
}

// Valid reports whether every check passed.
func (r IntegrityReport) Valid() bool {
	for _, ok := range r.Checks() {
		if !ok {
			return false
		}
	}
	return true
}

// ValidateIntegrity runs every check. An empty registry is vacuously compliant.
func (s *System) ValidateIntegrity() IntegrityReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := IntegrityReport{
		FatTree:            s.tree.TotalNodes() > 0,
		SPCFramework:       s.registry.Len() > 0,
		EthicalConstraints: len(s.registry.Constraints()) > 0,
		ConsciousnessField: s.registry.HasReference(),
		Synchronization:    fidelity.MeanLayerSync(s.tree.Edges(), s.stateOf) > SyncValidThreshold,
		EthicalCompliance:  true,
	}

	var failing []string
	for _, id := range s.registry.IDs() {
		if !s.registry.Passes(id) {
			report.EthicalCompliance = false
			failing = append(failing, id)
		}
	}

	if !report.Valid() {
		s.log.Warn().
			Interface("checks", report.Checks()).
			Strs("failing_records", failing).
			Msg("Integrity validation found issues")
	}
	return report
}
