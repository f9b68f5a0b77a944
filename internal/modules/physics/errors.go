package physics

import "errors"

var (
	// ErrUnknownMaterial is returned for a condensate material without parameters.
	ErrUnknownMaterial = errors.New("unknown condensate material")
	// ErrUnknownLattice is returned for a lattice without a base power rating.
	ErrUnknownLattice = errors.New("unknown lattice")
	// ErrCausalityViolation is returned when the entropy gate rejects a density matrix.
	ErrCausalityViolation = errors.New("causality violation: entropy above bound")
)
