// Package domain holds the error taxonomy shared by the hierarchy, registry and system packages.
package domain

import "fmt"

// DegenerateInputError is returned when a state vector or field cannot be
// normalized: its norm is zero or it holds NaN/Inf entries.
type DegenerateInputError struct {
	Context string // what was being normalized, e.g. "state core_0"
	Reason  string // empty means "zero norm"
}

func (e *DegenerateInputError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "zero norm"
	}
	if e.Context == "" {
		return "degenerate input: " + reason
	}
	return fmt.Sprintf("degenerate input: %s has %s", e.Context, reason)
}

// RecordNotFoundError is returned when an operation references an unknown record id.
type RecordNotFoundError struct {
	ID string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("record not found: %q", e.ID)
}

// ConfigurationError represents an invalid construction parameter.
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DimensionMismatchError is returned when a vector cannot be compared with the
// reference field or reshaped into the state dimension.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: want %d, got %d", e.Want, e.Got)
}
