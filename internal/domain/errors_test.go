package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegenerateInputError_Message(t *testing.T) {
	assert.Equal(t, "degenerate input: zero norm", (&DegenerateInputError{}).Error())
	assert.Equal(t, "degenerate input: state a has zero norm", (&DegenerateInputError{Context: "state a"}).Error())
	assert.Equal(t, "degenerate input: state a has non-finite entries",
		(&DegenerateInputError{Context: "state a", Reason: "non-finite entries"}).Error())
}

func TestRecordNotFoundError_As(t *testing.T) {
	err := fmt.Errorf("evolve: %w", &RecordNotFoundError{ID: "ghost"})

	var notFound *RecordNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ghost", notFound.ID)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestConfigurationError_Unwrap(t *testing.T) {
	inner := errors.New("strconv: bad digit")
	err := &ConfigurationError{Field: "core_nodes", Message: "must be >= 0", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "configuration error: core_nodes: must be >= 0: strconv: bad digit", err.Error())
	assert.Equal(t, "configuration error: edge_nodes: must be >= 0",
		(&ConfigurationError{Field: "edge_nodes", Message: "must be >= 0"}).Error())
}

func TestDimensionMismatchError_Message(t *testing.T) {
	assert.Equal(t, "dimension mismatch: want 16, got 4", (&DimensionMismatchError{Want: 16, Got: 4}).Error())
}
