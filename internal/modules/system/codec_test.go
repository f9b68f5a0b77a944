package system

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStatus_JSONShape(t *testing.T) {
	s := newTestSystem(t, DefaultConfig())
	require.NoError(t, s.Initialize())

	data, err := EncodeStatus(s.Status(), FormatJSON)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, 28, raw["quantum_states"])
	assert.EqualValues(t, 3, raw["ethical_constraints"])

	tree := raw["fat_tree_metrics"].(map[string]any)
	assert.EqualValues(t, 160, tree["total_edges"])
	layers := tree["layer_distribution"].(map[string]any)
	assert.EqualValues(t, 16, layers["edge"])

	spc := raw["spc_metrics"].(map[string]any)
	assert.Contains(t, spc, "ethical_fidelity")
	assert.Contains(t, spc, "consciousness_integration")
	assert.Contains(t, raw["system_state"], "initialized")
}

func TestEncodeStatus_RoundTrip(t *testing.T) {
	s := newTestSystem(t, Config{CoreNodes: 2, AggregationNodes: 1, QuantumDimension: 2})
	require.NoError(t, s.Initialize())
	want := s.Status()

	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			data, err := EncodeStatus(want, format)
			require.NoError(t, err)

			got, err := DecodeStatus(data, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeStatus_UnsupportedFormat(t *testing.T) {
	_, err := EncodeStatus(Status{}, "yaml")
	assert.Error(t, err)

	_, err = DecodeStatus([]byte("{}"), "yaml")
	assert.Error(t, err)

	_, err = DecodeStatus([]byte("not json"), FormatJSON)
	assert.ErrorContains(t, err, "failed to decode status")
}
