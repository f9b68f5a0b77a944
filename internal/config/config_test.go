package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/tsnn/internal/domain"
)

var envKeys = []string{
	"TSNN_CORE_NODES",
	"TSNN_AGGREGATION_NODES",
	"TSNN_EDGE_NODES",
	"TSNN_QUANTUM_DIMENSION",
	"TSNN_SEED",
	"TSNN_OUTPUT_FORMAT",
	"LOG_LEVEL",
	"LOG_PRETTY",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4, cfg.CoreNodes)
	assert.Equal(t, 8, cfg.AggregationNodes)
	assert.Equal(t, 16, cfg.EdgeNodes)
	assert.Equal(t, 4, cfg.QuantumDimension)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TSNN_CORE_NODES", "2")
	t.Setenv("TSNN_AGGREGATION_NODES", "3")
	t.Setenv("TSNN_EDGE_NODES", "5")
	t.Setenv("TSNN_QUANTUM_DIMENSION", "3")
	t.Setenv("TSNN_SEED", "99")
	t.Setenv("TSNN_OUTPUT_FORMAT", "msgpack")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "false")

	cfg, err := Load()
	require.NoError(t, err)

	sc := cfg.ToSystemConfig()
	assert.Equal(t, 2, sc.CoreNodes)
	assert.Equal(t, 3, sc.AggregationNodes)
	assert.Equal(t, 5, sc.EdgeNodes)
	assert.Equal(t, 3, sc.QuantumDimension)
	assert.Equal(t, uint64(99), sc.Seed)
	assert.Equal(t, "msgpack", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Pretty)
}

func TestLoad_InvalidIntegerFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("TSNN_EDGE_NODES", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.EdgeNodes)
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"negative core", "TSNN_CORE_NODES", "-1", "core_nodes"},
		{"zero dimension", "TSNN_QUANTUM_DIMENSION", "0", "quantum_dimension"},
		{"bad seed", "TSNN_SEED", "-5", "seed"},
		{"bad format", "TSNN_OUTPUT_FORMAT", "xml", "output_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			var cfgErr *domain.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
