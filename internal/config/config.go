// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aristath/tsnn/internal/domain"
	"github.com/aristath/tsnn/internal/modules/system"
)

// Config holds application configuration
type Config struct {
	CoreNodes        int
	AggregationNodes int
	EdgeNodes        int
	QuantumDimension int
	Seed             uint64 // 0 seeds from the clock
	LogLevel         string
	Pretty           bool
	OutputFormat     string // json or msgpack
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	seed, err := getEnvAsUint64("TSNN_SEED", 0)
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "seed", Message: "must be an unsigned integer", Err: err}
	}

	cfg := &Config{
		CoreNodes:        getEnvAsInt("TSNN_CORE_NODES", 4),
		AggregationNodes: getEnvAsInt("TSNN_AGGREGATION_NODES", 8),
		EdgeNodes:        getEnvAsInt("TSNN_EDGE_NODES", 16),
		QuantumDimension: getEnvAsInt("TSNN_QUANTUM_DIMENSION", 4),
		Seed:             seed,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Pretty:           getEnvAsBool("LOG_PRETTY", true),
		OutputFormat:     getEnv("TSNN_OUTPUT_FORMAT", string(system.FormatJSON)),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks node counts, dimension and output format
func (c *Config) Validate() error {
	if err := c.ToSystemConfig().Validate(); err != nil {
		return err
	}
	switch system.Format(c.OutputFormat) {
	case system.FormatJSON, system.FormatMsgpack:
	default:
		return &domain.ConfigurationError{Field: "output_format", Message: "must be json or msgpack"}
	}
	return nil
}

// ToSystemConfig converts config.Config to the system package's construction parameters
func (c *Config) ToSystemConfig() system.Config {
	return system.Config{
		CoreNodes:        c.CoreNodes,
		AggregationNodes: c.AggregationNodes,
		EdgeNodes:        c.EdgeNodes,
		QuantumDimension: c.QuantumDimension,
		Seed:             c.Seed,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseUint(value, 10, 64)
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
