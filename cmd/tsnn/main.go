// Package main is the command-line entry point for the hierarchical quantum network simulator.
// It loads configuration from the environment, builds one System and runs the requested
// actions against it in order: init, status, sync, validate.
package main

import (
	"os"

	"github.com/aristath/tsnn/internal/config"
	"github.com/aristath/tsnn/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.Pretty,
	})
	logger.SetGlobalLogger(log)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
