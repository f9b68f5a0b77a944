package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aristath/tsnn/internal/config"
	"github.com/aristath/tsnn/internal/modules/physics"
	"github.com/aristath/tsnn/internal/modules/system"
)

// actions selected on the root command
type actions struct {
	init     bool
	status   bool
	sync     bool
	validate bool
}

func (a actions) any() bool {
	return a.init || a.status || a.sync || a.validate
}

func newRootCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var act actions

	rootCmd := &cobra.Command{
		Use:           "tsnn",
		Short:         "Simulate a three-tier hierarchical quantum network",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !act.any() {
				return cmd.Help()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			sys, err := system.New(cfg.ToSystemConfig(), log)
			if err != nil {
				return err
			}
			return runActions(cmd.OutOrStdout(), sys, act, system.Format(cfg.OutputFormat))
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&act.init, "init", false, "Initialize the system")
	flags.BoolVar(&act.status, "status", false, "Print the system status")
	flags.BoolVar(&act.sync, "sync", false, "Synchronize the system")
	flags.BoolVar(&act.validate, "validate", false, "Validate system integrity")

	persistent := rootCmd.PersistentFlags()
	persistent.IntVar(&cfg.CoreNodes, "core-nodes", cfg.CoreNodes, "Number of core nodes")
	persistent.IntVar(&cfg.AggregationNodes, "agg-nodes", cfg.AggregationNodes, "Number of aggregation nodes")
	persistent.IntVar(&cfg.EdgeNodes, "edge-nodes", cfg.EdgeNodes, "Number of edge nodes")
	persistent.IntVar(&cfg.QuantumDimension, "quantum-dim", cfg.QuantumDimension, "Quantum state dimension")
	persistent.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 seeds from the clock)")
	persistent.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "Status output format: json or msgpack")

	rootCmd.AddCommand(newNavigateCmd(log))
	return rootCmd
}

func runActions(out io.Writer, sys *system.System, act actions, format system.Format) error {
	if act.init {
		if err := sys.Initialize(); err != nil {
			return fmt.Errorf("system initialization failed: %w", err)
		}
		fmt.Fprintln(out, "System initialized successfully")
	}

	if act.status {
		data, err := system.EncodeStatus(sys.Status(), format)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if act.sync {
		fmt.Fprintf(out, "System synchronized with fidelity: %.3f\n", sys.Synchronize())
	}

	if act.validate {
		report := sys.ValidateIntegrity()
		checks := report.Checks()
		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			verdict := "Valid"
			if !checks[name] {
				verdict = "Invalid"
			}
			fmt.Fprintf(out, "%s: %s\n", name, verdict)
		}
		if report.Valid() {
			fmt.Fprintln(out, "Overall: all valid")
		} else {
			fmt.Fprintln(out, "Overall: issues found")
		}
	}
	return nil
}

func newNavigateCmd(log zerolog.Logger) *cobra.Command {
	var (
		start   []float64
		end     []float64
		samples int
	)

	cmd := &cobra.Command{
		Use:   "navigate",
		Short: "Run the navigation pipeline over a synthetic 40 Hz EEG trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			navLog := log.With().Str("component", "navigation").Logger()
			result, err := physics.ExecuteNavigation(start, end, syntheticEEG(samples))
			if err != nil {
				navLog.Warn().Err(err).Msg("Navigation rejected")
				return err
			}
			navLog.Info().
				Float64("local_energy", result.LocalEnergy).
				Float64("lenr_power", result.LENRPower).
				Msg("Navigation completed")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "consciousness_bias: %g\n", result.ConsciousnessBias)
			fmt.Fprintf(out, "local_energy: %g\n", result.LocalEnergy)
			fmt.Fprintf(out, "lenr_power: %g\n", result.LENRPower)
			fmt.Fprintf(out, "causality_entropy: %.4f\n", result.CausalityEntropy)
			fmt.Fprintf(out, "trajectory_probability: %v (|p|=%.4f)\n",
				result.TrajectoryProbability, cmplx.Abs(result.TrajectoryProbability))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&start, "start", []float64{0, 0, 0, 0}, "Start coordinates")
	cmd.Flags().Float64SliceVar(&end, "end", []float64{1, 1, 1, 1}, "End coordinates")
	cmd.Flags().IntVar(&samples, "samples", 2560, "EEG samples at 256 Hz")
	return cmd
}

// syntheticEEG is a pure 40 Hz tone sampled at 256 Hz.
func syntheticEEG(n int) []float64 {
	eeg := make([]float64, max(n, 0))
	for i := range eeg {
		eeg[i] = math.Sin(2 * math.Pi * 40 * float64(i) / 256)
	}
	return eeg
}
