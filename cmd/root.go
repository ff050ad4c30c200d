package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emreebayir/cpu-scheduling-simulator/report"
	"github.com/emreebayir/cpu-scheduling-simulator/sim"
	"github.com/emreebayir/cpu-scheduling-simulator/sim/trace"
	"github.com/emreebayir/cpu-scheduling-simulator/workload"
)

var (
	algorithm      string // scheduling algorithm: rr (default), prio, mlfq
	quantum        int    // base quantum for RR/MLFQ
	inputPath      string // workload file path; empty means stdin
	configPath     string // optional YAML config bundle path
	logLevel       string // logrus level
	traceLevel     string // "none" (default) or "full"
	format         string // metrics output format: text (default), json, yaml
	showPercentile bool   // whether to print the non-mandated percentile section
)

// rootCmd is the base command for the CLI. This tool has exactly one
// behavior, so the flags are attached directly to the root command
// rather than to a "run" subcommand.
var rootCmd = &cobra.Command{
	Use:           "cpu-scheduling-simulator",
	Short:         "Discrete-time CPU scheduler and resource manager simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSimulation,
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		bundle, err := sim.LoadBundle(configPath)
		if err != nil {
			return err
		}
		if err := bundle.Validate(); err != nil {
			return fmt.Errorf("invalid config bundle: %w", err)
		}
		applyBundleDefaults(cmd, bundle)
	}

	if err := sim.SetLogLevel(logLevel); err != nil {
		return err
	}

	schedCfg := sim.SchedulerConfig{Algorithm: algorithm, Quantum: quantum}
	traceCfg := sim.TraceConfig{Level: traceLevel, Percentile: showPercentile}

	if !sim.IsValidAlgorithm(schedCfg.Algorithm) {
		return fmt.Errorf("unknown algorithm: %s", schedCfg.Algorithm)
	}
	if !trace.IsValidTraceLevel(traceCfg.Level) {
		return fmt.Errorf("unknown trace level: %s", traceCfg.Level)
	}
	if !report.IsValidFormat(format) {
		return fmt.Errorf("unknown report format: %s", format)
	}

	in := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("cannot open input file: %w", err)
		}
		defer f.Close()
		in = f
	}

	processes, capacities, err := workload.Load(in)
	if err != nil {
		return fmt.Errorf("parsing workload: %w", err)
	}

	logrus.Infof("starting simulation with algorithm=%s quantum=%d processes=%d resources=%d",
		schedCfg.Algorithm, schedCfg.Quantum, len(processes), len(capacities))

	policy := sim.NewSchedulingPolicy(schedCfg.Algorithm, schedCfg.Quantum)
	simulator := sim.NewSimulator(processes, capacities, policy, sim.NewWriterSink(os.Stdout), trace.TraceLevel(traceCfg.Level))
	simulator.Run()

	metrics := sim.Collect(simulator.Processes(), simulator.Now())
	if err := report.Render(format, os.Stdout, metrics, traceCfg.Percentile); err != nil {
		return fmt.Errorf("rendering metrics: %w", err)
	}

	logrus.Info("simulation complete")
	return nil
}

// applyBundleDefaults fills any flag that was not set explicitly on the
// command line with the corresponding non-empty bundle setting. Explicit
// CLI flags always win, even when their value equals the flag default.
func applyBundleDefaults(cmd *cobra.Command, b *sim.Bundle) {
	if !cmd.Flags().Changed("alg") && b.Algorithm != "" {
		algorithm = b.Algorithm
	}
	if !cmd.Flags().Changed("q") && b.Quantum > 0 {
		quantum = b.Quantum
	}
	if !cmd.Flags().Changed("log-level") && b.LogLevel != "" {
		logLevel = b.LogLevel
	}
	if !cmd.Flags().Changed("trace") && b.Trace != "" {
		traceLevel = b.Trace
	}
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&algorithm, "alg", "rr", "Scheduling algorithm: rr, prio, or mlfq")
	rootCmd.Flags().IntVar(&quantum, "q", 10, "Base quantum for rr/mlfq")
	rootCmd.Flags().StringVar(&inputPath, "input", "", "Workload input file path (default: stdin)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML config bundle path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.Flags().StringVar(&traceLevel, "trace", "none", "Structured trace verbosity: none or full")
	rootCmd.Flags().StringVar(&format, "format", "text", "Metrics output format: text, json, or yaml")
	rootCmd.Flags().BoolVar(&showPercentile, "percentiles", false, "Print p50/p95/p99 turnaround and waiting alongside the metrics table")
}
