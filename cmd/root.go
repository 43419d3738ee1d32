package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grocery-sim/grocery-sim/sim"
	"github.com/grocery-sim/grocery-sim/sim/store"
	"github.com/grocery-sim/grocery-sim/sim/trace"
	"github.com/grocery-sim/grocery-sim/sim/workload"
)

var (
	// CLI flags for inputs and outputs
	eventsPath  string // Event file to seed the simulation with
	configPath  string // Optional YAML store + simulation config
	metricsPath string // Optional Prometheus textfile output
	logLevel    string // Log verbosity level

	// CLI flags overriding the `store:` section
	regularCount        int   // Number of regular lines
	expressCount        int   // Number of express lines
	selfServeCount      int   // Number of self-serve lines
	lineCapacity        int   // Max customers per line
	expressItemLimit    int   // Max items for express customers
	selfServeMultiplier int64 // Self-serve checkout time multiplier

	// CLI flags overriding the `simulation:` section
	noLinePolicy string // fail, drop or retry
	retryDelay   int64  // Ticks between retried arrivals
	maxRetries   int    // Retries per customer before dropping
	traceLevel   string // none or events
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "grocery-sim",
	Short: "Discrete-event simulator for grocery store checkout lines",
}

// runCmd executes the simulation using parameters from the config file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the checkout simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		bundle, err := resolveBundle(cmd, configPath)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		events, err := workload.LoadEventsFile(eventsPath)
		if err != nil {
			logrus.Fatalf("Unable to read events: %v", err)
		}

		logrus.Infof("Starting simulation with %d lines (%d regular, %d express, %d self-serve), %d events, no-line policy %s",
			bundle.Store.NumLines(), bundle.Store.RegularCount, bundle.Store.ExpressCount, bundle.Store.SelfServeCount,
			len(events), bundle.Simulation.NoLinePolicy)

		s, runErr := runSimulation(bundle, events, os.Stdout, metricsPath)
		if s != nil && s.Trace != nil {
			summary := trace.Summarize(s.Trace)
			logrus.Infof("Trace: %d events (%d failed), %d retries, %d drops, last tick %d",
				summary.TotalEvents, summary.FailedEvents, summary.Retries, summary.Drops, summary.MaxClock)
		}
		if runErr != nil {
			logrus.Fatalf("Simulation failed: %v", runErr)
		}
		logrus.Info("Simulation complete.")
	},
}

// runSimulation builds the store, seeds the simulator with events, runs it to
// completion and reports metrics to out. The simulator is returned even when
// the run fails so callers can inspect partial results.
func runSimulation(bundle *store.Bundle, events []sim.Event, out io.Writer, metricsFile string) (*sim.Simulator, error) {
	st, err := store.New(bundle.Store)
	if err != nil {
		return nil, err
	}

	s := sim.NewSimulator(st, bundle.Simulation)
	reg := prometheus.NewRegistry()
	if err := s.Metrics.Register(reg); err != nil {
		return s, err
	}
	s.Seed(events)

	runErr := s.Run()
	logrus.Debugf("Final line lengths: %v", st.Lengths())
	if err := s.Metrics.Print(out); err != nil {
		return s, err
	}
	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			return s, fmt.Errorf("writing metrics file: %w", err)
		}
	}
	return s, runErr
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&eventsPath, "events", "", "Event file to simulate")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML file with `store:` and `simulation:` sections")
	runCmd.Flags().StringVar(&metricsPath, "metrics-path", "", "Write Prometheus metrics to this textfile")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	_ = runCmd.MarkFlagRequired("events")

	// Store layout
	runCmd.Flags().IntVar(&regularCount, "regular", 1, "Number of regular lines")
	runCmd.Flags().IntVar(&expressCount, "express", 0, "Number of express lines")
	runCmd.Flags().IntVar(&selfServeCount, "self-serve", 0, "Number of self-serve lines")
	runCmd.Flags().IntVar(&lineCapacity, "line-capacity", 10, "Maximum customers per line")
	runCmd.Flags().IntVar(&expressItemLimit, "express-item-limit", 7, "Maximum items for an express line customer")
	runCmd.Flags().Int64Var(&selfServeMultiplier, "self-serve-multiplier", 2, "Self-serve checkout time multiplier")

	// Driver policy
	runCmd.Flags().StringVar(&noLinePolicy, "no-line-policy", "fail", "What to do when no line accepts an arriving customer (fail, drop, retry)")
	runCmd.Flags().Int64Var(&retryDelay, "retry-delay", 1, "Ticks between retried arrivals")
	runCmd.Flags().IntVar(&maxRetries, "max-retries", 10, "Retries per customer before dropping")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Trace verbosity (none, events)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
