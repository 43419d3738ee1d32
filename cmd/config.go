package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grocery-sim/grocery-sim/sim"
	"github.com/grocery-sim/grocery-sim/sim/store"
	"github.com/grocery-sim/grocery-sim/sim/trace"
)

// resolveBundle loads the config file (or the defaults when path is empty)
// and applies every flag the user set explicitly. Flags left at their default
// never override file values.
func resolveBundle(cmd *cobra.Command, path string) (*store.Bundle, error) {
	bundle := store.DefaultBundle()
	if path != "" {
		b, err := store.LoadBundle(path)
		if err != nil {
			return nil, err
		}
		bundle = b
	}

	flags := cmd.Flags()
	if flags.Changed("regular") {
		bundle.Store.RegularCount = regularCount
	}
	if flags.Changed("express") {
		bundle.Store.ExpressCount = expressCount
	}
	if flags.Changed("self-serve") {
		bundle.Store.SelfServeCount = selfServeCount
	}
	if flags.Changed("line-capacity") {
		bundle.Store.LineCapacity = lineCapacity
	}
	if flags.Changed("express-item-limit") {
		bundle.Store.ExpressItemLimit = expressItemLimit
	}
	if flags.Changed("self-serve-multiplier") {
		bundle.Store.SelfServeMultiplier = selfServeMultiplier
	}
	if flags.Changed("no-line-policy") {
		bundle.Simulation.NoLinePolicy = sim.NoLinePolicy(noLinePolicy)
	}
	if flags.Changed("retry-delay") {
		bundle.Simulation.RetryDelay = retryDelay
	}
	if flags.Changed("max-retries") {
		bundle.Simulation.MaxRetries = maxRetries
	}
	if flags.Changed("trace-level") {
		bundle.Simulation.TraceLevel = trace.TraceLevel(traceLevel)
	}

	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return bundle, nil
}
