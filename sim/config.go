package sim

import (
	"fmt"

	"github.com/grocery-sim/grocery-sim/sim/trace"
)

// NoLinePolicy decides what the simulator does with a customer whose Arrival
// finds no eligible line.
type NoLinePolicy string

const (
	// NoLineFail halts the run and returns the error from Run.
	NoLineFail NoLinePolicy = "fail"
	// NoLineDrop logs the customer as dropped and continues.
	NoLineDrop NoLinePolicy = "drop"
	// NoLineRetry schedules a new Arrival RetryDelay ticks later.
	NoLineRetry NoLinePolicy = "retry"
)

// validNoLinePolicies is the set of recognized policy names. "" means the default (fail).
var validNoLinePolicies = map[NoLinePolicy]bool{"": true, NoLineFail: true, NoLineDrop: true, NoLineRetry: true}

// IsValidNoLinePolicy returns true if name is a recognized no-line policy.
func IsValidNoLinePolicy(name string) bool {
	return validNoLinePolicies[NoLinePolicy(name)]
}

// Config groups the driver's policy settings.
// Loaded from the `simulation:` section of the store config file.
type Config struct {
	NoLinePolicy NoLinePolicy     `yaml:"no_line_policy"`
	RetryDelay   int64            `yaml:"retry_delay"` // ticks between retried arrivals (>= 1)
	MaxRetries   int              `yaml:"max_retries"` // retries per customer before dropping (>= 0)
	TraceLevel   trace.TraceLevel `yaml:"trace_level"` // "none" (default) or "events"
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		NoLinePolicy: NoLineFail,
		RetryDelay:   1,
		MaxRetries:   10,
		TraceLevel:   trace.TraceLevelNone,
	}
}

// Validate checks policy names and parameter ranges.
func (c Config) Validate() error {
	if !validNoLinePolicies[c.NoLinePolicy] {
		return fmt.Errorf("unknown no_line_policy %q", c.NoLinePolicy)
	}
	if c.NoLinePolicy == NoLineRetry && c.RetryDelay < 1 {
		return fmt.Errorf("retry_delay must be >= 1, got %d", c.RetryDelay)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got %d", c.MaxRetries)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace_level %q", c.TraceLevel)
	}
	return nil
}
