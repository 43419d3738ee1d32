package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocery-sim/grocery-sim/sim"
	"github.com/grocery-sim/grocery-sim/sim/store"
	"github.com/grocery-sim/grocery-sim/sim/workload"
)

var (
	sampleEvents = filepath.Join("..", "testdata", "events.txt")
	sampleConfig = filepath.Join("..", "testdata", "store.yaml")
)

func TestRunSimulation_SampleFiles_MetricsPrintedToStdout(t *testing.T) {
	// GIVEN the sample store config and event file
	bundle, err := store.LoadBundle(sampleConfig)
	require.NoError(t, err)
	events, err := workload.LoadEventsFile(sampleEvents)
	require.NoError(t, err)
	metricsFile := filepath.Join(t.TempDir(), "metrics.prom")

	// WHEN the simulation runs
	var out bytes.Buffer
	s, err := runSimulation(bundle, events, &out, metricsFile)
	require.NoError(t, err)

	// THEN every customer checks out and Bo's 28-tick cart sets the max wait
	assert.Equal(t, 5, s.Metrics.NumCustomers)
	assert.Equal(t, 5, s.Metrics.CompletedCustomers)
	assert.Equal(t, int64(30), s.Metrics.TotalTime)
	assert.Equal(t, int64(28), s.Metrics.MaxWait)

	// AND the metrics JSON is written to the output
	assert.Contains(t, out.String(), "Simulation Metrics")
	assert.Contains(t, out.String(), `"max_wait": 28`)

	// AND the Prometheus textfile is written
	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "grocery_sim_customers_completed_total 5")
}

func TestRunSimulation_FailPolicy_ReturnsErrorAndPartialMetrics(t *testing.T) {
	// GIVEN one line of capacity 1 and two overlapping customers
	bundle := store.DefaultBundle()
	bundle.Store.LineCapacity = 1
	events := []sim.Event{
		sim.NewArrival(0, sim.NewCustomer("Ann", []sim.Item{{Name: "Milk", Time: 5}})),
		sim.NewArrival(1, sim.NewCustomer("Bo", []sim.Item{{Name: "Eggs", Time: 5}})),
	}

	// WHEN the simulation runs
	var out bytes.Buffer
	s, err := runSimulation(bundle, events, &out, "")

	// THEN the run fails but metrics are still reported
	assert.ErrorIs(t, err, sim.ErrNoAvailableLine)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Metrics.NumCustomers)
	assert.Contains(t, out.String(), `"num_customers": 2`)
}

func TestRunSimulation_InvalidStore(t *testing.T) {
	bundle := store.DefaultBundle()
	bundle.Store.RegularCount = 0
	s, err := runSimulation(bundle, nil, &bytes.Buffer{}, "")
	assert.Error(t, err)
	assert.Nil(t, s)
}

// setFlag sets a run flag for one test and restores it afterwards.
func setFlag(t *testing.T, name, value string) {
	t.Helper()
	f := runCmd.Flags().Lookup(name)
	require.NotNil(t, f, "flag %s", name)
	old := f.Value.String()
	require.NoError(t, runCmd.Flags().Set(name, value))
	t.Cleanup(func() {
		_ = f.Value.Set(old)
		f.Changed = false
	})
}

func TestResolveBundle_FlagsOverrideFileOnlyWhenSet(t *testing.T) {
	// GIVEN the sample config (3 regular lines, retry policy) and two explicit flags
	setFlag(t, "regular", "6")
	setFlag(t, "no-line-policy", "drop")

	// WHEN the bundle is resolved
	b, err := resolveBundle(runCmd, sampleConfig)
	require.NoError(t, err)

	// THEN set flags win and unset flags keep the file values
	assert.Equal(t, 6, b.Store.RegularCount)
	assert.Equal(t, sim.NoLineDrop, b.Simulation.NoLinePolicy)
	assert.Equal(t, 1, b.Store.ExpressCount)
	assert.Equal(t, 5, b.Store.LineCapacity)
}

func TestResolveBundle_NoFile_UsesDefaults(t *testing.T) {
	b, err := resolveBundle(runCmd, "")
	require.NoError(t, err)
	assert.Equal(t, store.DefaultBundle(), b)
}

func TestResolveBundle_InvalidFlag_Errors(t *testing.T) {
	setFlag(t, "trace-level", "everything")
	_, err := resolveBundle(runCmd, "")
	assert.ErrorContains(t, err, "trace_level")
}
