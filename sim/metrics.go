// Tracks simulation-wide statistics such as customer counts, total simulated
// time and the longest wait, and mirrors them into Prometheus collectors.

package sim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	NumCustomers       int            `json:"num_customers"`       // distinct customers that arrived
	TotalTime          int64          `json:"total_time"`          // timestamp of the last applied event
	MaxWait            int64          `json:"max_wait"`            // max(completion - first arrival)
	CompletedCustomers int            `json:"completed_customers"` // customers that finished checkout
	DroppedCustomers   int            `json:"dropped_customers"`   // customers abandoned by policy
	Retries            int            `json:"arrival_retries"`     // retried arrivals scheduled
	EventsApplied      map[string]int `json:"events_applied"`      // event kind -> count

	seen map[*Customer]bool

	eventsApplied      *prometheus.CounterVec
	customersCompleted prometheus.Counter
	customersDropped   prometheus.Counter
	arrivalRetries     prometheus.Counter
	waitTicks          prometheus.Histogram
}

// NewMetrics creates zeroed metrics with a count for every event kind. The
// Prometheus collectors are created but not registered; see Register.
func NewMetrics() *Metrics {
	m := &Metrics{
		EventsApplied: make(map[string]int),
		seen:          make(map[*Customer]bool),
		eventsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grocery_sim",
			Name:      "events_applied_total",
			Help:      "Events applied by the simulator, by kind.",
		}, []string{"kind"}),
		customersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grocery_sim",
			Name:      "customers_completed_total",
			Help:      "Customers that finished checkout.",
		}),
		customersDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grocery_sim",
			Name:      "customers_dropped_total",
			Help:      "Customers dropped because no line could take them.",
		}),
		arrivalRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "grocery_sim",
			Name:      "arrival_retries_total",
			Help:      "Arrival events rescheduled after finding no line.",
		}),
		waitTicks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "grocery_sim",
			Name:      "wait_ticks",
			Help:      "Ticks from first arrival to checkout completion.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	for _, k := range Kinds() {
		m.EventsApplied[k.String()] = 0
		m.eventsApplied.WithLabelValues(k.String())
	}
	return m
}

// Register adds the run's collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.eventsApplied, m.customersCompleted, m.customersDropped, m.arrivalRetries, m.waitTicks,
	} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
	}
	return nil
}

// RecordEvent accounts for ev having been applied; err is the result of Apply.
// Failed events still advance TotalTime and still count their customer as arrived.
func (m *Metrics) RecordEvent(ev Event, err error) {
	kind := ev.Kind().String()
	m.EventsApplied[kind]++
	m.eventsApplied.WithLabelValues(kind).Inc()
	m.TotalTime = ev.Timestamp()

	switch e := ev.(type) {
	case *Arrival:
		if !m.seen[e.Customer] {
			m.seen[e.Customer] = true
			m.NumCustomers++
		}
	case *CheckoutCompleted:
		if err != nil {
			return
		}
		m.CompletedCustomers++
		m.customersCompleted.Inc()
		wait := e.Timestamp() - e.Customer.ArrivalTime
		m.MaxWait = max(m.MaxWait, wait)
		m.waitTicks.Observe(float64(wait))
	}
}

// RecordDrop accounts for a customer abandoned by the driver.
func (m *Metrics) RecordDrop() {
	m.DroppedCustomers++
	m.customersDropped.Inc()
}

// RecordRetry accounts for a rescheduled arrival.
func (m *Metrics) RecordRetry() {
	m.Retries++
	m.arrivalRetries.Inc()
}

// Print writes a header followed by the metrics as indented JSON.
func (m *Metrics) Print(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	if _, err := fmt.Fprintf(w, "=== Simulation Metrics ===\n%s\n", data); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
