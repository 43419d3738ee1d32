// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/grocery-sim/grocery-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, the pending events,
// and the store they act on. It is single-threaded: each event is applied to
// completion before the next one is dequeued.
type Simulator struct {
	Clock int64
	RunID string
	// EventQueue holds every pending event, ordered by timestamp then insertion order
	EventQueue *PriorityQueue[Event]
	Store      Store
	Config     Config
	Metrics    *Metrics
	// Trace is nil unless Config.TraceLevel is "events"
	Trace *trace.SimulationTrace

	// retries counts rescheduled arrivals per customer
	retries map[*Customer]int
	log     *logrus.Entry
}

// NewSimulator creates a simulator over st with an empty event queue.
// cfg is assumed valid; zero-valued policy fields fall back to DefaultConfig.
func NewSimulator(st Store, cfg Config) *Simulator {
	def := DefaultConfig()
	if cfg.NoLinePolicy == "" {
		cfg.NoLinePolicy = def.NoLinePolicy
	}
	if cfg.RetryDelay < 1 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.TraceLevel == "" {
		cfg.TraceLevel = def.TraceLevel
	}
	runID := uuid.NewString()
	s := &Simulator{
		RunID:      runID,
		EventQueue: NewPriorityQueue(EventLess),
		Store:      st,
		Config:     cfg,
		Metrics:    NewMetrics(),
		retries:    make(map[*Customer]int),
		log:        logrus.WithField("run", runID),
	}
	if cfg.TraceLevel == trace.TraceLevelEvents {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Add(ev)
}

// Seed schedules events in the given order. Events sharing a timestamp are
// applied in this order.
func (sim *Simulator) Seed(events []Event) {
	for _, ev := range events {
		sim.Schedule(ev)
	}
}

// Step applies the next pending event and schedules whatever it generates.
// It reports false once the queue is empty. A non-nil error halts the run.
func (sim *Simulator) Step() (bool, error) {
	ev, err := sim.EventQueue.Remove()
	if errors.Is(err, ErrEmptyQueue) {
		return false, nil
	}

	if ev.Timestamp() < sim.Clock {
		panic(fmt.Sprintf("Clock went backwards: %d < %d", ev.Timestamp(), sim.Clock))
	}
	sim.Clock = ev.Timestamp()
	sim.log.Debugf("[tick %07d] Executing %s", sim.Clock, ev.Kind())

	next, err := Apply(ev, sim.Store)
	sim.Metrics.RecordEvent(ev, err)
	sim.recordEvent(ev, len(next), err)
	if err != nil {
		return true, sim.handleFailure(ev, err)
	}

	switch e := ev.(type) {
	case *Arrival:
		delete(sim.retries, e.Customer)
	case *LineClosed:
		for _, c := range e.Dropped {
			sim.log.Warnf("[tick %07d] %s displaced from line %d found no line", sim.Clock, c.Name, e.Line)
			sim.drop(c)
		}
	}
	for _, n := range next {
		sim.Schedule(n)
	}
	return true, nil
}

// Run applies events until the queue is empty or an event fails fatally.
func (sim *Simulator) Run() error {
	sim.log.Infof("Simulation started with %d lines and %d seeded events", sim.Store.NumLines(), sim.EventQueue.Len())
	for {
		ok, err := sim.Step()
		if err != nil {
			sim.log.Errorf("[tick %07d] Simulation halted: %v", sim.Clock, err)
			return err
		}
		if !ok {
			break
		}
	}
	sim.log.Infof("[tick %07d] Simulation ended", sim.Clock)
	return nil
}

// handleFailure applies the no-line policy to a failed Arrival. Every other
// failure is returned as is.
func (sim *Simulator) handleFailure(ev Event, err error) error {
	var noLine *NoAvailableLineError
	arrival, isArrival := ev.(*Arrival)
	if !isArrival || !errors.As(err, &noLine) {
		return fmt.Errorf("applying %s at tick %d: %w", ev.Kind(), ev.Timestamp(), err)
	}
	c := arrival.Customer

	switch sim.Config.NoLinePolicy {
	case NoLineDrop:
		sim.log.Warnf("[tick %07d] No line for %s, dropping", sim.Clock, c.Name)
		sim.recordDecision(c, "drop")
		sim.drop(c)
		return nil
	case NoLineRetry:
		if sim.retries[c] >= sim.Config.MaxRetries {
			sim.log.Warnf("[tick %07d] No line for %s after %d retries, dropping", sim.Clock, c.Name, sim.retries[c])
			sim.recordDecision(c, "drop")
			sim.drop(c)
			return nil
		}
		sim.recordDecision(c, "retry")
		sim.retries[c]++
		sim.Metrics.RecordRetry()
		sim.log.Warnf("[tick %07d] No line for %s, retrying at tick %d", sim.Clock, c.Name, sim.Clock+sim.Config.RetryDelay)
		sim.Schedule(NewArrival(sim.Clock+sim.Config.RetryDelay, c))
		return nil
	default:
		sim.recordDecision(c, "fail")
		return fmt.Errorf("applying %s at tick %d: %w", ev.Kind(), ev.Timestamp(), err)
	}
}

func (sim *Simulator) drop(c *Customer) {
	delete(sim.retries, c)
	sim.Metrics.RecordDrop()
}

func (sim *Simulator) recordEvent(ev Event, spawned int, err error) {
	if !sim.Trace.Enabled() {
		return
	}
	rec := trace.EventRecord{Clock: ev.Timestamp(), Kind: ev.Kind().String(), Line: -1, Spawned: spawned}
	switch e := ev.(type) {
	case *Arrival:
		rec.Customer = e.Customer.Name
	case *CheckoutStarted:
		rec.Line = e.Line
	case *CheckoutCompleted:
		rec.Line = e.Line
		rec.Customer = e.Customer.Name
	case *LineClosed:
		rec.Line = e.Line
	}
	if err != nil {
		rec.Err = err.Error()
	}
	sim.Trace.RecordEvent(rec)
}

func (sim *Simulator) recordDecision(c *Customer, action string) {
	if !sim.Trace.Enabled() {
		return
	}
	sim.Trace.RecordDecision(trace.DecisionRecord{
		Clock:    sim.Clock,
		Customer: c.Name,
		Action:   action,
		Attempt:  sim.retries[c],
	})
}
