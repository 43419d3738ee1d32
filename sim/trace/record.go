// Package trace provides per-event execution tracing for simulation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures a single event applied by the simulator.
type EventRecord struct {
	Seq      int    // 0-based position in application order
	Clock    int64  // event timestamp
	Kind     string // event kind name
	Line     int    // line index, -1 for arrivals
	Customer string // customer name, empty when the event names none
	Spawned  int    // number of follow-up events returned
	Err      string // error text if the event failed
}

// DecisionRecord captures a driver policy decision taken on a failed placement.
type DecisionRecord struct {
	Clock    int64
	Customer string
	Action   string // "retry", "drop" or "fail"
	Attempt  int    // retries already made for this customer
}
