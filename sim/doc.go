// Package sim provides the core discrete-event simulation engine for grocery
// store checkout lines.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - priority_queue.go: the min-priority queue that orders pending events
//   - event.go: the four event kinds (Arrival, CheckoutStarted, CheckoutCompleted,
//     LineClosed) and Apply, which performs an event and returns the events it generates
//   - simulator.go: the event loop and the policy for customers no line will take
//
// # Architecture
//
// The sim package defines the Store and Line interfaces that events act on;
// implementations live in sub-packages:
//   - sim/store/: GroceryStore with regular, express and self-serve lines
//   - sim/workload/: event file parsing
//   - sim/trace/: per-event execution trace
//
// # Ordering
//
// Events are applied in nondecreasing timestamp order. Events that share a
// timestamp are applied in the order they were scheduled, so seeding from a
// file replays same-tick events in file order, and a follow-up event always
// runs after everything already pending at its tick.
//
// # Line Selection
//
// An arriving customer, and each customer displaced by a closing line, joins
// the open line with the fewest customers among those that accept them. Ties
// go to the lowest line index. A customer who lands at the front of a line
// starts checkout at the same tick.
package sim
