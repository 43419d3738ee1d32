package sim

import (
	"fmt"
	"math"
)

// Kind identifies one of the closed set of event variants.
type Kind int

const (
	KindArrival Kind = iota
	KindCheckoutStarted
	KindCheckoutCompleted
	KindLineClosed
)

var kindNames = map[Kind]string{
	KindArrival:           "Arrival",
	KindCheckoutStarted:   "CheckoutStarted",
	KindCheckoutCompleted: "CheckoutCompleted",
	KindLineClosed:        "LineClosed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every event kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindArrival, KindCheckoutStarted, KindCheckoutCompleted, KindLineClosed}
}

// Event is a timestamped unit of simulated state change.
// The set of variants is closed: Arrival, CheckoutStarted, CheckoutCompleted
// and LineClosed. Apply dispatches on them.
type Event interface {
	// Timestamp returns the tick at which the event happens (>= 0).
	Timestamp() int64
	Kind() Kind
	sealed()
}

// EventLess orders events by timestamp only. Events with equal timestamps are
// equal under this order; PriorityQueue breaks the tie by insertion order.
func EventLess(a, b Event) bool {
	return a.Timestamp() < b.Timestamp()
}

// baseEvent provides the timestamp common to every variant.
type baseEvent struct {
	time int64
}

func (e baseEvent) Timestamp() int64 { return e.time }
func (baseEvent) sealed()            {}

// Arrival represents a customer ready to join a checkout line.
type Arrival struct {
	baseEvent
	Customer *Customer
}

// NewArrival creates an Arrival at t. The customer's waiting time starts at t
// unless an earlier arrival already started it.
func NewArrival(t int64, c *Customer) *Arrival {
	c.MarkArrival(t)
	return &Arrival{baseEvent: baseEvent{time: t}, Customer: c}
}

func (*Arrival) Kind() Kind { return KindArrival }

// CheckoutStarted represents the front customer of a line starting to scan items.
type CheckoutStarted struct {
	baseEvent
	Line int
}

func NewCheckoutStarted(t int64, line int) *CheckoutStarted {
	return &CheckoutStarted{baseEvent: baseEvent{time: t}, Line: line}
}

func (*CheckoutStarted) Kind() Kind { return KindCheckoutStarted }

// CheckoutCompleted represents a customer finishing checkout and leaving the store.
type CheckoutCompleted struct {
	baseEvent
	Line     int
	Customer *Customer
}

func NewCheckoutCompleted(t int64, line int, c *Customer) *CheckoutCompleted {
	return &CheckoutCompleted{baseEvent: baseEvent{time: t}, Line: line, Customer: c}
}

func (*CheckoutCompleted) Kind() Kind { return KindCheckoutCompleted }

// LineClosed represents a line ceasing to accept new customers.
type LineClosed struct {
	baseEvent
	Line int

	// Dropped is filled in by Apply with the displaced customers that found no
	// other line. They are not rescheduled.
	Dropped []*Customer
}

func NewLineClosed(t int64, line int) *LineClosed {
	return &LineClosed{baseEvent: baseEvent{time: t}, Line: line}
}

func (*LineClosed) Kind() Kind { return KindLineClosed }

// Apply performs ev against st and returns the events it generates, in order.
// Apply never schedules anything itself and never retries a failed event.
func Apply(ev Event, st Store) ([]Event, error) {
	switch e := ev.(type) {
	case *Arrival:
		return e.apply(st)
	case *CheckoutStarted:
		return e.apply(st)
	case *CheckoutCompleted:
		return e.apply(st)
	case *LineClosed:
		return e.apply(st)
	default:
		panic(fmt.Sprintf("Apply: unhandled event type %T", ev))
	}
}

// The customer joins the shortest eligible line, lowest index on ties.
// On failure the store is left untouched.
func (e *Arrival) apply(st Store) ([]Event, error) {
	idx, front := joinLine(st, e.Customer)
	if idx < 0 {
		return nil, &NoAvailableLineError{Timestamp: e.time, Customer: e.Customer}
	}
	if front {
		return []Event{NewCheckoutStarted(e.time, idx)}, nil
	}
	return nil, nil
}

// Checkout time is reserved now; the customer stays at the front until
// the CheckoutCompleted fires.
func (e *CheckoutStarted) apply(st Store) ([]Event, error) {
	line, err := lookupLine(st, e.Line)
	if err != nil {
		return nil, err
	}
	c := line.FirstInLine()
	if c == nil {
		return nil, fmt.Errorf("checkout started on line %d at tick %d: %w", e.Line, e.time, ErrEmptyLine)
	}
	d, err := line.NextCheckoutTime()
	if err != nil {
		return nil, fmt.Errorf("checkout time on line %d: %w", e.Line, err)
	}
	if d > math.MaxInt64-e.time {
		return nil, fmt.Errorf("completion of %s on line %d after tick %d: %w", c.Name, e.Line, e.time, ErrCheckoutTimeOverflow)
	}
	return []Event{NewCheckoutCompleted(e.time+d, e.Line, c)}, nil
}

func (e *CheckoutCompleted) apply(st Store) ([]Event, error) {
	line, err := lookupLine(st, e.Line)
	if err != nil {
		return nil, err
	}
	if line.FirstInLine() == nil {
		return nil, fmt.Errorf("checkout completed on line %d at tick %d: %w", e.Line, e.time, ErrEmptyLine)
	}
	line.RemoveFrontCustomer()
	if line.FirstInLine() != nil {
		return []Event{NewCheckoutStarted(e.time, e.Line)}, nil
	}
	return nil, nil
}

// Displaced customers are redistributed in their original order, each one
// seeing the lines as the previous ones left them.
func (e *LineClosed) apply(st Store) ([]Event, error) {
	if _, err := lookupLine(st, e.Line); err != nil {
		return nil, err
	}
	e.Dropped = nil
	var events []Event
	for _, c := range st.CloseLine(e.Line) {
		idx, front := joinLine(st, c)
		switch {
		case idx < 0:
			e.Dropped = append(e.Dropped, c)
		case front:
			events = append(events, NewCheckoutStarted(e.time, idx))
		}
	}
	return events, nil
}
