package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQueue is returned by PriorityQueue.Remove on an empty queue.
	ErrEmptyQueue = errors.New("remove from empty priority queue")

	// ErrNoAvailableLine signals that no open line accepts a customer.
	// Match it with errors.Is; the concrete error is *NoAvailableLineError.
	ErrNoAvailableLine = errors.New("no available checkout line")

	// ErrUnknownLine is returned when an event names a line index the store does not have.
	ErrUnknownLine = errors.New("unknown checkout line")

	// ErrEmptyLine is returned when a checkout operation needs a front customer and the line has none.
	ErrEmptyLine = errors.New("checkout line is empty")

	// ErrCheckoutTimeOverflow is returned when a checkout duration or completion tick does not fit in an int64.
	ErrCheckoutTimeOverflow = errors.New("checkout time overflows int64")
)

// NoAvailableLineError carries the customer that could not be placed and the
// tick at which placement was attempted.
type NoAvailableLineError struct {
	Timestamp int64
	Customer  *Customer
}

func (e *NoAvailableLineError) Error() string {
	name := "<nil>"
	if e.Customer != nil {
		name = e.Customer.Name
	}
	return fmt.Sprintf("%s for customer %q at tick %d", ErrNoAvailableLine, name, e.Timestamp)
}

// Is lets errors.Is(err, ErrNoAvailableLine) match.
func (e *NoAvailableLineError) Is(target error) bool {
	return target == ErrNoAvailableLine
}
