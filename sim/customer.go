// Defines the Customer struct that models a shopper moving through the checkout area.
// Tracks the items being bought and the time the customer first reached the lines.

package sim

import (
	"fmt"
	"math"
)

// Item is a single grocery item and the number of ticks it takes to scan.
type Item struct {
	Name string // Item name, for logs and traces only
	Time int64  // Scan time in ticks
}

// Customer models a single customer's trip through the checkout area.
// Customers are shared by pointer: lines, events and metrics all refer to
// the same *Customer, and identity comparisons use that pointer.
type Customer struct {
	Name  string // Customer name from the event file
	Items []Item // Items in the customer's cart

	ArrivalTime int64 // Tick when the customer first arrived at the checkout area
	arrived     bool  // Tracks whether ArrivalTime has been set
}

// NewCustomer creates a customer with the given cart.
func NewCustomer(name string, items []Item) *Customer {
	return &Customer{Name: name, Items: items}
}

// NumItems returns the number of items in the cart.
func (c *Customer) NumItems() int {
	return len(c.Items)
}

// ItemTime returns the total scan time of every item in the cart.
// Item times are non-negative; a sum past math.MaxInt64 is ErrCheckoutTimeOverflow.
func (c *Customer) ItemTime() (int64, error) {
	var total int64
	for _, it := range c.Items {
		if it.Time > math.MaxInt64-total {
			return 0, fmt.Errorf("items of %s: %w", c.Name, ErrCheckoutTimeOverflow)
		}
		total += it.Time
	}
	return total, nil
}

// HasArrived reports whether MarkArrival has been called.
func (c *Customer) HasArrived() bool {
	return c.arrived
}

// MarkArrival records t as the start of the customer's waiting time.
// Only the first call has an effect, so an arrival retried at a later tick
// keeps the original waiting start.
func (c *Customer) MarkArrival(t int64) {
	if c.HasArrived() {
		return
	}
	c.ArrivalTime = t
	c.arrived = true
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer: %s, Items: %d, ArrivalTime: %d", c.Name, len(c.Items), c.ArrivalTime)
}
