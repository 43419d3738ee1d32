package store

import (
	"fmt"
	"math"

	"github.com/grocery-sim/grocery-sim/sim"
)

// LineKind distinguishes the checkout line variants.
type LineKind string

const (
	// LineRegular accepts any customer while it has room.
	LineRegular LineKind = "regular"
	// LineExpress also limits the number of items a customer may carry.
	LineExpress LineKind = "express"
	// LineSelfServe scans items slower by a fixed multiplier.
	LineSelfServe LineKind = "self-serve"
)

// CheckoutLine is a single line of customers waiting to check out.
type CheckoutLine struct {
	Kind     LineKind
	Capacity int // max customers, including the one checking out

	itemLimit  int   // express lines only
	multiplier int64 // self-serve lines only
	open       bool
	customers  sim.CustomerQueue
}

// NewRegularLine creates an open regular line.
func NewRegularLine(capacity int) *CheckoutLine {
	return &CheckoutLine{Kind: LineRegular, Capacity: capacity, open: true}
}

// NewExpressLine creates an open express line that rejects carts with more than itemLimit items.
func NewExpressLine(capacity, itemLimit int) *CheckoutLine {
	return &CheckoutLine{Kind: LineExpress, Capacity: capacity, itemLimit: itemLimit, open: true}
}

// NewSelfServeLine creates an open self-serve line whose checkout takes multiplier times the item time.
func NewSelfServeLine(capacity int, multiplier int64) *CheckoutLine {
	return &CheckoutLine{Kind: LineSelfServe, Capacity: capacity, multiplier: multiplier, open: true}
}

// Len returns the number of customers in the line.
func (l *CheckoutLine) Len() int {
	return l.customers.Len()
}

func (l *CheckoutLine) IsOpen() bool {
	return l.open
}

// CanAccept reports whether c may join the line: it must be open with room left,
// and an express line also checks the item count.
func (l *CheckoutLine) CanAccept(c *sim.Customer) bool {
	if !l.open || l.customers.Len() >= l.Capacity {
		return false
	}
	if l.Kind == LineExpress && c.NumItems() > l.itemLimit {
		return false
	}
	return true
}

// Accept appends c to the back of the line.
func (l *CheckoutLine) Accept(c *sim.Customer) {
	l.customers.Enqueue(c)
}

func (l *CheckoutLine) FirstInLine() *sim.Customer {
	return l.customers.Peek()
}

func (l *CheckoutLine) RemoveFrontCustomer() {
	l.customers.Dequeue()
}

// NextCheckoutTime returns how long the front customer takes to check out.
func (l *CheckoutLine) NextCheckoutTime() (int64, error) {
	c := l.customers.Peek()
	if c == nil {
		return 0, fmt.Errorf("%s line: %w", l.Kind, sim.ErrEmptyLine)
	}
	d, err := c.ItemTime()
	if err != nil {
		return 0, fmt.Errorf("%s line: %w", l.Kind, err)
	}
	if l.Kind == LineSelfServe {
		if l.multiplier > 0 && d > math.MaxInt64/l.multiplier {
			return 0, fmt.Errorf("%s line, %s x%d: %w", l.Kind, c.Name, l.multiplier, sim.ErrCheckoutTimeOverflow)
		}
		return d * l.multiplier, nil
	}
	return d, nil
}

// Close stops the line from accepting customers and returns everyone behind
// the front customer, in order. Closing a closed line returns nothing.
func (l *CheckoutLine) Close() []*sim.Customer {
	if !l.open {
		return nil
	}
	l.open = false
	return l.customers.TruncateAfterFront()
}

func (l *CheckoutLine) String() string {
	state := "open"
	if !l.open {
		state = "closed"
	}
	return fmt.Sprintf("%s(%s) %s", l.Kind, state, l.customers.String())
}
