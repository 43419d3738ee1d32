package sim

import "fmt"

// Line is a single checkout line as seen by events.
// Implementations live in sim/store/.
type Line interface {
	// Len returns the number of customers in the line, including the one checking out.
	Len() int
	IsOpen() bool
	// CanAccept reports whether c may join the line right now.
	CanAccept(c *Customer) bool
	// Accept appends c to the tail. Callers check CanAccept first.
	Accept(c *Customer)
	// FirstInLine returns the front customer, or nil if the line is empty.
	FirstInLine() *Customer
	// RemoveFrontCustomer dequeues the front customer. No-op on an empty line.
	RemoveFrontCustomer()
	// NextCheckoutTime returns the checkout duration of the front customer.
	NextCheckoutTime() (int64, error)
}

// Store is the checkout area the simulation mutates.
// Lines are indexed 0..NumLines()-1 and the index of a line never changes.
type Store interface {
	NumLines() int
	Line(i int) Line
	// CloseLine stops line i from accepting customers and returns, in order,
	// every customer except the one at the front.
	CloseLine(i int) []*Customer
}

// selectLine returns the index of the shortest open line that accepts c.
// Ties go to the lowest index. Returns -1 if no line is eligible.
func selectLine(st Store, c *Customer) int {
	best, bestLen := -1, 0
	for i := 0; i < st.NumLines(); i++ {
		line := st.Line(i)
		if !line.IsOpen() || !line.CanAccept(c) {
			continue
		}
		if best < 0 || line.Len() < bestLen {
			best, bestLen = i, line.Len()
		}
	}
	return best
}

// joinLine places c on the line selected by selectLine and reports the line
// index and whether c is now at the front.
func joinLine(st Store, c *Customer) (idx int, front bool) {
	idx = selectLine(st, c)
	if idx < 0 {
		return -1, false
	}
	line := st.Line(idx)
	line.Accept(c)
	return idx, line.FirstInLine() == c
}

func lookupLine(st Store, i int) (Line, error) {
	if i < 0 || i >= st.NumLines() {
		return nil, fmt.Errorf("line %d of %d: %w", i, st.NumLines(), ErrUnknownLine)
	}
	return st.Line(i), nil
}
