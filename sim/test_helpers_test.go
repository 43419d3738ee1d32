package sim

// fakeLine is a minimal in-package Line: a capacity-bounded FIFO whose
// checkout time is the front customer's item time.
type fakeLine struct {
	capacity  int
	closed    bool
	customers CustomerQueue
}

func (l *fakeLine) Len() int     { return l.customers.Len() }
func (l *fakeLine) IsOpen() bool { return !l.closed }
func (l *fakeLine) CanAccept(*Customer) bool {
	return !l.closed && l.customers.Len() < l.capacity
}
func (l *fakeLine) Accept(c *Customer)     { l.customers.Enqueue(c) }
func (l *fakeLine) FirstInLine() *Customer { return l.customers.Peek() }
func (l *fakeLine) RemoveFrontCustomer()   { l.customers.Dequeue() }
func (l *fakeLine) NextCheckoutTime() (int64, error) {
	c := l.customers.Peek()
	if c == nil {
		return 0, ErrEmptyLine
	}
	return c.ItemTime()
}

type fakeStore struct {
	lines []*fakeLine
}

// newFakeStore creates n open lines of the given capacity.
func newFakeStore(n, capacity int) *fakeStore {
	st := &fakeStore{}
	for i := 0; i < n; i++ {
		st.lines = append(st.lines, &fakeLine{capacity: capacity})
	}
	return st
}

func (s *fakeStore) NumLines() int   { return len(s.lines) }
func (s *fakeStore) Line(i int) Line { return s.lines[i] }
func (s *fakeStore) CloseLine(i int) []*Customer {
	if s.lines[i].closed {
		return nil
	}
	s.lines[i].closed = true
	return s.lines[i].customers.TruncateAfterFront()
}

// fill appends customers with the given names to line i.
func (s *fakeStore) fill(i int, names ...string) []*Customer {
	out := make([]*Customer, 0, len(names))
	for _, n := range names {
		c := NewCustomer(n, []Item{{Name: "item", Time: 1}})
		s.lines[i].Accept(c)
		out = append(out, c)
	}
	return out
}

func (s *fakeStore) lengths() []int {
	out := make([]int, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.Len()
	}
	return out
}

// customerWithTime creates a customer whose single item scans in t ticks.
func customerWithTime(name string, t int64) *Customer {
	return NewCustomer(name, []Item{{Name: "item", Time: t}})
}
