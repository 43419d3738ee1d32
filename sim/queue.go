// Implements the CustomerQueue, which holds the customers standing in one checkout line.
// Customers are enqueued on joining a line and dequeued when their checkout completes.

package sim

import (
	"strings"
)

// CustomerQueue represents a FIFO queue of customers in a checkout line.
// The front customer is the one being (or about to be) checked out.
type CustomerQueue struct {
	queue []*Customer // FIFO queue of customers
}

// Enqueue adds a customer to the back of the queue.
func (q *CustomerQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: c must not be nil")
	}
	q.queue = append(q.queue, c)
}

func (q *CustomerQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range q.queue {
		sb.WriteString(c.Name)
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of customers in the queue.
func (q *CustomerQueue) Len() int {
	return len(q.queue)
}

// Peek returns the customer at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *CustomerQueue) Peek() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT
// append to or reslice it.
func (q *CustomerQueue) Items() []*Customer {
	return q.queue
}

// Dequeue removes the customer at the front of the queue.
// Returns nil if the queue is empty.
func (q *CustomerQueue) Dequeue() *Customer {
	if len(q.queue) == 0 {
		return nil
	}
	c := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return c
}

// TruncateAfterFront removes every customer except the front one and returns
// them in queue order. The front customer keeps its place.
func (q *CustomerQueue) TruncateAfterFront() []*Customer {
	if len(q.queue) <= 1 {
		return nil
	}
	rest := make([]*Customer, len(q.queue)-1)
	copy(rest, q.queue[1:])
	clear(q.queue[1:])
	q.queue = q.queue[:1]
	return rest
}
