package sim

import (
	"cmp"
	"container/heap"
)

// PriorityQueue is a min-priority queue over any element type with a total order.
// Ordering: less → insertion sequence.
// Elements that compare equal under less come out in the order they were added,
// so a simulation seeded from a file replays same-tick events in file order.
type PriorityQueue[T any] struct {
	h entryHeap[T]
}

type entry[T any] struct {
	item T
	seq  uint64
}

// entryHeap implements heap.Interface.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type entryHeap[T any] struct {
	entries []entry[T]
	less    func(a, b T) bool
	nextSeq uint64
}

func (h *entryHeap[T]) Len() int { return len(h.entries) }

func (h *entryHeap[T]) Less(i, j int) bool {
	ei, ej := h.entries[i], h.entries[j]
	if h.less(ei.item, ej.item) {
		return true
	}
	if h.less(ej.item, ei.item) {
		return false
	}
	return ei.seq < ej.seq
}

func (h *entryHeap[T]) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *entryHeap[T]) Push(x any) {
	h.entries = append(h.entries, x.(entry[T]))
}

func (h *entryHeap[T]) Pop() any {
	old := h.entries
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{}
	h.entries = old[0 : n-1]
	return item
}

// NewPriorityQueue creates an empty queue ordered by less.
// less must be a strict weak order; it panics if less is nil.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		panic("NewPriorityQueue: less must not be nil")
	}
	return &PriorityQueue[T]{h: entryHeap[T]{less: less}}
}

// NewOrderedQueue creates an empty queue over a naturally ordered type.
func NewOrderedQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueue(cmp.Less[T])
}

// Add inserts item. There is no capacity bound and duplicates are kept.
func (pq *PriorityQueue[T]) Add(item T) {
	heap.Push(&pq.h, entry[T]{item: item, seq: pq.h.nextSeq})
	pq.h.nextSeq++
}

// Remove removes and returns the minimum element.
// It returns ErrEmptyQueue if the queue holds nothing.
func (pq *PriorityQueue[T]) Remove() (T, error) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return heap.Pop(&pq.h).(entry[T]).item, nil
}

// Peek returns the minimum element without removing it.
// The boolean is false when the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return pq.h.entries[0].item, true
}

// IsEmpty reports whether every added element has been removed.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.h.Len() == 0
}

// Len returns the number of elements currently held.
func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}
