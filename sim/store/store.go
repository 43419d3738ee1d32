package store

import (
	"fmt"

	"github.com/grocery-sim/grocery-sim/sim"
)

// GroceryStore is the set of checkout lines a simulation runs against.
type GroceryStore struct {
	lines []*CheckoutLine
}

// New creates a store with the lines cfg describes, all open and empty.
func New(cfg Config) (*GroceryStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}
	lines := make([]*CheckoutLine, 0, cfg.NumLines())
	for i := 0; i < cfg.RegularCount; i++ {
		lines = append(lines, NewRegularLine(cfg.LineCapacity))
	}
	for i := 0; i < cfg.ExpressCount; i++ {
		lines = append(lines, NewExpressLine(cfg.LineCapacity, cfg.ExpressItemLimit))
	}
	for i := 0; i < cfg.SelfServeCount; i++ {
		lines = append(lines, NewSelfServeLine(cfg.LineCapacity, cfg.SelfServeMultiplier))
	}
	return &GroceryStore{lines: lines}, nil
}

// NewWithLines creates a store over the given lines, in index order.
func NewWithLines(lines ...*CheckoutLine) *GroceryStore {
	return &GroceryStore{lines: lines}
}

func (s *GroceryStore) NumLines() int {
	return len(s.lines)
}

// Line returns line i, or nil if i is out of range.
func (s *GroceryStore) Line(i int) sim.Line {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// CheckoutLine returns the concrete line i, or nil if i is out of range.
func (s *GroceryStore) CheckoutLine(i int) *CheckoutLine {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// CloseLine closes line i and returns the customers displaced from it.
func (s *GroceryStore) CloseLine(i int) []*sim.Customer {
	l := s.CheckoutLine(i)
	if l == nil {
		return nil
	}
	return l.Close()
}

// Lengths returns the current length of every line, by index.
func (s *GroceryStore) Lengths() []int {
	out := make([]int, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.Len()
	}
	return out
}

var _ sim.Store = (*GroceryStore)(nil)
var _ sim.Line = (*CheckoutLine)(nil)
