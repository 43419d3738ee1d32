package store

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocery-sim/grocery-sim/sim"
)

func cart(n int, each int64) []sim.Item {
	items := make([]sim.Item, n)
	for i := range items {
		items[i] = sim.Item{Name: "item", Time: each}
	}
	return items
}

func TestCheckoutLine_CanAccept_Capacity(t *testing.T) {
	// GIVEN a regular line of capacity 2
	l := NewRegularLine(2)
	a := sim.NewCustomer("a", cart(1, 1))
	b := sim.NewCustomer("b", cart(1, 1))
	c := sim.NewCustomer("c", cart(1, 1))

	// WHEN two customers join
	require.True(t, l.CanAccept(a))
	l.Accept(a)
	require.True(t, l.CanAccept(b))
	l.Accept(b)

	// THEN a third is refused
	assert.False(t, l.CanAccept(c))
	assert.Equal(t, 2, l.Len())
}

func TestCheckoutLine_Express_ItemLimit(t *testing.T) {
	l := NewExpressLine(10, 7)
	assert.True(t, l.CanAccept(sim.NewCustomer("small", cart(7, 1))))
	assert.False(t, l.CanAccept(sim.NewCustomer("big", cart(8, 1))))

	// a regular line does not care about item count
	assert.True(t, NewRegularLine(10).CanAccept(sim.NewCustomer("big", cart(8, 1))))
}

func TestCheckoutLine_NextCheckoutTime_ByKind(t *testing.T) {
	tests := []struct {
		name string
		line *CheckoutLine
		want int64
	}{
		{"regular", NewRegularLine(5), 9},
		{"express", NewExpressLine(5, 7), 9},
		{"self-serve doubles", NewSelfServeLine(5, 2), 18},
		{"self-serve triples", NewSelfServeLine(5, 3), 27},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.line.Accept(sim.NewCustomer("x", cart(3, 3)))
			got, err := tc.line.NextCheckoutTime()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckoutLine_NextCheckoutTime_Overflow(t *testing.T) {
	tests := []struct {
		name string
		line *CheckoutLine
		c    *sim.Customer
	}{
		{"regular item sum", NewRegularLine(5), sim.NewCustomer("Ann", cart(2, math.MaxInt64))},
		{"self-serve multiplier", NewSelfServeLine(5, 2), sim.NewCustomer("Bo", cart(1, math.MaxInt64/2+1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.line.Accept(tc.c)
			_, err := tc.line.NextCheckoutTime()
			assert.True(t, errors.Is(err, sim.ErrCheckoutTimeOverflow), "got %v", err)
		})
	}
}

func TestCheckoutLine_NextCheckoutTime_Empty(t *testing.T) {
	_, err := NewRegularLine(5).NextCheckoutTime()
	assert.True(t, errors.Is(err, sim.ErrEmptyLine))
}

func TestCheckoutLine_Close_KeepsFrontCustomer(t *testing.T) {
	// GIVEN a line [A, B, C]
	l := NewRegularLine(5)
	var cs []*sim.Customer
	for _, n := range []string{"A", "B", "C"} {
		c := sim.NewCustomer(n, cart(1, 1))
		l.Accept(c)
		cs = append(cs, c)
	}

	// WHEN it closes
	displaced := l.Close()

	// THEN A keeps its place, B and C are displaced in order, and nobody new may join
	assert.Equal(t, []*sim.Customer{cs[1], cs[2]}, displaced)
	assert.Same(t, cs[0], l.FirstInLine())
	assert.False(t, l.IsOpen())
	assert.False(t, l.CanAccept(sim.NewCustomer("late", nil)))
	assert.Contains(t, l.String(), "closed")

	// AND closing again displaces nobody
	assert.Empty(t, l.Close())
	assert.Equal(t, 1, l.Len())
}

func TestCheckoutLine_RemoveFrontCustomer(t *testing.T) {
	l := NewRegularLine(5)
	a := sim.NewCustomer("A", nil)
	b := sim.NewCustomer("B", nil)
	l.Accept(a)
	l.Accept(b)

	l.RemoveFrontCustomer()
	assert.Same(t, b, l.FirstInLine())
	l.RemoveFrontCustomer()
	assert.Nil(t, l.FirstInLine())
	l.RemoveFrontCustomer() // no-op on empty line
	assert.Equal(t, 0, l.Len())
}
