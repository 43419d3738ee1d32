package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_ItemTime_SumsItems(t *testing.T) {
	c := NewCustomer("Trevor", []Item{{"Flowers", 22}, {"Bread", 3}, {"Cheese", 3}})
	assert.Equal(t, 3, c.NumItems())
	total, err := c.ItemTime()
	require.NoError(t, err)
	assert.Equal(t, int64(28), total)
}

func TestCustomer_ItemTime_OverflowIsError(t *testing.T) {
	// GIVEN a cart whose scan times sum past math.MaxInt64
	c := NewCustomer("Ann", []Item{{"a", math.MaxInt64}, {"b", 1}})

	// WHEN the total is computed
	_, err := c.ItemTime()

	// THEN the overflow is reported instead of wrapping negative
	assert.True(t, errors.Is(err, ErrCheckoutTimeOverflow))

	// a sum of exactly math.MaxInt64 still fits
	total, err := NewCustomer("Bo", []Item{{"a", math.MaxInt64 - 1}, {"b", 1}}).ItemTime()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), total)
}

func TestCustomer_EmptyCart(t *testing.T) {
	c := NewCustomer("Nobody", nil)
	assert.Equal(t, 0, c.NumItems())
	total, err := c.ItemTime()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.False(t, c.HasArrived())
}

func TestCustomer_MarkArrival_FirstCallWins(t *testing.T) {
	c := NewCustomer("William", []Item{{"Bananas", 7}})
	c.MarkArrival(121)
	c.MarkArrival(130)
	assert.True(t, c.HasArrived())
	assert.Equal(t, int64(121), c.ArrivalTime)
	assert.Contains(t, c.String(), "William")
}
