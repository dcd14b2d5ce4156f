package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignsIdentityAndCoercesQuantity(t *testing.T) {
	c := New()
	id := c.Add(Item{ProductName: "Adana Kebap", UnitPrice: decimal.NewFromInt(50), Quantity: 0})
	require.NotEmpty(t, id)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveAndSetQuantity(t *testing.T) {
	c := New()
	first := c.Add(Item{ProductName: "Adana Kebap", UnitPrice: decimal.NewFromInt(50), Quantity: 1})
	second := c.Add(Item{ProductName: "Ayran", UnitPrice: decimal.NewFromFloat(7.5), Quantity: 2})

	c.SetQuantity(second, -1)
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[1].Quantity, "non-positive quantity coerces to 1")

	c.Remove(first)
	items = c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Ayran", items[0].ProductName)

	c.Remove("unknown")
	assert.Len(t, c.Items(), 1)
}

func TestItemTotalAppliesChoicesDiscountAndVAT(t *testing.T) {
	item := Item{
		UnitPrice: decimal.NewFromInt(100),
		Quantity:  2,
		Discount:  decimal.NewFromInt(10),
		VAT:       decimal.NewFromInt(20),
		Choices: []Choice{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(25)},
		},
	}

	// (100 + 25) * 2 = 250; -10% = 225; +20% VAT = 270
	assert.True(t, ItemTotal(item).Equal(decimal.NewFromInt(270)), "got %s", ItemTotal(item))
}

func TestCartTotalSumsLines(t *testing.T) {
	c := New()
	c.Add(Item{UnitPrice: decimal.NewFromInt(50), Quantity: 1})
	c.Add(Item{UnitPrice: decimal.NewFromFloat(7.5), Quantity: 2})

	assert.True(t, c.Total().Equal(decimal.NewFromInt(65)), "got %s", c.Total())

	c.Clear()
	assert.True(t, c.Total().IsZero())
}
