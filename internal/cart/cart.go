package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Choice is a group-member pick carried by a cart item, priced when the
// owning group line uses the as-product strategy.
type Choice struct {
	ProductID      string
	ProductPriceID string
	Quantity       int
	UnitPrice      decimal.Decimal
}

// Item is one order line: a product at a chosen price, plus any comment
// selections and group choices made for it.
type Item struct {
	ID          string
	ProductID   string
	ProductName string
	PriceLineID string
	PriceName   string
	UnitPrice   decimal.Decimal
	Quantity    int
	Discount    decimal.Decimal // percent
	VAT         decimal.Decimal // percent
	Comments    []string
	Choices     []Choice
}

// Cart is the order-entry sidebar state. One cart belongs to one session;
// mutations replace the backing array, mirroring the product form's
// copy-on-write discipline.
type Cart struct {
	items []Item
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Items returns a snapshot of the cart lines in entry order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	for i, item := range c.items {
		out[i] = item
		out[i].Comments = append([]string(nil), item.Comments...)
		out[i].Choices = append([]Choice(nil), item.Choices...)
	}
	return out
}

// Add appends an item, assigning it a fresh identity and coercing the
// quantity up to 1. Returns the assigned identity.
func (c *Cart) Add(item Item) string {
	item.ID = uuid.NewString()
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	next := make([]Item, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, item)
	c.items = next
	return item.ID
}

// Remove drops the item with the given identity; unknown ids are a no-op.
func (c *Cart) Remove(itemID string) {
	next := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if item.ID == itemID {
			continue
		}
		next = append(next, item)
	}
	c.items = next
}

// SetQuantity updates an item's quantity, coercing non-positive input up
// to 1.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	next := make([]Item, len(c.items))
	copy(next, c.items)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Quantity = quantity
		}
	}
	c.items = next
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// ItemTotal prices one line: unit price plus priced choices, times
// quantity, minus the product discount, plus VAT.
func ItemTotal(item Item) decimal.Decimal {
	unit := item.UnitPrice
	for _, choice := range item.Choices {
		unit = unit.Add(choice.UnitPrice.Mul(decimal.NewFromInt(int64(choice.Quantity))))
	}
	gross := unit.Mul(decimal.NewFromInt(int64(item.Quantity)))
	discounted := gross.Mul(hundred.Sub(item.Discount)).Div(hundred)
	return discounted.Mul(hundred.Add(item.VAT)).Div(hundred)
}

// Total sums every line of the cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(ItemTotal(item))
	}
	return total
}
