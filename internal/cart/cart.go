// Package cart tracks per-visitor item quantities. Totals are derived from
// the entry mapping on every read; no running total is stored.
package cart

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnavailable is returned when the item is out of stock.
	ErrUnavailable = errors.New("item unavailable")
	// ErrUnknownItem is returned when the id is neither a product nor an accessory.
	ErrUnknownItem = errors.New("unknown item")
)

// PriceSource resolves the current unit price and availability of an item.
// catalog.Store implements it.
type PriceSource interface {
	UnitPrice(itemID string) (price decimal.Decimal, available bool, err error)
}

// Line is one cart entry priced at read time.
type Line struct {
	ItemID    string          `json:"itemId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Cart maps item ids to quantities (always >= 1). A Cart is not safe for
// concurrent use; the session owning it serializes access.
type Cart struct {
	prices PriceSource
	items  map[string]int
}

// New creates an empty cart priced by prices.
func New(prices PriceSource) *Cart {
	return &Cart{
		prices: prices,
		items:  make(map[string]int),
	}
}

// CanAdd reports whether AddItem(itemID) would succeed.
func (c *Cart) CanAdd(itemID string) bool {
	_, ok, err := c.prices.UnitPrice(itemID)
	return err == nil && ok
}

// AddItem increments the quantity of itemID by one, creating the entry at
// one. The cart is unchanged when an error is returned.
func (c *Cart) AddItem(itemID string) error {
	_, ok, err := c.prices.UnitPrice(itemID)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnknownItem, itemID, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnavailable, itemID)
	}
	c.items[itemID]++
	return nil
}

// Quantity returns the quantity of itemID, zero when absent.
func (c *Cart) Quantity(itemID string) int {
	return c.items[itemID]
}

// Len returns the number of distinct items.
func (c *Cart) Len() int {
	return len(c.items)
}

// TotalItemCount sums every quantity.
func (c *Cart) TotalItemCount() int {
	n := 0
	for _, q := range c.items {
		n += q
	}
	return n
}

// TotalPrice sums unit price times quantity using current catalog prices.
// An item that no longer resolves contributes nothing.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines() {
		total = total.Add(l.Subtotal)
	}
	return total
}

// Lines returns the entries sorted by item id.
func (c *Cart) Lines() []Line {
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]Line, 0, len(ids))
	for _, id := range ids {
		qty := c.items[id]
		price, _, err := c.prices.UnitPrice(id)
		if err != nil {
			price = decimal.Zero
		}
		lines = append(lines, Line{
			ItemID:    id,
			Quantity:  qty,
			UnitPrice: price,
			Subtotal:  price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return lines
}

// Summary is the read model returned to the presentation layer.
type Summary struct {
	Lines          []Line          `json:"lines"`
	TotalItemCount int             `json:"totalItemCount"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
}

// Summary snapshots the cart.
func (c *Cart) Summary() Summary {
	lines := c.Lines()
	s := Summary{Lines: lines, TotalPrice: decimal.Zero}
	for _, l := range lines {
		s.TotalItemCount += l.Quantity
		s.TotalPrice = s.TotalPrice.Add(l.Subtotal)
	}
	return s
}
