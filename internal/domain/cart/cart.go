package cart

import (
	"errors"

	"pos-engine/internal/domain/product"

	"github.com/google/uuid"
)

var ErrOutOfStock = errors.New("product is out of stock")

// Line is one cart entry. UnitPrice is a snapshot of the catalog price at
// add-time and never tracks later catalog changes.
type Line struct {
	ProductID uuid.UUID
	SKU       string
	Name      string
	Category  string
	UnitPrice float64
	Quantity  int
}

// Cart holds the in-progress sale. Every mutation replaces the whole line
// slice and accessors return copies, so callers can never alias engine state.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends a quantity-1 line with a price snapshot, or increments the
// existing line for the same product. Out-of-stock products are rejected with
// ErrOutOfStock and leave the cart unchanged.
func (c *Cart) AddItem(p *product.Product) error {
	if p.IsOutOfStock() {
		return ErrOutOfStock
	}

	next := make([]Line, len(c.lines))
	copy(next, c.lines)

	for i := range next {
		if next[i].ProductID == p.ID() {
			next[i].Quantity++
			c.lines = next
			return nil
		}
	}

	c.lines = append(next, Line{
		ProductID: p.ID(),
		SKU:       p.SKU(),
		Name:      p.Name(),
		Category:  p.Category(),
		UnitPrice: p.Price(),
		Quantity:  1,
	})
	return nil
}

// UpdateQuantity replaces a line's quantity. A quantity below 1 removes the
// line entirely; a zero-quantity line is never stored. Stock is not
// re-checked on increase (initial add is the only stock gate).
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		next := make([]Line, 0, len(c.lines))
		for _, l := range c.lines {
			if l.ProductID != productID {
				next = append(next, l)
			}
		}
		c.lines = next
		return
	}

	next := make([]Line, len(c.lines))
	copy(next, c.lines)
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = quantity
		}
	}
	c.lines = next
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Contains(productID uuid.UUID) bool {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

// Lines returns a defensive copy of the current cart contents.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
