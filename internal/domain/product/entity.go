package product

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrEmptySKU         = errors.New("product sku cannot be empty")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrNegativeStock    = errors.New("stock quantity cannot be negative")
)

// Product is a read-only catalog snapshot. Once copied into a cart line it is
// never mutated; stock updates produce a fresh snapshot on the next read.
type Product struct {
	id        uuid.UUID
	sku       string
	name      string
	category  string
	price     float64
	stockQty  int
	threshold int
}

func NewProduct(id uuid.UUID, sku, name, category string, price float64, stockQty, threshold int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if strings.TrimSpace(sku) == "" {
		return nil, ErrEmptySKU
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if stockQty < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		id:        id,
		sku:       sku,
		name:      name,
		category:  category,
		price:     price,
		stockQty:  stockQty,
		threshold: threshold,
	}, nil
}

func (p *Product) IsOutOfStock() bool {
	return p.stockQty == 0
}

// IsLowStock reports whether the product sits at or below its reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.stockQty <= p.threshold
}

func (p *Product) ID() uuid.UUID    { return p.id }
func (p *Product) SKU() string      { return p.sku }
func (p *Product) Name() string     { return p.name }
func (p *Product) Category() string { return p.category }
func (p *Product) Price() float64   { return p.price }
func (p *Product) StockQty() int    { return p.stockQty }
func (p *Product) Threshold() int   { return p.threshold }
