package memory

import (
	"context"
	"sync"

	"pos-engine/internal/domain/product"
	"pos-engine/internal/infra"
	"pos-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// Catalog is the in-memory product store backing tests and standalone runs.
// It satisfies both the command-side catalog port and the read-store port.
type Catalog struct {
	mu       sync.RWMutex
	products []*product.Product
}

func NewCatalog(products ...*product.Product) *Catalog {
	return &Catalog{products: products}
}

func (c *Catalog) Put(p *product.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.products {
		if existing.ID() == p.ID() {
			c.products[i] = p
			return
		}
	}
	c.products = append(c.products, p)
}

func (c *Catalog) List(_ context.Context) ([]*product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*product.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *Catalog) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, infra.RepositoryError{Kind: infra.KindNotFound}
}

func (c *Catalog) FindAll(_ context.Context) ([]*queries.ProductView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*queries.ProductView, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, &queries.ProductView{
			ID:        p.ID(),
			SKU:       p.SKU(),
			Name:      p.Name(),
			Category:  p.Category(),
			Price:     p.Price(),
			StockQty:  p.StockQty(),
			Threshold: p.Threshold(),
			LowStock:  p.IsLowStock(),
		})
	}
	return out, nil
}
