//go:build unit

package builder

import (
	domproduct "pos-engine/internal/domain/product"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID        uuid.UUID
	SKU       string
	Name      string
	Category  string
	Price     float64
	StockQty  int
	Threshold int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:        uuid.New(),
		SKU:       "COF-001",
		Name:      "Premium Coffee",
		Category:  "Beverages",
		Price:     4.99,
		StockQty:  42,
		Threshold: 5,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(p.ID, p.SKU, p.Name, p.Category, p.Price, p.StockQty, p.Threshold)
}

// MustBuild panics on invalid fixture data; tests that exercise validation
// use BuildDomain directly.
func (p *ProductBuilder) MustBuild() *domproduct.Product {
	prod, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return prod
}
