package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ProductView is the catalog read model the dashboard grids consume. Field
// names are part of the de-facto schema shared with the export layers.
type ProductView struct {
	ID        uuid.UUID `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	StockQty  int       `json:"stock_qty"`
	Threshold int       `json:"threshold"`
	LowStock  bool      `json:"low_stock"`
}

type ProductReadStore interface {
	FindAll(ctx context.Context) ([]*ProductView, error)
}

type CatalogQueries interface {
	List(ctx context.Context) ([]*ProductView, error)
	Search(ctx context.Context, term string) ([]*ProductView, error)
	Categories(ctx context.Context) ([]string, error)
	HasLowStock(ctx context.Context) (bool, error)
}

type catalogQueriesImpl struct {
	store ProductReadStore
}

func NewCatalogQueries(store ProductReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	return q.store.FindAll(ctx)
}

// Search keeps products matching every whitespace-separated term somewhere in
// the product's textual fields, case-insensitively. A blank term returns the
// full list.
func (q *catalogQueriesImpl) Search(ctx context.Context, term string) ([]*ProductView, error) {
	products, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	terms := strings.Fields(strings.ToLower(term))
	if len(terms) == 0 {
		return products, nil
	}

	out := make([]*ProductView, 0, len(products))
	for _, p := range products {
		haystack := strings.ToLower(strings.Join([]string{
			p.Name, p.SKU, p.Category, fmt.Sprintf("%.2f", p.Price),
		}, " "))
		if matchesAll(haystack, terms) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchesAll(haystack string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

// Categories returns the distinct categories in catalog order.
func (q *catalogQueriesImpl) Categories(ctx context.Context) ([]string, error) {
	products, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}

func (q *catalogQueriesImpl) HasLowStock(ctx context.Context) (bool, error) {
	products, err := q.store.FindAll(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range products {
		if p.LowStock {
			return true, nil
		}
	}
	return false, nil
}
