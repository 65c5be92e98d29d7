package response

import (
	"pos-engine/internal/usecase/queries"
)

type ProductResponse struct {
	ID        string  `json:"id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	StockQty  int     `json:"stock_qty"`
	Threshold int     `json:"threshold"`
	LowStock  bool    `json:"low_stock"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:        v.ID.String(),
		SKU:       v.SKU,
		Name:      v.Name,
		Category:  v.Category,
		Price:     v.Price,
		StockQty:  v.StockQty,
		Threshold: v.Threshold,
		LowStock:  v.LowStock,
	}
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type LowStockResponse struct {
	HasLowStock bool `json:"has_low_stock"`
}
