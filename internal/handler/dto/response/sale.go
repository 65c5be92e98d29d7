package response

import (
	"pos-engine/internal/domain/cart"
	"pos-engine/internal/domain/discount"
	"pos-engine/internal/domain/pricing"
	"pos-engine/internal/usecase/commands"
)

type CartLineResponse struct {
	ProductID string  `json:"product_id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type DiscountResponse struct {
	Type    string  `json:"type"`
	Value   float64 `json:"value"`
	Code    string  `json:"code,omitempty"`
	Applied bool    `json:"applied"`
}

type CartResponse struct {
	Lines          []CartLineResponse `json:"lines"`
	Subtotal       float64            `json:"subtotal"`
	DiscountAmount float64            `json:"discount_amount"`
	Total          float64            `json:"total"`
	Discount       DiscountResponse   `json:"discount"`
}

func FromCart(lines []cart.Line, totals pricing.Totals, d discount.Discount) *CartResponse {
	out := make([]CartLineResponse, len(lines))
	for i, l := range lines {
		out[i] = CartLineResponse{
			ProductID: l.ProductID.String(),
			SKU:       l.SKU,
			Name:      l.Name,
			Category:  l.Category,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}
	return &CartResponse{
		Lines:          out,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		Total:          totals.Total,
		Discount:       FromDiscount(d),
	}
}

func FromDiscount(d discount.Discount) DiscountResponse {
	return DiscountResponse{
		Type:    string(d.Type),
		Value:   d.Value,
		Code:    d.Code,
		Applied: d.Applied,
	}
}

type CheckoutResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	ChangeDue   float64              `json:"change_due"`
}

func FromCheckoutResult(res *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Transaction: FromTransaction(res.Transaction),
		ChangeDue:   res.ChangeDue,
	}
}
