package pricing

import (
	"pos-engine/internal/domain/cart"
	"pos-engine/internal/domain/discount"
)

type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// Calculate derives totals from the cart lines and the current discount.
// Percentage discounts take value/100 of the subtotal; fixed (and code-typed)
// discounts take min(value, subtotal), so a code discount with no numeric
// value contributes 0. The discount engine's bounds keep DiscountAmount from
// exceeding Subtotal, so Total never goes negative.
func Calculate(lines []cart.Line, d discount.Discount) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}

	var discountAmount float64
	if d.Applied {
		if d.Type == discount.TypePercentage {
			discountAmount = subtotal * (d.Value / 100)
		} else {
			discountAmount = min(d.Value, subtotal)
		}
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}
