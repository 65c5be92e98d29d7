package request

import (
	"time"

	"pos-engine/internal/domain/refund"

	"github.com/google/uuid"
)

type ToggleItemRequest struct {
	TransactionID uuid.UUID `json:"transaction_id" binding:"required"`
	ItemID        uuid.UUID `json:"item_id" binding:"required"`
}

type ProcessRefundRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// TransactionFilterQuery is bound from query parameters on the transaction
// list endpoint. Dates are inclusive; date_to covers the whole day.
type TransactionFilterQuery struct {
	DateFrom    string `form:"date_from"`
	DateTo      string `form:"date_to"`
	ProductName string `form:"product_name"`
	SKU         string `form:"sku"`
	Category    string `form:"category"`
}

func (q *TransactionFilterQuery) ToDomain() (refund.Filter, error) {
	f := refund.Filter{
		ProductName: q.ProductName,
		SKU:         q.SKU,
		Category:    q.Category,
	}

	if q.DateFrom != "" {
		t, err := time.Parse("2006-01-02", q.DateFrom)
		if err != nil {
			return refund.Filter{}, err
		}
		f.DateFrom = &t
	}
	if q.DateTo != "" {
		t, err := time.Parse("2006-01-02", q.DateTo)
		if err != nil {
			return refund.Filter{}, err
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.DateTo = &end
	}
	return f, nil
}
