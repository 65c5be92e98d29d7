//go:build unit

package builder

import (
	"time"

	domtxn "pos-engine/internal/domain/transaction"

	"github.com/google/uuid"
)

type TransactionBuilder struct {
	ID            uuid.UUID
	Timestamp     time.Time
	Items         []domtxn.Item
	PaymentMethod string
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:        uuid.New(),
		Timestamp: time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC),
		Items: []domtxn.Item{
			{
				ProductID: uuid.New(),
				SKU:       "COF-001",
				Name:      "Premium Coffee",
				Category:  "Beverages",
				UnitPrice: 4.99,
				Quantity:  2,
			},
		},
		PaymentMethod: "credit",
	}
}

func (t *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(t)
	return t
}

func (t *TransactionBuilder) WithItem(sku, name, category string, price float64, qty int) *TransactionBuilder {
	t.Items = append(t.Items, domtxn.Item{
		ProductID: uuid.New(),
		SKU:       sku,
		Name:      name,
		Category:  category,
		UnitPrice: price,
		Quantity:  qty,
	})
	return t
}

func (t *TransactionBuilder) Build() domtxn.Transaction {
	var total float64
	for _, it := range t.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return domtxn.Transaction{
		ID:            t.ID,
		Timestamp:     t.Timestamp,
		Items:         t.Items,
		Total:         total,
		PaymentMethod: t.PaymentMethod,
		Status:        domtxn.StatusCompleted,
	}
}
