package transaction

import (
	"time"

	"pos-engine/internal/domain/cart"

	"github.com/google/uuid"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusRefunded  Status = "refunded"
)

// Item is one sold line, snapshotted from the cart at checkout. Field names
// are part of the de-facto schema consumed by the export and audit layers.
type Item struct {
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// Transaction is an immutable completed sale. The ledger is append-only;
// nothing mutates a transaction after creation.
type Transaction struct {
	ID            uuid.UUID `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Items         []Item    `json:"items"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Status        Status    `json:"status"`
}

// FromCart builds a completed transaction from the cart contents at checkout.
func FromCart(id uuid.UUID, timestamp time.Time, lines []cart.Line, total float64, paymentMethod string) Transaction {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ProductID: l.ProductID,
			SKU:       l.SKU,
			Name:      l.Name,
			Category:  l.Category,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	return Transaction{
		ID:            id,
		Timestamp:     timestamp,
		Items:         items,
		Total:         total,
		PaymentMethod: paymentMethod,
		Status:        StatusCompleted,
	}
}

// Item returns the line for the given product id, if present.
func (t Transaction) Item(productID uuid.UUID) (Item, bool) {
	for _, it := range t.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return Item{}, false
}
