package refund

import (
	"errors"
	"time"

	"pos-engine/internal/domain/transaction"
	"pos-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrEmptySelection = errors.New("refund selection is empty")

// Record is an immutable refund. Transactions holds exactly the original
// transactions that contain at least one selected item; Amount is the sum of
// unit price x quantity over the selected keys.
type Record struct {
	ID           uuid.UUID                 `json:"id"`
	Timestamp    time.Time                 `json:"timestamp"`
	Amount       float64                   `json:"amount"`
	Transactions []transaction.Transaction `json:"transactions"`
	Items        []Key                     `json:"items"`
	Reason       string                    `json:"reason"`
}

type Reconciler struct {
	clock clock.Clock
}

func NewReconciler(c clock.Clock) *Reconciler {
	return &Reconciler{clock: c}
}

// CalculateAmount resolves each selected key against the full, unfiltered
// transaction list and sums price x quantity. Keys with no match contribute 0.
// Callers must pass the ledger snapshot, never the filtered view that
// happened to be on screen when the item was toggled.
func CalculateAmount(allTxns []transaction.Transaction, sel *Selection) float64 {
	var total float64
	for _, txn := range allTxns {
		for _, it := range txn.Items {
			if sel.Contains(txn.ID, it.ProductID) {
				total += it.UnitPrice * float64(it.Quantity)
			}
		}
	}
	return total
}

// ProcessRefund builds the immutable refund record for the selection. An
// empty selection is an input-validation failure (ErrEmptySelection), not a
// retryable error. The caller clears the selection after success.
func (r *Reconciler) ProcessRefund(allTxns []transaction.Transaction, sel *Selection, reason string) (*Record, error) {
	if sel.IsEmpty() {
		return nil, ErrEmptySelection
	}

	touched := make([]transaction.Transaction, 0, len(allTxns))
	for _, txn := range allTxns {
		for _, it := range txn.Items {
			if sel.Contains(txn.ID, it.ProductID) {
				touched = append(touched, txn)
				break
			}
		}
	}

	return &Record{
		ID:           uuid.New(),
		Timestamp:    r.clock.Now(),
		Amount:       CalculateAmount(allTxns, sel),
		Transactions: touched,
		Items:        sel.Keys(),
		Reason:       reason,
	}, nil
}
