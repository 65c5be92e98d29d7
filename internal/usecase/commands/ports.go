package commands

import (
	"context"

	"pos-engine/internal/domain/product"
	"pos-engine/internal/domain/refund"
	"pos-engine/internal/domain/transaction"

	"github.com/google/uuid"
)

// Catalog is the read-only product list backing the sale workflow.
type Catalog interface {
	List(ctx context.Context) ([]*product.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

// TransactionLedger is the append-only store of completed sales. The engine
// appends at checkout and reads during refund reconciliation; nothing ever
// updates an appended transaction.
type TransactionLedger interface {
	Append(ctx context.Context, txn transaction.Transaction) (uuid.UUID, error)
	Query(ctx context.Context) ([]transaction.Transaction, error)
}

// RefundStore persists refund records, append-only.
type RefundStore interface {
	Append(ctx context.Context, rec refund.Record) error
}
