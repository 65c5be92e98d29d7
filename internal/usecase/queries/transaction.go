package queries

import (
	"context"

	"pos-engine/internal/domain/refund"
	"pos-engine/internal/domain/transaction"
	"pos-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTransactionNotFound = errs.New("transaction not found")

type TransactionReadStore interface {
	FindAll(ctx context.Context) ([]transaction.Transaction, error)
}

type TransactionQueries interface {
	List(ctx context.Context, f refund.Filter) ([]transaction.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (transaction.Transaction, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

// List returns the ledger narrowed by the refund filter; a zero filter is the
// full history, newest data as the store returns it.
func (q *transactionQueriesImpl) List(ctx context.Context, f refund.Filter) ([]transaction.Transaction, error) {
	all, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if f.IsZero() {
		return all, nil
	}
	return refund.FilterTransactions(all, f), nil
}

func (q *transactionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (transaction.Transaction, error) {
	all, err := q.store.FindAll(ctx)
	if err != nil {
		return transaction.Transaction{}, err
	}
	for _, txn := range all {
		if txn.ID == id {
			return txn, nil
		}
	}
	return transaction.Transaction{}, ErrTransactionNotFound
}
