package memory

import (
	"context"
	"sync"

	"pos-engine/internal/domain/refund"
	"pos-engine/internal/domain/transaction"

	"github.com/google/uuid"
)

// Ledger is the in-memory append-only transaction store. Appended
// transactions are never mutated; reads return copies of the slice.
type Ledger struct {
	mu   sync.RWMutex
	txns []transaction.Transaction
}

func NewLedger(seed ...transaction.Transaction) *Ledger {
	return &Ledger{txns: seed}
}

func (l *Ledger) Append(_ context.Context, txn transaction.Transaction) (uuid.UUID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.txns = append(l.txns, txn)
	return txn.ID, nil
}

func (l *Ledger) Query(ctx context.Context) ([]transaction.Transaction, error) {
	return l.FindAll(ctx)
}

func (l *Ledger) FindAll(_ context.Context) ([]transaction.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]transaction.Transaction, len(l.txns))
	copy(out, l.txns)
	return out, nil
}

// RefundStore is the in-memory append-only refund record store.
type RefundStore struct {
	mu      sync.RWMutex
	records []refund.Record
}

func NewRefundStore() *RefundStore {
	return &RefundStore{}
}

func (s *RefundStore) Append(_ context.Context, rec refund.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return nil
}

func (s *RefundStore) All() []refund.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]refund.Record, len(s.records))
	copy(out, s.records)
	return out
}
