package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"pos-engine/internal/audit"
	"pos-engine/internal/domain/actor"
	"pos-engine/internal/domain/refund"
	"pos-engine/internal/infra"
	"pos-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection  = errs.New("refund selection is empty")
	ErrDuplicateRefund = errs.New("refund already recorded")
)

type RefundCommands interface {
	ToggleItem(transactionID, itemID uuid.UUID)
	SelectedItems() []refund.Key
	Amount(ctx context.Context) (float64, error)
	Process(ctx context.Context, a actor.Actor, reason string) (*refund.Record, error)
	Cancel()
}

// refundUseCaseImpl owns the in-progress selection. Amount and Process always
// re-resolve against a fresh ledger snapshot, never a cached copy, so
// reconciling against a growing ledger stays safe.
type refundUseCaseImpl struct {
	mu         sync.Mutex
	selection  *refund.Selection
	reconciler *refund.Reconciler
	ledger     TransactionLedger
	refunds    RefundStore
	recorder   audit.Recorder
}

func NewRefundUseCase(reconciler *refund.Reconciler, ledger TransactionLedger, refunds RefundStore, recorder audit.Recorder) RefundCommands {
	return &refundUseCaseImpl{
		selection:  refund.NewSelection(),
		reconciler: reconciler,
		ledger:     ledger,
		refunds:    refunds,
		recorder:   recorder,
	}
}

func (r *refundUseCaseImpl) ToggleItem(transactionID, itemID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection.Toggle(transactionID, itemID)
}

func (r *refundUseCaseImpl) SelectedItems() []refund.Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selection.Keys()
}

func (r *refundUseCaseImpl) Amount(ctx context.Context) (float64, error) {
	all, err := r.ledger.Query(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return refund.CalculateAmount(all, r.selection), nil
}

func (r *refundUseCaseImpl) Process(ctx context.Context, a actor.Actor, reason string) (*refund.Record, error) {
	all, err := r.ledger.Query(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.reconciler.ProcessRefund(all, r.selection, reason)
	if err != nil {
		return nil, errs.Mark(err, ErrEmptySelection)
	}

	if err := r.refunds.Append(ctx, *record); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateRefund)
		}
		r.record("Refund failed: store append", a, true)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.selection.Clear()
	r.record(fmt.Sprintf("Processed refund %s for $%.2f", record.ID, record.Amount), a, false)

	return record, nil
}

func (r *refundUseCaseImpl) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection.Clear()
}

func (r *refundUseCaseImpl) record(description string, a actor.Actor, isError bool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("audit recording failed", "error", rec)
		}
	}()
	r.recorder.Log(description, a, isError)
}
