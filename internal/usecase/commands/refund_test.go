//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"pos-engine/internal/audit"
	"pos-engine/internal/domain/actor"
	"pos-engine/internal/domain/refund"
	"pos-engine/internal/domain/transaction"
	"pos-engine/internal/infra"
	"pos-engine/internal/infra/memory"
	"pos-engine/internal/pkg/clock"
	"pos-engine/internal/usecase/commands"
	"pos-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refundFixture struct {
	refunds  commands.RefundCommands
	ledger   *memory.Ledger
	store    *memory.RefundStore
	recorder *audit.RingRecorder
}

func newRefundFixture(t *testing.T, seed ...transaction.Transaction) *refundFixture {
	t.Helper()

	ledger := memory.NewLedger(seed...)
	store := memory.NewRefundStore()
	clk := clock.NewMockClock(time.Date(2023, 5, 20, 14, 0, 0, 0, time.UTC))
	recorder := audit.NewRingRecorder(clk)

	return &refundFixture{
		refunds:  commands.NewRefundUseCase(refund.NewReconciler(clk), ledger, store, recorder),
		ledger:   ledger,
		store:    store,
		recorder: recorder,
	}
}

var manager = actor.Actor{Email: "manager@store.test", Role: actor.RoleManager}

type duplicateRefundStore struct{}

func (duplicateRefundStore) Append(context.Context, refund.Record) error {
	return infra.RepositoryError{Kind: infra.KindDuplicateKey}
}

func TestRefundToggleItem(t *testing.T) {
	txn := builder.NewTransactionBuilder().Build()

	t.Run("toggling twice removes the selection", func(t *testing.T) {
		f := newRefundFixture(t, txn)
		itemID := txn.Items[0].ProductID

		f.refunds.ToggleItem(txn.ID, itemID)
		require.Len(t, f.refunds.SelectedItems(), 1)

		f.refunds.ToggleItem(txn.ID, itemID)
		assert.Empty(t, f.refunds.SelectedItems())
	})
}

func TestRefundAmount(t *testing.T) {
	t.Run("sums unit price times quantity over the selection", func(t *testing.T) {
		first := builder.NewTransactionBuilder().Build()
		second := builder.NewTransactionBuilder().
			WithItem("MUG-001", "Ceramic Mug", "Kitchen", 12.50, 1).
			Build()
		f := newRefundFixture(t, first, second)

		f.refunds.ToggleItem(first.ID, first.Items[0].ProductID)
		f.refunds.ToggleItem(second.ID, second.Items[1].ProductID)

		amount, err := f.refunds.Amount(context.Background())

		require.NoError(t, err)
		assert.InDelta(t, 4.99*2+12.50, amount, 1e-9)
	})

	t.Run("empty selection amounts to zero", func(t *testing.T) {
		f := newRefundFixture(t, builder.NewTransactionBuilder().Build())

		amount, err := f.refunds.Amount(context.Background())

		require.NoError(t, err)
		assert.Zero(t, amount)
	})
}

func TestRefundProcess(t *testing.T) {
	t.Run("persists an immutable record and clears the selection", func(t *testing.T) {
		txn := builder.NewTransactionBuilder().Build()
		f := newRefundFixture(t, txn)
		f.refunds.ToggleItem(txn.ID, txn.Items[0].ProductID)

		record, err := f.refunds.Process(context.Background(), manager, "damaged packaging")

		require.NoError(t, err)
		assert.InDelta(t, txn.Total, record.Amount, 1e-9)
		require.Len(t, record.Transactions, 1)
		assert.Equal(t, txn.ID, record.Transactions[0].ID)
		assert.Equal(t, "damaged packaging", record.Reason)

		stored := f.store.All()
		require.Len(t, stored, 1)
		assert.Equal(t, record.ID, stored[0].ID)

		assert.Empty(t, f.refunds.SelectedItems())
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		f := newRefundFixture(t, builder.NewTransactionBuilder().Build())

		_, err := f.refunds.Process(context.Background(), manager, "")

		require.ErrorIs(t, err, commands.ErrEmptySelection)
		assert.Empty(t, f.store.All())
	})

	t.Run("processed refund is audited with the acting user", func(t *testing.T) {
		txn := builder.NewTransactionBuilder().Build()
		f := newRefundFixture(t, txn)
		f.refunds.ToggleItem(txn.ID, txn.Items[0].ProductID)

		_, err := f.refunds.Process(context.Background(), manager, "")
		require.NoError(t, err)

		entries := f.recorder.Entries()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Description, "Processed refund")
		assert.Equal(t, manager.Email, entries[0].Actor)
	})

	t.Run("duplicate key from the store keeps the selection", func(t *testing.T) {
		txn := builder.NewTransactionBuilder().Build()
		ledger := memory.NewLedger(txn)
		clk := clock.NewMockClock(time.Date(2023, 5, 20, 14, 0, 0, 0, time.UTC))
		refunds := commands.NewRefundUseCase(refund.NewReconciler(clk), ledger, duplicateRefundStore{}, audit.NewRingRecorder(clk))
		refunds.ToggleItem(txn.ID, txn.Items[0].ProductID)

		_, err := refunds.Process(context.Background(), manager, "")

		require.ErrorIs(t, err, commands.ErrDuplicateRefund)
		assert.Len(t, refunds.SelectedItems(), 1)
	})

	t.Run("selection resolves against the ledger as it grows", func(t *testing.T) {
		first := builder.NewTransactionBuilder().Build()
		f := newRefundFixture(t, first)
		f.refunds.ToggleItem(first.ID, first.Items[0].ProductID)

		later := builder.NewTransactionBuilder().Build()
		_, err := f.ledger.Append(context.Background(), later)
		require.NoError(t, err)
		f.refunds.ToggleItem(later.ID, later.Items[0].ProductID)

		record, err := f.refunds.Process(context.Background(), manager, "")

		require.NoError(t, err)
		assert.Len(t, record.Transactions, 2)
	})
}

func TestRefundCancel(t *testing.T) {
	t.Run("drops the selection without writing anything", func(t *testing.T) {
		txn := builder.NewTransactionBuilder().Build()
		f := newRefundFixture(t, txn)
		f.refunds.ToggleItem(txn.ID, txn.Items[0].ProductID)

		f.refunds.Cancel()

		assert.Empty(t, f.refunds.SelectedItems())
		assert.Empty(t, f.store.All())
	})
}
