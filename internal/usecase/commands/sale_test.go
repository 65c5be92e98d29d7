//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"pos-engine/internal/audit"
	"pos-engine/internal/domain/actor"
	"pos-engine/internal/domain/discount"
	"pos-engine/internal/infra/memory"
	"pos-engine/internal/pkg/clock"
	"pos-engine/internal/usecase/commands"
	"pos-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	sale     commands.SaleCommands
	catalog  *memory.Catalog
	ledger   *memory.Ledger
	recorder *audit.RingRecorder
	clock    *clock.MockClock
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()

	catalog := memory.NewCatalog(builder.NewProductBuilder().MustBuild())
	ledger := memory.NewLedger()
	clk := clock.NewMockClock(time.Date(2023, 5, 15, 10, 30, 0, 0, time.UTC))
	recorder := audit.NewRingRecorder(clk)

	return &saleFixture{
		sale:     commands.NewSaleUseCase(catalog, ledger, recorder, clk),
		catalog:  catalog,
		ledger:   ledger,
		recorder: recorder,
		clock:    clk,
	}
}

func (f *saleFixture) productID() uuid.UUID {
	views, _ := f.catalog.FindAll(context.Background())
	return views[0].ID
}

var cashier = actor.Actor{ID: uuid.New(), Email: "cashier@store.test", Role: actor.RoleCashier}

func TestSaleAddItem(t *testing.T) {
	t.Run("adds a catalog product to the cart", func(t *testing.T) {
		f := newSaleFixture(t)

		require.NoError(t, f.sale.AddItem(context.Background(), cashier, f.productID()))

		lines := f.sale.CartLines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("unknown product id is rejected", func(t *testing.T) {
		f := newSaleFixture(t)

		err := f.sale.AddItem(context.Background(), cashier, uuid.New())

		require.ErrorIs(t, err, commands.ErrProductNotFound)
		assert.Empty(t, f.sale.CartLines())
	})

	t.Run("out-of-stock product is rejected and audited", func(t *testing.T) {
		f := newSaleFixture(t)
		depleted := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.SKU = "TEA-009"
			b.Name = "Herbal Tea"
			b.StockQty = 0
		}).MustBuild()
		f.catalog.Put(depleted)

		err := f.sale.AddItem(context.Background(), cashier, depleted.ID())

		require.ErrorIs(t, err, commands.ErrOutOfStock)
		entries := f.recorder.Entries()
		require.Len(t, entries, 1)
		assert.True(t, entries[0].IsError)
		assert.Contains(t, entries[0].Description, "Herbal Tea")
		assert.Equal(t, cashier.Email, entries[0].Actor)
	})
}

func TestSaleTotals(t *testing.T) {
	t.Run("totals follow the cart and applied discount", func(t *testing.T) {
		f := newSaleFixture(t)
		id := f.productID()
		require.NoError(t, f.sale.AddItem(context.Background(), cashier, id))
		f.sale.UpdateQuantity(cashier, id, 2)

		totals := f.sale.Totals()
		assert.InDelta(t, 9.98, totals.Subtotal, 1e-9)
		assert.InDelta(t, 9.98, totals.Total, 1e-9)

		f.sale.SetDiscountValue("10")
		f.sale.ApplyDiscount()

		totals = f.sale.Totals()
		assert.InDelta(t, 0.998, totals.DiscountAmount, 1e-9)
		assert.InDelta(t, 8.982, totals.Total, 1e-9)
	})
}

func TestSaleCheckout(t *testing.T) {
	t.Run("appends to the ledger and resets the sale", func(t *testing.T) {
		f := newSaleFixture(t)
		id := f.productID()
		require.NoError(t, f.sale.AddItem(context.Background(), cashier, id))
		f.sale.UpdateQuantity(cashier, id, 2)

		result, err := f.sale.Checkout(context.Background(), cashier, "cash", 20)

		require.NoError(t, err)
		assert.InDelta(t, 9.98, result.Transaction.Total, 1e-9)
		assert.InDelta(t, 10.02, result.ChangeDue, 1e-9)
		assert.Equal(t, f.clock.Now(), result.Transaction.Timestamp)

		appended, err := f.ledger.Query(context.Background())
		require.NoError(t, err)
		require.Len(t, appended, 1)
		assert.Equal(t, result.Transaction.ID, appended[0].ID)

		assert.Empty(t, f.sale.CartLines())
		assert.False(t, f.sale.Discount().Applied)
	})

	t.Run("empty cart cannot check out", func(t *testing.T) {
		f := newSaleFixture(t)

		_, err := f.sale.Checkout(context.Background(), cashier, "cash", 20)

		require.ErrorIs(t, err, commands.ErrCartEmpty)
	})

	t.Run("tendered below total is rejected and the cart survives", func(t *testing.T) {
		f := newSaleFixture(t)
		require.NoError(t, f.sale.AddItem(context.Background(), cashier, f.productID()))

		_, err := f.sale.Checkout(context.Background(), cashier, "cash", 1)

		require.ErrorIs(t, err, commands.ErrInsufficientPayment)
		assert.Len(t, f.sale.CartLines(), 1)
	})

	t.Run("applied discount reduces the total charged", func(t *testing.T) {
		f := newSaleFixture(t)
		id := f.productID()
		require.NoError(t, f.sale.AddItem(context.Background(), cashier, id))
		f.sale.UpdateQuantity(cashier, id, 2)
		f.sale.SelectDiscountType(discount.TypeFixed)
		f.sale.SetDiscountValue("2")
		f.sale.ApplyDiscount()

		result, err := f.sale.Checkout(context.Background(), cashier, "credit", 10)

		require.NoError(t, err)
		assert.InDelta(t, 7.98, result.Transaction.Total, 1e-9)
	})

	t.Run("successful checkout is audited", func(t *testing.T) {
		f := newSaleFixture(t)
		require.NoError(t, f.sale.AddItem(context.Background(), cashier, f.productID()))

		_, err := f.sale.Checkout(context.Background(), cashier, "cash", 20)
		require.NoError(t, err)

		entries := f.recorder.Entries()
		require.Len(t, entries, 1)
		assert.False(t, entries[0].IsError)
		assert.Contains(t, entries[0].Description, "Completed sale")
	})
}

func TestCancelSale(t *testing.T) {
	t.Run("clears the cart and discount without touching the ledger", func(t *testing.T) {
		f := newSaleFixture(t)
		require.NoError(t, f.sale.AddItem(context.Background(), cashier, f.productID()))
		f.sale.SelectDiscountType(discount.TypeFixed)
		f.sale.ApplyDiscount()

		f.sale.CancelSale()

		assert.Empty(t, f.sale.CartLines())
		assert.False(t, f.sale.Discount().Applied)
		appended, err := f.ledger.Query(context.Background())
		require.NoError(t, err)
		assert.Empty(t, appended)
	})
}
