package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"pos-engine/internal/audit"
	"pos-engine/internal/domain/actor"
	"pos-engine/internal/domain/cart"
	"pos-engine/internal/domain/discount"
	"pos-engine/internal/domain/pricing"
	"pos-engine/internal/domain/transaction"
	"pos-engine/internal/infra"
	"pos-engine/internal/pkg/clock"
	"pos-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrOutOfStock              = errs.New("product is out of stock")
	ErrCartEmpty               = errs.New("cart is empty")
	ErrInsufficientPayment     = errs.New("tendered amount is less than total")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CheckoutResult struct {
	Transaction transaction.Transaction
	ChangeDue   float64
}

type SaleCommands interface {
	AddItem(ctx context.Context, a actor.Actor, productID uuid.UUID) error
	UpdateQuantity(a actor.Actor, productID uuid.UUID, quantity int)
	CartLines() []cart.Line
	Totals() pricing.Totals

	SelectDiscountType(t discount.Type)
	SetDiscountValue(raw string)
	SetDiscountCode(code string)
	ApplyDiscount()
	RemoveDiscount()
	Discount() discount.Discount

	Checkout(ctx context.Context, a actor.Actor, paymentMethod string, tendered float64) (*CheckoutResult, error)
	CancelSale()
}

// saleUseCaseImpl is the single writer over the engine state: every mutation
// happens under one lock as a whole-state transition, so readers never see a
// partially applied cart or discount.
type saleUseCaseImpl struct {
	mu       sync.Mutex
	cart     *cart.Cart
	discount *discount.Engine
	catalog  Catalog
	ledger   TransactionLedger
	recorder audit.Recorder
	clock    clock.Clock
}

func NewSaleUseCase(catalog Catalog, ledger TransactionLedger, recorder audit.Recorder, clk clock.Clock) SaleCommands {
	return &saleUseCaseImpl{
		cart:     cart.New(),
		discount: discount.NewEngine(),
		catalog:  catalog,
		ledger:   ledger,
		recorder: recorder,
		clock:    clk,
	}
}

func (s *saleUseCaseImpl) AddItem(ctx context.Context, a actor.Actor, productID uuid.UUID) error {
	p, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.AddItem(p); err != nil {
		s.record(fmt.Sprintf("Rejected out-of-stock product: %s", p.Name()), a, true)
		return errs.Mark(err, ErrOutOfStock)
	}
	return nil
}

func (s *saleUseCaseImpl) UpdateQuantity(_ actor.Actor, productID uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, quantity)
}

func (s *saleUseCaseImpl) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *saleUseCaseImpl) Totals() pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *saleUseCaseImpl) totalsLocked() pricing.Totals {
	return pricing.Calculate(s.cart.Lines(), s.discount.Snapshot())
}

func (s *saleUseCaseImpl) SelectDiscountType(t discount.Type) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount.SelectType(t)
}

func (s *saleUseCaseImpl) SetDiscountValue(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount.SetManualValue(raw, s.totalsLocked().Subtotal)
}

func (s *saleUseCaseImpl) SetDiscountCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount.SetCode(code)
}

func (s *saleUseCaseImpl) ApplyDiscount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount.Apply()
}

func (s *saleUseCaseImpl) RemoveDiscount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount.Remove()
}

func (s *saleUseCaseImpl) Discount() discount.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount.Snapshot()
}

// Checkout turns the cart into an immutable ledger transaction and resets the
// sale. The cart is only cleared after the append succeeds.
func (s *saleUseCaseImpl) Checkout(ctx context.Context, a actor.Actor, paymentMethod string, tendered float64) (*CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	totals := s.totalsLocked()
	if tendered < totals.Total {
		return nil, ErrInsufficientPayment
	}

	txn := transaction.FromCart(uuid.New(), s.clock.Now(), s.cart.Lines(), totals.Total, paymentMethod)

	if _, err := s.ledger.Append(ctx, txn); err != nil {
		s.record("Checkout failed: ledger append", a, true)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.cart.Clear()
	s.discount.Remove()
	s.record(fmt.Sprintf("Completed sale %s for $%.2f (%s)", txn.ID, txn.Total, paymentMethod), a, false)

	return &CheckoutResult{
		Transaction: txn,
		ChangeDue:   tendered - totals.Total,
	}, nil
}

func (s *saleUseCaseImpl) CancelSale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.discount.Remove()
}

// record is fire-and-forget: audit problems must never abort the sale.
func (s *saleUseCaseImpl) record(description string, a actor.Actor, isError bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("audit recording failed", "error", r)
		}
	}()
	s.recorder.Log(description, a, isError)
}
