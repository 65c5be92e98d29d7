package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"pos-engine/internal/domain/refund"
	"pos-engine/internal/domain/transaction"
	"pos-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

// LedgerRepository persists completed sales in Postgres. The tables are
// append-only: inserts at checkout, reads during refund reconciliation,
// never an update.
type LedgerRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewLedgerRepository(db *pgxpool.Pool, logger *slog.Logger) *LedgerRepository {
	return &LedgerRepository{db: db, logger: logger}
}

func (r *LedgerRepository) Append(ctx context.Context, txn transaction.Transaction) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to begin ledger append", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, ts, total, payment_method, status) VALUES ($1, $2, $3, $4, $5)`,
		txn.ID, txn.Timestamp, txn.Total, txn.PaymentMethod, string(txn.Status))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert transaction", err)
	}

	for _, it := range txn.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO transaction_items (transaction_id, product_id, sku, name, category, unit_price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			txn.ID, it.ProductID, it.SKU, it.Name, it.Category, it.UnitPrice, it.Quantity)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert transaction item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to commit ledger append", err)
	}

	return txn.ID, nil
}

func (r *LedgerRepository) Query(ctx context.Context) ([]transaction.Transaction, error) {
	return r.FindAll(ctx)
}

func (r *LedgerRepository) FindAll(ctx context.Context) ([]transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.ts, t.total, t.payment_method, t.status,
		        i.product_id, i.sku, i.name, i.category, i.unit_price, i.quantity
		 FROM transactions t
		 JOIN transaction_items i ON i.transaction_id = t.id
		 ORDER BY t.ts DESC, t.id`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query transactions", err)
	}
	defer rows.Close()

	var out []transaction.Transaction
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			txn    transaction.Transaction
			status string
			item   transaction.Item
		)
		err := rows.Scan(&txn.ID, &txn.Timestamp, &txn.Total, &txn.PaymentMethod, &status,
			&item.ProductID, &item.SKU, &item.Name, &item.Category, &item.UnitPrice, &item.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan transaction row", err)
		}

		if i, ok := index[txn.ID]; ok {
			out[i].Items = append(out[i].Items, item)
			continue
		}
		txn.Status = transaction.Status(status)
		txn.Items = []transaction.Item{item}
		index[txn.ID] = len(out)
		out = append(out, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read transaction rows", err)
	}

	return out, nil
}

// RefundRepository persists refund records, append-only. The selected item
// keys travel as jsonb; the touched transactions stay referenced by id since
// the ledger already owns their full contents.
type RefundRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewRefundRepository(db *pgxpool.Pool, logger *slog.Logger) *RefundRepository {
	return &RefundRepository{db: db, logger: logger}
}

func (r *RefundRepository) Append(ctx context.Context, rec refund.Record) error {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode refund items", err)
	}

	txnIDs := make([]uuid.UUID, 0, len(rec.Transactions))
	for _, txn := range rec.Transactions {
		txnIDs = append(txnIDs, txn.ID)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO refunds (id, ts, amount, reason, items, transaction_ids) VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Timestamp, rec.Amount, rec.Reason, items, txnIDs)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "refund already recorded", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert refund", err)
	}
	return nil
}
