package readstore

import (
	"context"
	"errors"
	"log/slog"

	"pos-engine/internal/domain/product"
	"pos-engine/internal/infra"
	"pos-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductReadStore serves the catalog from Postgres. Products are read-only
// from the engine's perspective; inventory CRUD lives elsewhere.
type ProductReadStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewProductReadStore(db *pgxpool.Pool, logger *slog.Logger) *ProductReadStore {
	return &ProductReadStore{db: db, logger: logger}
}

func (s *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, sku, name, category, price, stock_qty, threshold FROM products ORDER BY name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query products", err)
	}
	defer rows.Close()

	var out []*queries.ProductView
	for rows.Next() {
		var v queries.ProductView
		if err := rows.Scan(&v.ID, &v.SKU, &v.Name, &v.Category, &v.Price, &v.StockQty, &v.Threshold); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan product row", err)
		}
		v.LowStock = v.StockQty <= v.Threshold
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read product rows", err)
	}

	return out, nil
}

func (s *ProductReadStore) List(ctx context.Context) ([]*product.Product, error) {
	views, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*product.Product, 0, len(views))
	for _, v := range views {
		p, err := product.NewProduct(v.ID, v.SKU, v.Name, v.Category, v.Price, v.StockQty, v.Threshold)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "invalid product row", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	var (
		sku, name, category string
		price               float64
		stockQty, threshold int
	)
	err := s.db.QueryRow(ctx,
		`SELECT sku, name, category, price, stock_qty, threshold FROM products WHERE id = $1`, id).
		Scan(&sku, &name, &category, &price, &stockQty, &threshold)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "product not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to query product", err)
	}

	return product.NewProduct(id, sku, name, category, price, stockQty, threshold)
}
