package components

import (
	"pos-engine/internal/infra/readstore"
	repo_impl "pos-engine/internal/infra/repository"
	"pos-engine/internal/usecase/commands"
	"pos-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(commands.Catalog)),
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			repo_impl.NewLedgerRepository,
			fx.As(new(commands.TransactionLedger)),
			fx.As(new(queries.TransactionReadStore)),
		),
		fx.Annotate(
			repo_impl.NewRefundRepository,
			fx.As(new(commands.RefundStore)),
		),
	),
)
