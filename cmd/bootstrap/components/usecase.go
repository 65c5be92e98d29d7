package components

import (
	"pos-engine/internal/audit"
	"pos-engine/internal/domain/refund"
	"pos-engine/internal/pkg/clock"
	"pos-engine/internal/pkg/config"
	"pos-engine/internal/usecase/commands"
	"pos-engine/internal/usecase/queries"
	"pos-engine/internal/usecase/search"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	refund.NewReconciler,
	fx.Annotate(
		audit.NewRingRecorder,
		fx.As(new(audit.Recorder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSaleUseCase,
		commands.NewRefundUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewTransactionQueries,
		queries.NewAuditQueries,
		func(q queries.CatalogQueries, cfg config.Config) *search.Debouncer {
			return search.NewDebouncer(q, cfg.Search.Debounce)
		},
	),
)
