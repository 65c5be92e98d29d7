package components

import (
	"pos-engine/internal/handler"
	"pos-engine/internal/handler/api"
	"pos-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSaleHandler,
		api.NewRefundHandler,
		api.NewCatalogHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
