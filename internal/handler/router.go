package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pos-engine/internal/handler/api"
	"pos-engine/internal/handler/middleware"
	"pos-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	saleHandler *api.SaleHandler,
	refundHandler *api.RefundHandler,
	catalogHandler *api.CatalogHandler,
	auditHandler *api.AuditHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, saleHandler, refundHandler, catalogHandler, auditHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	saleHandler *api.SaleHandler,
	refundHandler *api.RefundHandler,
	catalogHandler *api.CatalogHandler,
	auditHandler *api.AuditHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		sale := apiGroup.Group("/sale")
		{
			addRoutes(sale, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: saleHandler.GetCart},
				{Method: http.MethodPost, Path: "/cart/items", Handler: saleHandler.AddItem},
				{Method: http.MethodPut, Path: "/cart/items", Handler: saleHandler.UpdateQuantity},
				{Method: http.MethodPut, Path: "/discount/type", Handler: saleHandler.SelectDiscountType},
				{Method: http.MethodPut, Path: "/discount/value", Handler: saleHandler.SetDiscountValue},
				{Method: http.MethodPut, Path: "/discount/code", Handler: saleHandler.SetDiscountCode},
				{Method: http.MethodPost, Path: "/discount/apply", Handler: saleHandler.ApplyDiscount},
				{Method: http.MethodDelete, Path: "/discount", Handler: saleHandler.RemoveDiscount},
				{Method: http.MethodPost, Path: "/checkout", Handler: saleHandler.Checkout},
				{Method: http.MethodDelete, Path: "", Handler: saleHandler.CancelSale},
			})
		}

		refunds := apiGroup.Group("/refunds")
		{
			addRoutes(refunds, []route{
				{Method: http.MethodGet, Path: "/selection", Handler: refundHandler.GetSelection},
				{Method: http.MethodPost, Path: "/selection", Handler: refundHandler.ToggleItem},
				{Method: http.MethodDelete, Path: "/selection", Handler: refundHandler.CancelSelection},
				{Method: http.MethodPost, Path: "", Handler: refundHandler.Process},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/transactions", Handler: refundHandler.ListTransactions},
			{Method: http.MethodGet, Path: "/transactions/:id", Handler: refundHandler.GetTransaction},
			{Method: http.MethodGet, Path: "/products", Handler: catalogHandler.List},
			{Method: http.MethodGet, Path: "/products/search", Handler: catalogHandler.LiveSearch},
			{Method: http.MethodGet, Path: "/products/categories", Handler: catalogHandler.Categories},
			{Method: http.MethodGet, Path: "/products/low-stock", Handler: catalogHandler.LowStock},
			{Method: http.MethodGet, Path: "/audit", Handler: auditHandler.Trail},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
