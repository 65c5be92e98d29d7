package api

import (
	"net/http"
	"time"

	resdto "pos-engine/internal/handler/dto/response"
	"pos-engine/internal/handler/httperr"
	"pos-engine/internal/usecase/queries"
	"pos-engine/internal/usecase/search"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q        queries.CatalogQueries
	debounce *search.Debouncer
}

func NewCatalogHandler(q queries.CatalogQueries, debounce *search.Debouncer) *CatalogHandler {
	return &CatalogHandler{q: q, debounce: debounce}
}

// @Summary List products
// @Description List the product catalog, optionally filtered by a search term
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term; every whitespace-separated word must match"
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	term := c.Query("q")

	var (
		views []*queries.ProductView
		err   error
	)
	if term == "" {
		views, err = h.q.List(c.Request.Context())
	} else {
		views, err = h.q.Search(c.Request.Context(), term)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}

// @Summary Live product search
// @Description Debounced search with latest-request-wins semantics: a request superseded by a newer one returns 204
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Success 200 {array} resdto.ProductResponse
// @Success 204 "Superseded by a newer search"
// @Failure 500 {object} map[string]string
// @Router /products/search [get]
func (h *CatalogHandler) LiveSearch(c *gin.Context) {
	type result struct {
		views []*queries.ProductView
		err   error
	}
	ch := make(chan result, 1)
	h.debounce.Search(c.Request.Context(), c.Query("q"), func(views []*queries.ProductView, err error) {
		ch <- result{views: views, err: err}
	})

	select {
	case res := <-ch:
		if res.err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, res.err, "Search failed", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(res.views)})
	case <-c.Request.Context().Done():
		c.Status(http.StatusNoContent)
	case <-time.After(2 * search.DefaultDebounce):
		// Only a superseded request waits this long.
		c.Status(http.StatusNoContent)
	}
}

// @Summary List categories
// @Description List the distinct product categories in catalog order
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CategoriesResponse
// @Failure 500 {object} map[string]string
// @Router /products/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.q.Categories(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list categories", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CategoriesResponse{Categories: categories})
}

// @Summary Low stock indicator
// @Description Report whether any product is at or below its low-stock threshold
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LowStockResponse
// @Failure 500 {object} map[string]string
// @Router /products/low-stock [get]
func (h *CatalogHandler) LowStock(c *gin.Context) {
	has, err := h.q.HasLowStock(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check stock", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.LowStockResponse{HasLowStock: has})
}
