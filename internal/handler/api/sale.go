package api

import (
	"errors"
	"net/http"

	reqdto "pos-engine/internal/handler/dto/request"
	resdto "pos-engine/internal/handler/dto/response"
	"pos-engine/internal/handler/httperr"
	"pos-engine/internal/handler/middleware"
	"pos-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	cmds commands.SaleCommands
}

func NewSaleHandler(cmds commands.SaleCommands) *SaleHandler {
	return &SaleHandler{cmds: cmds}
}

func (h *SaleHandler) cartResponse() *resdto.CartResponse {
	return resdto.FromCart(h.cmds.CartLines(), h.cmds.Totals(), h.cmds.Discount())
}

// @Summary Add item to cart
// @Description Add one unit of a product to the active cart
// @Tags sale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sale/cart/items [post]
func (h *SaleHandler) AddItem(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddItem(c.Request.Context(), a, req.ProductID); err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, commands.ErrOutOfStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Product is out of stock", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item", nil)
		}
		return
	}
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Update line quantity
// @Description Set the quantity of a cart line; a quantity below one removes the line
// @Tags sale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateQuantityRequest true "Update quantity request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /sale/cart/items [put]
func (h *SaleHandler) UpdateQuantity(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.cmds.UpdateQuantity(a, req.ProductID, req.Quantity)
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Get cart
// @Description Get the active cart with totals and discount state
// @Tags sale
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /sale/cart [get]
func (h *SaleHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Select discount type
// @Description Switch the pending discount mode; switching resets the value to the per-type default
// @Tags sale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectDiscountTypeRequest true "Discount type"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /sale/discount/type [put]
func (h *SaleHandler) SelectDiscountType(c *gin.Context) {
	var req reqdto.SelectDiscountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.cmds.SelectDiscountType(req.ToDomain())
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Set discount value
// @Description Set the manual discount value; out-of-range input keeps the previous value
// @Tags sale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetDiscountValueRequest true "Discount value"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /sale/discount/value [put]
func (h *SaleHandler) SetDiscountValue(c *gin.Context) {
	var req reqdto.SetDiscountValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.cmds.SetDiscountValue(req.Value)
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Set discount code
// @Description Set the discount code input for the code discount type
// @Tags sale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetDiscountCodeRequest true "Discount code"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /sale/discount/code [put]
func (h *SaleHandler) SetDiscountCode(c *gin.Context) {
	var req reqdto.SetDiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.cmds.SetDiscountCode(req.Code)
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Apply discount
// @Description Apply the pending discount to the cart
// @Tags sale
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /sale/discount/apply [post]
func (h *SaleHandler) ApplyDiscount(c *gin.Context) {
	h.cmds.ApplyDiscount()
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Remove discount
// @Description Remove the applied discount and reset the discount inputs
// @Tags sale
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /sale/discount [delete]
func (h *SaleHandler) RemoveDiscount(c *gin.Context) {
	h.cmds.RemoveDiscount()
	c.JSON(http.StatusOK, h.cartResponse())
}

// @Summary Checkout
// @Description Complete the sale, append it to the ledger and reset the cart
// @Tags sale
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /sale/checkout [post]
func (h *SaleHandler) Checkout(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Checkout(c.Request.Context(), a, req.PaymentMethod, req.Tendered)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartEmpty):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
		case errors.Is(err, commands.ErrInsufficientPayment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient payment", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Cancel sale
// @Description Clear the cart and discount without recording anything
// @Tags sale
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /sale [delete]
func (h *SaleHandler) CancelSale(c *gin.Context) {
	h.cmds.CancelSale()
	c.Status(http.StatusNoContent)
}
